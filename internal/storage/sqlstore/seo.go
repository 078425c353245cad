package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
)

const seoColumns = `id, page, COALESCE(meta_title, ''), COALESCE(meta_description, ''),
	COALESCE(meta_keywords, ''), updated_at`

func scanSEO(row rowScanner) (types.SEOSettings, error) {
	var seo types.SEOSettings
	err := row.Scan(&seo.ID, &seo.Page, &seo.MetaTitle, &seo.MetaDescription, &seo.MetaKeywords, &seo.UpdatedAt)
	return seo, err
}

func (s *Store) GetSEO(ctx context.Context, page string) (types.SEOSettings, error) {
	query := `SELECT ` + seoColumns + ` FROM seo_settings WHERE page = ?`

	seo, err := scanSEO(s.db.QueryRowContext(ctx, s.rebind(query), page))
	if errors.Is(err, sql.ErrNoRows) {
		return types.SEOSettings{}, storage.ErrNotFound
	}
	if err != nil {
		return types.SEOSettings{}, fmt.Errorf("get seo %q: %w", page, err)
	}
	return seo, nil
}

func (s *Store) ListSEO(ctx context.Context) ([]types.SEOSettings, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+seoColumns+` FROM seo_settings ORDER BY page ASC`)
	if err != nil {
		return nil, fmt.Errorf("list seo: %w", err)
	}
	defer rows.Close()

	settings := []types.SEOSettings{}
	for rows.Next() {
		seo, err := scanSEO(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seo: %w", err)
		}
		settings = append(settings, seo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list seo: %w", err)
	}

	return settings, nil
}

// UpsertSEO creates the page row or replaces its meta fields.
func (s *Store) UpsertSEO(ctx context.Context, page string, req types.SEORequest) error {
	var query string
	switch s.dialect {
	case Postgres:
		query = `INSERT INTO seo_settings (page, meta_title, meta_description, meta_keywords)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (page) DO UPDATE SET
				meta_title = EXCLUDED.meta_title,
				meta_description = EXCLUDED.meta_description,
				meta_keywords = EXCLUDED.meta_keywords,
				updated_at = CURRENT_TIMESTAMP`
	default:
		query = `INSERT INTO seo_settings (page, meta_title, meta_description, meta_keywords)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				meta_title = VALUES(meta_title),
				meta_description = VALUES(meta_description),
				meta_keywords = VALUES(meta_keywords)`
	}

	_, err := s.db.ExecContext(ctx, s.rebind(query), page, req.MetaTitle, req.MetaDescription, req.MetaKeywords)
	if err != nil {
		return fmt.Errorf("upsert seo %q: %w", page, err)
	}
	return nil
}
