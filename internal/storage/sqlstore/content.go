package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
)

const contentColumns = `id, section, COALESCE(title, ''), COALESCE(description, ''),
	COALESCE(media_url, ''), COALESCE(media_type, 'image'), COALESCE(link_url, ''),
	COALESCE(category, ''), COALESCE(display_order, 0), COALESCE(is_active, TRUE),
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContent(row rowScanner) (types.ContentItem, error) {
	var item types.ContentItem
	err := row.Scan(
		&item.ID, &item.Section, &item.Title, &item.Description,
		&item.MediaURL, &item.MediaType, &item.LinkURL,
		&item.Category, &item.DisplayOrder, &item.IsActive,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (s *Store) ListContent(ctx context.Context, filter types.ContentFilter) ([]types.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM site_content`

	var (
		conds []string
		args  []interface{}
	)
	if !filter.IncludeInactive {
		conds = append(conds, "is_active = TRUE")
	}
	if filter.Section != "" {
		conds = append(conds, "section = ?")
		args = append(args, filter.Section)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY display_order ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	items := []types.ContentItem{}
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	return items, nil
}

func (s *Store) GetContent(ctx context.Context, id int64) (types.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM site_content WHERE id = ?`

	item, err := scanContent(s.db.QueryRowContext(ctx, s.rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return types.ContentItem{}, storage.ErrNotFound
	}
	if err != nil {
		return types.ContentItem{}, fmt.Errorf("get content %d: %w", id, err)
	}
	return item, nil
}

func (s *Store) CreateContent(ctx context.Context, req types.ContentCreateRequest) (int64, error) {
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = "image"
	}

	query := `INSERT INTO site_content
		(section, title, description, media_url, media_type, link_url, category, display_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := s.insert(ctx, query,
		req.Section, req.Title, req.Description,
		nullString(req.MediaURL), mediaType, nullString(req.LinkURL),
		nullString(req.Category), req.DisplayOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("create content: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateContent(ctx context.Context, id int64, req types.ContentUpdateRequest) error {
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = "image"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	query := `UPDATE site_content SET
		title = ?, description = ?, media_url = ?, media_type = ?, link_url = ?,
		category = ?, display_order = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	err := s.execAffecting(ctx, query,
		req.Title, req.Description, nullString(req.MediaURL), mediaType,
		nullString(req.LinkURL), nullString(req.Category), req.DisplayOrder,
		isActive, id,
	)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("update content %d: %w", id, err)
	}
	return err
}

func (s *Store) DeleteContent(ctx context.Context, id int64) error {
	err := s.execAffecting(ctx, `DELETE FROM site_content WHERE id = ?`, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete content %d: %w", id, err)
	}
	return err
}
