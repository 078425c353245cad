package sqlstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/utils/password"
)

// DefaultSEO is inserted into an empty seo_settings table.
var DefaultSEO = []struct {
	Page string
	types.SEORequest
}{
	{"home", types.SEORequest{
		MetaTitle:       "MG Films | Capturing Emotions, Creating Memories",
		MetaDescription: "MG Films - Regional music albums, short films & wedding cinematography.",
		MetaKeywords:    "MG Films, Purulia Bangla, Khortha, Santhali, wedding cinematography",
	}},
	{"about", types.SEORequest{
		MetaTitle:       "About MG Films | Our Story & Vision",
		MetaDescription: "Learn about MG Films - a creative production house specializing in regional content.",
		MetaKeywords:    "MG Films about, production house, regional films",
	}},
	{"work", types.SEORequest{
		MetaTitle:       "Our Work | MG Films Portfolio",
		MetaDescription: "Explore our portfolio of regional music albums, short films, and wedding cinematography.",
		MetaKeywords:    "MG Films portfolio, albums, films, wedding",
	}},
	{"actress", types.SEORequest{
		MetaTitle:       "Monika Singh | Actress Portfolio",
		MetaDescription: "Monika Singh - Regional actress in Purulia Bangla, Khortha and Santhali productions.",
		MetaKeywords:    "Monika Singh, actress, regional artist",
	}},
	{"services", types.SEORequest{
		MetaTitle:       "Services | MG Films Productions",
		MetaDescription: "Professional film production, music albums, wedding cinematography and more.",
		MetaKeywords:    "film production, music album, wedding cinematography, video editing",
	}},
	{"contact", types.SEORequest{
		MetaTitle:       "Contact MG Films | Book Your Event",
		MetaDescription: "Get in touch with MG Films for wedding cinematography, film production, and more.",
		MetaKeywords:    "contact MG Films, book wedding, film production booking",
	}},
}

// SeedAdmin creates the configured admin when the admins table is empty.
// It reports whether an account was created.
func (s *Store) SeedAdmin(ctx context.Context, admin config.Admin) (bool, error) {
	n, err := s.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := password.HashPassword(admin.Password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := s.CreateAdmin(ctx, admin.Email, hash, admin.Name); err != nil {
		return false, err
	}

	slog.Info("Created default admin", slog.String("email", admin.Email))
	return true, nil
}

// SeedSEO inserts DefaultSEO when seo_settings is empty and returns the
// number of rows written.
func (s *Store) SeedSEO(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seo_settings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count seo: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	query := `INSERT IGNORE INTO seo_settings (page, meta_title, meta_description, meta_keywords) VALUES (?, ?, ?, ?)`
	if s.dialect == Postgres {
		query = `INSERT INTO seo_settings (page, meta_title, meta_description, meta_keywords) VALUES (?, ?, ?, ?) ON CONFLICT (page) DO NOTHING`
	}

	for _, d := range DefaultSEO {
		_, err := s.db.ExecContext(ctx, s.rebind(query), d.Page, d.MetaTitle, d.MetaDescription, d.MetaKeywords)
		if err != nil {
			return 0, fmt.Errorf("seed seo %q: %w", d.Page, err)
		}
	}

	slog.Info("Added default SEO settings", slog.Int("pages", len(DefaultSEO)))
	return len(DefaultSEO), nil
}

// SeedDefaults runs SeedAdmin and SeedSEO.
func (s *Store) SeedDefaults(ctx context.Context, admin config.Admin) error {
	if _, err := s.SeedAdmin(ctx, admin); err != nil {
		return err
	}
	_, err := s.SeedSEO(ctx)
	return err
}
