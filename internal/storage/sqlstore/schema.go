package sqlstore

import (
	"context"
	"fmt"
)

var postgresSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS site_content (
		id SERIAL PRIMARY KEY,
		section VARCHAR(50) NOT NULL,
		title VARCHAR(255),
		description TEXT,
		media_url VARCHAR(500),
		media_type VARCHAR(20) DEFAULT 'image',
		link_url VARCHAR(500),
		category VARCHAR(100),
		display_order INTEGER DEFAULT 0,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`,
	`CREATE INDEX IF NOT EXISTS idx_site_content_section ON site_content (section);`,
	`CREATE INDEX IF NOT EXISTS idx_site_content_active ON site_content (is_active);`,
	`
	CREATE TABLE IF NOT EXISTS inquiries (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(20),
		email VARCHAR(255) NOT NULL,
		event_type VARCHAR(100),
		message TEXT NOT NULL,
		is_contacted BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_contacted ON inquiries (is_contacted);`,
	`
	CREATE TABLE IF NOT EXISTS seo_settings (
		id SERIAL PRIMARY KEY,
		page VARCHAR(50) NOT NULL UNIQUE,
		meta_title VARCHAR(255),
		meta_description TEXT,
		meta_keywords VARCHAR(500),
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`,
}

var mysqlSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS admins (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS site_content (
		id INT AUTO_INCREMENT PRIMARY KEY,
		section VARCHAR(50) NOT NULL,
		title VARCHAR(255),
		description TEXT,
		media_url VARCHAR(500),
		media_type VARCHAR(20) DEFAULT 'image',
		link_url VARCHAR(500),
		category VARCHAR(100),
		display_order INT DEFAULT 0,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_section (section),
		INDEX idx_active (is_active)
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS inquiries (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(20),
		email VARCHAR(255) NOT NULL,
		event_type VARCHAR(100),
		message TEXT NOT NULL,
		is_contacted BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_contacted (is_contacted)
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS seo_settings (
		id INT AUTO_INCREMENT PRIMARY KEY,
		page VARCHAR(50) NOT NULL UNIQUE,
		meta_title VARCHAR(255),
		meta_description TEXT,
		meta_keywords VARCHAR(500),
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)
	`,
}

// CreateTables creates every table the service uses. It is safe to run on
// every start.
func (s *Store) CreateTables(ctx context.Context) error {
	queries := mysqlSchema
	if s.dialect == Postgres {
		queries = postgresSchema
	}

	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}

	return nil
}
