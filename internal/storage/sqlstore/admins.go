package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types/admins"
)

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (admins.Admin, error) {
	query := `SELECT id, email, password_hash, COALESCE(name, ''), created_at FROM admins WHERE email = ?`

	var a admins.Admin
	err := s.db.QueryRowContext(ctx, s.rebind(query), email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return admins.Admin{}, storage.ErrNotFound
	}
	if err != nil {
		return admins.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	return a, nil
}

func (s *Store) CreateAdmin(ctx context.Context, email, passwordHash, name string) (int64, error) {
	id, err := s.insert(ctx, `INSERT INTO admins (email, password_hash, name) VALUES (?, ?, ?)`,
		email, passwordHash, nullString(name))
	if err != nil {
		return 0, fmt.Errorf("create admin: %w", err)
	}
	return id, nil
}

func (s *Store) CountAdmins(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}
