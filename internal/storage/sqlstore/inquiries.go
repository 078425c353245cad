package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
)

func (s *Store) CreateInquiry(ctx context.Context, req types.InquiryRequest) (int64, error) {
	query := `INSERT INTO inquiries (name, phone, email, event_type, message) VALUES (?, ?, ?, ?, ?)`

	id, err := s.insert(ctx, query,
		req.Name, nullString(req.Phone), req.Email, nullString(req.EventType), req.Message)
	if err != nil {
		return 0, fmt.Errorf("create inquiry: %w", err)
	}
	return id, nil
}

func (s *Store) ListInquiries(ctx context.Context) ([]types.Inquiry, error) {
	query := `SELECT id, name, COALESCE(phone, ''), email, COALESCE(event_type, ''), message,
		COALESCE(is_contacted, FALSE), created_at
		FROM inquiries ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []types.Inquiry{}
	for rows.Next() {
		var q types.Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Phone, &q.Email, &q.EventType, &q.Message, &q.IsContacted, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	return inquiries, nil
}

func (s *Store) SetInquiryContacted(ctx context.Context, id int64, contacted bool) error {
	err := s.execAffecting(ctx, `UPDATE inquiries SET is_contacted = ? WHERE id = ?`, contacted, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("update inquiry %d: %w", id, err)
	}
	return err
}

func (s *Store) DeleteInquiry(ctx context.Context, id int64) error {
	err := s.execAffecting(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete inquiry %d: %w", id, err)
	}
	return err
}
