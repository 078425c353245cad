package storage

import (
	"context"
	"errors"

	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/types/admins"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("not found")

type Storage interface {
	ListContent(ctx context.Context, filter types.ContentFilter) ([]types.ContentItem, error)
	GetContent(ctx context.Context, id int64) (types.ContentItem, error)
	CreateContent(ctx context.Context, req types.ContentCreateRequest) (int64, error)
	UpdateContent(ctx context.Context, id int64, req types.ContentUpdateRequest) error
	DeleteContent(ctx context.Context, id int64) error

	CreateInquiry(ctx context.Context, req types.InquiryRequest) (int64, error)
	ListInquiries(ctx context.Context) ([]types.Inquiry, error)
	SetInquiryContacted(ctx context.Context, id int64, contacted bool) error
	DeleteInquiry(ctx context.Context, id int64) error

	GetSEO(ctx context.Context, page string) (types.SEOSettings, error)
	ListSEO(ctx context.Context) ([]types.SEOSettings, error)
	UpsertSEO(ctx context.Context, page string, req types.SEORequest) error

	GetAdminByEmail(ctx context.Context, email string) (admins.Admin, error)
	CreateAdmin(ctx context.Context, email, passwordHash, name string) (int64, error)
	CountAdmins(ctx context.Context) (int, error)

	Ping(ctx context.Context) error
	Close() error
}
