package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/types/admins"
)

// Service wraps storage with Redis caching for the public read paths.
type Service struct {
	storage storage.Storage
	redis   *redis.Client
}

var _ storage.Storage = (*Service)(nil)

// NewService creates a new cache service
func NewService(storage storage.Storage, redisClient *redis.Client) *Service {
	return &Service{
		storage: storage,
		redis:   redisClient,
	}
}

// Cache key patterns
const (
	ContentSectionKey = "content:section:%s" // content:section:work_films
	SEOPageKey        = "seo:page:%s"        // seo:page:home

	ContentPattern   = "content:*"
	SEOPattern       = "seo:*"
	RateLimitPattern = "rate_limit:*"

	// allSections keys the unfiltered public list
	allSections = "_all"
)

// Cache durations
const (
	ContentCacheDuration = 60 * time.Second // Admins expect edits to show up quickly
	SEOCacheDuration     = 10 * time.Minute
)

func (c *Service) getJSON(ctx context.Context, key string, dest interface{}) bool {
	cached, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	return json.Unmarshal(cached, dest) == nil
}

func (c *Service) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// DeletePattern removes every key matching pattern and returns how many were
// deleted.
func DeletePattern(ctx context.Context, redisClient *redis.Client, pattern string) (int64, error) {
	var deleted int64
	iter := redisClient.Scan(ctx, 0, pattern, 100).Iterator()
	batch := make([]string, 0, 100)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := redisClient.Del(ctx, batch...).Result()
		if err != nil {
			return err
		}
		deleted += n
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, err
	}
	return deleted, flush()
}

// InvalidateContent clears every cached section list
func (c *Service) InvalidateContent(ctx context.Context) {
	if _, err := DeletePattern(ctx, c.redis, ContentPattern); err != nil {
		slog.Warn("content cache invalidation failed", slog.String("error", err.Error()))
	}
}

// InvalidateSEO clears every cached SEO page
func (c *Service) InvalidateSEO(ctx context.Context) {
	if _, err := DeletePattern(ctx, c.redis, SEOPattern); err != nil {
		slog.Warn("seo cache invalidation failed", slog.String("error", err.Error()))
	}
}

// ListContent serves the public (active only) lists from cache. Admin lists
// that include inactive items always hit the database.
func (c *Service) ListContent(ctx context.Context, filter types.ContentFilter) ([]types.ContentItem, error) {
	if filter.IncludeInactive {
		return c.storage.ListContent(ctx, filter)
	}

	section := filter.Section
	if section == "" {
		section = allSections
	}
	key := fmt.Sprintf(ContentSectionKey, section)

	var items []types.ContentItem
	if c.getJSON(ctx, key, &items) {
		return items, nil
	}

	items, err := c.storage.ListContent(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.setJSON(ctx, key, items, ContentCacheDuration)
	return items, nil
}

func (c *Service) GetContent(ctx context.Context, id int64) (types.ContentItem, error) {
	return c.storage.GetContent(ctx, id)
}

func (c *Service) CreateContent(ctx context.Context, req types.ContentCreateRequest) (int64, error) {
	id, err := c.storage.CreateContent(ctx, req)
	if err != nil {
		return 0, err
	}
	c.InvalidateContent(ctx)
	return id, nil
}

func (c *Service) UpdateContent(ctx context.Context, id int64, req types.ContentUpdateRequest) error {
	if err := c.storage.UpdateContent(ctx, id, req); err != nil {
		return err
	}
	c.InvalidateContent(ctx)
	return nil
}

func (c *Service) DeleteContent(ctx context.Context, id int64) error {
	if err := c.storage.DeleteContent(ctx, id); err != nil {
		return err
	}
	c.InvalidateContent(ctx)
	return nil
}

// GetSEO returns cached page metadata or fetches it from the database.
// Missing pages are not cached.
func (c *Service) GetSEO(ctx context.Context, page string) (types.SEOSettings, error) {
	key := fmt.Sprintf(SEOPageKey, page)

	var seo types.SEOSettings
	if c.getJSON(ctx, key, &seo) {
		return seo, nil
	}

	seo, err := c.storage.GetSEO(ctx, page)
	if err != nil {
		return types.SEOSettings{}, err
	}

	c.setJSON(ctx, key, seo, SEOCacheDuration)
	return seo, nil
}

func (c *Service) ListSEO(ctx context.Context) ([]types.SEOSettings, error) {
	return c.storage.ListSEO(ctx)
}

func (c *Service) UpsertSEO(ctx context.Context, page string, req types.SEORequest) error {
	if err := c.storage.UpsertSEO(ctx, page, req); err != nil {
		return err
	}
	c.InvalidateSEO(ctx)
	return nil
}

// Write-through methods with no cached state

func (c *Service) CreateInquiry(ctx context.Context, req types.InquiryRequest) (int64, error) {
	return c.storage.CreateInquiry(ctx, req)
}

func (c *Service) ListInquiries(ctx context.Context) ([]types.Inquiry, error) {
	return c.storage.ListInquiries(ctx)
}

func (c *Service) SetInquiryContacted(ctx context.Context, id int64, contacted bool) error {
	return c.storage.SetInquiryContacted(ctx, id, contacted)
}

func (c *Service) DeleteInquiry(ctx context.Context, id int64) error {
	return c.storage.DeleteInquiry(ctx, id)
}

func (c *Service) GetAdminByEmail(ctx context.Context, email string) (admins.Admin, error) {
	return c.storage.GetAdminByEmail(ctx, email)
}

func (c *Service) CreateAdmin(ctx context.Context, email, passwordHash, name string) (int64, error) {
	return c.storage.CreateAdmin(ctx, email, passwordHash, name)
}

func (c *Service) CountAdmins(ctx context.Context) (int, error) {
	return c.storage.CountAdmins(ctx)
}

func (c *Service) Ping(ctx context.Context) error {
	return c.storage.Ping(ctx)
}

func (c *Service) Close() error {
	return c.storage.Close()
}
