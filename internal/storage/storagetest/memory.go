// Package storagetest provides an in-memory storage.Storage for tests.
package storagetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/types/admins"
)

type Memory struct {
	mu        sync.Mutex
	nextID    int64
	content   map[int64]types.ContentItem
	inquiries map[int64]types.Inquiry
	seo       map[string]types.SEOSettings
	admins    map[string]admins.Admin

	// Calls counts invocations per method name.
	Calls map[string]int
	// Err, when set, is returned by every method.
	Err error
}

var _ storage.Storage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		content:   make(map[int64]types.ContentItem),
		inquiries: make(map[int64]types.Inquiry),
		seo:       make(map[string]types.SEOSettings),
		admins:    make(map[string]admins.Admin),
		Calls:     make(map[string]int),
	}
}

func (m *Memory) call(name string) error {
	m.Calls[name]++
	return m.Err
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

// CallCount is safe to use while handlers run concurrently.
func (m *Memory) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[name]
}

func (m *Memory) ListContent(_ context.Context, filter types.ContentFilter) ([]types.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("ListContent"); err != nil {
		return nil, err
	}

	items := []types.ContentItem{}
	for _, item := range m.content {
		if !filter.IncludeInactive && !item.IsActive {
			continue
		}
		if filter.Section != "" && item.Section != filter.Section {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (m *Memory) GetContent(_ context.Context, id int64) (types.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("GetContent"); err != nil {
		return types.ContentItem{}, err
	}
	item, ok := m.content[id]
	if !ok {
		return types.ContentItem{}, storage.ErrNotFound
	}
	return item, nil
}

func (m *Memory) CreateContent(_ context.Context, req types.ContentCreateRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("CreateContent"); err != nil {
		return 0, err
	}
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = "image"
	}
	now := time.Now().UTC()
	item := types.ContentItem{
		ID:           m.id(),
		Section:      req.Section,
		Title:        req.Title,
		Description:  req.Description,
		MediaURL:     req.MediaURL,
		MediaType:    mediaType,
		LinkURL:      req.LinkURL,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.content[item.ID] = item
	return item.ID, nil
}

func (m *Memory) UpdateContent(_ context.Context, id int64, req types.ContentUpdateRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("UpdateContent"); err != nil {
		return err
	}
	item, ok := m.content[id]
	if !ok {
		return storage.ErrNotFound
	}
	item.Title = req.Title
	item.Description = req.Description
	item.MediaURL = req.MediaURL
	item.MediaType = req.MediaType
	if item.MediaType == "" {
		item.MediaType = "image"
	}
	item.LinkURL = req.LinkURL
	item.Category = req.Category
	item.DisplayOrder = req.DisplayOrder
	item.IsActive = req.IsActive == nil || *req.IsActive
	item.UpdatedAt = time.Now().UTC()
	m.content[id] = item
	return nil
}

func (m *Memory) DeleteContent(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("DeleteContent"); err != nil {
		return err
	}
	if _, ok := m.content[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.content, id)
	return nil
}

func (m *Memory) CreateInquiry(_ context.Context, req types.InquiryRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("CreateInquiry"); err != nil {
		return 0, err
	}
	q := types.Inquiry{
		ID:        m.id(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		EventType: req.EventType,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	m.inquiries[q.ID] = q
	return q.ID, nil
}

func (m *Memory) ListInquiries(_ context.Context) ([]types.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("ListInquiries"); err != nil {
		return nil, err
	}
	list := []types.Inquiry{}
	for _, q := range m.inquiries {
		list = append(list, q)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (m *Memory) SetInquiryContacted(_ context.Context, id int64, contacted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("SetInquiryContacted"); err != nil {
		return err
	}
	q, ok := m.inquiries[id]
	if !ok {
		return storage.ErrNotFound
	}
	q.IsContacted = contacted
	m.inquiries[id] = q
	return nil
}

func (m *Memory) DeleteInquiry(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("DeleteInquiry"); err != nil {
		return err
	}
	if _, ok := m.inquiries[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.inquiries, id)
	return nil
}

func (m *Memory) GetSEO(_ context.Context, page string) (types.SEOSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("GetSEO"); err != nil {
		return types.SEOSettings{}, err
	}
	seo, ok := m.seo[page]
	if !ok {
		return types.SEOSettings{}, storage.ErrNotFound
	}
	return seo, nil
}

func (m *Memory) ListSEO(_ context.Context) ([]types.SEOSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("ListSEO"); err != nil {
		return nil, err
	}
	list := []types.SEOSettings{}
	for _, s := range m.seo {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Page < list[j].Page })
	return list, nil
}

func (m *Memory) UpsertSEO(_ context.Context, page string, req types.SEORequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("UpsertSEO"); err != nil {
		return err
	}
	seo, ok := m.seo[page]
	if !ok {
		seo = types.SEOSettings{ID: m.id(), Page: page}
	}
	seo.MetaTitle = req.MetaTitle
	seo.MetaDescription = req.MetaDescription
	seo.MetaKeywords = req.MetaKeywords
	seo.UpdatedAt = time.Now().UTC()
	m.seo[page] = seo
	return nil
}

func (m *Memory) GetAdminByEmail(_ context.Context, email string) (admins.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("GetAdminByEmail"); err != nil {
		return admins.Admin{}, err
	}
	a, ok := m.admins[email]
	if !ok {
		return admins.Admin{}, storage.ErrNotFound
	}
	return a, nil
}

func (m *Memory) CreateAdmin(_ context.Context, email, passwordHash, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("CreateAdmin"); err != nil {
		return 0, err
	}
	a := admins.Admin{ID: m.id(), Email: email, PasswordHash: passwordHash, Name: name, CreatedAt: time.Now().UTC()}
	m.admins[email] = a
	return a.ID, nil
}

func (m *Memory) CountAdmins(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("CountAdmins"); err != nil {
		return 0, err
	}
	return len(m.admins), nil
}

func (m *Memory) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.call("Ping")
}

func (m *Memory) Close() error { return nil }
