package types

import "time"

// Section names used by the site. Sections are free-form in storage; these
// are the ones the front end renders.
const (
	SectionHero            = "hero"
	SectionAbout           = "about"
	SectionFeaturedFilm    = "featured_film"
	SectionWorkAlbums      = "work_albums"
	SectionWorkFilms       = "work_films"
	SectionWorkWeddings    = "work_weddings"
	SectionServices        = "services"
	SectionActressShowreel = "actress_showreel"
	SectionActressGallery  = "actress_gallery"
)

type ContentItem struct {
	ID           int64     `json:"id"`
	Section      string    `json:"section"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MediaURL     string    `json:"media_url"`
	MediaType    string    `json:"media_type"`
	LinkURL      string    `json:"link_url"`
	Category     string    `json:"category"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ContentCreateRequest struct {
	Section      string `json:"section" validate:"required,max=50"`
	Title        string `json:"title" validate:"max=255"`
	Description  string `json:"description"`
	MediaURL     string `json:"media_url" validate:"max=500"`
	MediaType    string `json:"media_type" validate:"omitempty,oneof=image video youtube gdrive local"`
	LinkURL      string `json:"link_url" validate:"max=500"`
	Category     string `json:"category" validate:"max=100"`
	DisplayOrder int    `json:"display_order"`
}

// ContentUpdateRequest replaces every editable field of an item. A missing
// is_active keeps the item visible.
type ContentUpdateRequest struct {
	Title        string `json:"title" validate:"max=255"`
	Description  string `json:"description"`
	MediaURL     string `json:"media_url" validate:"max=500"`
	MediaType    string `json:"media_type" validate:"omitempty,oneof=image video youtube gdrive local"`
	LinkURL      string `json:"link_url" validate:"max=500"`
	Category     string `json:"category" validate:"max=100"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type ContentFilter struct {
	Section         string
	IncludeInactive bool
}

type Inquiry struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	EventType   string    `json:"event_type"`
	Message     string    `json:"message"`
	IsContacted bool      `json:"is_contacted"`
	CreatedAt   time.Time `json:"created_at"`
}

type InquiryRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"max=20"`
	Email     string `json:"email" validate:"required,email,max=255"`
	EventType string `json:"event_type" validate:"max=100"`
	Message   string `json:"message" validate:"required"`
}

type InquiryContactedRequest struct {
	IsContacted *bool `json:"is_contacted"`
}

type SEOSettings struct {
	ID              int64     `json:"id"`
	Page            string    `json:"page"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	MetaKeywords    string    `json:"meta_keywords"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SEORequest struct {
	MetaTitle       string `json:"meta_title" validate:"max=255"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords" validate:"max=500"`
}
