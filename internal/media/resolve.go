package media

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	youTubeEmbedFormat = "https://www.youtube.com/embed/%s?autoplay=1&rel=0&modestbranding=1"
	youTubeWatchFormat = "https://www.youtube.com/watch?v=%s"
	youTubeThumbFormat = "https://img.youtube.com/vi/%s/hqdefault.jpg"
	gdriveEmbedFormat  = "https://drive.google.com/file/d/%s/preview"
	gdriveThumbFormat  = "https://drive.google.com/thumbnail?id=%s&sz=w1280"
)

// Descriptor is everything a page needs to render one media reference.
// ProviderID is set only for youtube and gdrive kinds.
type Descriptor struct {
	Kind         Kind   `json:"kind"`
	ProviderID   string `json:"provider_id,omitempty"`
	EmbedURL     string `json:"embed_url"`
	WatchURL     string `json:"watch_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Resolver resolves references against a site base URL (for local files) and
// a fallback YouTube id (for empty or unrecognised references).
type Resolver struct {
	BaseURL    string
	FallbackID string
}

// NewResolver validates the fallback id once so Resolve never has to.
func NewResolver(baseURL, fallbackID string) (*Resolver, error) {
	if !IsVideoID(fallbackID) {
		return nil, fmt.Errorf("media: fallback id %q is not a video id", fallbackID)
	}
	return &Resolver{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		FallbackID: fallbackID,
	}, nil
}

// Resolve classifies raw and builds its Descriptor. It never fails.
func (r *Resolver) Resolve(raw string, hint Hint) Descriptor {
	kind := Classify(raw, hint)

	switch kind {
	case KindYouTube:
		id, err := youTubeID(raw)
		if err != nil {
			id = r.FallbackID
		}
		d := youTubeDescriptor(id)
		if _, ok := parseAbsolute(raw); ok {
			d.WatchURL = raw
		}
		return d

	case KindGDrive:
		id, err := gdriveID(raw)
		if err != nil && isFileID(raw) {
			id, err = raw, nil
		}
		if err == nil {
			return Descriptor{
				Kind:         KindGDrive,
				ProviderID:   id,
				EmbedURL:     fmt.Sprintf(gdriveEmbedFormat, url.PathEscape(id)),
				ThumbnailURL: fmt.Sprintf(gdriveThumbFormat, url.QueryEscape(id)),
			}
		}
		// No usable file id; render the fallback like an unknown reference.

	case KindLocal:
		return Descriptor{
			Kind:     KindLocal,
			EmbedURL: r.localURL(raw),
		}
	}

	d := youTubeDescriptor(r.FallbackID)
	d.Kind = KindUnknown
	d.ProviderID = ""
	return d
}

func youTubeDescriptor(id string) Descriptor {
	return Descriptor{
		Kind:         KindYouTube,
		ProviderID:   id,
		EmbedURL:     fmt.Sprintf(youTubeEmbedFormat, url.PathEscape(id)),
		WatchURL:     fmt.Sprintf(youTubeWatchFormat, url.QueryEscape(id)),
		ThumbnailURL: fmt.Sprintf(youTubeThumbFormat, url.PathEscape(id)),
	}
}

func (r *Resolver) localURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return raw
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return raw
	}
	if r.BaseURL == "" {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return r.BaseURL + raw
	}
	return r.BaseURL + "/" + raw
}

// Resolve is a convenience for one-off resolution without a base URL.
// An invalid fallbackID is replaced by DefaultYouTubeID.
func Resolve(raw string, hint Hint, fallbackID string) Descriptor {
	if !IsVideoID(fallbackID) {
		fallbackID = DefaultYouTubeID
	}
	r := Resolver{FallbackID: fallbackID}
	return r.Resolve(raw, hint)
}
