package content

import (
	"github.com/mgfilms/site-service/internal/media"
	"github.com/mgfilms/site-service/internal/types"
)

// ItemView is a content item plus everything derived from it for display.
type ItemView struct {
	types.ContentItem
	Media   *media.Descriptor `json:"media,omitempty"`
	Icon    ServiceIcon       `json:"icon,omitempty"`
	Credits []Credit          `json:"credits,omitempty"`
}

// videoSections always render a player, even without a stored reference.
var videoSections = map[string]bool{
	types.SectionFeaturedFilm:    true,
	types.SectionWorkFilms:       true,
	types.SectionActressShowreel: true,
}

// Viewer builds ItemViews using a media resolver.
type Viewer struct {
	resolver *media.Resolver
}

func NewViewer(resolver *media.Resolver) *Viewer {
	return &Viewer{resolver: resolver}
}

// resolveMedia reports whether an item's reference should be resolved into
// a player. Image items only get one when they point at a video provider.
func resolveMedia(item types.ContentItem) bool {
	if videoSections[item.Section] {
		return true
	}
	hint := media.Hint(item.MediaType)
	if media.IsVideoHint(hint) {
		return true
	}
	if item.MediaURL == "" {
		return false
	}
	switch media.Classify(item.MediaURL, hint) {
	case media.KindYouTube, media.KindGDrive:
		return true
	}
	return false
}

func (v *Viewer) View(item types.ContentItem) ItemView {
	view := ItemView{ContentItem: item}

	if resolveMedia(item) {
		d := v.resolver.Resolve(item.MediaURL, media.Hint(item.MediaType))
		view.Media = &d
	}

	switch item.Section {
	case types.SectionServices:
		view.Icon, _ = IconForCategory(item.Category)
	case types.SectionFeaturedFilm:
		view.Credits = ParseCredits(item.LinkURL)
	}

	return view
}

func (v *Viewer) Views(items []types.ContentItem) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, v.View(item))
	}
	return views
}
