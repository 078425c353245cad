package content

import (
	"testing"

	"github.com/mgfilms/site-service/internal/media"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     ServiceIcon
		ok       bool
	}{
		{"film", IconFilm, true},
		{"Music", IconMusic, true},
		{" wedding ", IconWedding, true},
		{"camera", IconCamera, true},
		{"video", IconVideo, true},
		{"", IconFilm, false},
		{"drone", IconFilm, false},
	}

	for _, tt := range tests {
		got, ok := IconForCategory(tt.category)
		assert.Equal(t, tt.want, got, tt.category)
		assert.Equal(t, tt.ok, ok, tt.category)
	}
}

func TestParseCredits(t *testing.T) {
	got := ParseCredits("Director=Manoj Gorai| Music = Rahul |broken|=nolabel|Empty=|DOP=Sam=Two")
	assert.Equal(t, []Credit{
		{Label: "Director", Value: "Manoj Gorai"},
		{Label: "Music", Value: "Rahul"},
		{Label: "DOP", Value: "Sam=Two"},
	}, got)

	assert.Empty(t, ParseCredits(""))
}

func newViewer(t *testing.T) *Viewer {
	t.Helper()
	r, err := media.NewResolver("https://mgfilms.in", "fallbackID1")
	require.NoError(t, err)
	return NewViewer(r)
}

func TestViewVideoSectionAlwaysResolves(t *testing.T) {
	v := newViewer(t)

	view := v.View(types.ContentItem{Section: types.SectionWorkFilms, MediaType: "image"})
	require.NotNil(t, view.Media)
	assert.Equal(t, media.KindUnknown, view.Media.Kind)
	assert.Contains(t, view.Media.EmbedURL, "fallbackID1")
}

func TestViewImageItems(t *testing.T) {
	v := newViewer(t)

	plain := v.View(types.ContentItem{Section: types.SectionWorkAlbums, MediaType: "image", MediaURL: "https://cdn.example.com/cover.jpg"})
	assert.Nil(t, plain.Media)

	empty := v.View(types.ContentItem{Section: types.SectionWorkAlbums, MediaType: "image"})
	assert.Nil(t, empty.Media)

	yt := v.View(types.ContentItem{Section: types.SectionWorkAlbums, MediaType: "image", MediaURL: "https://youtu.be/abc12345678"})
	require.NotNil(t, yt.Media)
	assert.Equal(t, "abc12345678", yt.Media.ProviderID)

	drive := v.View(types.ContentItem{Section: types.SectionWorkWeddings, MediaURL: "https://drive.google.com/file/d/XYZ/view"})
	require.NotNil(t, drive.Media)
	assert.Equal(t, media.KindGDrive, drive.Media.Kind)
}

func TestViewVideoHint(t *testing.T) {
	v := newViewer(t)

	view := v.View(types.ContentItem{Section: types.SectionHero, MediaType: "video", MediaURL: "/uploads/hero/reel.mp4"})
	require.NotNil(t, view.Media)
	assert.Equal(t, media.KindLocal, view.Media.Kind)
	assert.Equal(t, "https://mgfilms.in/uploads/hero/reel.mp4", view.Media.EmbedURL)
}

func TestViewServicesAndFeatured(t *testing.T) {
	v := newViewer(t)

	svc := v.View(types.ContentItem{Section: types.SectionServices, Category: "wedding"})
	assert.Equal(t, IconWedding, svc.Icon)
	assert.Nil(t, svc.Media)

	unknown := v.View(types.ContentItem{Section: types.SectionServices, Category: "???"})
	assert.Equal(t, DefaultIcon, unknown.Icon)

	film := v.View(types.ContentItem{
		Section:  types.SectionFeaturedFilm,
		MediaURL: "dQw4w9WgXcQ",
		LinkURL:  "Director=Manoj",
	})
	require.NotNil(t, film.Media)
	assert.Equal(t, media.KindYouTube, film.Media.Kind)
	assert.Equal(t, []Credit{{Label: "Director", Value: "Manoj"}}, film.Credits)
}

func TestViews(t *testing.T) {
	v := newViewer(t)
	views := v.Views([]types.ContentItem{{ID: 1}, {ID: 2}})
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[1].ID)

	assert.NotNil(t, v.Views(nil))
}
