package media

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		hint Hint
		want Kind
	}{
		{"empty", "", "", KindUnknown},
		{"gdrive hint wins over youtube url", "https://youtu.be/abc12345678", HintGDrive, KindGDrive},
		{"youtube hint wins over drive url", "https://drive.google.com/file/d/X/view", HintYouTube, KindYouTube},
		{"youtube hint on empty", "", HintYouTube, KindYouTube},
		{"video hint", "https://youtu.be/abc12345678", HintVideo, KindLocal},
		{"local hint", "clip", HintLocal, KindLocal},
		{"image hint falls through", "https://youtu.be/abc12345678", HintImage, KindYouTube},
		{"drive host", "https://drive.google.com/open?id=XYZ", "", KindGDrive},
		{"docs host", "https://docs.google.com/file/d/XYZ/edit", "", KindGDrive},
		{"youtube host", "https://www.youtube.com/watch?v=abc12345678", "", KindYouTube},
		{"youtu.be host", "https://youtu.be/abc12345678", "", KindYouTube},
		{"uploads path", "https://example.com/uploads/video.mp4", "", KindLocal},
		{"uploads path no extension", "/uploads/general/clip", "", KindLocal},
		{"extension upper case", "https://cdn.example.com/reel.MOV", "", KindLocal},
		{"extension with query", "https://cdn.example.com/reel.webm?v=2", "", KindLocal},
		{"ogg", "reel.ogg", "", KindLocal},
		{"bare id 11 chars", "abcdefghijk", "", KindYouTube},
		{"bare id with dash and underscore", "dQw4w9W-_cQ", "", KindYouTube},
		{"bare id 10 chars", "abcdefghij", "", KindUnknown},
		{"bare id 12 chars", "abcdefghijkl", "", KindUnknown},
		{"image url", "https://example.com/photo.jpg", "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw, tt.hint))
		})
	}
}

func TestClassifyHintPrecedence(t *testing.T) {
	inputs := []string{"", "abcdefghijk", "https://example.com/uploads/a.mp4", "https://docs.google.com/d/x", "???"}
	for _, raw := range inputs {
		assert.Equal(t, KindGDrive, Classify(raw, HintGDrive), raw)
		assert.Equal(t, KindYouTube, Classify(raw, HintYouTube), raw)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for _, raw := range []string{"", "abcdefghijk", "https://youtu.be/x", "nope"} {
		assert.Equal(t, Classify(raw, ""), Classify(raw, ""))
	}
}

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", DefaultYouTubeID},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/abc12345678", "abc12345678"},
		{"https://www.youtube.com/watch?v=abc12345678&t=5", "abc12345678"},
		{"https://www.youtube.com/embed/abc12345678", "abc12345678"},
		{"https://www.youtube.com/embed/abc12345678/extra", "abc12345678"},
		{"https://youtube.com/shorts/abc12345678?feature=share", "abc12345678"},
		{"https://www.youtube.com/channel/UC123", "https://www.youtube.com/channel/UC123"},
		{"youtube.com/watch?v=abc12345678", "youtube.com/watch?v=abc12345678"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractYouTubeID(tt.in), tt.in)
	}
}

func TestYouTubeIDReportsMiss(t *testing.T) {
	_, err := youTubeID("https://www.youtube.com/channel/UC123")
	assert.True(t, errors.Is(err, ErrNoProviderID))

	_, err = youTubeID("")
	assert.ErrorIs(t, err, ErrNoProviderID)
}

func TestExtractGDriveID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://drive.google.com/file/d/XYZ123/view", "XYZ123"},
		{"https://drive.google.com/file/d/XYZ-12_3/view?usp=sharing", "XYZ-12_3"},
		{"https://drive.google.com/open?id=XYZ123", "XYZ123"},
		{"https://drive.google.com/uc?export=view&id=XYZ123", "XYZ123"},
		{"https://docs.google.com/d/XYZ123/edit", "XYZ123"},
		{"XYZ123", "XYZ123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractGDriveID(tt.in), tt.in)
	}

	_, err := gdriveID("plain")
	assert.ErrorIs(t, err, ErrNoProviderID)
}

func TestIsVideoID(t *testing.T) {
	assert.True(t, IsVideoID("abcdefghijk"))
	assert.False(t, IsVideoID("abcdefghij"))
	assert.False(t, IsVideoID("abcdefghij!"))
	assert.False(t, IsVideoID(""))
}

func TestNewResolverRejectsBadFallback(t *testing.T) {
	_, err := NewResolver("https://mgfilms.in", "fallback")
	assert.Error(t, err)

	r, err := NewResolver("https://mgfilms.in/", DefaultYouTubeID)
	require.NoError(t, err)
	assert.Equal(t, "https://mgfilms.in", r.BaseURL)
}

func TestResolveGDrive(t *testing.T) {
	d := Resolve("https://drive.google.com/file/d/ABC/view", "", "fallback")

	assert.Equal(t, KindGDrive, d.Kind)
	assert.Equal(t, "ABC", d.ProviderID)
	assert.Contains(t, d.EmbedURL, "ABC")
	assert.Contains(t, d.EmbedURL, "/preview")
	assert.Empty(t, d.WatchURL)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=ABC&sz=w1280", d.ThumbnailURL)
}

func TestResolveGDriveWithoutFileID(t *testing.T) {
	r, err := NewResolver("", "fallbackID1")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		hint Hint
	}{
		{"empty with hint", "", HintGDrive},
		{"folder url", "https://drive.google.com/drive/folders", ""},
		{"hint on junk", "not an id!", HintGDrive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Resolve(tt.raw, tt.hint)
			assert.Equal(t, KindUnknown, d.Kind)
			assert.Empty(t, d.ProviderID)
			assert.Equal(t, "https://www.youtube.com/embed/fallbackID1?autoplay=1&rel=0&modestbranding=1", d.EmbedURL)
		})
	}
}

func TestResolveGDriveBareID(t *testing.T) {
	d := Resolve("1aB-c_D2", HintGDrive, DefaultYouTubeID)
	assert.Equal(t, KindGDrive, d.Kind)
	assert.Equal(t, "1aB-c_D2", d.ProviderID)
	assert.Equal(t, "https://drive.google.com/file/d/1aB-c_D2/preview", d.EmbedURL)
}

func TestResolveYouTube(t *testing.T) {
	r, err := NewResolver("", "fallbackID1")
	require.NoError(t, err)

	d := r.Resolve("abc12345678", "")
	assert.Equal(t, KindYouTube, d.Kind)
	assert.Equal(t, "abc12345678", d.ProviderID)
	assert.Equal(t, "https://www.youtube.com/embed/abc12345678?autoplay=1&rel=0&modestbranding=1", d.EmbedURL)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc12345678", d.WatchURL)
	assert.Equal(t, "https://img.youtube.com/vi/abc12345678/hqdefault.jpg", d.ThumbnailURL)

	full := "https://youtu.be/abc12345678?t=10"
	d = r.Resolve(full, "")
	assert.Equal(t, "abc12345678", d.ProviderID)
	assert.Equal(t, full, d.WatchURL)

	d = r.Resolve("", HintYouTube)
	assert.Equal(t, KindYouTube, d.Kind)
	assert.Equal(t, "fallbackID1", d.ProviderID)

	d = r.Resolve("https://www.youtube.com/channel/UC123", "")
	assert.Equal(t, "fallbackID1", d.ProviderID)
}

func TestResolveLocal(t *testing.T) {
	r, err := NewResolver("https://mgfilms.in", DefaultYouTubeID)
	require.NoError(t, err)

	tests := []struct {
		raw  string
		want string
	}{
		{"https://cdn.example.com/uploads/reel.mp4", "https://cdn.example.com/uploads/reel.mp4"},
		{"//cdn.example.com/reel.mp4", "//cdn.example.com/reel.mp4"},
		{"/uploads/general/reel.mp4", "https://mgfilms.in/uploads/general/reel.mp4"},
		{"uploads/general/reel.mp4", "https://mgfilms.in/uploads/general/reel.mp4"},
	}
	for _, tt := range tests {
		d := r.Resolve(tt.raw, "")
		assert.Equal(t, KindLocal, d.Kind, tt.raw)
		assert.Empty(t, d.ProviderID, tt.raw)
		assert.Equal(t, tt.want, d.EmbedURL, tt.raw)
	}
}

func TestResolveUnknownUsesFallback(t *testing.T) {
	for _, raw := range []string{"", "not a video"} {
		d := Resolve(raw, "", "fallbackID1")
		assert.Equal(t, KindUnknown, d.Kind)
		assert.Empty(t, d.ProviderID)
		assert.True(t, strings.Contains(d.EmbedURL, "/embed/fallbackID1?"), d.EmbedURL)
		assert.Equal(t, "https://www.youtube.com/watch?v=fallbackID1", d.WatchURL)
	}
}

func TestResolveBadFallbackUsesDefault(t *testing.T) {
	d := Resolve("", "", "nope")
	assert.Contains(t, d.EmbedURL, DefaultYouTubeID)
}

func TestProviderIDOnlyForRemoteKinds(t *testing.T) {
	inputs := []struct {
		raw  string
		hint Hint
	}{
		{"", ""},
		{"abcdefghijk", ""},
		{"https://drive.google.com/open?id=Q", ""},
		{"/uploads/a.mp4", ""},
		{"garbage", ""},
		{"x", HintVideo},
	}
	for _, in := range inputs {
		d := Resolve(in.raw, in.hint, DefaultYouTubeID)
		remote := d.Kind == KindYouTube || d.Kind == KindGDrive
		assert.Equal(t, remote, d.ProviderID != "", in.raw)
	}
}
