// Package media turns a stored content reference (a URL or a bare provider
// id, plus an optional media_type hint) into something a page can embed.
//
// Everything here is pure: no I/O, no shared state, no errors surfaced to the
// caller. Malformed input degrades to a documented fallback instead.
package media

import (
	"regexp"
	"strings"
)

// Kind is the closed classification of where a media reference lives.
type Kind string

const (
	KindYouTube Kind = "youtube"
	KindGDrive  Kind = "gdrive"
	KindLocal   Kind = "local"
	KindUnknown Kind = "unknown"
)

// Hint is the media_type column stored next to a reference.
type Hint string

const (
	HintImage   Hint = "image"
	HintVideo   Hint = "video"
	HintYouTube Hint = "youtube"
	HintGDrive  Hint = "gdrive"
	HintLocal   Hint = "local"
)

// IsVideoHint reports whether the hint names a playable source.
func IsVideoHint(h Hint) bool {
	switch h {
	case HintVideo, HintYouTube, HintGDrive, HintLocal:
		return true
	}
	return false
}

var (
	videoIDPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	localExtensions = []string{".mp4", ".webm", ".ogg", ".mov"}
)

// IsVideoID reports whether s has the shape of a bare YouTube video id.
func IsVideoID(s string) bool {
	return videoIDPattern.MatchString(s)
}

func isGDriveURL(raw string) bool {
	return strings.Contains(raw, "drive.google.com") || strings.Contains(raw, "docs.google.com")
}

func isYouTubeURL(raw string) bool {
	return strings.Contains(raw, "youtube.com") || strings.Contains(raw, "youtu.be")
}

func isLocalFile(raw string) bool {
	if strings.Contains(raw, "/uploads/") {
		return true
	}

	p := raw
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.ToLower(p)
	for _, ext := range localExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// Classify maps a raw reference and an optional hint to a Kind. The first
// matching rule wins:
//
//  1. hint "gdrive" or "youtube" is taken as is
//  2. hint "video" or "local" means a local file
//  3. a Drive or Docs host means gdrive
//  4. a YouTube host means youtube
//  5. a video file extension or an /uploads/ path means local
//  6. a bare 11 character id means youtube
//  7. anything else is unknown
func Classify(raw string, hint Hint) Kind {
	switch hint {
	case HintGDrive:
		return KindGDrive
	case HintYouTube:
		return KindYouTube
	case HintVideo, HintLocal:
		return KindLocal
	}

	switch {
	case raw == "":
		return KindUnknown
	case isGDriveURL(raw):
		return KindGDrive
	case isYouTubeURL(raw):
		return KindYouTube
	case isLocalFile(raw):
		return KindLocal
	case IsVideoID(raw):
		return KindYouTube
	}
	return KindUnknown
}
