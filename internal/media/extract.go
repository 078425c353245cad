package media

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// DefaultYouTubeID is what ExtractYouTubeID returns for an empty reference.
// Callers that render something should pass their own fallback to a Resolver
// instead of relying on it.
const DefaultYouTubeID = "dQw4w9WgXcQ"

// ErrNoProviderID is returned by the internal extractors when no provider id
// could be found in a reference.
var ErrNoProviderID = errors.New("media: no provider id in reference")

var fileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var gdrivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`[?&]id=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`),
}

// parseAbsolute only accepts references with both a scheme and a host.
func parseAbsolute(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

func segmentAfter(path, marker string) string {
	i := strings.Index(path, marker)
	if i < 0 {
		return ""
	}
	rest := path[i+len(marker):]
	if j := strings.Index(rest, "/"); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func youTubeID(raw string) (string, error) {
	if raw == "" {
		return "", ErrNoProviderID
	}
	if !strings.Contains(raw, "/") && !strings.Contains(raw, ".") {
		return raw, nil
	}

	u, ok := parseAbsolute(raw)
	if !ok {
		return "", ErrNoProviderID
	}

	if strings.Contains(u.Host, "youtu.be") {
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return id, nil
		}
		return "", ErrNoProviderID
	}
	if v := u.Query().Get("v"); v != "" {
		return v, nil
	}
	for _, marker := range []string{"/embed/", "/shorts/"} {
		if id := segmentAfter(u.Path, marker); id != "" {
			return id, nil
		}
	}
	return "", ErrNoProviderID
}

// isFileID reports whether raw looks like a bare Drive file id.
func isFileID(raw string) bool {
	return fileIDPattern.MatchString(raw)
}

func gdriveID(raw string) (string, error) {
	for _, re := range gdrivePatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1], nil
		}
	}
	return "", ErrNoProviderID
}

// ExtractYouTubeID returns the video id inside a YouTube URL. Bare ids are
// returned unchanged, as is anything that cannot be understood.
func ExtractYouTubeID(raw string) string {
	if raw == "" {
		return DefaultYouTubeID
	}
	id, err := youTubeID(raw)
	if err != nil {
		return raw
	}
	return id
}

// ExtractGDriveID returns the file id inside a Google Drive or Docs URL.
// Input without a recognised pattern is assumed to already be an id.
func ExtractGDriveID(raw string) string {
	id, err := gdriveID(raw)
	if err != nil {
		return raw
	}
	return id
}
