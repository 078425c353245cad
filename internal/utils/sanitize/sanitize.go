package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripTagsPolicy = bluemonday.StrictPolicy()

// Text removes every HTML tag from s and returns plain, trimmed text.
// Entities are decoded until none are left before stripping, so encoded
// markup is removed too and the final decode cannot produce a tag.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripTagsPolicy.Sanitize(unescapeAll(s))))
}

// unescapeAll decodes entities until the string stops changing. Each pass
// that changes the string makes it shorter, so the loop ends.
func unescapeAll(s string) string {
	for {
		u := html.UnescapeString(s)
		if u == s {
			return s
		}
		s = u
	}
}
