package sanitize

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"<b>Hi</b> & bye", "Hi & bye"},
		{"<script>alert(1)</script>Wedding in March", "Wedding in March"},
		{`<a href="x" onclick="y">link</a>`, "link"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Text(tt.in); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextStripsEncodedMarkup(t *testing.T) {
	inputs := []string{
		"hello &lt;script&gt;alert(1)&lt;/script&gt; <b>x</b>",
		"hello &amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt; x",
		"hello &#60;img src=x onerror=alert(1)&#62; x",
	}

	for _, in := range inputs {
		got := Text(in)
		if strings.ContainsAny(got, "<>") || strings.Contains(got, "alert") {
			t.Errorf("Text(%q) = %q, markup survived", in, got)
		}
		if !strings.HasPrefix(got, "hello") || !strings.HasSuffix(got, "x") {
			t.Errorf("Text(%q) = %q, lost surrounding text", in, got)
		}
	}
}
