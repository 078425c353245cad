package content

import "strings"

// Credit is one "Label=Value" pair from a featured film's link_url.
type Credit struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParseCredits reads "Director=A|Music=B". Pairs missing a label or a value
// are skipped.
func ParseCredits(s string) []Credit {
	var credits []Credit
	for _, part := range strings.Split(s, "|") {
		label, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		label, value = strings.TrimSpace(label), strings.TrimSpace(value)
		if label == "" || value == "" {
			continue
		}
		credits = append(credits, Credit{Label: label, Value: value})
	}
	return credits
}
