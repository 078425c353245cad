// Package content turns stored content items into the views the public
// pages render: resolved media, service icons and film credits.
package content

import "strings"

// ServiceIcon is the closed set of icons a services item can show.
type ServiceIcon string

const (
	IconFilm    ServiceIcon = "film"
	IconMusic   ServiceIcon = "music"
	IconWedding ServiceIcon = "wedding"
	IconCamera  ServiceIcon = "camera"
	IconVideo   ServiceIcon = "video"
)

// DefaultIcon is used for categories that name no known icon.
const DefaultIcon = IconFilm

// IconForCategory maps a services item category to its icon. ok is false
// when the category was not recognised and DefaultIcon was returned.
func IconForCategory(category string) (icon ServiceIcon, ok bool) {
	switch ServiceIcon(strings.ToLower(strings.TrimSpace(category))) {
	case IconFilm:
		return IconFilm, true
	case IconMusic:
		return IconMusic, true
	case IconWedding:
		return IconWedding, true
	case IconCamera:
		return IconCamera, true
	case IconVideo:
		return IconVideo, true
	}
	return DefaultIcon, false
}
