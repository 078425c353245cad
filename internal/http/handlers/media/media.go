package media

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mgfilms/site-service/internal/media"
	"github.com/mgfilms/site-service/internal/utils/response"
)

// maxReferenceLength matches the media_url column.
const maxReferenceLength = 500

// Resolve previews how a reference will be embedded
// @Summary Resolve a media reference
// @Description Classifies a URL or bare id and returns its embed, watch and thumbnail URLs
// @Tags media
// @Produce json
// @Param url query string false "Media URL or provider id"
// @Param type query string false "media_type hint" Enums(image, video, youtube, gdrive, local)
// @Success 200 {object} response.Response{data=media.Descriptor}
// @Failure 400 {object} response.Response "Reference too long"
// @Router /api/media/resolve [get]
func Resolve(resolver *media.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("url"))
		if len(raw) > maxReferenceLength {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("url is too long")))
			return
		}
		hint := media.Hint(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))))

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Media resolved", resolver.Resolve(raw, hint)))
	}
}
