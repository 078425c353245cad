package seo

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/utils/response"
)

var pagePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

var (
	errInvalidPage = errors.New("invalid page name")
	errSEONotFound = errors.New("SEO settings not found for this page")
)

// Get returns the meta tags for one page
// @Summary Get SEO settings for a page
// @Tags seo
// @Produce json
// @Param page path string true "Page name"
// @Success 200 {object} response.Response{data=types.SEOSettings}
// @Failure 404 {object} response.Response "Not found"
// @Router /api/seo/{page} [get]
func Get(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := r.PathValue("page")
		if !pagePattern.MatchString(page) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errInvalidPage))
			return
		}

		settings, err := store.GetSEO(r.Context(), page)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errSEONotFound))
				return
			}
			response.InternalError(w, r, "failed to load SEO settings", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("SEO settings retrieved", settings))
	}
}

// List returns the settings of every page
// @Summary List SEO settings (admin)
// @Tags seo
// @Produce json
// @Success 200 {object} response.Response{data=[]types.SEOSettings}
// @Security BearerAuth
// @Router /api/seo [get]
func List(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := store.ListSEO(r.Context())
		if err != nil {
			response.InternalError(w, r, "failed to load SEO settings", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("SEO settings retrieved", settings))
	}
}

// Put creates or replaces the settings of a page
// @Summary Update SEO settings (admin)
// @Tags seo
// @Accept json
// @Produce json
// @Param page path string true "Page name"
// @Param settings body types.SEORequest true "Meta tags"
// @Success 200 {object} response.Response "SEO settings updated"
// @Failure 400 {object} response.Response "Bad request"
// @Security BearerAuth
// @Router /api/seo/{page} [put]
func Put(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := r.PathValue("page")
		if !pagePattern.MatchString(page) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errInvalidPage))
			return
		}

		var req types.SEORequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		if err := store.UpsertSEO(r.Context(), page, req); err != nil {
			response.InternalError(w, r, "failed to update SEO settings", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("SEO settings updated", nil))
	}
}
