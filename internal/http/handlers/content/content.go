package content

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mgfilms/site-service/internal/content"
	"github.com/mgfilms/site-service/internal/events"
	"github.com/mgfilms/site-service/internal/http/middleware"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/utils/response"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

var errContentNotFound = errors.New("content not found")

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid content id")
	}
	return id, nil
}

func publishChange(r *http.Request, publisher events.Publisher, section string, id int64, action string) {
	adminID, _ := middleware.GetAdminIDFromContext(r.Context())
	err := publisher.PublishContentChanged(types.ContentChangedEvent{
		Section: section,
		ItemID:  id,
		Action:  action,
		AdminID: adminID,
	})
	if err != nil {
		slog.Warn("Failed to publish content change", slog.String("error", err.Error()))
	}
}

// List returns the active items of a section, ready for display
// @Summary List site content
// @Description Active content ordered by display_order, with media references resolved
// @Tags content
// @Produce json
// @Param section query string false "Section name"
// @Success 200 {object} response.Response{data=[]content.ItemView}
// @Failure 500 {object} response.Response "Internal server error"
// @Router /api/content [get]
func List(store storage.Storage, viewer *content.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := types.ContentFilter{Section: strings.TrimSpace(r.URL.Query().Get("section"))}

		items, err := store.ListContent(r.Context(), filter)
		if err != nil {
			response.InternalError(w, r, "failed to load content", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Content retrieved successfully", viewer.Views(items)))
	}
}

// ListAll returns raw items including inactive ones
// @Summary List all content (admin)
// @Tags content
// @Produce json
// @Param section query string false "Section name"
// @Success 200 {object} response.Response{data=[]types.ContentItem}
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/content/all [get]
func ListAll(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := types.ContentFilter{
			Section:         strings.TrimSpace(r.URL.Query().Get("section")),
			IncludeInactive: true,
		}

		items, err := store.ListContent(r.Context(), filter)
		if err != nil {
			response.InternalError(w, r, "failed to load content", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Content retrieved successfully", items))
	}
}

// Create adds a content item
// @Summary Create content (admin)
// @Tags content
// @Accept json
// @Produce json
// @Param item body types.ContentCreateRequest true "Content item"
// @Success 201 {object} response.Response "Content added"
// @Failure 400 {object} response.Response "Bad request"
// @Security BearerAuth
// @Router /api/content [post]
func Create(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ContentCreateRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}
		req.Section = strings.TrimSpace(req.Section)
		if req.MediaType == "" {
			req.MediaType = "image"
		}

		id, err := store.CreateContent(r.Context(), req)
		if err != nil {
			response.InternalError(w, r, "failed to add content", err)
			return
		}
		slog.Info("Content created", slog.Int64("id", id), slog.String("section", req.Section))
		publishChange(r, publisher, req.Section, id, ActionCreated)

		response.WriteJSON(w, http.StatusCreated, response.RequestOK("Content added", map[string]int64{"id": id}))
	}
}

// Update replaces every editable field of an item
// @Summary Update content (admin)
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param item body types.ContentUpdateRequest true "Content fields"
// @Success 200 {object} response.Response "Content updated"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 404 {object} response.Response "Content not found"
// @Security BearerAuth
// @Router /api/content/{id} [put]
func Update(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		var req types.ContentUpdateRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}
		if req.MediaType == "" {
			req.MediaType = "image"
		}

		if err := store.UpdateContent(r.Context(), id, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errContentNotFound))
				return
			}
			response.InternalError(w, r, "failed to update content", err)
			return
		}

		section := ""
		if item, err := store.GetContent(r.Context(), id); err == nil {
			section = item.Section
		}
		publishChange(r, publisher, section, id, ActionUpdated)

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Content updated", nil))
	}
}

// Delete removes an item
// @Summary Delete content (admin)
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} response.Response "Content deleted"
// @Failure 404 {object} response.Response "Content not found"
// @Security BearerAuth
// @Router /api/content/{id} [delete]
func Delete(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		section := ""
		if item, err := store.GetContent(r.Context(), id); err == nil {
			section = item.Section
		}

		if err := store.DeleteContent(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errContentNotFound))
				return
			}
			response.InternalError(w, r, "failed to delete content", err)
			return
		}
		slog.Info("Content deleted", slog.Int64("id", id))
		publishChange(r, publisher, section, id, ActionDeleted)

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Content deleted", nil))
	}
}
