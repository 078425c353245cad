package inquiries

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mgfilms/site-service/internal/events"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types"
	"github.com/mgfilms/site-service/internal/utils/response"
	"github.com/mgfilms/site-service/internal/utils/sanitize"
)

var errInquiryNotFound = errors.New("inquiry not found")

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid inquiry id")
	}
	return id, nil
}

func sanitizeRequest(req *types.InquiryRequest) {
	req.Name = sanitize.Text(req.Name)
	req.Phone = sanitize.Text(req.Phone)
	req.Email = sanitize.Text(req.Email)
	req.EventType = sanitize.Text(req.EventType)
	req.Message = sanitize.Text(req.Message)
}

// Create stores a contact form submission
// @Summary Submit an inquiry
// @Description Public contact form. Markup is stripped from every field.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body types.InquiryRequest true "Inquiry"
// @Success 201 {object} response.Response "Inquiry submitted successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 429 {object} response.Response "Too many requests"
// @Router /api/inquiries [post]
func Create(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.InquiryRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		sanitizeRequest(&req)
		if req.Name == "" || req.Email == "" || req.Message == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(
				errors.New("name, email, and message are required")))
			return
		}

		id, err := store.CreateInquiry(r.Context(), req)
		if err != nil {
			response.InternalError(w, r, "failed to submit inquiry", err)
			return
		}
		slog.Info("Inquiry received", slog.Int64("id", id))

		inquiry := types.Inquiry{
			ID:        id,
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			EventType: req.EventType,
			Message:   req.Message,
			CreatedAt: time.Now().UTC(),
		}
		if err := publisher.PublishInquiryReceived(inquiry); err != nil {
			slog.Warn("Failed to publish inquiry event", slog.String("error", err.Error()))
		}

		response.WriteJSON(w, http.StatusCreated, response.RequestOK("Inquiry submitted successfully", map[string]int64{"id": id}))
	}
}

// List returns every inquiry, newest first
// @Summary List inquiries (admin)
// @Tags inquiries
// @Produce json
// @Success 200 {object} response.Response{data=[]types.Inquiry}
// @Security BearerAuth
// @Router /api/inquiries [get]
func List(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.ListInquiries(r.Context())
		if err != nil {
			response.InternalError(w, r, "failed to load inquiries", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Inquiries retrieved successfully", items))
	}
}

// MarkContacted sets the contacted flag, true unless the body says otherwise
// @Summary Mark inquiry contacted (admin)
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path int true "Inquiry ID"
// @Param body body types.InquiryContactedRequest false "Contacted flag"
// @Success 200 {object} response.Response "Inquiry updated"
// @Failure 404 {object} response.Response "Inquiry not found"
// @Security BearerAuth
// @Router /api/inquiries/{id}/contacted [put]
func MarkContacted(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// An empty body is allowed and means "contacted".
		var req types.InquiryContactedRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, response.MaxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid request body")))
			return
		}
		contacted := req.IsContacted == nil || *req.IsContacted

		if err := store.SetInquiryContacted(r.Context(), id, contacted); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errInquiryNotFound))
				return
			}
			response.InternalError(w, r, "failed to update inquiry", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Inquiry updated", nil))
	}
}

// Delete removes an inquiry
// @Summary Delete inquiry (admin)
// @Tags inquiries
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} response.Response "Inquiry deleted"
// @Failure 404 {object} response.Response "Inquiry not found"
// @Security BearerAuth
// @Router /api/inquiries/{id} [delete]
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := store.DeleteInquiry(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errInquiryNotFound))
				return
			}
			response.InternalError(w, r, "failed to delete inquiry", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Inquiry deleted", nil))
	}
}
