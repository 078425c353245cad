package upload

import (
	"errors"
	"net/http"

	uploadTypes "github.com/mgfilms/site-service/internal/types/uploads"
	"github.com/mgfilms/site-service/internal/uploads"
	"github.com/mgfilms/site-service/internal/utils/response"
)

// multipartMemory is how much of a form is held in memory before spilling
// to temp files.
const multipartMemory = 32 << 20

func writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, uploads.ErrFileTooLarge):
		response.WriteJSON(w, http.StatusRequestEntityTooLarge, response.GeneralError(uploads.ErrFileTooLarge))
	case errors.Is(err, uploads.ErrNoFile),
		errors.Is(err, uploads.ErrTooManyFiles),
		errors.Is(err, uploads.ErrFileType),
		errors.Is(err, uploads.ErrInvalidFolder):
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
	case errors.Is(err, uploads.ErrPresignUnsupported):
		response.WriteJSON(w, http.StatusNotImplemented, response.GeneralError(err))
	case errors.Is(err, uploads.ErrObjectNotFound):
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("file not found")))
	default:
		response.InternalError(w, r, "upload failed", err)
	}
}

func parseForm(w http.ResponseWriter, r *http.Request, svc *uploads.Service, files int) error {
	limit := svc.MaxFileSize()*int64(files) + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return uploads.ErrNoFile
	}
	return nil
}

// Single stores one file from the "file" form field
// @Summary Upload a file (admin)
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image or video"
// @Param folder formData string false "Target folder" default(general)
// @Success 201 {object} response.Response{data=uploads.File}
// @Failure 400 {object} response.Response "Bad request"
// @Failure 413 {object} response.Response "File too large"
// @Security BearerAuth
// @Router /api/upload [post]
func Single(svc *uploads.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r, svc, 1); err != nil {
			writeUploadError(w, r, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		headers := r.MultipartForm.File["file"]
		if len(headers) == 0 {
			writeUploadError(w, r, uploads.ErrNoFile)
			return
		}

		file, err := svc.Upload(r.Context(), headers[0], r.FormValue("folder"))
		if err != nil {
			writeUploadError(w, r, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.RequestOK("File uploaded", file))
	}
}

// Multiple stores every file in the "files" form field
// @Summary Upload several files (admin)
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images or videos"
// @Param folder formData string false "Target folder" default(general)
// @Success 201 {object} response.Response{data=map[string][]uploads.File}
// @Failure 400 {object} response.Response "Bad request"
// @Security BearerAuth
// @Router /api/upload/multiple [post]
func Multiple(svc *uploads.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r, svc, svc.MaxFiles()); err != nil {
			writeUploadError(w, r, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		files, err := svc.UploadMany(r.Context(), r.MultipartForm.File["files"], r.FormValue("folder"))
		if err != nil {
			writeUploadError(w, r, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.RequestOK("Files uploaded",
			map[string][]uploadTypes.File{"files": files}))
	}
}

// Presign returns a URL the browser can upload to directly
// @Summary Presigned upload URL (admin)
// @Tags upload
// @Accept json
// @Produce json
// @Param request body uploads.PresignRequest true "Content type and folder"
// @Success 200 {object} response.Response{data=uploads.PresignResponse}
// @Failure 400 {object} response.Response "Bad request"
// @Failure 501 {object} response.Response "Local storage cannot presign"
// @Security BearerAuth
// @Router /api/upload/presign [post]
func Presign(svc *uploads.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadTypes.PresignRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		resp, err := svc.Presign(r.Context(), req)
		if err != nil {
			writeUploadError(w, r, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Upload URL generated successfully", resp))
	}
}

// Delete removes a stored file
// @Summary Delete a file (admin)
// @Tags upload
// @Accept json
// @Produce json
// @Param request body uploads.DeleteRequest true "Object key"
// @Success 200 {object} response.Response "File deleted"
// @Failure 404 {object} response.Response "File not found"
// @Security BearerAuth
// @Router /api/upload [delete]
func Delete(svc *uploads.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadTypes.DeleteRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		if err := svc.Delete(r.Context(), req.Key); err != nil {
			writeUploadError(w, r, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("File deleted", nil))
	}
}
