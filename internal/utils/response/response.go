// Package response writes the JSON envelope every API handler replies with.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mgfilms/site-service/internal/logger"
)

type Response struct {
	Status  string      `json:"status"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MaxBodyBytes caps JSON request bodies; uploads use multipart instead.
const MaxBodyBytes = 1 << 20

var validate = validator.New()

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Field()+": "+err.Tag())
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(messages, "; "),
	}
}

func RequestOK(message string, data interface{}) Response {
	return Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// ReadJSON decodes the request body into v and validates it. On failure it
// writes a 400 and returns false.
func ReadJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(v); err != nil {
		WriteJSON(w, http.StatusBadRequest, GeneralError(fmt.Errorf("invalid request body: %w", err)))
		return false
	}

	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			WriteJSON(w, http.StatusBadRequest, ValidationError(ve))
			return false
		}
		WriteJSON(w, http.StatusBadRequest, GeneralError(err))
		return false
	}
	return true
}

// InternalError logs err with the request logger and replies with a generic
// 500 so storage details never reach the client.
func InternalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	logger.FromContext(r.Context()).Error(message, "error", err)
	WriteJSON(w, http.StatusInternalServerError, GeneralError(errors.New(message)))
}
