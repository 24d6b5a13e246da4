package api

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/coregx/forumhub"
	"github.com/coregx/forumhub/model"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidJSON    = "INVALID_JSON"
	CodeValidation     = "VALIDATION_ERROR"
	CodeDuplicateTopic = "DUPLICATE_TOPIC"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondJSON sends data with the given status.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message, code string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    code,
		Message: message,
	})
}

// respondServiceError maps a service error onto a status code and body.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case forumhub.IsValidation(err):
		resp := ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Code:    CodeValidation,
			Message: "invalid input",
		}
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			resp.Fields = fieldErrors(verrs)
		case errors.Is(err, model.ErrEmptyUpdate):
			resp.Message = model.ErrEmptyUpdate.Error()
		}
		respondJSON(w, http.StatusBadRequest, resp)
	case forumhub.IsDuplicate(err):
		respondError(w, http.StatusBadRequest, "a topic with the same title and message already exists", CodeDuplicateTopic)
	case forumhub.IsNoData(err):
		respondError(w, http.StatusNotFound, "topic not found", CodeNotFound)
	case forumhub.IsUnauthorized(err):
		respondUnauthorized(w, "invalid credentials")
	default:
		h.logger.Error("Request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		respondError(w, http.StatusInternalServerError, "internal server error", CodeInternal)
	}
}

// respondUnauthorized sends a 401 with a bearer challenge.
func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="forumhub"`)
	respondError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

func fieldErrors(verrs validation.Errors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for field, err := range verrs {
		if err != nil {
			fields[field] = err.Error()
		}
	}
	return fields
}
