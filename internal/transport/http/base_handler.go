package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"lms-admin-service/internal/domain"

	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality.
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response.
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response.
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error to a status code: validation
// failures are 400, unknown courses and content 404, anything else 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.RespondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrCourseNotFound), errors.Is(err, domain.ErrContentNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownReward), errors.Is(err, domain.ErrUnknownColumn):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		h.Logger.Error("request failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads the request body into v and answers 400 on failure.
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
