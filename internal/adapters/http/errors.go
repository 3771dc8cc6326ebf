package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bnema/nextlevel-elevator/internal/domain"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// statusFor maps the domain error taxonomy onto HTTP statuses and details.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrOutOfRange):
		return http.StatusBadRequest, "Level overflow"
	case errors.Is(err, domain.ErrDemandExists):
		return http.StatusConflict, "Conflict, demand already has been made"
	case errors.Is(err, domain.ErrInvalidLevelRange):
		return http.StatusBadRequest, "min_level must not exceed max_level"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, "Bad request"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Format not supported"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("http_request_failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.Any("err", err),
		)
	}

	writeDetail(w, status, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
