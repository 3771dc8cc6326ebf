package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
)

const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// Wrap applies the middleware chain, outermost first: request id, access
// log, panic recovery, CORS.
func Wrap(next http.Handler, logger *slog.Logger, opts Options) http.Handler {
	h := next
	if len(opts.CORSOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(opts.CORSOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
			handlers.ExposedHeaders([]string{RequestIDHeader, "Content-Disposition"}),
		)(h)
	}

	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: logger}),
	)(h)
	h = WrapWithLogging(logger, h)

	return WithRequestID(h)
}

// WithRequestID keeps an incoming X-Request-ID or assigns a new one, echoing
// it on the response and storing it in the request context.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WrapWithLogging records one structured access log entry per request.
func WrapWithLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		logger.Info("http_request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rw.status),
			slog.String("duration", time.Since(start).String()),
			slog.String("request_id", RequestIDFromContext(r.Context())),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

type recoveryLogger struct {
	log *slog.Logger
}

func (l recoveryLogger) Println(args ...interface{}) {
	l.log.Error("http_panic_recovered", slog.String("panic", strings.TrimSpace(fmt.Sprintln(args...))))
}
