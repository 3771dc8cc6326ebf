// Package httpserver exposes the demand ledger over the /api/v1 JSON API.
package httpserver

import (
	"context"
	"iter"
	"log/slog"
	"net/http"

	"github.com/bnema/nextlevel-elevator/internal/application"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
	"github.com/gorilla/mux"
)

const apiPrefix = "/api/v1/elevator"

// Ledger is the subset of application.Service the HTTP layer drives.
type Ledger interface {
	RegisterElevator(ctx context.Context, cmd application.RegisterElevatorCommand) (domain.Elevator, error)
	ListElevators(ctx context.Context) ([]domain.Elevator, error)
	GetStatus(ctx context.Context, id domain.ElevatorID) (application.ElevatorStatus, error)
	RequestCall(ctx context.Context, cmd application.CallCommand) error
	ReportArrival(ctx context.Context, cmd application.ArrivalCommand) (application.ArrivalOutcome, error)
	Dataset(format string) (ports.DatasetEncoder, error)
	ExportHistory(ctx context.Context) iter.Seq2[domain.HistoryEntry, error]
}

var _ Ledger = (*application.Service)(nil)

type Options struct {
	// CORSOrigins enables CORS for the listed origins. Empty disables it.
	CORSOrigins []string
}

// NewHandler returns the router wrapped with request id, access log, panic
// recovery and optional CORS middleware.
func NewHandler(ledger Ledger, logger *slog.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	router := NewRouter(ledger, logger)

	return Wrap(router, logger, opts)
}

func NewRouter(ledger Ledger, logger *slog.Logger) *mux.Router {
	h := &handler{ledger: ledger, log: logger}

	r := mux.NewRouter()
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	r.HandleFunc(apiPrefix, h.createElevator).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/", h.createElevator).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix, h.listElevators).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/", h.listElevators).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/dataset.{format}", h.dataset).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/{id:-?[0-9]+}", h.getElevator).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/{id:-?[0-9]+}", h.call).Methods(http.MethodPut)
	r.HandleFunc(apiPrefix+"/{id:-?[0-9]+}/state", h.setState).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
