package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bnema/nextlevel-elevator/internal/application"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

type handler struct {
	ledger Ledger
	log    *slog.Logger
}

type elevatorRequest struct {
	MinLevel *int `json:"min_level"`
	MaxLevel *int `json:"max_level"`
}

type levelRequest struct {
	Level *int `json:"level"`
}

type elevatorResponse struct {
	ID       int64 `json:"id"`
	MinLevel int   `json:"min_level"`
	MaxLevel int   `json:"max_level"`
}

type elevatorStatusResponse struct {
	elevatorResponse
	OpenLevels []int `json:"open_levels"`
}

func toElevatorResponse(elevator domain.Elevator) elevatorResponse {
	return elevatorResponse{
		ID:       int64(elevator.ID),
		MinLevel: elevator.MinLevel,
		MaxLevel: elevator.MaxLevel,
	}
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) createElevator(w http.ResponseWriter, r *http.Request) {
	var req elevatorRequest
	if err := decodeBody(r, &req); err != nil || req.MinLevel == nil || req.MaxLevel == nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	elevator, err := h.ledger.RegisterElevator(r.Context(), application.RegisterElevatorCommand{
		MinLevel: *req.MinLevel,
		MaxLevel: *req.MaxLevel,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toElevatorResponse(elevator))
}

func (h *handler) listElevators(w http.ResponseWriter, r *http.Request) {
	elevators, err := h.ledger.ListElevators(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]elevatorResponse, 0, len(elevators))
	for _, elevator := range elevators {
		resp = append(resp, toElevatorResponse(elevator))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) getElevator(w http.ResponseWriter, r *http.Request) {
	id, ok := elevatorID(w, r)
	if !ok {
		return
	}

	status, err := h.ledger.GetStatus(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, elevatorStatusResponse{
		elevatorResponse: toElevatorResponse(status.Elevator),
		OpenLevels:       status.OpenLevels(),
	})
}

func (h *handler) call(w http.ResponseWriter, r *http.Request) {
	id, ok := elevatorID(w, r)
	if !ok {
		return
	}

	var req levelRequest
	if err := decodeBody(r, &req); err != nil || req.Level == nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ledger.RequestCall(r.Context(), application.CallCommand{ElevatorID: id, Level: *req.Level}); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, string(application.ArrivalAccepted))
}

func (h *handler) setState(w http.ResponseWriter, r *http.Request) {
	id, ok := elevatorID(w, r)
	if !ok {
		return
	}

	var req levelRequest
	if err := decodeBody(r, &req); err != nil || req.Level == nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.ledger.ReportArrival(r.Context(), application.ArrivalCommand{ElevatorID: id, Level: *req.Level})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, string(outcome))
}

func (h *handler) dataset(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]

	encoder, err := h.ledger.Dataset(format)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", encoder.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=dataset.%s", format))
	w.WriteHeader(http.StatusOK)

	// Headers are gone at this point; a failure can only be logged.
	if err := encoder.Encode(w, h.ledger.ExportHistory(r.Context())); err != nil {
		h.log.Error("dataset_encode_failed",
			slog.String("format", format),
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.Any("err", err),
		)
	}
}

func elevatorID(w http.ResponseWriter, r *http.Request) (domain.ElevatorID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found")
		return 0, false
	}

	return domain.ElevatorID(id), true
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("request body must contain a single JSON value")
	}

	return nil
}
