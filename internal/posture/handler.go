package posture

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=posture_test

type formMonitor interface {
	Start(ctx context.Context) error
	Stop()
	SetMode(mode ExerciseMode) error
	Status() Status
}

type frameSource interface {
	LatestJPEG() ([]byte, bool)
}

type SetModeRequest struct {
	Mode string `json:"mode"`
}

type RunningResponse struct {
	Running bool `json:"running"`
}

type Handler struct {
	monitor formMonitor
	frames  frameSource
}

func NewHandler(monitor formMonitor, frames frameSource) *Handler {
	return &Handler{
		monitor: monitor,
		frames:  frames,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/posture/start", h.HandleStart).Methods("POST", "OPTIONS").Name("posture-start")
	r.HandleFunc("/posture/stop", h.HandleStop).Methods("POST", "OPTIONS").Name("posture-stop")
	r.HandleFunc("/posture/mode", h.HandleSetMode).Methods("PUT", "OPTIONS").Name("posture-mode")
	r.HandleFunc("/posture/status", h.HandleStatus).Methods("GET", "OPTIONS").Name("posture-status")
	r.HandleFunc("/posture/frame", h.HandleFrame).Methods("GET", "OPTIONS").Name("posture-frame")
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.start")
	defer span.End()

	if err := h.monitor.Start(ctx); err != nil {
		span.RecordError(err)
		log.Errorf("start form monitor: %s", err)
		if errors.Is(err, ErrSensorUnavailable) {
			http.Error(w, "sensor unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "failed to start form monitor", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, RunningResponse{Running: true}, http.StatusOK)
}

func (h *Handler) HandleStop(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.stop")
	defer span.End()

	h.monitor.Stop()
	pkg.WriteJSON(w, RunningResponse{Running: false}, http.StatusOK)
}

func (h *Handler) HandleSetMode(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.mode")
	defer span.End()

	var req SetModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set mode, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mode, err := ParseMode(req.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("mode", mode.String()))

	if err := h.monitor.SetMode(mode); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, h.monitor.Status(), http.StatusOK)
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.status")
	defer span.End()

	pkg.WriteJSON(w, h.monitor.Status(), http.StatusOK)
}

func (h *Handler) HandleFrame(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.frame")
	defer span.End()

	if h.frames == nil {
		http.Error(w, "frame rendering disabled", http.StatusNotFound)
		return
	}

	frame, ok := h.frames.LatestJPEG()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JPEG, frame)
}
