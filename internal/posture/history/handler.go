package history

import (
	"context"
	"net/http"
	"strconv"

	"github.com/2beens/sportai/internal/posture"
	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=history_test

type alarmsRepo interface {
	List(ctx context.Context, page, size int) (_ []posture.AlarmEvent, total int, err error)
}

type ListResponse struct {
	Alarms []posture.AlarmEvent `json:"alarms"`
	Total  int                  `json:"total"`
}

type Handler struct {
	repo alarmsRepo
}

func NewHandler(repo alarmsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/posture/alarms/list/page/{page}/size/{size}", handler.HandleList).
		Methods("GET", "OPTIONS").
		Name("posture-alarms-list")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture_alarm.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	alarms, total, err := handler.repo.List(ctx, page, size)
	if err != nil {
		log.Errorf("list posture alarms: %s", err)
		http.Error(w, "failed to get alarms", http.StatusInternalServerError)
		return
	}
	if alarms == nil {
		alarms = []posture.AlarmEvent{}
	}

	pkg.WriteJSON(w, ListResponse{Alarms: alarms, Total: total}, http.StatusOK)
}
