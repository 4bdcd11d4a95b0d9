package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/sportai/internal/auth"
	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=health_test

const summaryPeriod = 7 * 24 * time.Hour

type healthRepo interface {
	Add(ctx context.Context, record Record) (*Record, error)
	Get(ctx context.Context, userID, id int) (*Record, error)
	List(ctx context.Context, userID, page, size int) (_ []Record, total int, err error)
	Delete(ctx context.Context, userID, id int) error
	Summary(ctx context.Context, userID int, from, to time.Time) (*Summary, error)
}

type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

type DeleteRecordResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo healthRepo
	now  func() time.Time
}

func NewHandler(repo healthRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/health", handler.HandleAdd).Methods("POST", "OPTIONS").Name("health-add")
	r.HandleFunc("/health/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("health-list")
	r.HandleFunc("/health/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("health-summary")
	r.HandleFunc("/health/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("health-get")
	r.HandleFunc("/health/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE").Name("health-delete")
}

func loggedUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.add")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("new health record, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := record.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record.ID = 0
	record.UserID = userID
	if record.RecordedAt.IsZero() {
		record.RecordedAt = handler.now()
	}

	added, err := handler.repo.Add(ctx, record)
	if errors.Is(err, ErrUnknownUser) {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if err != nil {
		span.RecordError(err)
		log.Errorf("failed to add health record for user %d: %s", userID, err)
		http.Error(w, "error, failed to add health record", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("record.id", added.ID))
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.get")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	record, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "health record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get health record %d: %s", id, err)
		http.Error(w, "failed to get health record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, record, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.delete")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "health record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete health record %d: %s", id, err)
		http.Error(w, "health record not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteRecordResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.list")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}

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

	records, total, err := handler.repo.List(ctx, userID, page, size)
	if err != nil {
		log.Errorf("list health records: %s", err)
		http.Error(w, "failed to get health records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []Record{}
	}

	pkg.WriteJSON(w, ListResponse{Records: records, Total: total}, http.StatusOK)
}

// HandleSummary aggregates the logged user's records of the last 7 days.
func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.summary")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}

	to := handler.now()
	summary, err := handler.repo.Summary(ctx, userID, to.Add(-summaryPeriod), to)
	if err != nil {
		log.Errorf("health summary for user %d: %s", userID, err)
		http.Error(w, "failed to get health summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}
