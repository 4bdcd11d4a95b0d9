package misc

import (
	"errors"
	"net/http"

	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type VersionResponse struct {
	Version string `json:"version"`
}

type Handler struct {
	quotesManager *QuotesManager
	versionInfo   string
}

func NewHandler(quotesManager *QuotesManager, versionInfo string) *Handler {
	return &Handler{
		quotesManager: quotesManager,
		versionInfo:   versionInfo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	r.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	r.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")
	r.HandleFunc("/quote/random", handler.handleGetRandomQuote).Methods("GET").Name("quote")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	version := handler.versionInfo
	if version == "" {
		version = "unknown"
	}
	pkg.WriteJSON(w, VersionResponse{Version: version}, http.StatusOK)
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.myIp")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Errorf("failed to get user IP address: %s", err)
		http.Error(w, "failed to get IP", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.ip", ip))
	pkg.WriteTextResponseOK(w, ip)
}

// handleGetRandomQuote serves a random quote, optionally by ?topic=
func (handler *Handler) handleGetRandomQuote(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.quote")
	defer span.End()

	if handler.quotesManager == nil {
		http.Error(w, "quotes not available", http.StatusNotFound)
		return
	}

	quote, err := handler.quotesManager.RandomQuote(r.URL.Query().Get("topic"))
	if err != nil {
		if errors.Is(err, ErrNoQuotes) {
			http.Error(w, "no quotes found", http.StatusNotFound)
			return
		}
		log.Errorf("random quote: %s", err)
		http.Error(w, "failed to get quote", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, quote, http.StatusOK)
}
