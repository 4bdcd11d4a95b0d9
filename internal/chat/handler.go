package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/sportai/internal/auth"
	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=chat_test

type chatService interface {
	Ask(ctx context.Context, userID int, sessionID, query string) (*Answer, error)
	History(ctx context.Context, userID int, sessionID string) ([]Turn, error)
	Reset(ctx context.Context, userID int, sessionID string) error
}

type AskRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}

type HistoryResponse struct {
	SessionID string `json:"session_id"`
	Turns     []Turn `json:"turns"`
}

type Handler struct {
	service chatService
}

func NewHandler(service chatService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/chat", handler.HandleAsk).Methods("POST", "OPTIONS").Name("chat-ask")
	r.HandleFunc("/chat/{session}/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("chat-history")
	r.HandleFunc("/chat/{session}", handler.HandleReset).Methods("DELETE").Name("chat-reset")
}

func (handler *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.ask")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("chat ask, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := handler.service.Ask(ctx, userID, req.SessionID, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyQuery):
			http.Error(w, "query cannot be empty", http.StatusBadRequest)
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "chat session not found", http.StatusNotFound)
		default:
			span.RecordError(err)
			log.Errorf("chat ask for user %d: %s", userID, err)
			http.Error(w, "failed to answer, chat session was reset", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, answer, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["session"]
	turns, err := handler.service.History(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "chat session not found", http.StatusNotFound)
			return
		}
		log.Errorf("chat history %s: %s", sessionID, err)
		http.Error(w, "failed to get chat history", http.StatusInternalServerError)
		return
	}
	if turns == nil {
		turns = []Turn{}
	}

	pkg.WriteJSON(w, HistoryResponse{SessionID: sessionID, Turns: turns}, http.StatusOK)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.reset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["session"]
	if err := handler.service.Reset(ctx, userID, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "chat session not found", http.StatusNotFound)
			return
		}
		log.Errorf("chat reset %s: %s", sessionID, err)
		http.Error(w, "failed to reset chat session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
