package users

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
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, identifier, password string) (string, *User, error)
	Logout(ctx context.Context, token string) (bool, error)
	Get(ctx context.Context, id int) (*User, error)
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*User, error)
	ChangePassword(ctx context.Context, id int, req ChangePasswordRequest) error
	Delete(ctx context.Context, id int, password, token string) error
	ResetPassword(ctx context.Context, identifier string) error
}

type tokenChecker interface {
	IsLogged(ctx context.Context, token string) (userID int, logged bool, err error)
}

type Handler struct {
	service      usersService
	tokenChecker tokenChecker
}

func NewHandler(service usersService, tokenChecker tokenChecker) *Handler {
	return &Handler{
		service:      service,
		tokenChecker: tokenChecker,
	}
}

// SetupRoutes registers the user routes. The login route is wrapped with
// loginLimiter when one is given.
func (handler *Handler) SetupRoutes(r *mux.Router, loginLimiter mux.MiddlewareFunc) {
	var login http.Handler = http.HandlerFunc(handler.HandleLogin)
	if loginLimiter != nil {
		login = loginLimiter(login)
	}

	r.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/login", login).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	r.HandleFunc("/is-valid", handler.HandleIsValid).Methods("GET", "OPTIONS").Name("is-valid")
	r.HandleFunc("/reset", handler.HandleResetPassword).Methods("POST", "OPTIONS").Name("reset")
	r.HandleFunc("/account", handler.HandleGetAccount).Methods("GET", "OPTIONS").Name("account-get")
	r.HandleFunc("/account", handler.HandleUpdateProfile).Methods("POST").Name("account-update")
	r.HandleFunc("/account", handler.HandleChangePassword).Methods("PUT").Name("account-password")
	r.HandleFunc("/account", handler.HandleDeleteAccount).Methods("DELETE").Name("account-delete")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("unmarshal json params [%s]: %s", r.URL.Path, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func loggedUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// writeServiceError maps service errors to response codes.
func writeServiceError(w http.ResponseWriter, err error, action string) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		pkg.WriteJSONError(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDuplicateUser):
		http.Error(w, "username, email or phone already taken", http.StatusConflict)
	case errors.Is(err, ErrWrongPassword):
		http.Error(w, "the password is incorrect", http.StatusBadRequest)
	case errors.Is(err, ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := handler.service.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		writeServiceError(w, err, "register")
		return
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Identifier == "" || req.Password == "" {
		http.Error(w, "identifier and password are required", http.StatusBadRequest)
		return
	}

	token, user, err := handler.service.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrWrongPassword) {
			log.Debugf("failed login attempt for [%s]", req.Identifier)
			http.Error(w, "invalid credentials", http.StatusNotFound)
			return
		}
		span.RecordError(err)
		log.Errorf("login: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	pkg.WriteJSON(w, LoginResponse{Token: token, User: user}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	token := auth.TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, token)
	if err != nil {
		span.RecordError(err)
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (handler *Handler) HandleIsValid(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.is_valid")
	defer span.End()

	_, logged, err := handler.tokenChecker.IsLogged(ctx, auth.TokenFromRequest(r))
	if err != nil {
		log.Errorf("is valid check: %s", err)
	}
	if err != nil || !logged {
		http.Error(w, "the token is expired or invalid", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, MessageResponse{Message: "the token is still valid"}, http.StatusOK)
}

func (handler *Handler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.account")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}

	user, err := handler.service.Get(ctx, userID)
	if err != nil {
		writeServiceError(w, err, "get account")
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update_profile")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := handler.service.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeServiceError(w, err, "update profile")
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.change_password")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := handler.service.ChangePassword(ctx, userID, req); err != nil {
		writeServiceError(w, err, "change password")
		return
	}

	pkg.WriteJSON(w, MessageResponse{Message: "password changed"}, http.StatusOK)
}

func (handler *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.delete")
	defer span.End()

	userID, ok := loggedUserID(w, r)
	if !ok {
		return
	}

	var req DeleteAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := handler.service.Delete(ctx, userID, req.Password, auth.TokenFromRequest(r)); err != nil {
		writeServiceError(w, err, "delete account")
		return
	}

	pkg.WriteJSON(w, MessageResponse{Message: "account deleted"}, http.StatusOK)
}

func (handler *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.reset")
	defer span.End()

	var req ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Identifier == "" {
		http.Error(w, "identifier is required", http.StatusBadRequest)
		return
	}

	if err := handler.service.ResetPassword(ctx, req.Identifier); err != nil {
		span.RecordError(err)
		writeServiceError(w, err, "reset password")
		return
	}

	pkg.WriteJSON(w, MessageResponse{Message: "a new password has been sent to your email"}, http.StatusOK)
}
