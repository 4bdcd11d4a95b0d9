package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/sportai/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

const resetPasswordLength = 16

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	UpdateProfile(ctx context.Context, user User) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}

type sessionManager interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type passwordResetNotifier interface {
	SendPasswordReset(ctx context.Context, user User, newPassword string) error
}

type Service struct {
	repo     usersRepo
	sessions sessionManager
	notifier passwordResetNotifier
	now      func() time.Time
}

func NewService(repo usersRepo, sessions sessionManager, notifier passwordResetNotifier) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	user, err := req.Validate(s.now())
	if err != nil {
		return nil, err
	}

	user.PasswordHash, err = pkg.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.CreatedAt = s.now()

	added, err := s.repo.Add(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	log.Infof("new user registered: %d [%s]", added.ID, added.Username)
	return added, nil
}

// Login checks the credentials and opens a new session.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, *User, error) {
	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrWrongPassword
	}

	token, err := s.sessions.Login(ctx, user.ID, s.now())
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	return token, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Logout(ctx, token)
}

func (s *Service) Get(ctx context.Context, id int) (*User, error) {
	return s.repo.Get(ctx, id)
}

// checkedUser loads the user and verifies the given password against it.
func (s *Service) checkedUser(ctx context.Context, id int, password string) (*User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*User, error) {
	updated, err := req.Validate(s.now())
	if err != nil {
		return nil, err
	}

	user, err := s.checkedUser(ctx, id, req.Password)
	if err != nil {
		return nil, err
	}

	updated.ID = user.ID
	updated.PasswordHash = user.PasswordHash
	updated.CreatedAt = user.CreatedAt
	if err := s.repo.UpdateProfile(ctx, updated); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return &updated, nil
}

func (s *Service) ChangePassword(ctx context.Context, id int, req ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.checkedUser(ctx, id, req.CurrentPassword); err != nil {
		return err
	}

	hash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

// Delete removes the account and closes the session it was requested from.
func (s *Service) Delete(ctx context.Context, id int, password, token string) error {
	if _, err := s.checkedUser(ctx, id, password); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if _, err := s.sessions.Logout(ctx, token); err != nil {
		log.Errorf("logout deleted user %d: %s", id, err)
	}

	log.Infof("user %d deleted", id)
	return nil
}

// ResetPassword replaces the password with a generated one and mails it to the user.
func (s *Service) ResetPassword(ctx context.Context, identifier string) error {
	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	newPassword, err := pkg.GenerateSecurePassword(resetPasswordLength)
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	hash, err := pkg.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.notifier.SendPasswordReset(ctx, *user, newPassword); err != nil {
		return fmt.Errorf("send password reset: %w", err)
	}

	log.Infof("password reset for user %d", user.ID)
	return nil
}

// IsValidationError reports whether err is a request validation error.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
