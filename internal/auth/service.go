package auth

import (
	"context"
	"errors"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/models"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is what signup and login need from the user service.
type UserStore interface {
	Create(ctx context.Context, in models.CreateUserInput) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type SignupInput struct {
	models.CreateUserInput
	Password string `json:"password"`
}

type Service struct {
	users  UserStore
	tokens *Tokens
}

func NewService(users UserStore, tokens *Tokens) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if len(in.Password) < MinPasswordLength {
		return nil, apperr.Validation("auth.Signup", "password must be at least %d characters", MinPasswordLength)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "auth.Signup", err, "failed to hash password")
	}
	in.CreateUserInput.PasswordHash = hash
	return s.users.Create(ctx, in.CreateUserInput)
}

// Login returns a signed token for the user with the given email and
// password. Unknown email and wrong password are indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound || apperr.KindOf(err) == apperr.KindValidation {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !CheckPassword(user.PasswordHash, password) {
		logger.From(ctx).Info("login rejected", zap.String("user_id", user.ID))
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}
