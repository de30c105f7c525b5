package auth

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"

	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/pkg/password"
	"github.com/agendaescolar/backend/pkg/token"
	"github.com/agendaescolar/backend/repository"
)

// emailPattern is the basic local@domain.tld shape check. Anything stricter
// is out of scope here.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// Registration and login failures are all reported as 400-class errors so
// the response does not reveal which part of the credentials was wrong more
// than the original contract does.
var (
	errMissingFields = domain.NewError(domain.ErrCodeInvalid, "all fields are required")
	errBadEmail      = domain.NewError(domain.ErrCodeInvalid, "invalid email format")
	errLoginUnknown  = domain.NewError(domain.ErrCodeInvalid, "user not found")
	errLoginPassword = domain.NewError(domain.ErrCodeInvalid, "incorrect password")
)

type UseCase struct {
	users  repository.UserRepository
	tokens *token.Issuer
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens *token.Issuer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register validates the payload, hashes the password and stores the new
// account. The plaintext password is never persisted or logged.
func (uc *UseCase) Register(ctx context.Context, name, email, plaintext string) (*domain.User, error) {
	if name == "" || email == "" || plaintext == "" {
		return nil, errMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, errBadEmail
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", created.ID))
	return created, nil
}

// Login checks the credentials and issues a bearer token for the account.
func (uc *UseCase) Login(ctx context.Context, email, plaintext string) (string, *domain.User, error) {
	if email == "" || plaintext == "" {
		return "", nil, errMissingFields
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, errLoginUnknown
		}
		return "", nil, err
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return "", nil, errLoginPassword
	}

	signed, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, domain.WrapError(domain.ErrCodeInternal, "failed to issue token", err)
	}

	uc.logger.Info("user logged in", zap.String("user_id", user.ID))
	return signed, user, nil
}

// Identity resolves a verified owner id back to the stored account.
func (uc *UseCase) Identity(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}
