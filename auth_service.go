package forumhub

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/coregx/forumhub/auth"
	"github.com/coregx/forumhub/model"
)

// dummyHash is compared against when the login is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3Pj5Hs5h3yqQTRhhg8o8b7m"

// AuthService authenticates users and issues bearer tokens.
type AuthService struct {
	users  UserRepository
	tokens *auth.TokenService
	logger Logger
}

// NewAuthService creates a new AuthService with the provided options.
//
// Required options:
//   - WithAuthUsers: user repository
//   - WithAuthTokens: token service
//   - WithAuthLogger: logger instance
func NewAuthService(opts ...AuthOption) (*AuthService, error) {
	s := &AuthService{}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply auth service option", err)
		}
	}

	if s.users == nil {
		return nil, NewError(ErrCodeConfiguration, "UserRepository is required (use WithAuthUsers)")
	}
	if s.tokens == nil {
		return nil, NewError(ErrCodeConfiguration, "TokenService is required (use WithAuthTokens)")
	}
	if s.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required (use WithAuthLogger)")
	}

	return s, nil
}

// Login checks the credentials and issues a token.
// Returns ErrUnauthorized for an unknown login or a wrong password.
func (s *AuthService) Login(ctx context.Context, login, password string) (auth.Token, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return auth.Token{}, ErrUnauthorized
	}

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if !IsNoData(err) {
			return auth.Token{}, storageError("failed to load user", err)
		}
		_ = auth.CheckPassword(dummyHash, password)
		s.logger.Debugf("Login rejected: unknown login %q", login)
		return auth.Token{}, ErrUnauthorized
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		s.logger.Debugf("Login rejected: bad password for user %d", user.ID)
		return auth.Token{}, ErrUnauthorized
	}

	token, err := s.tokens.Issue(auth.Principal{UserID: user.ID, Name: user.Name, Login: user.Login})
	if err != nil {
		return auth.Token{}, NewErrorWithCause(ErrCodeConfiguration, "failed to issue token", err)
	}

	s.logger.Infof("User logged in: id=%d", user.ID)
	return token, nil
}

// Authenticate validates a bearer token and returns its principal.
func (s *AuthService) Authenticate(token string) (auth.Principal, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return auth.Principal{}, NewErrorWithCause(ErrCodeUnauthorized, "invalid token", err)
	}
	p, err := claims.Principal()
	if err != nil {
		return auth.Principal{}, NewErrorWithCause(ErrCodeUnauthorized, "invalid token", err)
	}
	return p, nil
}

// RegisterRequest is the input of Register.
type RegisterRequest struct {
	Name     string
	Login    string
	Password string
}

// Validate checks the registration fields.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Login, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

// Register creates a user with a bcrypt-hashed password.
// Returns ErrDuplicateLogin if the login is taken.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Login = strings.TrimSpace(req.Login)
	if err := req.Validate(); err != nil {
		return model.User{}, NewValidationError(err)
	}

	if _, err := s.users.GetByLogin(ctx, req.Login); err == nil {
		return model.User{}, ErrDuplicateLogin
	} else if !IsNoData(err) {
		return model.User{}, storageError("failed to check login", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, NewErrorWithCause(ErrCodeValidation, "failed to hash password", err)
	}

	user, err := s.users.Save(ctx, model.NewUser(req.Name, req.Login, hash))
	if err != nil {
		return model.User{}, storageError("failed to save user", err)
	}

	s.logger.Infof("User registered: id=%d, login=%s", user.ID, user.Login)
	return user, nil
}
