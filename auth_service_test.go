package forumhub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/forumhub/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *memUserRepository) {
	t.Helper()
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret: "auth-service-test-secret",
		Issuer: "forumhub",
		TTL:    time.Hour,
	})
	require.NoError(t, err)

	users := newMemUserRepository()
	svc, err := NewAuthService(
		WithAuthUsers(users),
		WithAuthTokens(tokens),
		WithAuthLogger(&NoopLogger{}),
	)
	require.NoError(t, err)
	return svc, users
}

func TestNewAuthService_RequiredOptions(t *testing.T) {
	_, err := NewAuthService(WithAuthLogger(&NoopLogger{}))
	assert.True(t, hasCode(err, ErrCodeConfiguration))

	_, err = NewAuthService(WithAuthTokens(nil))
	assert.True(t, hasCode(err, ErrCodeConfiguration))
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{Name: " Ana Souza ", Login: "ana", Password: "correct horse"})
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.Equal(t, "Ana Souza", user.Name)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	token, err := svc.Login(ctx, "ana", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)

	p, err := svc.Authenticate("Bearer " + token.Value)
	require.NoError(t, err)
	assert.Equal(t, auth.Principal{UserID: user.ID, Name: "Ana Souza", Login: "ana"}, p)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{Name: "Ana", Login: "ana", Password: "correct horse"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "wrong password", login: "ana", password: "wrong horse"},
		{name: "unknown login", login: "bruno", password: "correct horse"},
		{name: "empty login", login: "", password: "correct horse"},
		{name: "empty password", login: "ana", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.login, tt.password)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestAuthService_Register_Errors(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{Name: "Ana", Login: "ana", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Name: "Outra Ana", Login: "ana", Password: "another pass"})
	assert.ErrorIs(t, err, ErrDuplicateLogin)

	_, err = svc.Register(ctx, RegisterRequest{Name: "", Login: "x", Password: "short"})
	assert.True(t, IsValidation(err))
}

func TestAuthService_Authenticate_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Authenticate("Bearer nope")
	assert.True(t, IsUnauthorized(err))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Authenticate("")
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}
