package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalContext(t *testing.T) {
	p := Principal{UserID: 3, Name: "Caio", Login: "caio"}

	got, err := PrincipalFrom(WithPrincipal(context.Background(), p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPrincipalFrom_Missing(t *testing.T) {
	_, err := PrincipalFrom(context.Background())
	assert.ErrorIs(t, err, ErrNoPrincipal)

	_, err = PrincipalFrom(WithPrincipal(context.Background(), Principal{Name: "no id"}))
	assert.ErrorIs(t, err, ErrNoPrincipal)
}
