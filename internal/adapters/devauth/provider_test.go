package devauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IHARC/stevi-portal/internal/ports"
)

func TestNewProvider_RequiresUserIDAndEmail(t *testing.T) {
	_, err := NewProvider(Config{Email: "dev@example.org"})
	require.Error(t, err)

	_, err = NewProvider(Config{UserID: "dev-user"})
	require.Error(t, err)
}

func TestBegin_ReturnsLocalCallback(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.org"})
	require.NoError(t, err)

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{RedirectURL: "/home"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(authURL, "/auth/callback?code=dev&state="))
	assert.Len(t, state, 24)
	assert.Len(t, nonce, 24)
	assert.NotEqual(t, state, nonce)
}

func TestExchange_ReturnsConfiguredIdentity(t *testing.T) {
	p, err := NewProvider(Config{
		UserID:    "dev-user",
		Email:     "dev@example.org",
		FirstName: "Dev",
		LastName:  "User",
		Groups:    []string{"staff"},
	})
	require.NoError(t, err)

	ident, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, "dev-user", ident.UserID)
	assert.Equal(t, "dev@example.org", ident.Email)
	assert.Equal(t, []string{"staff"}, ident.Groups)
	assert.True(t, ident.ExpiresAt.After(time.Now()))
}
