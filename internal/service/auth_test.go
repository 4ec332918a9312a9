package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	mocks "github.com/IHARC/stevi-portal/internal/mocks/access"
	"github.com/IHARC/stevi-portal/internal/ports"
)

// mockSessionStore is a test helper for testing session store errors.
type mockSessionStore struct {
	saveFunc   func(context.Context, access.Session) error
	getFunc    func(context.Context, string) (access.Session, error)
	deleteFunc func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess access.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (access.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return access.Session{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newAuthService() (*AuthService, *mocks.MockIdentityProvider, *mocks.MemorySessionStore) {
	provider := mocks.NewMockIdentityProvider()
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{Provider: provider, Sessions: sessions})
	return svc, provider, sessions
}

func TestAuthService_BeginLogin_Success(t *testing.T) {
	svc, _, _ := newAuthService()

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/callback")

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.Equal(t, "state-1", result.State)
	assert.Equal(t, "nonce-1", result.Nonce)
}

func TestAuthService_BeginLogin_EmptyRedirectURL(t *testing.T) {
	svc, _, _ := newAuthService()

	result, err := svc.BeginLogin(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	svc, provider, sessions := newAuthService()
	provider.DefaultIdentity = access.Identity{
		UserID:    "ident-7",
		FirstName: "Avery",
		LastName:  "Quinn",
		Email:     "avery@example.org",
	}

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "ident-7", result.Session.UserID)
	assert.NotEmpty(t, result.Session.ID)

	stored, err := sessions.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session, stored)
}

func TestAuthService_CompleteLogin_MissingParams(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	cases := []CompleteLoginInput{
		{State: "s", Nonce: "n"},
		{Code: "c", Nonce: "n"},
		{Code: "c", State: "s"},
	}
	for _, in := range cases {
		result, err := svc.CompleteLogin(ctx, in)
		require.Error(t, err, "input %+v", in)
		assert.Nil(t, result)
	}
}

func TestAuthService_CompleteLogin_ExchangeFails(t *testing.T) {
	svc, provider, _ := newAuthService()
	provider.ExchangeFunc = func(context.Context, ports.ExchangeInput) (access.Identity, error) {
		return access.Identity{}, errors.New("idp rejected code")
	}

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	store := &mockSessionStore{
		getFunc: func(context.Context, string) (access.Session, error) {
			return access.Session{ID: "sess-1", ExpiresAt: time.Now().Add(-time.Minute)}, nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Provider: mocks.NewMockIdentityProvider(),
		Sessions: store,
	})

	sess, err := svc.GetSession(context.Background(), "sess-1")
	require.ErrorIs(t, err, ports.ErrSessionExpired)
	assert.Nil(t, sess)
}

func TestAuthService_GetSession_Valid(t *testing.T) {
	svc, _, sessions := newAuthService()
	want := access.Session{ID: "sess-2", UserID: "ident-2", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, sessions.Save(context.Background(), want))

	got, err := svc.GetSession(context.Background(), "sess-2")
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions := newAuthService()
	require.NoError(t, sessions.Save(context.Background(), access.Session{ID: "sess-3", ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, svc.Logout(context.Background(), "sess-3"))
	_, err := sessions.Get(context.Background(), "sess-3")
	require.ErrorIs(t, err, mocks.ErrNotFound)

	// Logging out with no session ID is a no-op.
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_Logout_StoreError(t *testing.T) {
	storeErr := errors.New("redis down")
	store := &mockSessionStore{deleteFunc: func(context.Context, string) error { return storeErr }}
	svc := NewAuthService(AuthServiceOptions{Provider: mocks.NewMockIdentityProvider(), Sessions: store})

	err := svc.Logout(context.Background(), "sess-4")
	require.ErrorIs(t, err, storeErr)
}
