package httpx

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	"github.com/IHARC/stevi-portal/internal/ports"
	"github.com/IHARC/stevi-portal/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuthService implements AuthServiceInterface for handler tests.
type fakeAuthService struct {
	beginResult   *service.BeginLoginResult
	beginErr      error
	completeErr   error
	sessions      map[string]*access.Session
	loggedOut     []string
	lastRedirect  string
	completeCalls int
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{
		beginResult: &service.BeginLoginResult{
			AuthURL: "https://idp.example.com/authorize?client_id=portal",
			State:   "state-1",
			Nonce:   "nonce-1",
		},
		sessions: make(map[string]*access.Session),
	}
}

func (f *fakeAuthService) BeginLogin(_ context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	f.lastRedirect = redirectURL
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.beginResult, nil
}

func (f *fakeAuthService) CompleteLogin(_ context.Context, _ service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	f.completeCalls++
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	sess := access.Session{
		ID:        "sess-new",
		UserID:    "ident-1",
		FirstName: "Jordan",
		LastName:  "Rivera",
		Email:     "jordan@example.org",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.sessions[sess.ID] = &sess
	return &service.CompleteLoginResult{Session: sess}, nil
}

func (f *fakeAuthService) GetSession(_ context.Context, id string) (*access.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, errSessionMissing
}

func (f *fakeAuthService) Logout(_ context.Context, id string) error {
	f.loggedOut = append(f.loggedOut, id)
	delete(f.sessions, id)
	return nil
}

var errSessionMissing = ports.ErrSessionNotFound
