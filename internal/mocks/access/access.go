package access

// Package access contains simple hand-written test doubles for the access
// ports. These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domainaccess "github.com/IHARC/stevi-portal/internal/domain/access"
	"github.com/IHARC/stevi-portal/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider = (*MockIdentityProvider)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
	_ ports.ProfileStore     = (*MemoryProfileStore)(nil)
	_ ports.GrantStore       = (*StaticGrantStore)(nil)
	_ ports.OrgStore         = (*StaticOrgStore)(nil)
	_ ports.AuditSink        = (*RecordingAuditSink)(nil)
)

// MockIdentityProvider simulates an IdP for tests with deterministic
// state/nonce handling.
type MockIdentityProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainaccess.Identity, error)

	// Deterministic values for predictable testing
	AuthURL         string
	StatePrefix     string
	NoncePrefix     string
	DefaultIdentity domainaccess.Identity

	callCount int
}

// NewMockIdentityProvider creates a MockIdentityProvider with sensible defaults.
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		AuthURL:     "https://mock-idp/auth",
		StatePrefix: "state",
		NoncePrefix: "nonce",
		DefaultIdentity: domainaccess.Identity{
			UserID:    "mock-user-1",
			FirstName: "Mock",
			LastName:  "User",
			Email:     "mock.user@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (m *MockIdentityProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	state := fmt.Sprintf("%s-%d", m.StatePrefix, m.callCount)
	nonce := fmt.Sprintf("%s-%d", m.NoncePrefix, m.callCount)
	return m.AuthURL, state, nonce, nil
}

func (m *MockIdentityProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainaccess.Identity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}

	ident := m.DefaultIdentity
	ident.ExpiresAt = time.Now().Add(time.Hour)
	return ident, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions map[string]domainaccess.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainaccess.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainaccess.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainaccess.Session, error) {
	if id == "" {
		return domainaccess.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainaccess.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// MemoryProfileStore provisions profiles in memory with upsert semantics
// matching the production store: the first caller creates, everyone else
// observes the same row. Safe for concurrent use so race tests can exercise
// simultaneous first visits.
type MemoryProfileStore struct {
	mu       sync.Mutex
	profiles map[string]domainaccess.Profile

	// Err, when set, is returned by every call (store-unavailable tests).
	Err error
}

// NewMemoryProfileStore creates an empty in-memory profile store.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]domainaccess.Profile)}
}

func (m *MemoryProfileStore) Provision(_ context.Context, ident domainaccess.Identity) (domainaccess.Profile, bool, error) {
	if m.Err != nil {
		return domainaccess.Profile{}, false, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.profiles[ident.UserID]; ok {
		return p, false, nil
	}
	now := time.Now().UTC()
	p := domainaccess.Profile{
		ID:                uuid.New().String(),
		IdentityID:        ident.UserID,
		DisplayName:       displayName(ident),
		AffiliationType:   domainaccess.AffiliationCommunity,
		AffiliationStatus: domainaccess.AffiliationPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	m.profiles[ident.UserID] = p
	return p, true, nil
}

// Put seeds a profile, overwriting any provisioned row for the identity.
func (m *MemoryProfileStore) Put(p domainaccess.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.IdentityID] = p
}

func displayName(ident domainaccess.Identity) string {
	name := ident.FirstName
	if ident.LastName != "" {
		if name != "" {
			name += " "
		}
		name += ident.LastName
	}
	if name == "" {
		name = ident.Email
	}
	return name
}

// StaticGrantStore returns a fixed grant list per identity.
type StaticGrantStore struct {
	Grants map[string][]domainaccess.RoleGrant
	Err    error
}

// NewStaticGrantStore creates an empty grant store.
func NewStaticGrantStore() *StaticGrantStore {
	return &StaticGrantStore{Grants: make(map[string][]domainaccess.RoleGrant)}
}

func (s *StaticGrantStore) ListByIdentity(_ context.Context, identityID string) ([]domainaccess.RoleGrant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Grants[identityID], nil
}

// StaticOrgStore returns fixed organizations by id.
type StaticOrgStore struct {
	Orgs map[string]domainaccess.Organization
	Err  error
}

// NewStaticOrgStore creates an empty org store.
func NewStaticOrgStore() *StaticOrgStore {
	return &StaticOrgStore{Orgs: make(map[string]domainaccess.Organization)}
}

func (s *StaticOrgStore) Get(_ context.Context, orgID string) (domainaccess.Organization, error) {
	if s.Err != nil {
		return domainaccess.Organization{}, s.Err
	}
	org, ok := s.Orgs[orgID]
	if !ok {
		return domainaccess.Organization{}, ports.ErrOrganizationNotFound
	}
	return org, nil
}

// RecordingAuditSink captures audit events for assertions.
type RecordingAuditSink struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

// NewRecordingAuditSink creates an empty recording sink.
func NewRecordingAuditSink() *RecordingAuditSink {
	return &RecordingAuditSink{}
}

func (r *RecordingAuditSink) Record(_ context.Context, event ports.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the captured events.
func (r *RecordingAuditSink) Events() []ports.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ErrNotFound is returned by mocks when an entity is not present. It aliases
// the port-level sentinel so production error matching works against mocks.
var ErrNotFound = ports.ErrSessionNotFound
