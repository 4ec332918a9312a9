package ports

// Package ports defines interfaces (hexagonal ports) for the access core's
// collaborators. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"errors"

	"github.com/IHARC/stevi-portal/internal/domain/access"
)

// ErrOrganizationNotFound is returned by OrgStore when the referenced
// organization no longer exists. The capability loader treats this as a
// nulled org membership, not a request failure.
var ErrOrganizationNotFound = errors.New("organization not found")

// ErrSessionNotFound is returned by SessionStore when no session exists for
// the given id. Callers treat it as "anonymous", unlike a store outage,
// which must fail the request.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionExpired is returned when a session exists but its expiry has
// passed. Like ErrSessionNotFound it means "anonymous", not "store broken".
var ErrSessionExpired = errors.New("session expired")

// BeginInput carries inputs for initiating a sign-in flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// IdentityProvider initiates and completes a sign-in flow against an IdP.
type IdentityProvider interface {
	// Begin starts the sign-in flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the sign-in flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (access.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess access.Session) error
	Get(ctx context.Context, id string) (access.Session, error)
	Delete(ctx context.Context, id string) error
}

// ProfileStore reads and provisions portal profiles.
type ProfileStore interface {
	// Provision returns the profile for the identity, creating one with
	// default values on first visit. It is idempotent under concurrent
	// first visits: every caller observes the same profile row. The bool
	// reports whether this call created the row.
	Provision(ctx context.Context, ident access.Identity) (access.Profile, bool, error)
}

// GrantStore loads the role grants an identity holds, global and
// organization-scoped, with template permissions and local overrides
// attached for resolution in the domain layer.
type GrantStore interface {
	ListByIdentity(ctx context.Context, identityID string) ([]access.RoleGrant, error)
}

// OrgStore reads organizations with their feature flags resolved.
type OrgStore interface {
	// Get returns ErrOrganizationNotFound (possibly wrapped) when the
	// organization does not exist.
	Get(ctx context.Context, orgID string) (access.Organization, error)
}

// AuditEvent is the record shape consumed by the audit sink.
type AuditEvent struct {
	Actor     string
	Action    string
	EntityRef string
	Meta      map[string]any
}

// AuditSink records capability-affecting writes. Implementations are
// fire-and-forget: Record never blocks the request outcome on audit success.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent)
}
