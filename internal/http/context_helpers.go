package httpx

import (
	"context"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	"github.com/IHARC/stevi-portal/internal/service/areas"
)

// Unexported context key types to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same keys.
type sessionKey struct{}
type snapshotKey struct{}
type decisionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *access.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session from the request context, or nil.
func GetSessionFromContext(ctx context.Context) *access.Session {
	if s, ok := ctx.Value(sessionKey{}).(*access.Session); ok {
		return s
	}
	return nil
}

// SetSnapshotInContext returns a child context carrying the access snapshot.
// A nil snapshot leaves the context unchanged; downstream reads then see the
// unauthenticated pseudo-state.
func SetSnapshotInContext(ctx context.Context, snap *access.AccessSnapshot) context.Context {
	if snap == nil {
		return ctx
	}
	return context.WithValue(ctx, snapshotKey{}, snap)
}

// GetSnapshotFromContext retrieves the access snapshot, or nil for anonymous
// or unguarded requests.
func GetSnapshotFromContext(ctx context.Context) *access.AccessSnapshot {
	if s, ok := ctx.Value(snapshotKey{}).(*access.AccessSnapshot); ok {
		return s
	}
	return nil
}

// SetDecisionInContext returns a child context carrying the area decision.
func SetDecisionInContext(ctx context.Context, d areas.Decision) context.Context {
	return context.WithValue(ctx, decisionKey{}, d)
}

// GetDecisionFromContext retrieves the area decision and whether one is present.
func GetDecisionFromContext(ctx context.Context) (areas.Decision, bool) {
	d, ok := ctx.Value(decisionKey{}).(areas.Decision)
	return d, ok
}
