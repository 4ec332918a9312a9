// Package testutil provides testing utilities and helpers for the portal.
package testutil

import (
	"time"

	"github.com/IHARC/stevi-portal/internal/domain/access"
)

// IdentityBuilder provides a fluent interface for building access.Identity values for testing.
type IdentityBuilder struct {
	ident access.Identity
}

// NewIdentity creates a new IdentityBuilder with sensible defaults.
func NewIdentity() *IdentityBuilder {
	return &IdentityBuilder{
		ident: access.Identity{
			UserID:    "ident-test",
			FirstName: "Test",
			LastName:  "User",
			Email:     "test.user@example.org",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

// WithUserID sets the stable user identifier.
func (b *IdentityBuilder) WithUserID(id string) *IdentityBuilder {
	b.ident.UserID = id
	return b
}

// WithName sets first and last name.
func (b *IdentityBuilder) WithName(first, last string) *IdentityBuilder {
	b.ident.FirstName = first
	b.ident.LastName = last
	return b
}

// WithEmail sets the email claim.
func (b *IdentityBuilder) WithEmail(email string) *IdentityBuilder {
	b.ident.Email = email
	return b
}

// WithGroups sets the group claims.
func (b *IdentityBuilder) WithGroups(groups ...string) *IdentityBuilder {
	b.ident.Groups = groups
	return b
}

// WithExpiresAt sets the token expiry.
func (b *IdentityBuilder) WithExpiresAt(t time.Time) *IdentityBuilder {
	b.ident.ExpiresAt = t
	return b
}

// Build returns the constructed identity.
func (b *IdentityBuilder) Build() access.Identity {
	return b.ident
}
