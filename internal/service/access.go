package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	"github.com/IHARC/stevi-portal/internal/ports"
)

// AccessServiceOptions groups dependencies for AccessService.
type AccessServiceOptions struct {
	Profiles ports.ProfileStore
	Grants   ports.GrantStore
	Orgs     ports.OrgStore
	Audit    ports.AuditSink
}

// AccessService is the capability loader: it reduces an authenticated
// identity to the immutable AccessSnapshot consumed by the rest of the
// request. Snapshots are built fresh per request and never cached.
type AccessService struct {
	profiles ports.ProfileStore
	grants   ports.GrantStore
	orgs     ports.OrgStore
	audit    ports.AuditSink
}

// NewAccessService constructs a new AccessService.
func NewAccessService(opts AccessServiceOptions) *AccessService {
	return &AccessService{
		profiles: opts.Profiles,
		grants:   opts.Grants,
		orgs:     opts.Orgs,
		audit:    opts.Audit,
	}
}

// Load builds the AccessSnapshot for the identity. A nil identity yields a
// nil snapshot and no error: downstream treats nil as "no capabilities, not
// approved, no organization". Store failures fail the whole load; the loader
// never degrades to an empty or permissive snapshot.
func (s *AccessService) Load(ctx context.Context, ident *access.Identity) (*access.AccessSnapshot, error) {
	if ident == nil {
		return nil, nil
	}

	profile, created, err := s.profiles.Provision(ctx, *ident)
	if err != nil {
		return nil, fmt.Errorf("provision profile: %w", err)
	}
	if created && s.audit != nil {
		s.audit.Record(ctx, ports.AuditEvent{
			Actor:     ident.UserID,
			Action:    "profile.provisioned",
			EntityRef: "profile:" + profile.ID,
			Meta:      map[string]any{"display_name": profile.DisplayName},
		})
	}

	// Grant and organization fetches are independent; issue them
	// concurrently.
	var (
		grants []access.RoleGrant
		org    *access.Organization
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var gerr error
		grants, gerr = s.grants.ListByIdentity(gctx, ident.UserID)
		if gerr != nil {
			return fmt.Errorf("list grants: %w", gerr)
		}
		return nil
	})
	if profile.OrganizationID != nil {
		orgID := *profile.OrganizationID
		group.Go(func() error {
			o, oerr := s.orgs.Get(gctx, orgID)
			if oerr != nil {
				// A dangling org reference nulls the org fields rather
				// than failing the request.
				if errors.Is(oerr, ports.ErrOrganizationNotFound) {
					return nil
				}
				return fmt.Errorf("get organization %s: %w", orgID, oerr)
			}
			org = &o
			return nil
		})
	}
	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}

	caps := access.CapabilitiesFrom(access.EffectivePermissions(grants))
	snap := &access.AccessSnapshot{
		IdentityID:    ident.UserID,
		Profile:       profile,
		Capabilities:  caps,
		EntitledAreas: access.EntitledAreasFrom(caps),
	}
	if org != nil {
		snap.OrgID = org.ID
		snap.OrgName = org.Name
		// Deactivated tenants keep their identity visible but lose every
		// feature toggle.
		if org.Active {
			snap.OrgFlags = org.Flags
		}
	}
	return snap, nil
}
