package access

// Package access contains domain-level types for the portal's
// access-resolution core: identities, profiles, organizations, permission
// keys, and the per-request AccessSnapshot. It is pure and free of
// framework/adapter concerns.

import "time"

// Area is one of the mutually exclusive top-level portal experiences.
// The set is closed; every request classifies into exactly one Area.
type Area string

const (
	AreaClient Area = "client"
	AreaStaff  Area = "staff"
	AreaOrg    Area = "org"
	AreaAdmin  Area = "admin"
)

// LandingPath returns the canonical landing path for the area.
func (a Area) LandingPath() string {
	switch a {
	case AreaStaff:
		return "/staff"
	case AreaOrg:
		return "/org"
	case AreaAdmin:
		return "/admin"
	case AreaClient:
		return "/home"
	default:
		return "/home"
	}
}

// Elevated reports whether the area requires an elevated entitlement.
// The client area is the only non-elevated area.
func (a Area) Elevated() bool { return a != AreaClient }

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (e.g., sub)
	FirstName string
	LastName  string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AffiliationType describes how a profile relates to the organization
// running the portal.
type AffiliationType string

const (
	AffiliationCommunity AffiliationType = "community"
	AffiliationStaff     AffiliationType = "staff"
	AffiliationPartner   AffiliationType = "partner"
)

// AffiliationStatus is the lifecycle status of a profile's affiliation.
// Revoked profiles retain read access but lose write capabilities.
type AffiliationStatus string

const (
	AffiliationPending  AffiliationStatus = "pending"
	AffiliationApproved AffiliationStatus = "approved"
	AffiliationRevoked  AffiliationStatus = "revoked"
)

// Profile is the durable per-identity portal record, provisioned lazily on
// first visit. OrganizationID is nil for callers with no org membership.
type Profile struct {
	ID                string            `json:"id"`
	IdentityID        string            `json:"identity_id"`
	DisplayName       string            `json:"display_name"`
	PositionTitle     string            `json:"position_title"`
	OrganizationID    *string           `json:"organization_id,omitempty"`
	AffiliationType   AffiliationType   `json:"affiliation_type"`
	AffiliationStatus AffiliationStatus `json:"affiliation_status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// FeatureFlags are the per-organization toggles the portal consumes.
// Flags gate individual navigation items and quick actions, never Area entry.
type FeatureFlags struct {
	TimeTracking bool `json:"time_tracking"`
	Donations    bool `json:"donations"`
	Inventory    bool `json:"inventory"`
}

// Organization is a tenant-like grouping of profiles and org roles.
type Organization struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Active bool         `json:"active"`
	Flags  FeatureFlags `json:"flags"`
}

// Permission keys form the closed catalogue this portal consumes. The
// administrative permission tables may carry more keys; unknown keys are
// ignored when reducing to Capabilities.
const (
	PermStaffAreaAccess = "portal.staff.access"
	PermOrgAreaAccess   = "portal.org.access"
	PermAdminAreaAccess = "portal.admin.access"

	PermManageCases        = "cases.manage"
	PermManageAppointments = "appointments.manage"
	PermManageDocuments    = "documents.manage"
	PermManageConsents     = "consents.manage"
	PermViewCaseload       = "caseload.view"
	PermAccessInventory    = "inventory.access"
	PermManageDonations    = "donations.manage"
	PermViewCostReports    = "costs.reports.view"
	PermTrackTime          = "time.track"
	PermManageOrgSettings  = "org.settings.manage"
	PermManageOrgRoles     = "org.roles.manage"
	PermManageAdminArea    = "admin.settings.manage"
	PermManageTemplates    = "admin.templates.manage"
)

// Capabilities is the flat, total set of boolean capability flags carried by
// an AccessSnapshot. Every capability the rest of the system can ask about
// is a concrete field here; nothing downstream re-derives permissions.
type Capabilities struct {
	StaffArea bool `json:"staff_area"`
	OrgArea   bool `json:"org_area"`
	AdminArea bool `json:"admin_area"`

	ManageCases        bool `json:"manage_cases"`
	ManageAppointments bool `json:"manage_appointments"`
	ManageDocuments    bool `json:"manage_documents"`
	ManageConsents     bool `json:"manage_consents"`
	ViewCaseload       bool `json:"view_caseload"`
	AccessInventory    bool `json:"access_inventory"`
	ManageDonations    bool `json:"manage_donations"`
	ViewCostReports    bool `json:"view_cost_reports"`
	TrackTime          bool `json:"track_time"`
	ManageOrgSettings  bool `json:"manage_org_settings"`
	ManageOrgRoles     bool `json:"manage_org_roles"`
	ManageAdminArea    bool `json:"manage_admin_area"`
	ManageTemplates    bool `json:"manage_templates"`
}

// CapabilitiesFrom reduces an effective permission set to the total
// Capabilities struct. Unknown keys are dropped.
func CapabilitiesFrom(perms map[string]bool) Capabilities {
	return Capabilities{
		StaffArea: perms[PermStaffAreaAccess],
		OrgArea:   perms[PermOrgAreaAccess],
		AdminArea: perms[PermAdminAreaAccess],

		ManageCases:        perms[PermManageCases],
		ManageAppointments: perms[PermManageAppointments],
		ManageDocuments:    perms[PermManageDocuments],
		ManageConsents:     perms[PermManageConsents],
		ViewCaseload:       perms[PermViewCaseload],
		AccessInventory:    perms[PermAccessInventory],
		ManageDonations:    perms[PermManageDonations],
		ViewCostReports:    perms[PermViewCostReports],
		TrackTime:          perms[PermTrackTime],
		ManageOrgSettings:  perms[PermManageOrgSettings],
		ManageOrgRoles:     perms[PermManageOrgRoles],
		ManageAdminArea:    perms[PermManageAdminArea],
		ManageTemplates:    perms[PermManageTemplates],
	}
}

// AccessSnapshot is the single reduced access value computed once per
// request. It is immutable for the lifetime of the request; every downstream
// component reasons only over this value.
type AccessSnapshot struct {
	IdentityID   string       `json:"identity_id"`
	Profile      Profile      `json:"profile"`
	Capabilities Capabilities `json:"capabilities"`

	// Organization fields are zero-valued when the profile has no org
	// membership or the referenced organization no longer exists.
	OrgID    string       `json:"org_id,omitempty"`
	OrgName  string       `json:"org_name,omitempty"`
	OrgFlags FeatureFlags `json:"org_flags"`

	// Areas the caller is entitled to enter, keyed by Area.
	EntitledAreas map[Area]bool `json:"entitled_areas"`
}

// EntitledTo reports whether the snapshot allows entry to the given area.
// A nil snapshot (anonymous caller) is entitled to nothing.
func (s *AccessSnapshot) EntitledTo(a Area) bool {
	if s == nil {
		return false
	}
	if a == AreaClient {
		return true
	}
	return s.EntitledAreas[a]
}

// Elevated reports whether the caller holds any elevated-area entitlement.
func (s *AccessSnapshot) Elevated() bool {
	if s == nil {
		return false
	}
	return s.EntitledAreas[AreaStaff] || s.EntitledAreas[AreaOrg] || s.EntitledAreas[AreaAdmin]
}

// WriteAllowed reports whether mutations are permitted for this caller.
// Revoked affiliations retain read access only.
func (s *AccessSnapshot) WriteAllowed() bool {
	if s == nil {
		return false
	}
	return s.Profile.AffiliationStatus != AffiliationRevoked
}

// EntitledAreasFrom derives the area entitlement set from capabilities.
// The client area is unconditionally present for any authenticated caller.
func EntitledAreasFrom(caps Capabilities) map[Area]bool {
	areas := map[Area]bool{AreaClient: true}
	if caps.StaffArea {
		areas[AreaStaff] = true
	}
	if caps.OrgArea {
		areas[AreaOrg] = true
	}
	if caps.AdminArea {
		areas[AreaAdmin] = true
	}
	return areas
}
