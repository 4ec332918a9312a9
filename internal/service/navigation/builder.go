package navigation

import (
	"github.com/IHARC/stevi-portal/internal/domain/access"
)

// BuildInput groups the builder's inputs: the request's snapshot, the area
// the classifier confirmed, the preview flag from its decision, and any
// explicit extra commands the caller wants ranked first in the index.
type BuildInput struct {
	Snapshot      *access.AccessSnapshot
	Area          access.Area
	IsPreview     bool
	ExtraCommands []Command
}

// view is the predicate context threaded through the item definitions.
type view struct {
	snap    *access.AccessSnapshot
	preview bool
}

func (v view) caps() access.Capabilities {
	if v.snap == nil {
		return access.Capabilities{}
	}
	return v.snap.Capabilities
}

func (v view) flags() access.FeatureFlags {
	if v.snap == nil {
		return access.FeatureFlags{}
	}
	return v.snap.OrgFlags
}

// itemDef is one candidate link with its visibility predicate. Definitions
// are declared in display order.
type itemDef struct {
	label   string
	path    string
	visible func(view) bool
}

// sectionDef is one candidate section. A section with no visible links is
// dropped from the output.
type sectionDef struct {
	label string
	items []itemDef
}

func always(view) bool { return true }

// Section definitions per area, in display order. Feature flags gate
// individual items here, never area entry.
var areaSections = map[access.Area][]sectionDef{
	access.AreaClient: {
		{label: "My portal", items: []itemDef{
			{label: "Home", path: "/home", visible: always},
			{label: "My cases", path: "/cases", visible: always},
			{label: "My appointments", path: "/appointments", visible: always},
			{label: "My documents", path: "/documents", visible: always},
		}},
	},
	access.AreaStaff: {
		{label: "Casework", items: []itemDef{
			{label: "Caseload", path: "/staff/caseload", visible: func(v view) bool { return v.caps().ViewCaseload }},
			{label: "Cases", path: "/staff/cases", visible: func(v view) bool { return v.caps().ManageCases }},
			{label: "Appointments", path: "/staff/appointments", visible: func(v view) bool { return v.caps().ManageAppointments }},
			{label: "Consents", path: "/staff/consents", visible: func(v view) bool { return v.caps().ManageConsents }},
		}},
		{label: "Operations", items: []itemDef{
			{label: "Inventory", path: "/staff/inventory", visible: func(v view) bool { return v.caps().AccessInventory && v.flags().Inventory }},
			{label: "Donations", path: "/staff/donations", visible: func(v view) bool { return v.caps().ManageDonations && v.flags().Donations }},
			{label: "Cost reports", path: "/staff/costs", visible: func(v view) bool { return v.caps().ViewCostReports }},
			{label: "Time tracking", path: "/staff/time", visible: func(v view) bool { return v.caps().TrackTime && v.flags().TimeTracking }},
		}},
	},
	access.AreaOrg: {
		{label: "Organization", items: []itemDef{
			{label: "Overview", path: "/org", visible: always},
			{label: "Settings", path: "/org/settings", visible: func(v view) bool { return v.caps().ManageOrgSettings }},
			{label: "Roles", path: "/org/roles", visible: func(v view) bool { return v.caps().ManageOrgRoles }},
			{label: "Time tracking", path: "/org/time", visible: func(v view) bool { return v.caps().TrackTime && v.flags().TimeTracking }},
		}},
	},
	access.AreaAdmin: {
		{label: "Administration", items: []itemDef{
			{label: "Settings", path: "/admin/settings", visible: func(v view) bool { return v.caps().ManageAdminArea }},
			{label: "Role templates", path: "/admin/templates", visible: func(v view) bool { return v.caps().ManageTemplates }},
			{label: "Permissions", path: "/admin/permissions", visible: func(v view) bool { return v.caps().ManageAdminArea }},
		}},
	},
}

// actionDef is one candidate quick action with its visibility predicate.
type actionDef struct {
	label   string
	path    string
	visible func(view) bool
}

// Quick-action definitions per area, in display order.
var areaActions = map[access.Area][]actionDef{
	access.AreaClient: {
		{label: "Request appointment", path: "/appointments/new", visible: always},
		{label: "Upload document", path: "/documents/upload", visible: always},
	},
	access.AreaStaff: {
		{label: "New case", path: "/staff/cases/new", visible: func(v view) bool { return v.caps().ManageCases }},
		{label: "Record donation", path: "/staff/donations/new", visible: func(v view) bool { return v.caps().ManageDonations && v.flags().Donations }},
		{label: "Log time", path: "/staff/time/new", visible: func(v view) bool { return v.caps().TrackTime && v.flags().TimeTracking }},
	},
	access.AreaOrg: {
		{label: "Invite member", path: "/org/members/invite", visible: func(v view) bool { return v.caps().ManageOrgRoles }},
	},
	access.AreaAdmin: {
		{label: "New role template", path: "/admin/templates/new", visible: func(v view) bool { return v.caps().ManageTemplates }},
	},
}

const (
	previewDisabledReason = "not available while previewing the client portal"
	revokedDisabledReason = "affiliation revoked: access is read-only"
)

// Build assembles the navigation model for one request.
func Build(in BuildInput) Navigation {
	v := view{snap: in.Snapshot, preview: in.IsPreview}

	sections := buildSections(v, in.Area)
	actions := buildQuickActions(v, in.Area)
	commands := buildCommands(in.ExtraCommands, sections)

	return Navigation{
		Sections:     sections,
		QuickActions: actions,
		Commands:     commands,
	}
}

func buildSections(v view, area access.Area) []Section {
	var out []Section
	for _, def := range areaSections[area] {
		var links []Link
		for _, item := range def.items {
			if item.visible(v) {
				links = append(links, Link{Label: item.label, Path: item.path})
			}
		}
		if len(links) > 0 {
			out = append(out, Section{Label: def.label, Links: links})
		}
	}
	return out
}

func buildQuickActions(v view, area access.Area) []QuickAction {
	disabled, reason := mutationMode(v)

	var out []QuickAction
	for _, def := range areaActions[area] {
		if !def.visible(v) {
			continue
		}
		out = append(out, QuickAction{
			Label:          def.label,
			Path:           def.path,
			Disabled:       disabled,
			DisabledReason: reason,
		})
	}
	return out
}

// mutationMode decides whether quick-create mutations are forbidden for the
// current render mode, and why.
func mutationMode(v view) (bool, string) {
	if v.preview {
		return true, previewDisabledReason
	}
	if v.snap != nil && !v.snap.WriteAllowed() {
		return true, revokedDisabledReason
	}
	return false, ""
}
