package access

// GrantScope distinguishes global role grants from organization-scoped ones.
type GrantScope string

const (
	ScopeGlobal GrantScope = "global"
	ScopeOrg    GrantScope = "org"
)

// OverrideEffect is the action of a single org-role permission override.
type OverrideEffect string

const (
	OverrideGrant  OverrideEffect = "grant"
	OverrideRevoke OverrideEffect = "revoke"
)

// PermissionOverride is a local customization of an org role relative to its
// role template, keyed by (org-role, permission) in storage.
type PermissionOverride struct {
	Permission string
	Effect     OverrideEffect
}

// RoleGrant is one role held by an identity, as loaded from storage.
// Global roles carry only direct permissions. Org roles may additionally
// inherit a role template's permissions and customize them with overrides.
type RoleGrant struct {
	RoleID   string
	RoleName string
	Scope    GrantScope

	Permissions         []string
	TemplatePermissions []string
	Overrides           []PermissionOverride
}

// ResolveGrantPermissions resolves the effective permission set of a single
// role grant: template permissions first, then direct permissions, then
// local overrides applied last so they take precedence over the template.
func ResolveGrantPermissions(g RoleGrant) map[string]bool {
	out := make(map[string]bool, len(g.TemplatePermissions)+len(g.Permissions))
	for _, p := range g.TemplatePermissions {
		out[p] = true
	}
	for _, p := range g.Permissions {
		out[p] = true
	}
	for _, ov := range g.Overrides {
		switch ov.Effect {
		case OverrideGrant:
			out[ov.Permission] = true
		case OverrideRevoke:
			delete(out, ov.Permission)
		}
	}
	return out
}

// EffectivePermissions unions the resolved permission sets of every grant
// the identity holds. Overrides are scoped to their own grant: a revoke in
// one org role never removes a permission granted by another role.
func EffectivePermissions(grants []RoleGrant) map[string]bool {
	out := make(map[string]bool)
	for _, g := range grants {
		for p := range ResolveGrantPermissions(g) {
			out[p] = true
		}
	}
	return out
}
