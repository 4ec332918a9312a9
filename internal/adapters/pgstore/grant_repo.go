package pgstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/IHARC/stevi-portal/internal/domain/access"
)

// GrantRepo loads role grants for an identity: global roles assigned
// directly, and org roles assigned through the identity's organization
// membership, with template permissions and local overrides attached.
type GrantRepo struct {
	DB *sql.DB
}

// NewGrantRepo creates a new GrantRepo.
func NewGrantRepo(db *sql.DB) *GrantRepo {
	return &GrantRepo{DB: db}
}

type globalGrantRow struct {
	RoleID      string   `db:"role_id"`
	RoleName    string   `db:"role_name"`
	Permissions []string `db:"permissions"`
}

type orgGrantRow struct {
	OrgRoleID           string   `db:"org_role_id"`
	OrgRoleName         string   `db:"org_role_name"`
	Permissions         []string `db:"permissions"`
	TemplatePermissions []string `db:"template_permissions"`
}

type overrideRow struct {
	OrgRoleID  string `db:"org_role_id"`
	Permission string `db:"permission"`
	Effect     string `db:"effect"`
}

const globalGrantsQuery = `
	SELECT r.id AS role_id,
	       r.name AS role_name,
	       coalesce(array_agg(p.key ORDER BY p.key) FILTER (WHERE p.key IS NOT NULL), '{}') AS permissions
	FROM identity_roles ir
	JOIN roles r ON r.id = ir.role_id
	LEFT JOIN role_permissions rp ON rp.role_id = r.id
	LEFT JOIN permissions p ON p.id = rp.permission_id
	WHERE ir.identity_id = $1
	GROUP BY r.id, r.name
	ORDER BY r.name`

const orgGrantsQuery = `
	SELECT org_r.id AS org_role_id,
	       org_r.name AS org_role_name,
	       coalesce(array_agg(DISTINCT p.key) FILTER (WHERE p.key IS NOT NULL), '{}') AS permissions,
	       coalesce(array_agg(DISTINCT tp.key) FILTER (WHERE tp.key IS NOT NULL), '{}') AS template_permissions
	FROM org_role_assignments ora
	JOIN profiles pr ON pr.id = ora.profile_id
	JOIN org_roles org_r ON org_r.id = ora.org_role_id
	LEFT JOIN org_role_permissions orp ON orp.org_role_id = org_r.id
	LEFT JOIN permissions p ON p.id = orp.permission_id
	LEFT JOIN role_template_permissions rtp ON rtp.template_id = org_r.template_id
	LEFT JOIN permissions tp ON tp.id = rtp.permission_id
	WHERE pr.identity_id = $1
	GROUP BY org_r.id, org_r.name
	ORDER BY org_r.name`

const overridesQuery = `
	SELECT o.org_role_id,
	       p.key AS permission,
	       o.effect
	FROM org_role_overrides o
	JOIN permissions p ON p.id = o.permission_id
	WHERE o.org_role_id = ANY($1)
	ORDER BY o.org_role_id, p.key`

// ListByIdentity returns every role grant the identity holds. Global grants
// come first, then org grants. Grants with no permissions at all are still
// returned; resolution happens in the domain layer.
func (r *GrantRepo) ListByIdentity(ctx context.Context, identityID string) ([]access.RoleGrant, error) {
	var grants []access.RoleGrant
	if err := withPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		globals, err := collectGrants(ctx, conn, globalGrantsQuery, identityID, func(row globalGrantRow) access.RoleGrant {
			return access.RoleGrant{
				RoleID:      row.RoleID,
				RoleName:    row.RoleName,
				Scope:       access.ScopeGlobal,
				Permissions: row.Permissions,
			}
		})
		if err != nil {
			return fmt.Errorf("load global grants: %w", err)
		}

		orgRows, err := queryRows[orgGrantRow](ctx, conn, orgGrantsQuery, identityID)
		if err != nil {
			return fmt.Errorf("load org grants: %w", err)
		}

		orgGrants, err := r.attachOverrides(ctx, conn, orgRows)
		if err != nil {
			return err
		}

		grants = append(globals, orgGrants...)
		return nil
	}); err != nil {
		return nil, err
	}
	return grants, nil
}

// attachOverrides loads the override rows for the given org roles and folds
// them into RoleGrant values.
func (r *GrantRepo) attachOverrides(ctx context.Context, conn *pgx.Conn, orgRows []orgGrantRow) ([]access.RoleGrant, error) {
	if len(orgRows) == 0 {
		return nil, nil
	}

	ids := make([]string, len(orgRows))
	for i, row := range orgRows {
		ids[i] = row.OrgRoleID
	}

	ovRows, err := queryRows[overrideRow](ctx, conn, overridesQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("load org role overrides: %w", err)
	}

	byRole := make(map[string][]access.PermissionOverride, len(orgRows))
	for _, ov := range ovRows {
		byRole[ov.OrgRoleID] = append(byRole[ov.OrgRoleID], access.PermissionOverride{
			Permission: ov.Permission,
			Effect:     access.OverrideEffect(ov.Effect),
		})
	}

	out := make([]access.RoleGrant, len(orgRows))
	for i, row := range orgRows {
		out[i] = access.RoleGrant{
			RoleID:              row.OrgRoleID,
			RoleName:            row.OrgRoleName,
			Scope:               access.ScopeOrg,
			Permissions:         row.Permissions,
			TemplatePermissions: row.TemplatePermissions,
			Overrides:           byRole[row.OrgRoleID],
		}
	}
	return out, nil
}

func collectGrants[T any](ctx context.Context, conn *pgx.Conn, query, identityID string, convert func(T) access.RoleGrant) ([]access.RoleGrant, error) {
	rows, err := queryRows[T](ctx, conn, query, identityID)
	if err != nil {
		return nil, err
	}
	out := make([]access.RoleGrant, len(rows))
	for i, row := range rows {
		out[i] = convert(row)
	}
	return out, nil
}

func queryRows[T any](ctx context.Context, conn *pgx.Conn, query string, args ...any) ([]T, error) {
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}
