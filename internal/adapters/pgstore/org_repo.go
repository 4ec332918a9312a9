package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	"github.com/IHARC/stevi-portal/internal/ports"
)

// OrgRepo provides read access to organizations and their feature flags.
type OrgRepo struct {
	DB *sql.DB
}

// NewOrgRepo creates a new OrgRepo.
func NewOrgRepo(db *sql.DB) *OrgRepo {
	return &OrgRepo{DB: db}
}

type orgRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Active       bool   `db:"active"`
	FeatureFlags []byte `db:"feature_flags"`
}

const orgGetQuery = `
	SELECT id, name, active, feature_flags
	FROM organizations
	WHERE id = $1`

// Get returns the organization with its flag document reduced to the portal's
// FeatureFlags. Returns ports.ErrOrganizationNotFound when no row exists.
func (r *OrgRepo) Get(ctx context.Context, orgID string) (access.Organization, error) {
	var row orgRow
	err := withPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, orgGetQuery, orgID)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[orgRow])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.Organization{}, fmt.Errorf("%w: %s", ports.ErrOrganizationNotFound, orgID)
		}
		return access.Organization{}, fmt.Errorf("get organization: %w", err)
	}

	flags, err := resolveFlags(row.FeatureFlags)
	if err != nil {
		return access.Organization{}, fmt.Errorf("organization %s: %w", orgID, err)
	}

	return access.Organization{
		ID:     row.ID,
		Name:   row.Name,
		Active: row.Active,
		Flags:  flags,
	}, nil
}

// resolveFlags reduces a raw flag document to the portal's closed flag set.
func resolveFlags(raw []byte) (access.FeatureFlags, error) {
	doc, err := decodeFlagDocument(raw)
	if err != nil {
		return access.FeatureFlags{}, err
	}

	var flags access.FeatureFlags
	if flags.TimeTracking, err = extractFlag(doc, flagTimeTrackingExpr); err != nil {
		return access.FeatureFlags{}, err
	}
	if flags.Donations, err = extractFlag(doc, flagDonationsExpr); err != nil {
		return access.FeatureFlags{}, err
	}
	if flags.Inventory, err = extractFlag(doc, flagInventoryExpr); err != nil {
		return access.FeatureFlags{}, err
	}
	return flags, nil
}
