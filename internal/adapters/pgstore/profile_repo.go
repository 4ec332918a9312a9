package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/IHARC/stevi-portal/internal/domain/access"
)

// ProfileRepo provides database operations for portal profiles.
type ProfileRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProfileRepo creates a new ProfileRepo with real time provider.
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewProfileRepoWithTimeProvider creates a new ProfileRepo with a custom time provider (useful for tests).
func NewProfileRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: tp}
}

type profileRow struct {
	ID                string    `db:"id"`
	IdentityID        string    `db:"identity_id"`
	DisplayName       string    `db:"display_name"`
	PositionTitle     string    `db:"position_title"`
	OrganizationID    *string   `db:"organization_id"`
	AffiliationType   string    `db:"affiliation_type"`
	AffiliationStatus string    `db:"affiliation_status"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	Inserted          bool      `db:"inserted"`
}

func (r profileRow) toDomain() access.Profile {
	return access.Profile{
		ID:                r.ID,
		IdentityID:        r.IdentityID,
		DisplayName:       r.DisplayName,
		PositionTitle:     r.PositionTitle,
		OrganizationID:    r.OrganizationID,
		AffiliationType:   access.AffiliationType(r.AffiliationType),
		AffiliationStatus: access.AffiliationStatus(r.AffiliationStatus),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Provision returns the profile for the identity, creating a default one on
// first visit. The upsert is a single statement so concurrent first visits
// converge on one row; (xmax = 0) distinguishes a fresh insert from a
// conflicting no-op update. The bool reports whether this call created the row.
func (r *ProfileRepo) Provision(ctx context.Context, ident access.Identity) (access.Profile, bool, error) {
	if strings.TrimSpace(ident.UserID) == "" {
		return access.Profile{}, false, fmt.Errorf("provision profile: identity UserID is required")
	}

	now := r.timeProvider.Now().UTC()
	var row profileRow
	if err := withPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO profiles (
				id, identity_id, display_name, position_title, affiliation_type, affiliation_status, created_at, updated_at
			) VALUES (
				$1, $2, $3, '', $4, $5, $6, $6
			)
			ON CONFLICT (identity_id) DO UPDATE SET updated_at = profiles.updated_at
			RETURNING id, identity_id, display_name, position_title, organization_id,
			          affiliation_type, affiliation_status, created_at, updated_at,
			          (xmax = 0) AS inserted
		`,
			uuid.New().String(),
			ident.UserID,
			defaultDisplayName(ident),
			string(access.AffiliationCommunity),
			string(access.AffiliationPending),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[profileRow])
		return err
	}); err != nil {
		return access.Profile{}, false, fmt.Errorf("provision profile: %w", mapWriteErr(err))
	}
	return row.toDomain(), row.Inserted, nil
}

// defaultDisplayName derives a display name from IdP claims, preferring the
// real name and falling back to email.
func defaultDisplayName(ident access.Identity) string {
	name := strings.TrimSpace(ident.FirstName)
	if last := strings.TrimSpace(ident.LastName); last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}
	if name == "" {
		name = ident.Email
	}
	return name
}
