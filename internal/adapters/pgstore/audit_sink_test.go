package pgstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IHARC/stevi-portal/internal/ports"
	"github.com/IHARC/stevi-portal/internal/testutil"
)

func TestAuditSink_RecordPersistsEvent(t *testing.T) {
	db := testutil.SetupAutoDB(t)
	defer testutil.TeardownTestDB(t, db)

	sink := NewAuditSink(db, nil)
	sink.Record(context.Background(), ports.AuditEvent{
		Actor:     "ident-123",
		Action:    "profile.provisioned",
		EntityRef: "profile:abc",
		Meta:      map[string]any{"display_name": "Jordan Rivera"},
	})

	var (
		actor, action, entityRef string
		meta                     []byte
	)
	require.Eventually(t, func() bool {
		err := db.QueryRowContext(context.Background(), `
			SELECT actor, action, entity_ref, meta FROM audit_events WHERE action = $1`,
			"profile.provisioned").Scan(&actor, &action, &entityRef, &meta)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond, "audit event should appear")

	assert.Equal(t, "ident-123", actor)
	assert.Equal(t, "profile:abc", entityRef)
	assert.Contains(t, string(meta), "Jordan Rivera")
}

func TestAuditSink_RecordSurvivesCancelledRequestContext(t *testing.T) {
	db := testutil.SetupAutoDB(t)
	defer testutil.TeardownTestDB(t, db)

	sink := NewAuditSink(db, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Record(ctx, ports.AuditEvent{Actor: "ident-9", Action: "session.revoked"})

	require.Eventually(t, func() bool {
		var n int
		err := db.QueryRowContext(context.Background(),
			`SELECT count(*) FROM audit_events WHERE action = 'session.revoked'`).Scan(&n)
		return err == nil && n == 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestAuditSink_NilMetaWritesEmptyDocument(t *testing.T) {
	db := testutil.SetupAutoDB(t)
	defer testutil.TeardownTestDB(t, db)

	sink := NewAuditSink(db, nil)
	sink.write(context.Background(), ports.AuditEvent{Actor: "ident-1", Action: "login"})

	var meta []byte
	require.NoError(t, db.QueryRowContext(context.Background(),
		`SELECT meta FROM audit_events WHERE action = 'login'`).Scan(&meta))
	assert.JSONEq(t, `{}`, string(meta))
}
