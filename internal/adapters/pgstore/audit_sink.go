package pgstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/IHARC/stevi-portal/internal/ports"
)

// AuditSink persists audit events to the audit_events table. Record is
// fire-and-forget: failures are logged and never surfaced to the caller, so
// an audit outage cannot fail a request.
type AuditSink struct {
	DB           *sql.DB
	Logger       *slog.Logger
	timeProvider TimeProvider

	// writeTimeout bounds the detached insert.
	writeTimeout time.Duration
}

// NewAuditSink creates a new AuditSink.
func NewAuditSink(db *sql.DB, logger *slog.Logger) *AuditSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditSink{
		DB:           db,
		Logger:       logger.With("component", "audit"),
		timeProvider: RealTimeProvider{},
		writeTimeout: 5 * time.Second,
	}
}

// Record writes the event asynchronously. The insert is detached from the
// request context so a cancelled request still leaves an audit trail.
func (s *AuditSink) Record(ctx context.Context, event ports.AuditEvent) {
	detached := context.WithoutCancel(ctx)
	go s.write(detached, event)
}

func (s *AuditSink) write(ctx context.Context, event ports.AuditEvent) {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	meta, err := json.Marshal(event.Meta)
	if err != nil {
		s.Logger.ErrorContext(ctx, "marshal audit meta failed",
			"action", event.Action, "err", err)
		meta = []byte("{}")
	}
	if event.Meta == nil {
		meta = []byte("{}")
	}

	err = withPgxConn(ctx, s.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO audit_events (id, actor, action, entity_ref, meta, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(),
			event.Actor,
			event.Action,
			event.EntityRef,
			meta,
			s.timeProvider.Now().UTC(),
		)
		return execErr
	})
	if err != nil {
		s.Logger.ErrorContext(ctx, "audit write failed",
			"action", event.Action,
			"actor", event.Actor,
			"err", mapWriteErr(err))
	}
}
