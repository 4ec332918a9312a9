package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	"github.com/IHARC/stevi-portal/internal/ports"
	"github.com/IHARC/stevi-portal/internal/service/areas"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionReader resolves a session ID into a session record.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*access.Session, error)
}

// SnapshotLoader reduces an identity to its access snapshot.
type SnapshotLoader interface {
	Load(ctx context.Context, ident *access.Identity) (*access.AccessSnapshot, error)
}

// PreviewQueryParam requests client-area preview for elevated callers.
const PreviewQueryParam = "preview"

// GuardOptions groups dependencies for AccessGuard.
type GuardOptions struct {
	Sessions   SessionReader
	Access     SnapshotLoader
	CookieName string
	Logger     *slog.Logger
}

// AccessGuard resolves the caller's session and snapshot, classifies the
// request path, and either forwards the request with session, snapshot, and
// decision in context or issues the decision's redirect. Snapshot load
// failures deny the request; the guard never falls through with partial
// access state.
func AccessGuard(opts GuardOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = "session_id"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, snap, ok := resolveCaller(w, r, opts, logger, cookieName)
			if !ok {
				return
			}

			previewRequested := r.URL.Query().Get(PreviewQueryParam) == "1"
			decision := areas.Classify(r.URL.Path, snap, previewRequested)
			if !decision.Allowed {
				http.Redirect(w, r, decision.RedirectPath, http.StatusSeeOther)
				return
			}

			ctx := SetSessionInContext(r.Context(), session)
			ctx = SetSnapshotInContext(ctx, snap)
			ctx = SetDecisionInContext(ctx, decision)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AreaQueryParam selects the active area for API endpoints, which carry no
// area of their own in the path.
const AreaQueryParam = "area"

// APIGuard authenticates JSON API requests. API paths never classify by
// prefix; instead the active area comes from the "area" query parameter when
// the caller is entitled to it, falling back to the caller's landing area.
// Anonymous callers pass through with no snapshot so handlers can answer
// 401; store failures deny the request just like AccessGuard.
func APIGuard(opts GuardOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = "session_id"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, snap, ok := resolveCaller(w, r, opts, logger, cookieName)
			if !ok {
				return
			}

			ctx := SetSessionInContext(r.Context(), session)
			ctx = SetSnapshotInContext(ctx, snap)
			if snap != nil {
				requested := access.Area(r.URL.Query().Get(AreaQueryParam))
				previewRequested := r.URL.Query().Get(PreviewQueryParam) == "1"
				ctx = SetDecisionInContext(ctx, areas.ResolveArea(snap, requested, previewRequested))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveCaller resolves the request's session and snapshot, writing a 503
// and reporting !ok when either store fails. An absent, unknown, or expired
// session resolves to (nil, nil, true): anonymous, not an error.
func resolveCaller(
	w http.ResponseWriter,
	r *http.Request,
	opts GuardOptions,
	logger *slog.Logger,
	cookieName string,
) (*access.Session, *access.AccessSnapshot, bool) {
	session, err := sessionFromRequest(r, opts.Sessions, cookieName)
	if err != nil {
		logger.ErrorContext(r.Context(), "session lookup failed", "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return nil, nil, false
	}
	if session == nil {
		return nil, nil, true
	}

	ident := &access.Identity{
		UserID:    session.UserID,
		FirstName: session.FirstName,
		LastName:  session.LastName,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}
	snap, err := opts.Access.Load(r.Context(), ident)
	if err != nil {
		logger.ErrorContext(r.Context(), "access snapshot load failed",
			"user_id", session.UserID, "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return nil, nil, false
	}
	return session, snap, true
}

// sessionFromRequest retrieves and validates a session from the request
// cookie. A missing cookie, unknown session, or expired session yields
// (nil, nil): the caller is anonymous. Any other error is a store failure
// and must not be downgraded to anonymity.
func sessionFromRequest(r *http.Request, sessions SessionReader, cookieName string) (*access.Session, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}
	session, err := sessions.GetSession(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) || errors.Is(err, ports.ErrSessionExpired) {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}
