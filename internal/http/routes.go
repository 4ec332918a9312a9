package httpx

import (
	"log/slog"
	"net/http"

	"github.com/IHARC/stevi-portal/internal/service"
	"github.com/IHARC/stevi-portal/internal/service/areas"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth   *service.AuthService
	Access *service.AccessService

	BaseURL       string
	CookieDomain  string
	SessionCookie string
	Logger        *slog.Logger
}

// NewRouter creates and configures the portal's HTTP router. Every area and
// API route is wrapped by AccessGuard; only sign-in endpoints and health
// checks bypass it.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:           services.Auth,
		CookieDomain:  services.CookieDomain,
		SessionCookie: services.SessionCookie,
		BaseURL:       services.BaseURL,
		Logger:        services.Logger,
	}
	accessHandlers := &AccessHandlers{}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	mux.HandleFunc("GET "+areas.SignInPath, authHandlers.Login)
	mux.HandleFunc("GET /auth/callback", authHandlers.Callback)
	mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
	mux.HandleFunc("GET /auth/status", authHandlers.Status)

	guardOpts := GuardOptions{
		Sessions:   services.Auth,
		Access:     services.Access,
		CookieName: services.SessionCookie,
		Logger:     services.Logger,
	}

	// API paths carry no area of their own; they authenticate without path
	// classification so elevated callers are served, not redirected.
	api := http.NewServeMux()
	api.HandleFunc("GET /api/me", accessHandlers.Me)
	api.HandleFunc("GET /api/navigation", accessHandlers.Navigation)
	api.HandleFunc("GET /api/landing", accessHandlers.Landing)
	mux.Handle("/api/", APIGuard(guardOpts)(api))

	guarded := http.NewServeMux()
	guarded.HandleFunc("GET /", rootHandler)
	mux.Handle("/", AccessGuard(guardOpts)(guarded))

	var handler http.Handler = mux
	handler = Logging(loggerOrDefault(services.Logger))(handler)
	handler = Recover(loggerOrDefault(services.Logger))(handler)
	return handler
}

// rootHandler sends the bare origin to the caller's resolved landing area.
// Every other guarded path is already classified and allowed by the time it
// reaches here.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		snap := GetSnapshotFromContext(r.Context())
		area := areas.ResolveLanding(snap)
		http.Redirect(w, r, area.LandingPath(), http.StatusSeeOther)
		return
	}

	// Area pages are rendered by the SPA shell; the API carries the data.
	decision, _ := GetDecisionFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"area":       decision.Area,
		"is_preview": decision.IsPreview,
		"path":       r.URL.Path,
	})
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
