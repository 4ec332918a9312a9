package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	mocks "github.com/IHARC/stevi-portal/internal/mocks/access"
	"github.com/IHARC/stevi-portal/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MemorySessionStore, *mocks.StaticGrantStore) {
	t.Helper()

	provider := mocks.NewMockIdentityProvider()
	sessions := mocks.NewMemorySessionStore()
	grants := mocks.NewStaticGrantStore()

	auth := service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
	})
	accessSvc := service.NewAccessService(service.AccessServiceOptions{
		Profiles: mocks.NewMemoryProfileStore(),
		Grants:   grants,
		Orgs:     mocks.NewStaticOrgStore(),
		Audit:    mocks.NewRecordingAuditSink(),
	})

	router := NewRouter(RouterServices{
		Auth:    auth,
		Access:  accessSvc,
		BaseURL: testBaseURL,
		Logger:  discardLogger(),
	})
	return router, sessions, grants
}

func seedRouterSession(t *testing.T, sessions *mocks.MemorySessionStore, id string) {
	t.Helper()
	err := sessions.Save(context.Background(), access.Session{
		ID:        id,
		UserID:    "ident-router",
		Email:     "router@example.org",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
}

func TestRouter_HealthzBypassesGuard(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_AnonymousAreaRequestRedirectsToSignIn(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login?next=%2Fhome", rec.Header().Get("Location"))
}

func TestRouter_LoginEndpointReachableWithoutSession(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login?next=%2Fhome", nil))

	// Redirects to the identity provider, not back to sign-in.
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Location"))
}

func TestRouter_AuthenticatedRootRedirectsToLanding(t *testing.T) {
	router, sessions, _ := newTestRouter(t)
	seedRouterSession(t, sessions, "sess-1")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/home", rec.Header().Get("Location"))
}

func TestRouter_AuthenticatedMeEndpoint(t *testing.T) {
	router, sessions, _ := newTestRouter(t)
	seedRouterSession(t, sessions, "sess-2")

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-2"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"snapshot"`)
}

func staffRoleGrant() access.RoleGrant {
	return access.RoleGrant{
		RoleID:   "role-staff",
		RoleName: "Case Manager",
		Scope:    access.ScopeGlobal,
		Permissions: []string{
			access.PermStaffAreaAccess,
			access.PermManageCases,
		},
	}
}

func TestRouter_ElevatedCallerServedByAPI(t *testing.T) {
	router, sessions, grants := newTestRouter(t)
	seedRouterSession(t, sessions, "sess-staff")
	grants.Grants["ident-router"] = []access.RoleGrant{staffRoleGrant()}

	req := httptest.NewRequest(http.MethodGet, "/api/navigation", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-staff"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A staff caller gets staff navigation, not a redirect to /staff.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Casework")
}

func TestRouter_ElevatedCallerMeReportsLandingArea(t *testing.T) {
	router, sessions, grants := newTestRouter(t)
	seedRouterSession(t, sessions, "sess-staff")
	grants.Grants["ident-router"] = []access.RoleGrant{staffRoleGrant()}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-staff"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Area access.Area `json:"area"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, access.AreaStaff, body.Area)
}

func TestRouter_ElevatedCallerStillRedirectedOnAreaPages(t *testing.T) {
	router, sessions, grants := newTestRouter(t)
	seedRouterSession(t, sessions, "sess-staff")
	grants.Grants["ident-router"] = []access.RoleGrant{staffRoleGrant()}

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-staff"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Page routes keep area classification; only /api/* is exempt.
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/staff", rec.Header().Get("Location"))
}
