package httpx

import (
	"errors"
	"net/http"

	"github.com/IHARC/stevi-portal/internal/service/areas"
	"github.com/IHARC/stevi-portal/internal/service/navigation"
)

// AccessHandlers serves the per-request access surface: the caller's
// snapshot, the navigation tree, and the landing resolution. All handlers
// assume AccessGuard ran and read only from context.
type AccessHandlers struct{}

// Me returns the caller's access snapshot with the active decision.
// GET /api/me.
func (h *AccessHandlers) Me(w http.ResponseWriter, r *http.Request) {
	snap := GetSnapshotFromContext(r.Context())
	if snap == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	decision, _ := GetDecisionFromContext(r.Context())

	WriteJSON(w, http.StatusOK, map[string]any{
		"snapshot":      snap,
		"area":          decision.Area,
		"is_preview":    decision.IsPreview,
		"write_allowed": snap.WriteAllowed() && !decision.IsPreview,
	})
}

// Navigation returns the capability-gated navigation for the active area.
// GET /api/navigation.
func (h *AccessHandlers) Navigation(w http.ResponseWriter, r *http.Request) {
	snap := GetSnapshotFromContext(r.Context())
	if snap == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	decision, ok := GetDecisionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "decision_missing",
			Err:     errors.New("request was not classified"),
		})
		return
	}

	nav := navigation.Build(navigation.BuildInput{
		Snapshot:  snap,
		Area:      decision.Area,
		IsPreview: decision.IsPreview,
	})
	WriteJSON(w, http.StatusOK, nav)
}

// Landing resolves the caller's default area and returns its landing path.
// GET /api/landing.
func (h *AccessHandlers) Landing(w http.ResponseWriter, r *http.Request) {
	snap := GetSnapshotFromContext(r.Context())
	if snap == nil {
		WriteJSON(w, http.StatusOK, map[string]string{"path": areas.SignInPath})
		return
	}

	area := areas.ResolveLanding(snap)
	WriteJSON(w, http.StatusOK, map[string]any{
		"area": area,
		"path": area.LandingPath(),
	})
}
