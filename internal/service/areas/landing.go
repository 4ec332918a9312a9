package areas

import "github.com/IHARC/stevi-portal/internal/domain/access"

// ResolveLanding picks the single default area for the caller, by strict
// priority: admin, then staff, then org, then client. The choice is
// re-validated through Classify so the computed landing path can never be
// rejected downstream; if that self-check fails the resolver falls back to
// the client area, whose entry rule is unconditionally satisfiable.
func ResolveLanding(snap *access.AccessSnapshot) access.Area {
	if snap == nil {
		return access.AreaClient
	}

	choice := access.AreaClient
	switch {
	case snap.EntitledTo(access.AreaAdmin):
		choice = access.AreaAdmin
	case snap.EntitledTo(access.AreaStaff):
		choice = access.AreaStaff
	case snap.EntitledTo(access.AreaOrg):
		choice = access.AreaOrg
	}
	if choice == access.AreaClient {
		return choice
	}

	if d := Classify(choice.LandingPath(), snap, false); !d.Allowed || d.Area != choice {
		return access.AreaClient
	}
	return choice
}

// ResolveArea authorizes an explicitly requested area without any path
// matching, for surfaces that carry no area of their own (the JSON API).
// The request is authorized through Classify against the area's landing
// path, so the preview carve-out and entitlement rules apply unchanged; a
// missing or unauthorized request falls back to the caller's landing area.
// For an authenticated caller the result is always an allowed decision.
func ResolveArea(snap *access.AccessSnapshot, requested access.Area, previewRequested bool) Decision {
	if snap == nil {
		return Decision{Allowed: false, RedirectPath: SignInPath}
	}

	if requested != "" {
		if d := Classify(requested.LandingPath(), snap, previewRequested); d.Allowed {
			return d
		}
	}
	return Classify(ResolveLanding(snap).LandingPath(), snap, false)
}
