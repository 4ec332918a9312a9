package areas

// Package areas implements the portal's workspace routing: mapping request
// paths to areas, authorizing entry, and resolving default landing areas.
// Everything here is pure; redirect issuance belongs to the HTTP layer.

import (
	"net/url"
	"sort"
	"strings"

	"github.com/IHARC/stevi-portal/internal/domain/access"
)

// SignInPath is where denied anonymous requests are sent. The originally
// requested path rides along as the "next" query parameter.
const SignInPath = "/auth/login"

// Decision is the outcome of classifying one request. Denial is a normal
// return value, never an error.
type Decision struct {
	Allowed      bool        `json:"allowed"`
	Area         access.Area `json:"area,omitempty"`
	IsPreview    bool        `json:"is_preview,omitempty"`
	RedirectPath string      `json:"redirect_path,omitempty"`
}

// areaPrefixes maps path prefixes to candidate areas. Classification picks
// the longest matching prefix; unmapped paths classify as client.
var areaPrefixes = []struct {
	prefix string
	area   access.Area
}{
	{"/staff", access.AreaStaff},
	{"/org", access.AreaOrg},
	{"/admin", access.AreaAdmin},
	{"/home", access.AreaClient},
	{"/cases", access.AreaClient},
	{"/appointments", access.AreaClient},
	{"/documents", access.AreaClient},
}

func init() {
	// Longest prefix first so lookup can take the first match.
	sort.SliceStable(areaPrefixes, func(i, j int) bool {
		return len(areaPrefixes[i].prefix) > len(areaPrefixes[j].prefix)
	})
}

// ClassifyPath maps a request path to its candidate area by longest prefix
// match. Unmapped paths default to the client area.
func ClassifyPath(path string) access.Area {
	for _, e := range areaPrefixes {
		if path == e.prefix || strings.HasPrefix(path, e.prefix+"/") {
			return e.area
		}
	}
	return access.AreaClient
}

// Classify authorizes entry into the area the path classifies to, given the
// caller's snapshot and whether preview was requested. A nil snapshot is the
// unauthenticated pseudo-state. Pure and deterministic: identical inputs
// always yield identical decisions.
func Classify(path string, snap *access.AccessSnapshot, previewRequested bool) Decision {
	if snap == nil {
		return Decision{Allowed: false, RedirectPath: SignInRedirect(path)}
	}

	area := ClassifyPath(path)
	if area == access.AreaClient {
		if !snap.Elevated() {
			return Decision{Allowed: true, Area: access.AreaClient}
		}
		// Elevated callers never default into the client area; preview is
		// the explicit carve-out.
		if !previewRequested || !PreviewAllowed(snap) {
			return Decision{Allowed: false, RedirectPath: ResolveLanding(snap).LandingPath()}
		}
		return Decision{Allowed: true, Area: access.AreaClient, IsPreview: true}
	}

	if snap.EntitledTo(area) {
		return Decision{Allowed: true, Area: area}
	}
	// Generic redirect: never reveal which elevated areas exist to an
	// under-privileged caller.
	return Decision{Allowed: false, RedirectPath: access.AreaClient.LandingPath()}
}

// SignInRedirect builds the sign-in path carrying the requested path as a
// return-to parameter.
func SignInRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return SignInPath
	}
	return SignInPath + "?next=" + url.QueryEscape(next)
}
