package httpx

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SafeNextPath reduces a candidate post-login destination to a same-site
// relative path. Relative paths starting with "/" pass through. Absolute URLs
// are accepted only when their registrable domain matches the configured base
// URL, and are reduced to path+query so the redirect stays on our host.
// Anything else collapses to "/".
func SafeNextPath(candidate, baseURL string) string {
	if candidate == "" {
		return "/"
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return "/"
	}

	// Scheme-relative references ("//evil.example/x") carry a host without
	// being absolute; reject them outright.
	if !u.IsAbs() {
		if u.Host != "" {
			return "/"
		}
		if !strings.HasPrefix(u.Path, "/") {
			return "/"
		}
		return u.RequestURI()
	}

	if !sameRegistrableDomain(u, baseURL) {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return u.RequestURI()
}

// sameRegistrableDomain reports whether the candidate URL and the configured
// base URL share an eTLD+1. Exact host match short-circuits so internal hosts
// (localhost, bare service names) work without a public suffix entry.
func sameRegistrableDomain(u *url.URL, baseURL string) bool {
	base, err := url.Parse(baseURL)
	if err != nil || base.Hostname() == "" {
		return false
	}

	candidateHost := strings.ToLower(u.Hostname())
	baseHost := strings.ToLower(base.Hostname())
	if candidateHost == baseHost {
		return true
	}

	candidateDomain, err := publicsuffix.EffectiveTLDPlusOne(candidateHost)
	if err != nil {
		return false
	}
	baseDomain, err := publicsuffix.EffectiveTLDPlusOne(baseHost)
	if err != nil {
		return false
	}
	return candidateDomain == baseDomain
}
