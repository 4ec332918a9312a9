package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNextPath(t *testing.T) {
	const base = "https://portal.example.com"

	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{name: "empty", candidate: "", want: "/"},
		{name: "relative path", candidate: "/staff/cases", want: "/staff/cases"},
		{name: "relative path with query", candidate: "/home?tab=open", want: "/home?tab=open"},
		{name: "relative without leading slash", candidate: "staff", want: "/"},
		{name: "scheme relative", candidate: "//evil.example/x", want: "/"},
		{name: "absolute same host", candidate: "https://portal.example.com/org", want: "/org"},
		{name: "absolute same registrable domain", candidate: "https://docs.example.com/admin", want: "/admin"},
		{name: "absolute foreign host", candidate: "https://evil.example.net/", want: "/"},
		{name: "javascript scheme", candidate: "javascript:alert(1)", want: "/"},
		{name: "absolute without path", candidate: "https://example.com", want: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeNextPath(tt.candidate, base))
		})
	}
}

func TestSafeNextPath_LocalhostBase(t *testing.T) {
	const base = "http://localhost:8080"

	assert.Equal(t, "/home", SafeNextPath("http://localhost:8080/home", base))
	assert.Equal(t, "/", SafeNextPath("http://evil.example.com/home", base))
	assert.Equal(t, "/cases", SafeNextPath("/cases", base))
}
