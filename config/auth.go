package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"portal"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"portal"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID    string   `env:"USER_ID"    envDefault:"dev-user"`
	Email     string   `env:"EMAIL"      envDefault:"dev@example.com"`
	FirstName string   `env:"FIRST_NAME" envDefault:"Dev"`
	LastName  string   `env:"LAST_NAME"  envDefault:"User"`
	Groups    []string `env:"GROUPS"     envDefault:""              envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// SessionConfig controls server-side session behavior.
type SessionConfig struct {
	// CookieName is the session cookie name.
	CookieName string `env:"COOKIE_NAME" envDefault:"portal_session"`

	// TTL is the maximum session lifetime. The effective lifetime is the
	// smaller of this value and the IdP token expiry.
	TTL time.Duration `env:"TTL" envDefault:"8h"`

	// KeyPrefix namespaces session keys in Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"session:"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.CookieName == "" {
		s.CookieName = "portal_session"
	}
	if s.TTL < time.Minute {
		s.TTL = time.Minute
	}
	if s.KeyPrefix == "" {
		s.KeyPrefix = "session:"
	}
}
