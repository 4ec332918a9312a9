package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_DefaultsParse(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse defaults: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.Mode != AuthModeOAuth {
		t.Errorf("default auth mode = %q, want oauth", cfg.Auth.Mode)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Name != "portal" {
		t.Errorf("default db name = %q, want portal", cfg.Postgres.Name)
	}
	if cfg.Session.TTL != 8*time.Hour {
		t.Errorf("default session TTL = %v, want 8h", cfg.Session.TTL)
	}
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input     string
		want      AuthMode
		expectErr bool
	}{
		{input: "oauth", want: AuthModeOAuth},
		{input: "OAuth", want: AuthModeOAuth},
		{input: "mock", want: AuthModeMock},
		{input: "MOCK", want: AuthModeMock},
		{input: "ldap", expectErr: true},
		{input: "", expectErr: true},
	}
	for _, tt := range tests {
		var mode AuthMode
		err := mode.UnmarshalText([]byte(tt.input))
		if tt.expectErr {
			if err == nil {
				t.Errorf("UnmarshalText(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("UnmarshalText(%q): %v", tt.input, err)
			continue
		}
		if mode != tt.want {
			t.Errorf("UnmarshalText(%q) = %q, want %q", tt.input, mode, tt.want)
		}
	}
}

func TestAuthMode_ParsesFromEnv(t *testing.T) {
	t.Setenv("AUTH_MODE", "mock")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Auth.Mode != AuthModeMock {
		t.Errorf("auth mode = %q, want mock", cfg.Auth.Mode)
	}
}

func TestSessionConfig_SanitizeClampsValues(t *testing.T) {
	s := SessionConfig{CookieName: "", TTL: -time.Hour, KeyPrefix: ""}
	s.Sanitize()

	if s.CookieName != "portal_session" {
		t.Errorf("cookie name = %q", s.CookieName)
	}
	if s.TTL != time.Minute {
		t.Errorf("ttl = %v, want 1m floor", s.TTL)
	}
	if s.KeyPrefix != "session:" {
		t.Errorf("key prefix = %q", s.KeyPrefix)
	}
}

func TestHTTPConfig_SanitizeDefaultsTimeouts(t *testing.T) {
	h := HTTPConfig{ReadHeaderTimeout: 0, ShutdownTimeout: -time.Second}
	h.Sanitize()

	if h.ReadHeaderTimeout != 10*time.Second {
		t.Errorf("read header timeout = %v", h.ReadHeaderTimeout)
	}
	if h.ShutdownTimeout != 15*time.Second {
		t.Errorf("shutdown timeout = %v", h.ShutdownTimeout)
	}
}

func TestAppConfig_DetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("expected dev mode from NODE_ENV=development")
	}
}
