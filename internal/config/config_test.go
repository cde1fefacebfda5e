package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvAppEnv, EnvHTTPPort, EnvPGHost, EnvPGPort, EnvPGUser, EnvPGPassword,
		EnvPGDatabase, EnvPGSSLMode, EnvQueryTimeoutMS, EnvRateLimitRPS, EnvRateLimitBurst,
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.HTTPPort != 8000 {
		t.Errorf("got port %d, want 8000", cfg.HTTPPort)
	}
	if cfg.PGHost != "localhost" || cfg.PGPort != 5432 {
		t.Errorf("unexpected postgres defaults: %s:%d", cfg.PGHost, cfg.PGPort)
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Errorf("got timeout %s, want 5s", cfg.QueryTimeout)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
		t.Errorf("unexpected rate limit defaults: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvHTTPPort, "9090")
	t.Setenv(EnvPGHost, "db.internal")
	t.Setenv(EnvPGPort, "5433")
	t.Setenv(EnvPGUser, "motorpool")
	t.Setenv(EnvPGPassword, "secret")
	t.Setenv(EnvPGDatabase, "fleet")
	t.Setenv(EnvPGSSLMode, "require")
	t.Setenv(EnvQueryTimeoutMS, "2500")
	t.Setenv(EnvRateLimitRPS, "2.5")
	t.Setenv(EnvRateLimitBurst, "5")

	cfg := Load()
	if cfg.AppEnv != "production" {
		t.Errorf("got env %q", cfg.AppEnv)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("got port %d", cfg.HTTPPort)
	}
	if cfg.QueryTimeout != 2500*time.Millisecond {
		t.Errorf("got timeout %s", cfg.QueryTimeout)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 5 {
		t.Errorf("unexpected rate limits: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	want := "host=db.internal port=5433 user=motorpool password=secret dbname=fleet sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN mismatch:\n got %s\nwant %s", got, want)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("got addr %q", cfg.Addr())
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHTTPPort, "not-a-port")
	t.Setenv(EnvQueryTimeoutMS, "-100")
	t.Setenv(EnvRateLimitRPS, "zero")

	cfg := Load()
	if cfg.HTTPPort != 8000 {
		t.Errorf("got port %d, want default 8000", cfg.HTTPPort)
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Errorf("got timeout %s, want default 5s", cfg.QueryTimeout)
	}
	if cfg.RateLimitRPS != 10 {
		t.Errorf("got rps %v, want default 10", cfg.RateLimitRPS)
	}
}
