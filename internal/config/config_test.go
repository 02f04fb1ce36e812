package config

import (
	"log/slog"
	"testing"
)

func TestLogLevel_NamedLevels(t *testing.T) {
	cases := map[string]slog.Leveler{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		c := Config{Log: in}
		if got := c.LogLevel(); got != want {
			t.Fatalf("LogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogLevel_NumericLevel(t *testing.T) {
	c := Config{Log: "-4"}
	if got := c.LogLevel(); got != slog.Level(-4) {
		t.Fatalf("LogLevel(-4) = %v", got)
	}
}

func TestLoad_DefaultsWithEmptyEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "")

	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", c.HTTPAddr)
	}
	if c.GitHubWebhookSecret != "" {
		t.Fatalf("expected empty webhook secret, got %q", c.GitHubWebhookSecret)
	}
}

func TestLoad_AddrFromPort(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9999")

	if c := Load(); c.HTTPAddr != ":9999" {
		t.Fatalf("expected :9999, got %q", c.HTTPAddr)
	}
}
