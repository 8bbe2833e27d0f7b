package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/artgrid/internal/itunes"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Endpoint != itunes.DefaultEndpoint {
		t.Fatalf("Endpoint = %q, want %q", cfg.Endpoint, itunes.DefaultEndpoint)
	}
	if cfg.Limit != itunes.DefaultLimit {
		t.Fatalf("Limit = %d, want %d", cfg.Limit, itunes.DefaultLimit)
	}
	if cfg.Media != itunes.DefaultMedia {
		t.Fatalf("Media = %q, want %q", cfg.Media, itunes.DefaultMedia)
	}
	if cfg.SwapInterval != 2*time.Second {
		t.Fatalf("SwapInterval = %v, want 2s", cfg.SwapInterval)
	}
	if cfg.RequestsPerMinute != defaultRequestsPerMinute {
		t.Fatalf("RequestsPerMinute = %d, want %d", cfg.RequestsPerMinute, defaultRequestsPerMinute)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
endpoint = "  http://localhost:8080/search  "
limit = 50
media = "  MOVIE "
swap_interval = "500ms"
collect_delay = "0s"
requests_per_minute = 0
log_file = "  ~/logs/artgrid.log  "
user_agent = " tester/1.0 "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Endpoint != "http://localhost:8080/search" {
		t.Fatalf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.Limit != 50 {
		t.Fatalf("Limit = %d, want 50", cfg.Limit)
	}
	if cfg.Media != itunes.MediaMovie {
		t.Fatalf("Media = %q, want %q", cfg.Media, itunes.MediaMovie)
	}
	if cfg.SwapInterval != 500*time.Millisecond {
		t.Fatalf("SwapInterval = %v, want 500ms", cfg.SwapInterval)
	}
	if cfg.CollectDelay != 0 {
		t.Fatalf("CollectDelay = %v, want 0", cfg.CollectDelay)
	}
	if cfg.RequestsPerMinute != 0 {
		t.Fatalf("RequestsPerMinute = %d, want 0", cfg.RequestsPerMinute)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.UserAgent != "tester/1.0" {
		t.Fatalf("UserAgent = %q, want %q", cfg.UserAgent, "tester/1.0")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
endpoint = "   "
media = ""
user_agent = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Endpoint != itunes.DefaultEndpoint {
		t.Fatalf("Endpoint = %q, want %q", cfg.Endpoint, itunes.DefaultEndpoint)
	}
	if cfg.Media != itunes.DefaultMedia {
		t.Fatalf("Media = %q, want %q", cfg.Media, itunes.DefaultMedia)
	}
	if cfg.UserAgent != defaultUserAgent {
		t.Fatalf("UserAgent = %q, want %q", cfg.UserAgent, defaultUserAgent)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `endpoint = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"limit below quota", `limit = 20`, "limit"},
		{"limit above max", `limit = 201`, "limit"},
		{"unknown media", `media = "vinyl"`, "media"},
		{"bad interval", `swap_interval = "soon"`, "swap_interval"},
		{"zero interval", `swap_interval = "0s"`, "swap_interval"},
		{"negative delay", `collect_delay = "-1ms"`, "collect_delay"},
		{"negative rate", `requests_per_minute = -3`, "requests_per_minute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want error mentioning %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
