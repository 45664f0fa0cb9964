package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_PATH", "UPLOADS_DIR", "SESSION_DURATION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %s, got %s", DefaultPort, cfg.Port)
	}
	if cfg.DatabasePath != DefaultDatabasePath {
		t.Errorf("expected default database path %s, got %s", DefaultDatabasePath, cfg.DatabasePath)
	}
	if cfg.UploadsDir != DefaultUploadsDir {
		t.Errorf("expected default uploads dir %s, got %s", DefaultUploadsDir, cfg.UploadsDir)
	}
	if cfg.SessionDuration != DefaultSessionDuration {
		t.Errorf("expected default session duration %v, got %v", DefaultSessionDuration, cfg.SessionDuration)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_DURATION", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.SessionDuration != 30*time.Minute {
		t.Errorf("expected 30m session duration, got %v", cfg.SessionDuration)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_DURATION", "whenever")

	if _, err := Load(); err == nil {
		t.Error("expected an error for an unparsable duration")
	}
}
