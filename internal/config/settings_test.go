package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	settings := Defaults()
	if settings.DefaultBranch != "main" {
		t.Errorf("DefaultBranch = %q, want main", settings.DefaultBranch)
	}
	if settings.NetworkTimeout <= settings.LocalTimeout {
		t.Error("network timeout should exceed local timeout")
	}
	if len(settings.ProtectedBranches) == 0 {
		t.Error("defaults should protect branches")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		settings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if settings.DefaultBranch != "main" {
			t.Errorf("DefaultBranch = %q, want main", settings.DefaultBranch)
		}
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		content := "protectedBranches: [release]\nlocalTimeoutSeconds: 10\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		settings, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if len(settings.ProtectedBranches) != 1 || settings.ProtectedBranches[0] != "release" {
			t.Errorf("ProtectedBranches = %v", settings.ProtectedBranches)
		}
		if settings.LocalTimeout != 10*time.Second {
			t.Errorf("LocalTimeout = %v, want 10s", settings.LocalTimeout)
		}
		if settings.NetworkTimeout != 5*time.Minute {
			t.Errorf("NetworkTimeout = %v, want default", settings.NetworkTimeout)
		}
		if settings.MaxOutputBytes != 20<<20 {
			t.Errorf("MaxOutputBytes = %d, want default", settings.MaxOutputBytes)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() = nil error for invalid yaml")
		}
	})
}

func TestDir(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv("GITMCP_CONFIG_HOME", "/custom/gitmcp")
		if dir := Dir(); dir != "/custom/gitmcp" {
			t.Errorf("Dir() = %q, want /custom/gitmcp", dir)
		}
	})

	t.Run("xdg fallback", func(t *testing.T) {
		t.Setenv("GITMCP_CONFIG_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		if dir := Dir(); dir != filepath.Join("/xdg", "gitmcp") {
			t.Errorf("Dir() = %q", dir)
		}
	})
}
