package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the settings file inside Dir().
const SettingsFile = "settings.yaml"

// Settings holds server-wide configuration.
type Settings struct {
	// ProtectedBranches are guarded against destructive operations.
	ProtectedBranches []string
	// BaseDir, when set, restricts every working directory to this
	// tree.
	BaseDir string
	// DefaultBranch is the initial branch name used by init/clone when
	// the caller does not specify one.
	DefaultBranch string
	// LocalTimeout bounds local operations; NetworkTimeout bounds
	// clone/fetch/push/pull.
	LocalTimeout   time.Duration
	NetworkTimeout time.Duration
	// MaxOutputBytes caps buffered stdout per invocation.
	MaxOutputBytes int64
	// SessionTTL bounds how long a session's working directory is
	// remembered.
	SessionTTL time.Duration
}

// fileSettings is the YAML shape of the settings file. Durations are
// plain integers (seconds/minutes) so the file stays editable without
// knowing Go duration syntax.
type fileSettings struct {
	ProtectedBranches     []string `yaml:"protectedBranches"`
	BaseDir               string   `yaml:"baseDir"`
	DefaultBranch         string   `yaml:"defaultBranch"`
	LocalTimeoutSeconds   int      `yaml:"localTimeoutSeconds"`
	NetworkTimeoutSeconds int      `yaml:"networkTimeoutSeconds"`
	MaxOutputBytes        int64    `yaml:"maxOutputBytes"`
	SessionTTLMinutes     int      `yaml:"sessionTTLMinutes"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		ProtectedBranches: []string{"main", "master", "develop", "production"},
		DefaultBranch:     "main",
		LocalTimeout:      30 * time.Second,
		NetworkTimeout:    5 * time.Minute,
		MaxOutputBytes:    20 << 20,
		SessionTTL:        8 * time.Hour,
	}
}

// Load reads settings from path. A missing file yields Defaults; a
// present file overrides only the fields it sets.
func Load(path string) (Settings, error) {
	settings := Defaults()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from Dir()
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var file fileSettings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Defaults(), fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if len(file.ProtectedBranches) > 0 {
		settings.ProtectedBranches = file.ProtectedBranches
	}
	if file.BaseDir != "" {
		settings.BaseDir = file.BaseDir
	}
	if file.DefaultBranch != "" {
		settings.DefaultBranch = file.DefaultBranch
	}
	if file.LocalTimeoutSeconds > 0 {
		settings.LocalTimeout = time.Duration(file.LocalTimeoutSeconds) * time.Second
	}
	if file.NetworkTimeoutSeconds > 0 {
		settings.NetworkTimeout = time.Duration(file.NetworkTimeoutSeconds) * time.Second
	}
	if file.MaxOutputBytes > 0 {
		settings.MaxOutputBytes = file.MaxOutputBytes
	}
	if file.SessionTTLMinutes > 0 {
		settings.SessionTTL = time.Duration(file.SessionTTLMinutes) * time.Minute
	}

	return settings, nil
}

// LoadDefault reads settings from the standard location.
func LoadDefault() (Settings, error) {
	dir := Dir()
	if dir == "" {
		return Defaults(), nil
	}
	return Load(filepath.Join(dir, SettingsFile))
}
