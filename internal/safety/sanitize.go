// Package safety validates paths, references, and working directories
// before any git command is built. Validation failures are raised as
// validation-error StructuredErrors directly, never routed through the
// classifier, because they are detected before a subprocess runs.
package safety

import (
	"path/filepath"
	"strings"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
)

// SanitizeOptions configures path sanitization.
type SanitizeOptions struct {
	// RootDir, when set, restricts sanitized paths to that directory
	// tree. Paths escaping the root are rejected.
	RootDir string
}

// SanitizePath canonicalizes a path and rejects traversal sequences,
// null bytes, and (when a root is configured) escapes from the root.
// The returned path is always absolute.
func SanitizePath(path string, opts SanitizeOptions) (string, error) {
	if path == "" {
		return "", giterr.Validation("sanitize", "path must not be empty", nil)
	}
	if strings.ContainsRune(path, 0) {
		return "", giterr.Validation("sanitize", "path contains a null byte", nil)
	}

	// Reject traversal before canonicalization: Clean would fold the
	// sequences away and hide the attempt.
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == ".." {
			return "", giterr.Validation("sanitize", "path contains a traversal sequence", map[string]string{"path": path})
		}
	}

	absolute, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", giterr.Validation("sanitize", "cannot resolve path: "+err.Error(), map[string]string{"path": path})
	}

	if opts.RootDir != "" {
		if err := checkWithinRoot(absolute, opts.RootDir); err != nil {
			return "", err
		}
	}

	return absolute, nil
}

// checkWithinRoot verifies candidate sits inside root.
func checkWithinRoot(candidate, root string) error {
	absoluteRoot, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return giterr.Validation("sanitize", "cannot resolve base directory: "+err.Error(), nil)
	}

	relative, err := filepath.Rel(absoluteRoot, candidate)
	if err != nil || relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return giterr.Validation("sanitize", "path escapes the configured base directory", map[string]string{
			"path": candidate,
			"root": absoluteRoot,
		})
	}
	return nil
}
