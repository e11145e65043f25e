package safety

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
)

func wantValidationError(t *testing.T, err error) *giterr.StructuredError {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	var structured *giterr.StructuredError
	if !errors.As(err, &structured) {
		t.Fatalf("error = %T, want *giterr.StructuredError", err)
	}
	if structured.Kind != giterr.KindValidation {
		t.Fatalf("kind = %q, want validation-error", structured.Kind)
	}
	return structured
}

func TestSanitizePath(t *testing.T) {
	t.Run("absolute path passes", func(t *testing.T) {
		tmpDir := t.TempDir()
		got, err := SanitizePath(tmpDir, SanitizeOptions{})
		if err != nil {
			t.Fatalf("SanitizePath() error: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("SanitizePath() = %q, want absolute path", got)
		}
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := SanitizePath("subdir", SanitizeOptions{})
		if err != nil {
			t.Fatalf("SanitizePath() error: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("SanitizePath() = %q, want absolute path", got)
		}
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := SanitizePath("", SanitizeOptions{})
		wantValidationError(t, err)
	})

	t.Run("null byte rejected", func(t *testing.T) {
		_, err := SanitizePath("/tmp/x\x00y", SanitizeOptions{})
		wantValidationError(t, err)
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, err := SanitizePath("/tmp/../etc/passwd", SanitizeOptions{})
		wantValidationError(t, err)
	})

	t.Run("inside configured root passes", func(t *testing.T) {
		root := t.TempDir()
		inside := filepath.Join(root, "repo")
		got, err := SanitizePath(inside, SanitizeOptions{RootDir: root})
		if err != nil {
			t.Fatalf("SanitizePath() error: %v", err)
		}
		if got != inside {
			t.Errorf("SanitizePath() = %q, want %q", got, inside)
		}
	})

	t.Run("outside configured root rejected", func(t *testing.T) {
		root := t.TempDir()
		other := t.TempDir()
		_, err := SanitizePath(other, SanitizeOptions{RootDir: root})
		structured := wantValidationError(t, err)
		if structured.Details["root"] == "" {
			t.Errorf("details = %v, want root recorded", structured.Details)
		}
	})
}
