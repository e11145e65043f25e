package safety

import (
	"testing"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
)

func TestGuardCheckDestructive(t *testing.T) {
	guard := NewGuard(nil)

	t.Run("protected branch without confirmation is rejected", func(t *testing.T) {
		err := guard.CheckDestructive("branch-delete", "main", false)
		structured := wantValidationError(t, err)
		if structured.Details["branch"] != "main" {
			t.Errorf("details = %v, want offending branch", structured.Details)
		}
	})

	t.Run("protected branch with confirmation proceeds", func(t *testing.T) {
		if err := guard.CheckDestructive("branch-delete", "main", true); err != nil {
			t.Errorf("CheckDestructive() error: %v", err)
		}
	})

	t.Run("unprotected branch proceeds without confirmation", func(t *testing.T) {
		if err := guard.CheckDestructive("branch-delete", "feature", false); err != nil {
			t.Errorf("CheckDestructive() error: %v", err)
		}
	})

	t.Run("ref namespaces are normalized", func(t *testing.T) {
		for _, ref := range []string{"refs/heads/main", "origin/main", "refs/remotes/origin/master"} {
			if err := guard.CheckDestructive("push", ref, false); err == nil {
				t.Errorf("CheckDestructive(%q) = nil, want validation error", ref)
			}
		}
	})
}

func TestGuardCustomRefs(t *testing.T) {
	guard := NewGuard([]string{"release"})

	if !guard.IsProtected("release") {
		t.Error("IsProtected(release) = false, want true")
	}
	// Custom list replaces the defaults.
	if guard.IsProtected("main") {
		t.Error("IsProtected(main) = true, want false with custom list")
	}

	err := guard.CheckDestructive("reset", "release", false)
	if structured := wantValidationError(t, err); structured.Kind != giterr.KindValidation {
		t.Errorf("kind = %q", structured.Kind)
	}
}
