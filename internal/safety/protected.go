package safety

import (
	"strings"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
)

// DefaultProtectedRefs are the branch names guarded against
// destructive operations unless explicitly overridden in settings.
var DefaultProtectedRefs = []string{"main", "master", "develop", "production"}

// Guard rejects destructive operations against protected references
// unless the caller supplies an explicit confirmation flag.
type Guard struct {
	protected map[string]bool
}

// NewGuard creates a Guard for the given reference names. A nil or
// empty list falls back to DefaultProtectedRefs.
func NewGuard(refs []string) *Guard {
	if len(refs) == 0 {
		refs = DefaultProtectedRefs
	}
	protected := make(map[string]bool, len(refs))
	for _, ref := range refs {
		protected[normalizeRef(ref)] = true
	}
	return &Guard{protected: protected}
}

// IsProtected reports whether a reference name is guarded.
func (g *Guard) IsProtected(ref string) bool {
	return g.protected[normalizeRef(ref)]
}

// CheckDestructive validates a destructive operation (force push,
// force delete, hard reset, history rewrite) against a reference.
// Protected references require confirmed=true; everything else
// proceeds.
func (g *Guard) CheckDestructive(op, ref string, confirmed bool) error {
	if !g.IsProtected(ref) || confirmed {
		return nil
	}
	return giterr.Validation(op,
		"destructive operation on protected branch '"+normalizeRef(ref)+"' requires explicit confirmation",
		map[string]string{"branch": normalizeRef(ref)},
	)
}

// normalizeRef strips ref namespaces so "refs/heads/main" and
// "origin/main" both guard as "main".
func normalizeRef(ref string) string {
	ref = strings.TrimPrefix(ref, "refs/heads/")
	ref = strings.TrimPrefix(ref, "refs/remotes/")
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		ref = ref[idx+1:]
	}
	return ref
}
