package safety

import (
	"context"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
)

// SessionDirSentinel is the path value meaning "use the session's
// stored working directory".
const SessionDirSentinel = "."

// Resolver takes a caller-supplied path through the per-call
// Unresolved -> Resolved -> Sanitized progression. Nothing is
// persisted between calls; the session store owns durable state.
type Resolver struct {
	store SessionStore
	opts  SanitizeOptions
}

// NewResolver creates a Resolver backed by the given session store.
func NewResolver(store SessionStore, opts SanitizeOptions) *Resolver {
	return &Resolver{store: store, opts: opts}
}

// Resolve produces the sanitized absolute working directory for a
// call. An empty path or the sentinel consults the session store; a
// tenant without a stored directory is a terminal validation error,
// never silently defaulted to the server's own directory.
func (r *Resolver) Resolve(ctx context.Context, tenantID, requested string) (string, error) {
	resolved := requested
	if resolved == "" || resolved == SessionDirSentinel {
		stored, found, err := r.store.Get(ctx, tenantID)
		if err != nil {
			return "", giterr.Validation("resolve-working-dir", "session store lookup failed: "+err.Error(), nil)
		}
		if !found {
			return "", giterr.Validation("resolve-working-dir",
				"no working directory set for this session; call git_set_working_dir first",
				map[string]string{"tenant": tenantID},
			)
		}
		resolved = stored
	}

	return SanitizePath(resolved, r.opts)
}
