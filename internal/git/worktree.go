package git

import "strings"

// WorktreeInfo represents one worktree from porcelain listing output.
type WorktreeInfo struct {
	Path     string
	Head     string
	Branch   string
	Bare     bool
	Detached bool
	Locked   bool
	Prunable bool
	Reason   string // lock or prune reason, when git reports one
}

// ParseWorktrees parses `git worktree list --porcelain` output.
//
// Records are separated by blank lines; each record is a set of
// "key value" lines (worktree, HEAD, branch) plus bare keyword lines
// (bare, detached, locked, prunable) that are booleans, not pairs.
// Keyword lines may still carry an optional reason.
func ParseWorktrees(out string) []WorktreeInfo {
	worktrees := []WorktreeInfo{}
	current := WorktreeInfo{}
	seen := false

	flush := func() {
		if seen {
			worktrees = append(worktrees, current)
		}
		current = WorktreeInfo{}
		seen = false
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "worktree":
			current.Path = value
			seen = true
		case "HEAD":
			current.Head = value
		case "branch":
			current.Branch = strings.TrimPrefix(value, "refs/heads/")
		case "bare":
			current.Bare = true
		case "detached":
			current.Detached = true
		case "locked":
			current.Locked = true
			current.Reason = value
		case "prunable":
			current.Prunable = true
			current.Reason = value
		}
	}
	flush()

	return worktrees
}
