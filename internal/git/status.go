package git

import (
	"strconv"
	"strings"
)

// StatusSummary groups working-tree state from porcelain status output.
type StatusSummary struct {
	Branch     string
	Upstream   string
	Ahead      int
	Behind     int
	Staged     []string
	Unstaged   []string
	Untracked  []string
	Conflicted []string
	Clean      bool
}

// ParseStatus parses `git status --porcelain=v1 -b` output.
//
// The first line is the branch header ("## main...origin/main
// [ahead 1, behind 2]"); remaining lines carry two status code
// characters and a path. A clean tree yields Clean=true with empty
// lists rather than an error.
func ParseStatus(out string) StatusSummary {
	summary := StatusSummary{
		Staged:     []string{},
		Unstaged:   []string{},
		Untracked:  []string{},
		Conflicted: []string{},
	}

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "## ") {
			parseBranchHeader(strings.TrimPrefix(line, "## "), &summary)
			continue
		}
		if len(line) < 4 {
			continue
		}
		classifyStatusLine(line[0], line[1], strings.TrimSpace(line[3:]), &summary)
	}

	summary.Clean = len(summary.Staged) == 0 &&
		len(summary.Unstaged) == 0 &&
		len(summary.Untracked) == 0 &&
		len(summary.Conflicted) == 0
	return summary
}

func parseBranchHeader(header string, summary *StatusSummary) {
	// Strip the "[ahead N, behind M]" suffix first.
	if idx := strings.Index(header, " ["); idx >= 0 {
		parseAheadBehind(header[idx+2:len(header)-1], summary)
		header = header[:idx]
	}

	branch, upstream, found := strings.Cut(header, "...")
	summary.Branch = branch
	if found {
		summary.Upstream = upstream
	}
}

func parseAheadBehind(annotation string, summary *StatusSummary) {
	for _, part := range strings.Split(annotation, ",") {
		part = strings.TrimSpace(part)
		value, found := strings.CutPrefix(part, "ahead ")
		if found {
			summary.Ahead, _ = strconv.Atoi(value)
			continue
		}
		value, found = strings.CutPrefix(part, "behind ")
		if found {
			summary.Behind, _ = strconv.Atoi(value)
		}
	}
}

func classifyStatusLine(index, worktree byte, path string, summary *StatusSummary) {
	switch {
	case index == '?' && worktree == '?':
		summary.Untracked = append(summary.Untracked, path)
	case isConflictCode(index, worktree):
		summary.Conflicted = append(summary.Conflicted, path)
	default:
		if index != ' ' {
			summary.Staged = append(summary.Staged, path)
		}
		if worktree != ' ' {
			summary.Unstaged = append(summary.Unstaged, path)
		}
	}
}

// isConflictCode reports whether an XY status pair marks an unmerged
// path (DD, AU, UD, UA, DU, AA, UU).
func isConflictCode(index, worktree byte) bool {
	if index == 'U' || worktree == 'U' {
		return true
	}
	return (index == 'D' && worktree == 'D') || (index == 'A' && worktree == 'A')
}
