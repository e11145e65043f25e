package git

import (
	"regexp"
	"strconv"
	"strings"
)

// StashEntry represents one entry from the stash list.
type StashEntry struct {
	Index   int
	Ref     string // e.g. "stash@{0}"
	Branch  string // branch the stash was made on, if recorded
	Message string
}

// stashRefRegex extracts the index from a "stash@{n}" selector.
var stashRefRegex = regexp.MustCompile(`^stash@\{(\d+)\}$`)

// ParseStashList parses `git stash list` output.
//
// Lines look like "stash@{0}: WIP on main: abc1234 subject" or
// "stash@{1}: On feature: custom message". An empty stash yields an
// empty slice, not an error.
func ParseStashList(out string) []StashEntry {
	entries := []StashEntry{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entry, ok := parseStashLine(line)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseStashLine(line string) (StashEntry, bool) {
	ref, rest, found := strings.Cut(line, ": ")
	if !found {
		return StashEntry{}, false
	}

	matches := stashRefRegex.FindStringSubmatch(ref)
	if matches == nil {
		return StashEntry{}, false
	}
	index, err := strconv.Atoi(matches[1])
	if err != nil {
		return StashEntry{}, false
	}

	entry := StashEntry{Index: index, Ref: ref, Message: rest}

	// "WIP on <branch>: msg" / "On <branch>: msg" record the branch.
	for _, prefix := range []string{"WIP on ", "On "} {
		if !strings.HasPrefix(rest, prefix) {
			continue
		}
		branch, message, ok := strings.Cut(strings.TrimPrefix(rest, prefix), ": ")
		if ok {
			entry.Branch = branch
			entry.Message = message
		}
		break
	}

	return entry, true
}
