package git

import (
	"regexp"
	"strconv"
	"strings"
)

// BranchInfo represents one branch from a verbose branch listing.
type BranchInfo struct {
	Name       string
	Current    bool
	Remote     bool
	CommitHash string
	Upstream   string
	Ahead      int
	Behind     int
}

// trackingRegex matches the upstream annotation in branch -vv output,
// e.g. "[origin/main: ahead 2, behind 1]" or "[origin/main: gone]".
var trackingRegex = regexp.MustCompile(`^\[([^:\]]+)(?::\s*(.*))?\]`)

// ParseBranches parses `git branch -vv --all` output.
//
// Lines carrying a "remotes/" prefix are remote branches; the leading
// "* " marker flags the current branch. Detached-HEAD annotations and
// symbolic ref lines ("remotes/origin/HEAD -> origin/main") are
// skipped rather than treated as parse errors. Empty output yields an
// empty slice.
func ParseBranches(out string) []BranchInfo {
	var branches []BranchInfo
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		branch, ok := parseBranchLine(line)
		if ok {
			branches = append(branches, branch)
		}
	}
	if branches == nil {
		return []BranchInfo{}
	}
	return branches
}

func parseBranchLine(line string) (BranchInfo, bool) {
	current := strings.HasPrefix(line, "* ")
	line = strings.TrimSpace(strings.TrimPrefix(line, "* "))

	// "(HEAD detached at abc1234)" is informational, not a branch.
	if strings.HasPrefix(line, "(") {
		return BranchInfo{}, false
	}
	// Symbolic refs point elsewhere; they carry no commit of their own.
	if strings.Contains(line, " -> ") {
		return BranchInfo{}, false
	}

	name, rest := splitBranchName(line)
	if name == "" {
		return BranchInfo{}, false
	}

	remote := strings.HasPrefix(name, "remotes/")
	name = strings.TrimPrefix(name, "remotes/")

	branch := BranchInfo{
		Name:    name,
		Current: current,
		Remote:  remote,
	}

	fields := strings.Fields(rest)
	if len(fields) > 0 {
		branch.CommitHash = fields[0]
	}

	if idx := strings.Index(rest, "["); idx >= 0 {
		parseTracking(rest[idx:], &branch)
	}

	return branch, true
}

// splitBranchName splits a branch line into the name and the rest
// (hash plus subject). Branch names cannot contain spaces.
func splitBranchName(line string) (name, rest string) {
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx:])
}

// parseTracking fills upstream/ahead/behind from a "[...]" annotation.
func parseTracking(segment string, branch *BranchInfo) {
	matches := trackingRegex.FindStringSubmatch(segment)
	if matches == nil {
		return
	}
	branch.Upstream = matches[1]
	for _, part := range strings.Split(matches[2], ",") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "ahead "):
			branch.Ahead = parseCount(part, "ahead ")
		case strings.HasPrefix(part, "behind "):
			branch.Behind = parseCount(part, "behind ")
		}
	}
}

func parseCount(part, prefix string) int {
	count, err := strconv.Atoi(strings.TrimPrefix(part, prefix))
	if err != nil {
		return 0
	}
	return count
}
