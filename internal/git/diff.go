package git

import (
	"regexp"
	"strconv"
	"strings"
)

// DiffSummary aggregates change statistics from diff --stat output.
type DiffSummary struct {
	FilesChanged int
	Insertions   int
	Deletions    int
	Binary       bool
}

// diffstatRegex matches the summary line of git diff --stat.
// Example: " 3 files changed, 45 insertions(+), 12 deletions(-)"
var diffstatRegex = regexp.MustCompile(`(\d+)\s+files?\s+changed(?:,\s+(\d+)\s+insertions?\(\+\))?(?:,\s+(\d+)\s+deletions?\(-\))?`)

// EmptyTreeHash is the hash of git's empty tree object, used as the
// diff base when a commit has no parent.
const EmptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// ParseDiffStat extracts file, insertion, and deletion counts from
// the summary line of `git diff --stat` output. Missing or empty
// output yields the zero summary.
func ParseDiffStat(out string) DiffSummary {
	summaryLine := lastNonEmptyLine(out)
	if summaryLine == "" {
		return DiffSummary{}
	}

	matches := diffstatRegex.FindStringSubmatch(summaryLine)
	if matches == nil {
		return DiffSummary{}
	}

	return DiffSummary{
		FilesChanged: matchInt(matches, 1),
		Insertions:   matchInt(matches, 2),
		Deletions:    matchInt(matches, 3),
	}
}

// IsBinaryDiff reports whether diff content includes a binary-file
// marker ("Binary files a/x and b/x differ").
func IsBinaryDiff(content string) bool {
	return strings.Contains(content, "Binary files")
}

// lastNonEmptyLine returns the last non-empty line of the output;
// the diffstat summary is always last.
func lastNonEmptyLine(out string) string {
	lines := strings.Split(out, "\n")
	for idx := len(lines) - 1; idx >= 0; idx-- {
		line := strings.TrimSpace(lines[idx])
		if line != "" {
			return line
		}
	}
	return ""
}

// matchInt extracts an int from a regex match group, returning 0 for
// missing groups.
func matchInt(matches []string, idx int) int {
	if idx >= len(matches) || matches[idx] == "" {
		return 0
	}
	val, err := strconv.Atoi(matches[idx])
	if err != nil {
		return 0
	}
	return val
}
