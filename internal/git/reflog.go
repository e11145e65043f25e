package git

import (
	"regexp"
	"strings"
)

// ReflogEntry represents one entry from the reflog.
type ReflogEntry struct {
	Hash      string
	ShortHash string
	Selector  string // e.g. "HEAD@{0}"
	Index     int
	Action    string // e.g. "commit", "checkout", "reset"
	Message   string
}

// selectorRegex extracts the position from a "ref@{n}" selector.
var selectorRegex = regexp.MustCompile(`@\{(\d+)\}`)

// ReflogFormat is the --pretty=format string for structured reflog
// output. Fields: hash, short hash, selector, reflog subject.
func ReflogFormat() string {
	return PrettyFormat("%H", "%h", "%gd", "%gs")
}

// ParseReflog parses delimiter-protocol reflog output.
//
// The entry index comes from the bracketed position in the selector
// token; the action is the reflog subject's prefix before the first
// colon ("commit: msg", "checkout: moving from a to b"). Empty output
// yields an empty slice.
func ParseReflog(out string) []ReflogEntry {
	records := SplitRecords(out)
	entries := make([]ReflogEntry, 0, len(records))
	for _, record := range records {
		fields := SplitFields(record)
		if len(fields) < 4 {
			continue
		}

		entry := ReflogEntry{
			Hash:      strings.TrimSpace(fields[0]),
			ShortHash: strings.TrimSpace(fields[1]),
			Selector:  strings.TrimSpace(fields[2]),
		}
		entry.Index = parseSelectorIndex(entry.Selector)
		entry.Action, entry.Message = splitReflogSubject(strings.TrimSpace(fields[3]))

		entries = append(entries, entry)
	}
	return entries
}

func parseSelectorIndex(selector string) int {
	matches := selectorRegex.FindStringSubmatch(selector)
	if matches == nil {
		return 0
	}
	return parseCount(matches[1], "")
}

func splitReflogSubject(subject string) (action, message string) {
	action, message, found := strings.Cut(subject, ": ")
	if !found {
		return subject, ""
	}
	return action, message
}
