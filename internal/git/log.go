package git

import (
	"strconv"
	"strings"
	"time"
)

// Commit represents one commit parsed from structured log output.
type Commit struct {
	Hash        string    // Full 40-character hash
	ShortHash   string    // Abbreviated hash (typically 7 chars)
	Author      string    // Author name
	AuthorEmail string    // Author email
	Date        time.Time // Author date
	Subject     string    // First line of the message
	Body        string    // Rest of the message, may be empty and multi-line
	Parents     []string  // Parent hashes; empty for the initial commit
}

// LogFormat is the --pretty=format string for structured log output.
// Fields: hash, short hash, author name, author email, author unix
// timestamp, parent hashes, subject, body.
func LogFormat() string {
	return PrettyFormat("%H", "%h", "%an", "%ae", "%at", "%P", "%s", "%b")
}

// ParseLog parses delimiter-protocol log output into commits.
// Empty output yields an empty slice, not an error.
func ParseLog(out string) []Commit {
	records := SplitRecords(out)
	commits := make([]Commit, 0, len(records))
	for _, record := range records {
		commit, ok := parseCommitRecord(record)
		if ok {
			commits = append(commits, commit)
		}
	}
	return commits
}

// ParseCommit parses a single delimiter-protocol record, as produced
// by show -s or log -1 with LogFormat.
func ParseCommit(out string) (Commit, bool) {
	records := SplitRecords(out)
	if len(records) == 0 {
		return Commit{}, false
	}
	return parseCommitRecord(records[0])
}

func parseCommitRecord(record string) (Commit, bool) {
	fields := SplitFields(record)
	if len(fields) < 8 {
		return Commit{}, false
	}

	timestamp, err := strconv.ParseInt(strings.TrimSpace(fields[4]), 10, 64)
	if err != nil {
		timestamp = 0
	}

	return Commit{
		Hash:        strings.TrimSpace(fields[0]),
		ShortHash:   strings.TrimSpace(fields[1]),
		Author:      strings.TrimSpace(fields[2]),
		AuthorEmail: strings.TrimSpace(fields[3]),
		Date:        time.Unix(timestamp, 0).UTC(),
		Parents:     splitParents(fields[5]),
		Subject:     strings.TrimSpace(fields[6]),
		Body:        strings.TrimRight(fields[7], "\n"),
	}, true
}

// splitParents splits the %P field into hashes. The field is a
// space-separated list; empty for the initial commit.
func splitParents(field string) []string {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return nil
	}
	return strings.Fields(trimmed)
}
