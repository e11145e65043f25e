package git

import (
	"strconv"
	"strings"
	"time"
)

// BlameLine attributes one line of a file to the commit that last
// changed it.
type BlameLine struct {
	Hash      string
	Author    string
	Email     string
	Date      time.Time
	Line      int // final line number in the blamed file
	Content   string
	Committed bool // false for not-yet-committed lines (all-zero hash)
}

// uncommittedHash is what blame reports for working-tree changes.
const uncommittedHash = "0000000000000000000000000000000000000000"

// ParseBlame parses `git blame --line-porcelain` output.
//
// Each line group starts with "<hash> <orig> <final> [span]", is
// followed by header lines (author, author-mail, author-time, ...),
// and ends with a tab-prefixed content line. Header values repeat for
// every line, so no commit-level state needs to be carried between
// groups. Empty output yields an empty slice.
func ParseBlame(out string) []BlameLine {
	lines := []BlameLine{}
	var current BlameLine

	for _, raw := range strings.Split(out, "\n") {
		if strings.HasPrefix(raw, "\t") {
			current.Content = strings.TrimPrefix(raw, "\t")
			lines = append(lines, current)
			current = BlameLine{}
			continue
		}

		key, value, _ := strings.Cut(raw, " ")
		switch key {
		case "author":
			current.Author = value
		case "author-mail":
			current.Email = strings.Trim(value, "<>")
		case "author-time":
			if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
				current.Date = time.Unix(ts, 0).UTC()
			}
		default:
			if isBlameHeader(key) {
				current.Hash = key
				current.Committed = key != uncommittedHash
				current.Line = blameFinalLine(value)
			}
		}
	}

	return lines
}

// isBlameHeader reports whether a token is a 40-char hex hash opening
// a new line group.
func isBlameHeader(token string) bool {
	if len(token) != 40 {
		return false
	}
	for _, ch := range token {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return false
		}
	}
	return true
}

// blameFinalLine extracts the final line number from the header's
// "<orig> <final> [span]" remainder.
func blameFinalLine(rest string) int {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return 0
	}
	line, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0
	}
	return line
}
