package provider

import "strings"

// firstField extracts the first whitespace-delimited token, typically
// a hash or ref name from single-line plumbing output.
func firstField(out string) string {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseCleanOutput extracts paths from git clean output. Lines look
// like "Removing build/" or, under -n, "Would remove build/".
func parseCleanOutput(out string) []string {
	removed := []string{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Removing "):
			removed = append(removed, strings.TrimPrefix(line, "Removing "))
		case strings.HasPrefix(line, "Would remove "):
			removed = append(removed, strings.TrimPrefix(line, "Would remove "))
		}
	}
	return removed
}
