package git

import "strings"

// ParseNameOnly parses `--name-only` output (show, diff) into a list
// of paths, dropping blank lines. Empty output yields an empty slice.
func ParseNameOnly(out string) []string {
	files := []string{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files
}
