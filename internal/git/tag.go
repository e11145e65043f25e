package git

import "strings"

// TagInfo represents one tag from a for-each-ref listing.
type TagInfo struct {
	Name       string
	CommitHash string
	Annotation string // first line of the annotation; empty for lightweight tags
}

// TagListFormat is the --format string for `git for-each-ref refs/tags`.
// Fields: short ref name, target object, annotation subject.
func TagListFormat() string {
	return PrettyFormat("%(refname:short)", "%(objectname)", "%(contents:subject)")
}

// ParseTags parses delimiter-protocol for-each-ref output.
// A repository without tags yields an empty slice.
func ParseTags(out string) []TagInfo {
	records := SplitRecords(out)
	tags := make([]TagInfo, 0, len(records))
	for _, record := range records {
		fields := SplitFields(record)
		if len(fields) < 3 {
			continue
		}
		tags = append(tags, TagInfo{
			Name:       strings.TrimSpace(fields[0]),
			CommitHash: strings.TrimSpace(fields[1]),
			Annotation: strings.TrimSpace(fields[2]),
		})
	}
	return tags
}
