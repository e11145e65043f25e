package git

import "strings"

// Delimiter protocol.
//
// Multi-field, multi-line git output (log, show, reflog) is made
// machine-splittable by embedding sentinel sequences in custom
// --pretty=format strings. The sentinels wrap ASCII unit/record
// separator control bytes, which do not occur in authored text; the
// surrounding markers keep a lone control byte inside a commit body
// from being mistaken for a delimiter.
//
// Parsing always splits on the record delimiter first, then the field
// delimiter within each record, trimming the trailing empty record the
// final delimiter produces. Every multi-record and multi-field parser
// in this package goes through SplitRecords/SplitFields; the protocol
// is implemented exactly once.
const (
	// FieldDelim separates fields within one record.
	FieldDelim = "\x1f<<F>>\x1f"
	// RecordDelim separates records.
	RecordDelim = "\x1e<<R>>\x1e"
)

// Git expands %x1f/%x1e to the raw control bytes inside format strings.
const (
	fieldToken  = "%x1f<<F>>%x1f"
	recordToken = "%x1e<<R>>%x1e"
)

// PrettyFormat joins git format placeholders with the field delimiter
// and terminates the record, for use as --pretty=format:<result>.
func PrettyFormat(placeholders ...string) string {
	return strings.Join(placeholders, fieldToken) + recordToken
}

// SplitRecords splits raw output on the record delimiter, dropping the
// trailing empty record and any whitespace-only records.
func SplitRecords(out string) []string {
	if out == "" {
		return nil
	}
	var records []string
	for _, record := range strings.Split(out, RecordDelim) {
		if strings.TrimSpace(record) == "" {
			continue
		}
		records = append(records, strings.TrimPrefix(record, "\n"))
	}
	return records
}

// SplitFields splits a single record on the field delimiter.
// Field content is preserved verbatim; multi-line fields keep their
// newlines.
func SplitFields(record string) []string {
	return strings.Split(record, FieldDelim)
}
