package git

import (
	"strings"
	"testing"
)

func TestPrettyFormat(t *testing.T) {
	format := PrettyFormat("%H", "%s")
	if !strings.Contains(format, "%x1f") {
		t.Errorf("PrettyFormat() = %q, want %%x1f field token", format)
	}
	if !strings.HasSuffix(format, "%x1e<<R>>%x1e") {
		t.Errorf("PrettyFormat() = %q, want record terminator", format)
	}
}

func TestSplitRecords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty output", in: "", want: 0},
		{name: "single record", in: "a" + RecordDelim, want: 1},
		{name: "two records", in: "a" + RecordDelim + "b" + RecordDelim, want: 2},
		{name: "trailing whitespace record", in: "a" + RecordDelim + "\n", want: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			records := SplitRecords(testCase.in)
			if len(records) != testCase.want {
				t.Errorf("SplitRecords() len = %d, want %d", len(records), testCase.want)
			}
		})
	}
}

// TestDelimiterRoundTrip feeds a synthetic single-record log output
// whose body contains the field delimiter's first character (the unit
// separator byte) without the full sentinel, and expects the body back
// verbatim.
func TestDelimiterRoundTrip(t *testing.T) {
	body := "first line\nsecond \x1f alone\nthird line"
	record := strings.Join([]string{
		"a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2",
		"a1b2c3d",
		"Ada Lovelace",
		"ada@example.com",
		"1700000000",
		"",
		"subject line",
		body,
	}, FieldDelim) + RecordDelim

	commits := ParseLog(record)
	if len(commits) != 1 {
		t.Fatalf("ParseLog() yielded %d commits, want 1", len(commits))
	}
	if commits[0].Body != body {
		t.Errorf("ParseLog() body = %q, want %q", commits[0].Body, body)
	}
	if commits[0].Subject != "subject line" {
		t.Errorf("ParseLog() subject = %q", commits[0].Subject)
	}
}
