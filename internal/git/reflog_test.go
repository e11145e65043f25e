package git

import (
	"strings"
	"testing"
)

func makeReflogRecord(hash, short, selector, subject string) string {
	return strings.Join([]string{hash, short, selector, subject}, FieldDelim) + RecordDelim
}

func TestParseReflog(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		if entries := ParseReflog(""); len(entries) != 0 {
			t.Errorf("ParseReflog(\"\") = %d entries, want 0", len(entries))
		}
	})

	t.Run("action from selector subject", func(t *testing.T) {
		out := makeReflogRecord("aaaa", "aa", "HEAD@{0}", "commit: fix parser") + "\n" +
			makeReflogRecord("bbbb", "bb", "HEAD@{1}", "checkout: moving from main to dev")

		entries := ParseReflog(out)
		if len(entries) != 2 {
			t.Fatalf("ParseReflog() = %d entries, want 2", len(entries))
		}

		first := entries[0]
		if first.Index != 0 || first.Action != "commit" || first.Message != "fix parser" {
			t.Errorf("first entry = %+v", first)
		}

		second := entries[1]
		if second.Index != 1 || second.Action != "checkout" {
			t.Errorf("second entry = %+v", second)
		}
		if second.Message != "moving from main to dev" {
			t.Errorf("second message = %q", second.Message)
		}
	})

	t.Run("subject without colon becomes bare action", func(t *testing.T) {
		entries := ParseReflog(makeReflogRecord("cccc", "cc", "HEAD@{2}", "initial"))
		if len(entries) != 1 {
			t.Fatalf("ParseReflog() = %d entries, want 1", len(entries))
		}
		if entries[0].Action != "initial" || entries[0].Message != "" {
			t.Errorf("entry = %+v", entries[0])
		}
	})
}
