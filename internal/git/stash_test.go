package git

import "testing"

func TestParseStashList(t *testing.T) {
	t.Run("empty stash yields empty slice", func(t *testing.T) {
		entries := ParseStashList("")
		if entries == nil {
			t.Fatal("ParseStashList(\"\") = nil, want empty slice")
		}
		if len(entries) != 0 {
			t.Errorf("ParseStashList(\"\") = %d entries, want 0", len(entries))
		}
	})

	t.Run("wip entries", func(t *testing.T) {
		out := "stash@{0}: WIP on main: abc1234 fix parser\nstash@{1}: On feature: saved work\n"
		entries := ParseStashList(out)
		if len(entries) != 2 {
			t.Fatalf("ParseStashList() = %d entries, want 2", len(entries))
		}

		first := entries[0]
		if first.Index != 0 || first.Ref != "stash@{0}" {
			t.Errorf("first entry = %+v", first)
		}
		if first.Branch != "main" {
			t.Errorf("first branch = %q, want main", first.Branch)
		}

		second := entries[1]
		if second.Index != 1 || second.Branch != "feature" || second.Message != "saved work" {
			t.Errorf("second entry = %+v", second)
		}
	})

	t.Run("malformed line is skipped", func(t *testing.T) {
		entries := ParseStashList("not a stash line\n")
		if len(entries) != 0 {
			t.Errorf("ParseStashList() = %d entries, want 0", len(entries))
		}
	})
}

func TestParseTags(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		if tags := ParseTags(""); len(tags) != 0 {
			t.Errorf("ParseTags(\"\") = %d tags, want 0", len(tags))
		}
	})

	t.Run("annotated and lightweight", func(t *testing.T) {
		out := "v1.0.0" + FieldDelim + "aaaa" + FieldDelim + "release 1.0" + RecordDelim +
			"\nv0.9.0" + FieldDelim + "bbbb" + FieldDelim + "" + RecordDelim
		tags := ParseTags(out)
		if len(tags) != 2 {
			t.Fatalf("ParseTags() = %d tags, want 2", len(tags))
		}
		if tags[0].Name != "v1.0.0" || tags[0].Annotation != "release 1.0" {
			t.Errorf("first tag = %+v", tags[0])
		}
		if tags[1].Annotation != "" {
			t.Errorf("lightweight tag annotation = %q, want empty", tags[1].Annotation)
		}
	})
}
