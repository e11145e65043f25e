package git

import "testing"

func TestParseDiffStat(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want DiffSummary
	}{
		{
			name: "full summary",
			out:  " file.go | 10 +++---\n 3 files changed, 45 insertions(+), 12 deletions(-)\n",
			want: DiffSummary{FilesChanged: 3, Insertions: 45, Deletions: 12},
		},
		{
			name: "insertions only",
			out:  " 1 file changed, 2 insertions(+)\n",
			want: DiffSummary{FilesChanged: 1, Insertions: 2},
		},
		{
			name: "deletions only",
			out:  " 1 file changed, 7 deletions(-)\n",
			want: DiffSummary{FilesChanged: 1, Deletions: 7},
		},
		{
			name: "empty diff",
			out:  "",
			want: DiffSummary{},
		},
		{
			name: "no summary line",
			out:  "unrelated text\n",
			want: DiffSummary{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := ParseDiffStat(testCase.out)
			if got != testCase.want {
				t.Errorf("ParseDiffStat() = %+v, want %+v", got, testCase.want)
			}
		})
	}
}

func TestIsBinaryDiff(t *testing.T) {
	if !IsBinaryDiff("Binary files a/img.png and b/img.png differ\n") {
		t.Error("IsBinaryDiff() = false for binary marker")
	}
	if IsBinaryDiff("diff --git a/x b/x\n+added line\n") {
		t.Error("IsBinaryDiff() = true for text diff")
	}
}

func TestParseNameOnly(t *testing.T) {
	files := ParseNameOnly("a.go\n\nb/c.go\n")
	if len(files) != 2 || files[0] != "a.go" || files[1] != "b/c.go" {
		t.Errorf("ParseNameOnly() = %v", files)
	}
	if files := ParseNameOnly(""); len(files) != 0 {
		t.Errorf("ParseNameOnly(\"\") = %v, want empty", files)
	}
}
