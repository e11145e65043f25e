package git

import "testing"

func TestParseBranches(t *testing.T) {
	t.Run("two local branches", func(t *testing.T) {
		out := "* main  abc1234 init\n  dev  def5678 wip\n"
		branches := ParseBranches(out)
		if len(branches) != 2 {
			t.Fatalf("ParseBranches() = %d branches, want 2", len(branches))
		}

		if branches[0].Name != "main" || !branches[0].Current {
			t.Errorf("first branch = %+v, want current main", branches[0])
		}
		if branches[0].CommitHash != "abc1234" {
			t.Errorf("main hash = %q, want abc1234", branches[0].CommitHash)
		}
		if branches[1].Name != "dev" || branches[1].Current {
			t.Errorf("second branch = %+v, want non-current dev", branches[1])
		}
		if branches[1].CommitHash != "def5678" {
			t.Errorf("dev hash = %q, want def5678", branches[1].CommitHash)
		}
	})

	t.Run("remote prefix", func(t *testing.T) {
		out := "  remotes/origin/main abc1234 init\n"
		branches := ParseBranches(out)
		if len(branches) != 1 {
			t.Fatalf("ParseBranches() = %d branches, want 1", len(branches))
		}
		if !branches[0].Remote || branches[0].Name != "origin/main" {
			t.Errorf("remote branch = %+v", branches[0])
		}
	})

	t.Run("detached HEAD annotation is tolerated", func(t *testing.T) {
		out := "* (HEAD detached at abc1234) abc1234 wip\n  main abc1234 init\n"
		branches := ParseBranches(out)
		if len(branches) != 1 {
			t.Fatalf("ParseBranches() = %d branches, want 1", len(branches))
		}
		if branches[0].Name != "main" {
			t.Errorf("branch = %+v, want main", branches[0])
		}
	})

	t.Run("symbolic ref is skipped", func(t *testing.T) {
		out := "  remotes/origin/HEAD -> origin/main\n"
		if branches := ParseBranches(out); len(branches) != 0 {
			t.Errorf("ParseBranches() = %d branches, want 0", len(branches))
		}
	})

	t.Run("upstream tracking annotation", func(t *testing.T) {
		out := "* main abc1234 [origin/main: ahead 2, behind 1] subject\n"
		branches := ParseBranches(out)
		if len(branches) != 1 {
			t.Fatalf("ParseBranches() = %d branches, want 1", len(branches))
		}
		branch := branches[0]
		if branch.Upstream != "origin/main" {
			t.Errorf("upstream = %q, want origin/main", branch.Upstream)
		}
		if branch.Ahead != 2 || branch.Behind != 1 {
			t.Errorf("ahead/behind = %d/%d, want 2/1", branch.Ahead, branch.Behind)
		}
	})

	t.Run("empty output", func(t *testing.T) {
		if branches := ParseBranches(""); len(branches) != 0 {
			t.Errorf("ParseBranches(\"\") = %d branches, want 0", len(branches))
		}
	})
}
