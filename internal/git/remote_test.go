package git

import "testing"

func TestParseRemotes(t *testing.T) {
	t.Run("fetch and push lines merge", func(t *testing.T) {
		out := "origin\thttps://x.git (fetch)\norigin\thttps://x.git (push)\n"
		remotes := ParseRemotes(out)
		if len(remotes) != 1 {
			t.Fatalf("ParseRemotes() = %d remotes, want 1", len(remotes))
		}
		remote := remotes[0]
		if remote.Name != "origin" {
			t.Errorf("name = %q, want origin", remote.Name)
		}
		if remote.FetchURL != "https://x.git" || remote.PushURL != "https://x.git" {
			t.Errorf("urls = %q / %q, want identical", remote.FetchURL, remote.PushURL)
		}
	})

	t.Run("missing push line defaults to fetch URL", func(t *testing.T) {
		out := "origin\thttps://x.git (fetch)\n"
		remotes := ParseRemotes(out)
		if len(remotes) != 1 {
			t.Fatalf("ParseRemotes() = %d remotes, want 1", len(remotes))
		}
		if remotes[0].PushURL != "https://x.git" {
			t.Errorf("push url = %q, want fetch url", remotes[0].PushURL)
		}
	})

	t.Run("distinct push URL", func(t *testing.T) {
		out := "origin\thttps://fetch.git (fetch)\norigin\tgit@push.git (push)\n"
		remotes := ParseRemotes(out)
		if remotes[0].PushURL != "git@push.git" {
			t.Errorf("push url = %q, want git@push.git", remotes[0].PushURL)
		}
	})

	t.Run("multiple remotes keep listing order", func(t *testing.T) {
		out := "upstream\thttps://u.git (fetch)\norigin\thttps://o.git (fetch)\n"
		remotes := ParseRemotes(out)
		if len(remotes) != 2 {
			t.Fatalf("ParseRemotes() = %d remotes, want 2", len(remotes))
		}
		if remotes[0].Name != "upstream" || remotes[1].Name != "origin" {
			t.Errorf("order = %q, %q", remotes[0].Name, remotes[1].Name)
		}
	})

	t.Run("empty output", func(t *testing.T) {
		if remotes := ParseRemotes(""); len(remotes) != 0 {
			t.Errorf("ParseRemotes(\"\") = %d remotes, want 0", len(remotes))
		}
	})
}
