package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/safety"
)

// stubProvider overrides only the methods a test exercises. Calling
// anything else panics through the embedded nil interface, which is
// the failure we want in that case.
type stubProvider struct {
	provider.Provider

	statusFn   func(provider.OperationContext) (git.StatusSummary, error)
	commitFn   func(provider.OperationContext, provider.CommitOptions) (provider.CommitResult, error)
	branchFn   func(provider.OperationContext, provider.BranchOptions) (provider.BranchResult, error)
	rebaseFn   func(provider.OperationContext, provider.RebaseOptions) (provider.RebaseResult, error)
	logFn      func(provider.OperationContext, provider.LogOptions) ([]git.Commit, error)
	cleanFn    func(provider.OperationContext, provider.CleanOptions) (provider.CleanResult, error)
	validateFn func(provider.OperationContext) error
}

func (s *stubProvider) Status(_ context.Context, opCtx provider.OperationContext) (git.StatusSummary, error) {
	return s.statusFn(opCtx)
}

func (s *stubProvider) Commit(_ context.Context, opCtx provider.OperationContext, opts provider.CommitOptions) (provider.CommitResult, error) {
	return s.commitFn(opCtx, opts)
}

func (s *stubProvider) Branch(_ context.Context, opCtx provider.OperationContext, opts provider.BranchOptions) (provider.BranchResult, error) {
	return s.branchFn(opCtx, opts)
}

func (s *stubProvider) Rebase(_ context.Context, opCtx provider.OperationContext, opts provider.RebaseOptions) (provider.RebaseResult, error) {
	return s.rebaseFn(opCtx, opts)
}

func (s *stubProvider) Log(_ context.Context, opCtx provider.OperationContext, opts provider.LogOptions) ([]git.Commit, error) {
	return s.logFn(opCtx, opts)
}

func (s *stubProvider) ValidateRepository(_ context.Context, opCtx provider.OperationContext) error {
	return s.validateFn(opCtx)
}

func (s *stubProvider) Clean(_ context.Context, opCtx provider.OperationContext, opts provider.CleanOptions) (provider.CleanResult, error) {
	return s.cleanFn(opCtx, opts)
}

// testDeps builds deps over a temp base directory with the session
// working directory already set for the default tenant.
func testDeps(t *testing.T, p provider.Provider) (*deps, string) {
	t.Helper()
	root := t.TempDir()
	store := safety.NewCacheStore(time.Minute)
	sanitize := safety.SanitizeOptions{RootDir: root}
	if err := store.Set(context.Background(), defaultTenant, root); err != nil {
		t.Fatalf("seeding session store: %v", err)
	}
	return &deps{
		provider: p,
		resolver: safety.NewResolver(store, sanitize),
		store:    store,
		sanitize: sanitize,
	}, root
}

func TestHandleStatusUsesSessionWorkingDir(t *testing.T) {
	var gotDir string
	stub := &stubProvider{
		statusFn: func(opCtx provider.OperationContext) (git.StatusSummary, error) {
			gotDir = opCtx.WorkingDir
			return git.StatusSummary{Branch: "main", Clean: true}, nil
		},
	}
	d, root := testDeps(t, stub)
	handler := handleStatus(d)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, StatusInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDir != root {
		t.Errorf("working dir = %q, want session dir %q", gotDir, root)
	}
	if out.Branch != "main" || !out.Clean {
		t.Errorf("output = %+v", out)
	}
}

func TestHandleStatusWithoutSessionDir(t *testing.T) {
	d, _ := testDeps(t, &stubProvider{})
	if err := d.store.Delete(context.Background(), defaultTenant); err != nil {
		t.Fatalf("clearing store: %v", err)
	}
	handler := handleStatus(d)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, StatusInput{})
	if err == nil {
		t.Fatal("expected error without a session working directory")
	}
	if !strings.Contains(err.Error(), "git_set_working_dir") {
		t.Errorf("error %q should point at git_set_working_dir", err)
	}
}

func TestHandleStatusTracksTraceID(t *testing.T) {
	seen := map[string]bool{}
	stub := &stubProvider{
		statusFn: func(opCtx provider.OperationContext) (git.StatusSummary, error) {
			if opCtx.TraceID == "" {
				t.Error("trace ID is empty")
			}
			seen[opCtx.TraceID] = true
			return git.StatusSummary{}, nil
		},
	}
	d, _ := testDeps(t, stub)
	handler := handleStatus(d)

	for range 3 {
		if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, StatusInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(seen) != 3 {
		t.Errorf("trace IDs not unique per call: %v", seen)
	}
}

func TestHandleCommitMapsPayload(t *testing.T) {
	created := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	stub := &stubProvider{
		commitFn: func(_ provider.OperationContext, opts provider.CommitOptions) (provider.CommitResult, error) {
			if opts.Message != "fix parser" {
				t.Errorf("message = %q", opts.Message)
			}
			return provider.CommitResult{
				Commit: git.Commit{
					Hash:      "abc1234def",
					ShortHash: "abc1234",
					Author:    "Dev",
					Date:      created,
					Subject:   "fix parser",
				},
				ChangedFiles: []string{"parser.go"},
			}, nil
		},
	}
	d, _ := testDeps(t, stub)
	handler := handleCommit(d)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CommitInput{Message: "fix parser"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Commit.Hash != "abc1234def" {
		t.Errorf("hash = %q", out.Commit.Hash)
	}
	if out.Commit.Date != "2025-11-03T12:00:00Z" {
		t.Errorf("date = %q, want RFC 3339", out.Commit.Date)
	}
	if len(out.ChangedFiles) != 1 || out.ChangedFiles[0] != "parser.go" {
		t.Errorf("changed files = %v", out.ChangedFiles)
	}
}

func TestHandleBranchListMapsBranches(t *testing.T) {
	stub := &stubProvider{
		branchFn: func(_ provider.OperationContext, opts provider.BranchOptions) (provider.BranchResult, error) {
			if opts.Mode != provider.BranchList {
				t.Errorf("mode = %q, want list", opts.Mode)
			}
			return provider.BranchResult{
				Mode: provider.BranchList,
				Branches: []git.BranchInfo{
					{Name: "main", Current: true, CommitHash: "abc1234"},
					{Name: "origin/dev", Remote: true, CommitHash: "def5678"},
				},
			}, nil
		},
	}
	d, _ := testDeps(t, stub)
	handler := handleBranch(d)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, BranchInput{Mode: "list"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Branches) != 2 {
		t.Fatalf("branches = %d, want 2", len(out.Branches))
	}
	if !out.Branches[0].Current || out.Branches[1].Remote != true {
		t.Errorf("branch flags lost in mapping: %+v", out.Branches)
	}
}

func TestHandleLogForwardsFilters(t *testing.T) {
	stub := &stubProvider{
		logFn: func(_ provider.OperationContext, opts provider.LogOptions) ([]git.Commit, error) {
			if opts.MaxCount != 10 || opts.Author != "dev" || opts.Path != "internal/" {
				t.Errorf("options = %+v", opts)
			}
			return []git.Commit{{Hash: "abc"}}, nil
		},
	}
	d, _ := testDeps(t, stub)
	handler := handleLog(d)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, LogInput{
		MaxCount: 10,
		Author:   "dev",
		File:     "internal/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("count = %d, want 1", out.Count)
	}
}

func TestHandleCleanPropagatesDryRun(t *testing.T) {
	stub := &stubProvider{
		cleanFn: func(_ provider.OperationContext, opts provider.CleanOptions) (provider.CleanResult, error) {
			return provider.CleanResult{Removed: []string{"tmp.log"}, DryRun: opts.DryRun}, nil
		},
	}
	d, _ := testDeps(t, stub)
	handler := handleClean(d)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CleanInput{DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.DryRun || len(out.Removed) != 1 {
		t.Errorf("output = %+v", out)
	}
}

func TestHandleRebaseForwardsConfirm(t *testing.T) {
	stub := &stubProvider{
		rebaseFn: func(_ provider.OperationContext, opts provider.RebaseOptions) (provider.RebaseResult, error) {
			if opts.Mode != provider.RebaseStart || opts.Upstream != "origin/main" {
				t.Errorf("options = %+v", opts)
			}
			if !opts.Confirm {
				t.Error("confirm flag not forwarded")
			}
			return provider.RebaseResult{Mode: opts.Mode, Head: "abc"}, nil
		},
	}
	d, _ := testDeps(t, stub)
	handler := handleRebase(d)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RebaseInput{
		Mode:     "start",
		Upstream: "origin/main",
		Confirm:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Head != "abc" {
		t.Errorf("head = %q", out.Head)
	}
}

func TestHandleSetWorkingDirRejectsEscape(t *testing.T) {
	d, _ := testDeps(t, &stubProvider{})
	handler := handleSetWorkingDir(d)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, SetWorkingDirInput{
		Path: "/etc",
	})
	if err == nil {
		t.Fatal("expected error for a path outside the base directory")
	}
}

func TestHandleSetWorkingDirRejectsMissingDirectory(t *testing.T) {
	validated := false
	stub := &stubProvider{
		validateFn: func(provider.OperationContext) error {
			validated = true
			return nil
		},
	}
	d, root := testDeps(t, stub)
	handler := handleSetWorkingDir(d)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, SetWorkingDirInput{
		Path: filepath.Join(root, "does-not-exist"),
	})
	var structured *giterr.StructuredError
	if !errors.As(err, &structured) || structured.Kind != giterr.KindValidation {
		t.Fatalf("err = %v, want validation error", err)
	}
	if validated {
		t.Error("repository probe ran for a nonexistent directory")
	}
}

func TestHandleSetWorkingDirRequiresRepository(t *testing.T) {
	stub := &stubProvider{
		validateFn: func(opCtx provider.OperationContext) error {
			return &giterr.StructuredError{
				Kind:    giterr.KindNotARepository,
				Op:      "rev-parse",
				Message: "not a git repository",
			}
		},
	}
	d, root := testDeps(t, stub)
	plain := filepath.Join(root, "plain")
	if err := os.Mkdir(plain, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	handler := handleSetWorkingDir(d)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, SetWorkingDirInput{Path: plain})
	var structured *giterr.StructuredError
	if !errors.As(err, &structured) || structured.Kind != giterr.KindNotARepository {
		t.Fatalf("err = %v, want not-a-repository", err)
	}

	// The rejected path must not poison the session.
	dir, resolveErr := d.resolver.Resolve(context.Background(), defaultTenant, "")
	if resolveErr != nil {
		t.Fatalf("resolve: %v", resolveErr)
	}
	if dir != root {
		t.Errorf("session dir = %q, want untouched %q", dir, root)
	}
}

func TestHandleSetAndClearWorkingDir(t *testing.T) {
	d, root := testDeps(t, &stubProvider{
		validateFn: func(provider.OperationContext) error { return nil },
	})

	setHandler := handleSetWorkingDir(d)
	_, out, err := setHandler(context.Background(), &mcp.CallToolRequest{}, SetWorkingDirInput{Path: root})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if out.WorkingDir != root {
		t.Errorf("working dir = %q, want %q", out.WorkingDir, root)
	}

	clearHandler := handleClearWorkingDir(d)
	_, cleared, err := clearHandler(context.Background(), &mcp.CallToolRequest{}, ClearWorkingDirInput{})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !cleared.Cleared {
		t.Error("clear not acknowledged")
	}

	if _, err := d.resolver.Resolve(context.Background(), defaultTenant, ""); err == nil {
		t.Error("resolve should fail after clearing the session directory")
	}
}
