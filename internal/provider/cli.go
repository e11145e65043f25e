package provider

import (
	"context"
	"strconv"
	"time"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/config"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/safety"
)

// commandRunner is the slice of git.Runner the provider needs.
// Tests substitute a scripted fake.
type commandRunner interface {
	Run(ctx context.Context, spec git.CommandSpec, opts git.ExecOptions) (git.RawResult, error)
}

// CLIProvider drives the git binary. It holds no per-call state; one
// instance serves concurrent calls.
type CLIProvider struct {
	runner   commandRunner
	guard    *safety.Guard
	settings config.Settings
}

// NewCLIProvider creates a CLIProvider.
func NewCLIProvider(runner commandRunner, guard *safety.Guard, settings config.Settings) *CLIProvider {
	return &CLIProvider{runner: runner, guard: guard, settings: settings}
}

// Capabilities describes what the CLI-backed provider supports.
// Signing requires key configuration this server does not manage.
func (p *CLIProvider) Capabilities() map[string]bool {
	return map[string]bool{
		CapCommit:   true,
		CapBranch:   true,
		CapMerge:    true,
		CapRebase:   true,
		CapStash:    true,
		CapTag:      true,
		CapWorktree: true,
		CapRemote:   true,
		CapBlame:    true,
		CapReflog:   true,
		CapSigning:  false,
	}
}

// runLocal executes one git invocation with the local timeout class.
// Failures come back classified; no raw exec error escapes.
func (p *CLIProvider) runLocal(ctx context.Context, opCtx OperationContext, op string, args ...string) (git.RawResult, error) {
	return p.run(ctx, opCtx, op, p.settings.LocalTimeout, args)
}

// runNetwork executes with the longer network timeout class
// (clone/fetch/push/pull).
func (p *CLIProvider) runNetwork(ctx context.Context, opCtx OperationContext, op string, args ...string) (git.RawResult, error) {
	return p.run(ctx, opCtx, op, p.settings.NetworkTimeout, args)
}

func (p *CLIProvider) run(ctx context.Context, opCtx OperationContext, op string, timeout time.Duration, args []string) (git.RawResult, error) {
	result, err := p.runner.Run(ctx, git.Build(args...), git.ExecOptions{
		Dir:            opCtx.WorkingDir,
		Timeout:        timeout,
		MaxOutputBytes: p.settings.MaxOutputBytes,
	})
	if err != nil {
		return git.RawResult{}, giterr.Classify(err, op)
	}
	return result, nil
}

// ValidateRepository confirms the directory sits inside a git work
// tree.
func (p *CLIProvider) ValidateRepository(ctx context.Context, opCtx OperationContext) error {
	_, err := p.runLocal(ctx, opCtx, "rev-parse", "rev-parse", "--is-inside-work-tree")
	return err
}

// Status reports working-tree state from porcelain output.
func (p *CLIProvider) Status(ctx context.Context, opCtx OperationContext) (git.StatusSummary, error) {
	result, err := p.runLocal(ctx, opCtx, "status", "status", "--porcelain=v1", "-b")
	if err != nil {
		return git.StatusSummary{}, err
	}
	return git.ParseStatus(result.Stdout), nil
}

// Add stages files.
func (p *CLIProvider) Add(ctx context.Context, opCtx OperationContext, opts AddOptions) (AddResult, error) {
	args := []string{"add"}
	switch {
	case opts.All || len(opts.Paths) == 0:
		args = append(args, "-A")
	default:
		args = append(args, "--")
		args = append(args, opts.Paths...)
	}

	if _, err := p.runLocal(ctx, opCtx, "add", args...); err != nil {
		return AddResult{}, err
	}

	// Report what actually landed in the index.
	result, err := p.runLocal(ctx, opCtx, "add", "diff", "--cached", "--name-only")
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{Staged: git.ParseNameOnly(result.Stdout)}, nil
}

// Commit creates a commit, then resolves it through rev-parse and a
// structured show call. Commit's own stdout is never parsed for a
// hash; that text is not stable across git versions. Amending rewrites
// history, so amends of protected branches are guarded.
func (p *CLIProvider) Commit(ctx context.Context, opCtx OperationContext, opts CommitOptions) (CommitResult, error) {
	if opts.Message == "" && !opts.Amend {
		return CommitResult{}, giterr.Validation("commit", "commit message is required", nil)
	}

	if opts.Amend {
		current, err := p.currentBranch(ctx, opCtx)
		if err != nil {
			return CommitResult{}, err
		}
		if err := p.guard.CheckDestructive("commit", current, opts.Confirm); err != nil {
			return CommitResult{}, err
		}
	}

	args := []string{"commit"}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}
	if opts.Amend {
		args = append(args, "--amend")
		if opts.Message == "" {
			args = append(args, "--no-edit")
		}
	}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if opts.Author != "" {
		args = append(args, "--author", opts.Author)
	}

	if _, err := p.runLocal(ctx, opCtx, "commit", args...); err != nil {
		return CommitResult{}, err
	}

	return p.resolveCommit(ctx, opCtx, "commit", "HEAD")
}

// resolveCommit fetches a structured commit record plus its changed
// files for a ref.
func (p *CLIProvider) resolveCommit(ctx context.Context, opCtx OperationContext, op, ref string) (CommitResult, error) {
	hashResult, err := p.runLocal(ctx, opCtx, op, "rev-parse", ref)
	if err != nil {
		return CommitResult{}, err
	}
	hash := firstField(hashResult.Stdout)

	showResult, err := p.runLocal(ctx, opCtx, op, "show", "-s", "--pretty=format:"+git.LogFormat(), hash)
	if err != nil {
		return CommitResult{}, err
	}
	commit, ok := git.ParseCommit(showResult.Stdout)
	if !ok {
		return CommitResult{}, giterr.Validation(op, "cannot parse commit "+hash, nil)
	}

	filesResult, err := p.runLocal(ctx, opCtx, op, "show", "--name-only", "--pretty=format:", hash)
	if err != nil {
		return CommitResult{}, err
	}

	return CommitResult{
		Commit:       commit,
		ChangedFiles: git.ParseNameOnly(filesResult.Stdout),
	}, nil
}

// Log lists history through the delimiter protocol.
func (p *CLIProvider) Log(ctx context.Context, opCtx OperationContext, opts LogOptions) ([]git.Commit, error) {
	args := []string{"log", "--pretty=format:" + git.LogFormat()}
	if opts.MaxCount > 0 {
		args = append(args, "--max-count", strconv.Itoa(opts.MaxCount))
	}
	if opts.Author != "" {
		args = append(args, "--author", opts.Author)
	}
	if opts.Since != "" {
		args = append(args, "--since", opts.Since)
	}
	if opts.Until != "" {
		args = append(args, "--until", opts.Until)
	}
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}
	if opts.Path != "" {
		args = append(args, "--", opts.Path)
	}

	result, err := p.runLocal(ctx, opCtx, "log", args...)
	if err != nil {
		return nil, err
	}
	return git.ParseLog(result.Stdout), nil
}

// Diff returns content from a plain diff plus aggregated statistics
// from a second --stat call.
func (p *CLIProvider) Diff(ctx context.Context, opCtx OperationContext, opts DiffOptions) (DiffResult, error) {
	base := []string{"diff"}
	if opts.Staged {
		base = append(base, "--cached")
	}
	if opts.From != "" {
		base = append(base, opts.From)
	}
	if opts.To != "" {
		base = append(base, opts.To)
	}
	pathArgs := []string{}
	if len(opts.Paths) > 0 {
		pathArgs = append(pathArgs, "--")
		pathArgs = append(pathArgs, opts.Paths...)
	}

	contentResult, err := p.runLocal(ctx, opCtx, "diff", append(append([]string{}, base...), pathArgs...)...)
	if err != nil {
		return DiffResult{}, err
	}

	statArgs := append(append([]string{base[0], "--stat"}, base[1:]...), pathArgs...)
	statResult, err := p.runLocal(ctx, opCtx, "diff", statArgs...)
	if err != nil {
		return DiffResult{}, err
	}

	summary := git.ParseDiffStat(statResult.Stdout)
	summary.Binary = git.IsBinaryDiff(contentResult.Stdout)

	return DiffResult{
		Content:   contentResult.Stdout,
		Summary:   summary,
		Truncated: contentResult.Truncated,
	}, nil
}

// Branch dispatches on the mode discriminator.
func (p *CLIProvider) Branch(ctx context.Context, opCtx OperationContext, opts BranchOptions) (BranchResult, error) {
	switch opts.Mode {
	case BranchList:
		args := []string{"branch", "-vv"}
		if opts.All {
			args = append(args, "--all")
		}
		result, err := p.runLocal(ctx, opCtx, "branch", args...)
		if err != nil {
			return BranchResult{}, err
		}
		return BranchResult{Mode: BranchList, Branches: git.ParseBranches(result.Stdout)}, nil

	case BranchCreate:
		args := []string{"branch", opts.Name}
		if opts.From != "" {
			args = append(args, opts.From)
		}
		if _, err := p.runLocal(ctx, opCtx, "branch", args...); err != nil {
			return BranchResult{}, err
		}
		return BranchResult{Mode: BranchCreate, Created: opts.Name}, nil

	case BranchDelete:
		if opts.Force {
			if err := p.guard.CheckDestructive("branch", opts.Name, opts.Confirm); err != nil {
				return BranchResult{}, err
			}
		}
		flag := "-d"
		if opts.Force {
			flag = "-D"
		}
		if _, err := p.runLocal(ctx, opCtx, "branch", "branch", flag, opts.Name); err != nil {
			return BranchResult{}, err
		}
		return BranchResult{Mode: BranchDelete, Deleted: opts.Name}, nil

	case BranchRename:
		if _, err := p.runLocal(ctx, opCtx, "branch", "branch", "-m", opts.Name, opts.NewName); err != nil {
			return BranchResult{}, err
		}
		return BranchResult{Mode: BranchRename, Renamed: &RenamedBranch{From: opts.Name, To: opts.NewName}}, nil

	case BranchCheckout:
		if _, err := p.runLocal(ctx, opCtx, "branch", "checkout", opts.Name); err != nil {
			return BranchResult{}, err
		}
		return BranchResult{Mode: BranchCheckout, CheckedOut: opts.Name}, nil

	default:
		return BranchResult{}, giterr.Validation("branch", "unknown branch mode: "+string(opts.Mode), nil)
	}
}

// Merge merges a ref into the current branch.
func (p *CLIProvider) Merge(ctx context.Context, opCtx OperationContext, opts MergeOptions) (MergeResult, error) {
	if opts.Abort {
		if _, err := p.runLocal(ctx, opCtx, "merge", "merge", "--abort"); err != nil {
			return MergeResult{}, err
		}
		return MergeResult{Aborted: true}, nil
	}

	args := []string{"merge"}
	if opts.NoFF {
		args = append(args, "--no-ff")
	}
	if opts.Squash {
		args = append(args, "--squash")
	}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}
	args = append(args, opts.Ref)

	if _, err := p.runLocal(ctx, opCtx, "merge", args...); err != nil {
		return MergeResult{}, err
	}

	head, err := p.head(ctx, opCtx, "merge")
	if err != nil {
		return MergeResult{}, err
	}
	return MergeResult{Head: head}, nil
}

// Rebase dispatches on the mode discriminator. Starting a rebase
// rewrites the current branch, so protected branches are guarded;
// continue/abort/skip finish a rebase that already passed the check.
func (p *CLIProvider) Rebase(ctx context.Context, opCtx OperationContext, opts RebaseOptions) (RebaseResult, error) {
	var args []string
	switch opts.Mode {
	case RebaseStart:
		current, err := p.currentBranch(ctx, opCtx)
		if err != nil {
			return RebaseResult{}, err
		}
		if err := p.guard.CheckDestructive("rebase", current, opts.Confirm); err != nil {
			return RebaseResult{}, err
		}
		args = []string{"rebase"}
		if opts.Onto != "" {
			args = append(args, "--onto", opts.Onto)
		}
		args = append(args, opts.Upstream)
	case RebaseContinue:
		args = []string{"rebase", "--continue"}
	case RebaseAbort:
		args = []string{"rebase", "--abort"}
	case RebaseSkip:
		args = []string{"rebase", "--skip"}
	default:
		return RebaseResult{}, giterr.Validation("rebase", "unknown rebase mode: "+string(opts.Mode), nil)
	}

	if _, err := p.runLocal(ctx, opCtx, "rebase", args...); err != nil {
		return RebaseResult{}, err
	}
	if opts.Mode == RebaseAbort {
		return RebaseResult{Mode: opts.Mode}, nil
	}

	head, err := p.head(ctx, opCtx, "rebase")
	if err != nil {
		return RebaseResult{}, err
	}
	return RebaseResult{Mode: opts.Mode, Head: head}, nil
}

// CherryPick applies commits onto the current branch.
func (p *CLIProvider) CherryPick(ctx context.Context, opCtx OperationContext, opts CherryPickOptions) (CherryPickResult, error) {
	if opts.Abort {
		if _, err := p.runLocal(ctx, opCtx, "cherry-pick", "cherry-pick", "--abort"); err != nil {
			return CherryPickResult{}, err
		}
		return CherryPickResult{Aborted: true}, nil
	}
	if len(opts.Revs) == 0 {
		return CherryPickResult{}, giterr.Validation("cherry-pick", "at least one revision is required", nil)
	}

	args := []string{"cherry-pick"}
	if opts.NoCommit {
		args = append(args, "--no-commit")
	}
	args = append(args, opts.Revs...)

	if _, err := p.runLocal(ctx, opCtx, "cherry-pick", args...); err != nil {
		return CherryPickResult{}, err
	}

	head, err := p.head(ctx, opCtx, "cherry-pick")
	if err != nil {
		return CherryPickResult{}, err
	}
	return CherryPickResult{Head: head}, nil
}

// Stash dispatches on the mode discriminator.
func (p *CLIProvider) Stash(ctx context.Context, opCtx OperationContext, opts StashOptions) (StashResult, error) {
	switch opts.Mode {
	case StashList:
		result, err := p.runLocal(ctx, opCtx, "stash", "stash", "list")
		if err != nil {
			return StashResult{}, err
		}
		return StashResult{Mode: StashList, Stashes: git.ParseStashList(result.Stdout)}, nil

	case StashPush:
		args := []string{"stash", "push"}
		if opts.IncludeUntracked {
			args = append(args, "--include-untracked")
		}
		if opts.Message != "" {
			args = append(args, "-m", opts.Message)
		}
		if _, err := p.runLocal(ctx, opCtx, "stash", args...); err != nil {
			return StashResult{}, err
		}
		return StashResult{Mode: StashPush, Ref: "stash@{0}"}, nil

	case StashPop, StashApply, StashDrop:
		args := []string{"stash", string(opts.Mode)}
		ref := opts.Ref
		if ref != "" {
			args = append(args, ref)
		} else {
			ref = "stash@{0}"
		}
		if _, err := p.runLocal(ctx, opCtx, "stash", args...); err != nil {
			return StashResult{}, err
		}
		return StashResult{Mode: opts.Mode, Ref: ref}, nil

	default:
		return StashResult{}, giterr.Validation("stash", "unknown stash mode: "+string(opts.Mode), nil)
	}
}

// Tag dispatches on the mode discriminator.
func (p *CLIProvider) Tag(ctx context.Context, opCtx OperationContext, opts TagOptions) (TagResult, error) {
	switch opts.Mode {
	case TagList:
		result, err := p.runLocal(ctx, opCtx, "tag",
			"for-each-ref", "--format="+git.TagListFormat(), "refs/tags")
		if err != nil {
			return TagResult{}, err
		}
		return TagResult{Mode: TagList, Tags: git.ParseTags(result.Stdout)}, nil

	case TagCreate:
		args := []string{"tag"}
		if opts.Message != "" {
			args = append(args, "-a", "-m", opts.Message)
		}
		args = append(args, opts.Name)
		if opts.Ref != "" {
			args = append(args, opts.Ref)
		}
		if _, err := p.runLocal(ctx, opCtx, "tag", args...); err != nil {
			return TagResult{}, err
		}
		return TagResult{Mode: TagCreate, Created: opts.Name}, nil

	case TagDelete:
		if _, err := p.runLocal(ctx, opCtx, "tag", "tag", "-d", opts.Name); err != nil {
			return TagResult{}, err
		}
		return TagResult{Mode: TagDelete, Deleted: opts.Name}, nil

	default:
		return TagResult{}, giterr.Validation("tag", "unknown tag mode: "+string(opts.Mode), nil)
	}
}

// Worktree dispatches on the mode discriminator.
func (p *CLIProvider) Worktree(ctx context.Context, opCtx OperationContext, opts WorktreeOptions) (WorktreeResult, error) {
	switch opts.Mode {
	case WorktreeList:
		result, err := p.runLocal(ctx, opCtx, "worktree", "worktree", "list", "--porcelain")
		if err != nil {
			return WorktreeResult{}, err
		}
		return WorktreeResult{Mode: WorktreeList, Worktrees: git.ParseWorktrees(result.Stdout)}, nil

	case WorktreeAdd:
		args := []string{"worktree", "add"}
		if opts.NewBranch {
			args = append(args, "-b", opts.Branch, opts.Path)
		} else {
			args = append(args, opts.Path)
			if opts.Branch != "" {
				args = append(args, opts.Branch)
			}
		}
		if _, err := p.runLocal(ctx, opCtx, "worktree", args...); err != nil {
			return WorktreeResult{}, err
		}
		return WorktreeResult{Mode: WorktreeAdd, Path: opts.Path}, nil

	case WorktreeRemove:
		args := []string{"worktree", "remove"}
		if opts.Force {
			args = append(args, "--force")
		}
		args = append(args, opts.Path)
		if _, err := p.runLocal(ctx, opCtx, "worktree", args...); err != nil {
			return WorktreeResult{}, err
		}
		return WorktreeResult{Mode: WorktreeRemove, Path: opts.Path}, nil

	case WorktreePrune:
		if _, err := p.runLocal(ctx, opCtx, "worktree", "worktree", "prune"); err != nil {
			return WorktreeResult{}, err
		}
		return WorktreeResult{Mode: WorktreePrune}, nil

	case WorktreeLock:
		args := []string{"worktree", "lock"}
		if opts.Reason != "" {
			args = append(args, "--reason", opts.Reason)
		}
		args = append(args, opts.Path)
		if _, err := p.runLocal(ctx, opCtx, "worktree", args...); err != nil {
			return WorktreeResult{}, err
		}
		return WorktreeResult{Mode: WorktreeLock, Path: opts.Path}, nil

	case WorktreeUnlock:
		if _, err := p.runLocal(ctx, opCtx, "worktree", "worktree", "unlock", opts.Path); err != nil {
			return WorktreeResult{}, err
		}
		return WorktreeResult{Mode: WorktreeUnlock, Path: opts.Path}, nil

	default:
		return WorktreeResult{}, giterr.Validation("worktree", "unknown worktree mode: "+string(opts.Mode), nil)
	}
}

// Remote dispatches on the mode discriminator.
func (p *CLIProvider) Remote(ctx context.Context, opCtx OperationContext, opts RemoteOptions) (RemoteResult, error) {
	switch opts.Mode {
	case RemoteList:
		result, err := p.runLocal(ctx, opCtx, "remote", "remote", "-v")
		if err != nil {
			return RemoteResult{}, err
		}
		return RemoteResult{Mode: RemoteList, Remotes: git.ParseRemotes(result.Stdout)}, nil

	case RemoteAdd:
		if _, err := p.runLocal(ctx, opCtx, "remote", "remote", "add", opts.Name, opts.URL); err != nil {
			return RemoteResult{}, err
		}
		return RemoteResult{Mode: RemoteAdd, Name: opts.Name}, nil

	case RemoteRemove:
		if _, err := p.runLocal(ctx, opCtx, "remote", "remote", "remove", opts.Name); err != nil {
			return RemoteResult{}, err
		}
		return RemoteResult{Mode: RemoteRemove, Name: opts.Name}, nil

	case RemoteSetURL:
		if _, err := p.runLocal(ctx, opCtx, "remote", "remote", "set-url", opts.Name, opts.URL); err != nil {
			return RemoteResult{}, err
		}
		return RemoteResult{Mode: RemoteSetURL, Name: opts.Name}, nil

	default:
		return RemoteResult{}, giterr.Validation("remote", "unknown remote mode: "+string(opts.Mode), nil)
	}
}

// Push pushes a ref, guarding force pushes to protected branches.
func (p *CLIProvider) Push(ctx context.Context, opCtx OperationContext, opts PushOptions) (PushResult, error) {
	if opts.Force {
		ref := opts.Ref
		if ref == "" {
			current, err := p.currentBranch(ctx, opCtx)
			if err != nil {
				return PushResult{}, err
			}
			ref = current
		}
		if err := p.guard.CheckDestructive("push", ref, opts.Confirm); err != nil {
			return PushResult{}, err
		}
	}

	remote := opts.Remote
	if remote == "" {
		remote = "origin"
	}

	args := []string{"push"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	args = append(args, remote)
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}

	if _, err := p.runNetwork(ctx, opCtx, "push", args...); err != nil {
		return PushResult{}, err
	}
	return PushResult{Remote: remote, Ref: opts.Ref, Forced: opts.Force}, nil
}

// Fetch fetches from a remote.
func (p *CLIProvider) Fetch(ctx context.Context, opCtx OperationContext, opts FetchOptions) error {
	args := []string{"fetch"}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	_, err := p.runNetwork(ctx, opCtx, "fetch", args...)
	return err
}

// Pull pulls a ref from a remote.
func (p *CLIProvider) Pull(ctx context.Context, opCtx OperationContext, opts PullOptions) (PullResult, error) {
	args := []string{"pull"}
	if opts.Rebase {
		args = append(args, "--rebase")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
		if opts.Ref != "" {
			args = append(args, opts.Ref)
		}
	}

	if _, err := p.runNetwork(ctx, opCtx, "pull", args...); err != nil {
		return PullResult{}, err
	}

	head, err := p.head(ctx, opCtx, "pull")
	if err != nil {
		return PullResult{}, err
	}
	return PullResult{Head: head}, nil
}

// Blame attributes file lines via line-porcelain output.
func (p *CLIProvider) Blame(ctx context.Context, opCtx OperationContext, opts BlameOptions) ([]git.BlameLine, error) {
	if opts.Path == "" {
		return nil, giterr.Validation("blame", "file path is required", nil)
	}

	args := []string{"blame", "--line-porcelain"}
	if opts.StartLine > 0 && opts.EndLine >= opts.StartLine {
		args = append(args, "-L", strconv.Itoa(opts.StartLine)+","+strconv.Itoa(opts.EndLine))
	}
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}
	args = append(args, "--", opts.Path)

	result, err := p.runLocal(ctx, opCtx, "blame", args...)
	if err != nil {
		return nil, err
	}
	return git.ParseBlame(result.Stdout), nil
}

// Reflog lists reference history through the delimiter protocol.
func (p *CLIProvider) Reflog(ctx context.Context, opCtx OperationContext, opts ReflogOptions) ([]git.ReflogEntry, error) {
	args := []string{"reflog", "--pretty=format:" + git.ReflogFormat()}
	if opts.MaxCount > 0 {
		args = append(args, "--max-count", strconv.Itoa(opts.MaxCount))
	}
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}

	result, err := p.runLocal(ctx, opCtx, "reflog", args...)
	if err != nil {
		return nil, err
	}
	return git.ParseReflog(result.Stdout), nil
}

// Show inspects one revision as a structured commit plus its files.
func (p *CLIProvider) Show(ctx context.Context, opCtx OperationContext, opts ShowOptions) (ShowResult, error) {
	ref := opts.Ref
	if ref == "" {
		ref = "HEAD"
	}
	resolved, err := p.resolveCommit(ctx, opCtx, "show", ref)
	if err != nil {
		return ShowResult{}, err
	}
	return ShowResult{Commit: resolved.Commit, ChangedFiles: resolved.ChangedFiles}, nil
}

// Clean removes untracked files. Force is mandatory; git itself also
// refuses clean without it.
func (p *CLIProvider) Clean(ctx context.Context, opCtx OperationContext, opts CleanOptions) (CleanResult, error) {
	if !opts.Force && !opts.DryRun {
		return CleanResult{}, giterr.Validation("clean", "clean requires force or dryRun", nil)
	}

	args := []string{"clean"}
	if opts.DryRun {
		args = append(args, "-n")
	} else {
		args = append(args, "-f")
	}
	if opts.Directories {
		args = append(args, "-d")
	}

	result, err := p.runLocal(ctx, opCtx, "clean", args...)
	if err != nil {
		return CleanResult{}, err
	}
	return CleanResult{Removed: parseCleanOutput(result.Stdout), DryRun: opts.DryRun}, nil
}

// Init creates a repository, defaulting the initial branch from
// settings.
func (p *CLIProvider) Init(ctx context.Context, opCtx OperationContext, opts InitOptions) (InitResult, error) {
	branch := opts.InitialBranch
	if branch == "" {
		branch = p.settings.DefaultBranch
	}

	args := []string{"init", "--initial-branch", branch}
	if opts.Bare {
		args = append(args, "--bare")
	}

	if _, err := p.runLocal(ctx, opCtx, "init", args...); err != nil {
		return InitResult{}, err
	}
	return InitResult{Path: opCtx.WorkingDir, Branch: branch}, nil
}

// Clone clones a repository with the network timeout class.
func (p *CLIProvider) Clone(ctx context.Context, opCtx OperationContext, opts CloneOptions) (CloneResult, error) {
	if opts.URL == "" {
		return CloneResult{}, giterr.Validation("clone", "repository URL is required", nil)
	}

	args := []string{"clone"}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	args = append(args, opts.URL)
	target := opts.Target
	if target != "" {
		args = append(args, target)
	}

	if _, err := p.runNetwork(ctx, opCtx, "clone", args...); err != nil {
		return CloneResult{}, err
	}
	if target == "" {
		target = opCtx.WorkingDir
	}
	return CloneResult{Path: target}, nil
}

// Reset resets the current branch, guarding hard resets of protected
// branches.
func (p *CLIProvider) Reset(ctx context.Context, opCtx OperationContext, opts ResetOptions) (ResetResult, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ResetMixed
	}

	if mode == ResetHard {
		current, err := p.currentBranch(ctx, opCtx)
		if err != nil {
			return ResetResult{}, err
		}
		if err := p.guard.CheckDestructive("reset", current, opts.Confirm); err != nil {
			return ResetResult{}, err
		}
	}

	ref := opts.Ref
	if ref == "" {
		ref = "HEAD"
	}

	if _, err := p.runLocal(ctx, opCtx, "reset", "reset", "--"+string(mode), ref); err != nil {
		return ResetResult{}, err
	}

	head, err := p.head(ctx, opCtx, "reset")
	if err != nil {
		return ResetResult{}, err
	}
	return ResetResult{Mode: mode, Head: head}, nil
}

// head resolves the current HEAD hash.
func (p *CLIProvider) head(ctx context.Context, opCtx OperationContext, op string) (string, error) {
	result, err := p.runLocal(ctx, opCtx, op, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return firstField(result.Stdout), nil
}

// currentBranch resolves the current branch name.
func (p *CLIProvider) currentBranch(ctx context.Context, opCtx OperationContext) (string, error) {
	result, err := p.runLocal(ctx, opCtx, "rev-parse", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return firstField(result.Stdout), nil
}
