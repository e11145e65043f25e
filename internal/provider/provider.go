// Package provider aggregates the git engine behind one
// capability-described interface. A factory selects and caches the
// concrete implementation; currently the CLI-backed one is the only
// kind.
package provider

import (
	"context"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
)

// OperationContext carries per-call metadata. It is created by the
// caller for each call, is immutable, and is never cached.
type OperationContext struct {
	// WorkingDir is the absolute, sanitized working directory.
	WorkingDir string
	// TenantID identifies the calling session.
	TenantID string
	// TraceID correlates logs for one call.
	TraceID string
}

// Capability names a feature consumers can require from a provider.
const (
	CapCommit   = "supports-commit"
	CapBranch   = "supports-branch"
	CapMerge    = "supports-merge"
	CapRebase   = "supports-rebase"
	CapStash    = "supports-stash"
	CapTag      = "supports-tag"
	CapWorktree = "supports-worktree"
	CapRemote   = "supports-remote"
	CapBlame    = "supports-blame"
	CapReflog   = "supports-reflog"
	CapSigning  = "supports-signing"
)

// --- Operation options and results ---
//
// Each result's shape is fully determined by its mode discriminator;
// no partial or ambiguous results are returned.

// AddOptions stages files. An empty Paths list stages everything.
type AddOptions struct {
	Paths []string
	All   bool
}

// AddResult reports what was staged.
type AddResult struct {
	Staged []string
}

// CommitOptions creates a commit.
type CommitOptions struct {
	Message    string
	Amend      bool
	AllowEmpty bool
	Author     string // "Name <email>" override, optional
	Confirm    bool   // acknowledge amending a commit on a protected branch
}

// CommitResult is the created commit plus its changed files.
type CommitResult struct {
	Commit       git.Commit
	ChangedFiles []string
}

// LogOptions filters history.
type LogOptions struct {
	Ref      string
	MaxCount int
	Author   string
	Since    string
	Until    string
	Path     string
}

// DiffOptions selects what to diff.
type DiffOptions struct {
	From   string
	To     string
	Paths  []string
	Staged bool
}

// DiffResult carries diff content plus aggregated statistics.
type DiffResult struct {
	Content   string
	Summary   git.DiffSummary
	Truncated bool
}

// BranchMode discriminates BranchOptions/BranchResult variants.
type BranchMode string

const (
	BranchList     BranchMode = "list"
	BranchCreate   BranchMode = "create"
	BranchDelete   BranchMode = "delete"
	BranchRename   BranchMode = "rename"
	BranchCheckout BranchMode = "checkout"
)

// BranchOptions selects one branch operation.
type BranchOptions struct {
	Mode    BranchMode
	Name    string
	NewName string // rename target
	From    string // create start point, optional
	All     bool   // list: include remotes
	Force   bool   // delete: -D
	Confirm bool   // acknowledge destructive operation on a protected ref
}

// RenamedBranch names a rename's endpoints.
type RenamedBranch struct {
	From string
	To   string
}

// BranchResult is the branch operation outcome, discriminated by Mode.
type BranchResult struct {
	Mode       BranchMode
	Branches   []git.BranchInfo // list
	Created    string           // create
	Deleted    string           // delete
	CheckedOut string           // checkout
	Renamed    *RenamedBranch   // rename
}

// MergeOptions merges a ref into the current branch.
type MergeOptions struct {
	Ref     string
	NoFF    bool
	Squash  bool
	Message string
	Abort   bool
}

// MergeResult reports the merge outcome.
type MergeResult struct {
	Aborted bool
	Head    string
}

// RebaseMode discriminates rebase actions.
type RebaseMode string

const (
	RebaseStart    RebaseMode = "start"
	RebaseContinue RebaseMode = "continue"
	RebaseAbort    RebaseMode = "abort"
	RebaseSkip     RebaseMode = "skip"
)

// RebaseOptions selects one rebase action.
type RebaseOptions struct {
	Mode     RebaseMode
	Upstream string
	Onto     string
	Confirm  bool // acknowledge rebasing a protected branch
}

// RebaseResult reports the rebase outcome.
type RebaseResult struct {
	Mode RebaseMode
	Head string
}

// CherryPickOptions applies commits onto the current branch.
type CherryPickOptions struct {
	Revs     []string
	NoCommit bool
	Abort    bool
}

// CherryPickResult reports the cherry-pick outcome.
type CherryPickResult struct {
	Aborted bool
	Head    string
}

// StashMode discriminates stash operations.
type StashMode string

const (
	StashList  StashMode = "list"
	StashPush  StashMode = "push"
	StashPop   StashMode = "pop"
	StashApply StashMode = "apply"
	StashDrop  StashMode = "drop"
)

// StashOptions selects one stash operation.
type StashOptions struct {
	Mode             StashMode
	Message          string
	Ref              string // e.g. "stash@{1}"; empty means the latest
	IncludeUntracked bool
}

// StashResult is the stash operation outcome, discriminated by Mode.
type StashResult struct {
	Mode    StashMode
	Stashes []git.StashEntry // list
	Ref     string           // push/pop/apply/drop target
}

// TagMode discriminates tag operations.
type TagMode string

const (
	TagList   TagMode = "list"
	TagCreate TagMode = "create"
	TagDelete TagMode = "delete"
)

// TagOptions selects one tag operation.
type TagOptions struct {
	Mode    TagMode
	Name    string
	Ref     string // create target, defaults to HEAD
	Message string // non-empty creates an annotated tag
}

// TagResult is the tag operation outcome, discriminated by Mode.
type TagResult struct {
	Mode    TagMode
	Tags    []git.TagInfo // list
	Created string
	Deleted string
}

// WorktreeMode discriminates worktree operations.
type WorktreeMode string

const (
	WorktreeList   WorktreeMode = "list"
	WorktreeAdd    WorktreeMode = "add"
	WorktreeRemove WorktreeMode = "remove"
	WorktreePrune  WorktreeMode = "prune"
	WorktreeLock   WorktreeMode = "lock"
	WorktreeUnlock WorktreeMode = "unlock"
)

// WorktreeOptions selects one worktree operation.
type WorktreeOptions struct {
	Mode      WorktreeMode
	Path      string
	Branch    string
	NewBranch bool
	Force     bool
	Reason    string // lock reason
}

// WorktreeResult is the worktree operation outcome.
type WorktreeResult struct {
	Mode      WorktreeMode
	Worktrees []git.WorktreeInfo // list
	Path      string             // add/remove/lock/unlock target
}

// RemoteMode discriminates remote operations.
type RemoteMode string

const (
	RemoteList   RemoteMode = "list"
	RemoteAdd    RemoteMode = "add"
	RemoteRemove RemoteMode = "remove"
	RemoteSetURL RemoteMode = "set-url"
)

// RemoteOptions selects one remote operation.
type RemoteOptions struct {
	Mode RemoteMode
	Name string
	URL  string
}

// RemoteResult is the remote operation outcome.
type RemoteResult struct {
	Mode    RemoteMode
	Remotes []git.RemoteInfo // list
	Name    string           // add/remove/set-url target
}

// PushOptions pushes a ref to a remote.
type PushOptions struct {
	Remote      string
	Ref         string
	Force       bool
	SetUpstream bool
	Tags        bool
	Confirm     bool // acknowledge force push to a protected ref
}

// PushResult reports what was pushed.
type PushResult struct {
	Remote string
	Ref    string
	Forced bool
}

// FetchOptions fetches from a remote.
type FetchOptions struct {
	Remote string
	Prune  bool
	Tags   bool
}

// PullOptions pulls a ref from a remote.
type PullOptions struct {
	Remote string
	Ref    string
	Rebase bool
}

// PullResult reports the new HEAD after a pull.
type PullResult struct {
	Head string
}

// BlameOptions attributes lines of one file.
type BlameOptions struct {
	Path      string
	StartLine int
	EndLine   int
	Ref       string
}

// ReflogOptions lists reference history.
type ReflogOptions struct {
	Ref      string
	MaxCount int
}

// ShowOptions inspects one revision.
type ShowOptions struct {
	Ref string
}

// ShowResult is a commit plus the files it touched.
type ShowResult struct {
	Commit       git.Commit
	ChangedFiles []string
}

// CleanOptions removes untracked files. Force must be set; the
// operation refuses to run without it.
type CleanOptions struct {
	Force       bool
	Directories bool
	DryRun      bool
}

// CleanResult lists what was (or would be) removed.
type CleanResult struct {
	Removed []string
	DryRun  bool
}

// InitOptions creates a repository.
type InitOptions struct {
	InitialBranch string // empty uses the configured default
	Bare          bool
}

// InitResult reports where the repository was created.
type InitResult struct {
	Path   string
	Branch string
}

// CloneOptions clones a repository. The network timeout class applies.
type CloneOptions struct {
	URL    string
	Target string
	Branch string
	Depth  int
}

// CloneResult reports where the clone landed.
type CloneResult struct {
	Path string
}

// ResetMode discriminates reset flavors.
type ResetMode string

const (
	ResetSoft  ResetMode = "soft"
	ResetMixed ResetMode = "mixed"
	ResetHard  ResetMode = "hard"
)

// ResetOptions resets the current branch to a ref.
type ResetOptions struct {
	Mode    ResetMode
	Ref     string
	Confirm bool // acknowledge hard reset on a protected branch
}

// ResetResult reports the new HEAD after a reset.
type ResetResult struct {
	Mode ResetMode
	Head string
}

// Provider is the operation contract every implementation fulfills.
// All methods are safe for concurrent use; correctness across
// concurrent mutations of one repository is owned by git's own
// locking, not this layer.
type Provider interface {
	Capabilities() map[string]bool

	// ValidateRepository confirms the directory is inside a git work
	// tree. Callers storing a working directory check this first.
	ValidateRepository(ctx context.Context, opCtx OperationContext) error

	Status(ctx context.Context, opCtx OperationContext) (git.StatusSummary, error)
	Add(ctx context.Context, opCtx OperationContext, opts AddOptions) (AddResult, error)
	Commit(ctx context.Context, opCtx OperationContext, opts CommitOptions) (CommitResult, error)
	Log(ctx context.Context, opCtx OperationContext, opts LogOptions) ([]git.Commit, error)
	Diff(ctx context.Context, opCtx OperationContext, opts DiffOptions) (DiffResult, error)
	Branch(ctx context.Context, opCtx OperationContext, opts BranchOptions) (BranchResult, error)
	Merge(ctx context.Context, opCtx OperationContext, opts MergeOptions) (MergeResult, error)
	Rebase(ctx context.Context, opCtx OperationContext, opts RebaseOptions) (RebaseResult, error)
	CherryPick(ctx context.Context, opCtx OperationContext, opts CherryPickOptions) (CherryPickResult, error)
	Stash(ctx context.Context, opCtx OperationContext, opts StashOptions) (StashResult, error)
	Tag(ctx context.Context, opCtx OperationContext, opts TagOptions) (TagResult, error)
	Worktree(ctx context.Context, opCtx OperationContext, opts WorktreeOptions) (WorktreeResult, error)
	Remote(ctx context.Context, opCtx OperationContext, opts RemoteOptions) (RemoteResult, error)
	Push(ctx context.Context, opCtx OperationContext, opts PushOptions) (PushResult, error)
	Fetch(ctx context.Context, opCtx OperationContext, opts FetchOptions) error
	Pull(ctx context.Context, opCtx OperationContext, opts PullOptions) (PullResult, error)
	Blame(ctx context.Context, opCtx OperationContext, opts BlameOptions) ([]git.BlameLine, error)
	Reflog(ctx context.Context, opCtx OperationContext, opts ReflogOptions) ([]git.ReflogEntry, error)
	Show(ctx context.Context, opCtx OperationContext, opts ShowOptions) (ShowResult, error)
	Clean(ctx context.Context, opCtx OperationContext, opts CleanOptions) (CleanResult, error)
	Init(ctx context.Context, opCtx OperationContext, opts InitOptions) (InitResult, error)
	Clone(ctx context.Context, opCtx OperationContext, opts CloneOptions) (CloneResult, error)
	Reset(ctx context.Context, opCtx OperationContext, opts ResetOptions) (ResetResult, error)
}
