package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
)

// --- git_add ---

// AddInput selects files to stage.
type AddInput struct {
	Path  string   `json:"path,omitempty"  jsonschema:"repository path; empty or '.' uses the session working directory"`
	Files []string `json:"files,omitempty" jsonschema:"paths to stage; empty stages everything"`
}

// AddOutput reports the staged files.
type AddOutput struct {
	Staged []string `json:"staged" jsonschema:"files now staged for commit"`
}

func handleAdd(d *deps) mcp.ToolHandlerFor[AddInput, AddOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AddOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, AddOutput{}, err
		}

		result, err := d.provider.Add(ctx, opCtx, provider.AddOptions{
			Paths: input.Files,
			All:   len(input.Files) == 0,
		})
		if err != nil {
			return nil, AddOutput{}, err
		}
		return nil, AddOutput{Staged: result.Staged}, nil
	}
}

// --- git_commit ---

// CommitInput creates a commit.
type CommitInput struct {
	Path       string `json:"path,omitempty"        jsonschema:"repository path; empty or '.' uses the session working directory"`
	Message    string `json:"message"               jsonschema:"commit message"`
	Amend      bool   `json:"amend,omitempty"       jsonschema:"amend the previous commit instead of creating a new one"`
	AllowEmpty bool   `json:"allow_empty,omitempty" jsonschema:"permit a commit with no changes"`
	Author     string `json:"author,omitempty"      jsonschema:"author override in 'Name <email>' form"`
	Confirm    bool   `json:"confirm,omitempty"     jsonschema:"acknowledge amending a commit on a protected branch"`
}

// CommitOutput is the created commit.
type CommitOutput struct {
	Commit       CommitPayload `json:"commit"                  jsonschema:"the created commit"`
	ChangedFiles []string      `json:"changed_files,omitempty" jsonschema:"files the commit touched"`
}

func handleCommit(d *deps) mcp.ToolHandlerFor[CommitInput, CommitOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CommitInput) (*mcp.CallToolResult, CommitOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, CommitOutput{}, err
		}

		result, err := d.provider.Commit(ctx, opCtx, provider.CommitOptions{
			Message:    input.Message,
			Amend:      input.Amend,
			AllowEmpty: input.AllowEmpty,
			Author:     input.Author,
			Confirm:    input.Confirm,
		})
		if err != nil {
			return nil, CommitOutput{}, err
		}

		return nil, CommitOutput{
			Commit:       toCommitPayload(result.Commit),
			ChangedFiles: result.ChangedFiles,
		}, nil
	}
}

// --- git_branch ---

// BranchInput selects a branch operation by mode.
type BranchInput struct {
	Path    string `json:"path,omitempty"     jsonschema:"repository path; empty or '.' uses the session working directory"`
	Mode    string `json:"mode"               jsonschema:"one of list, create, delete, rename, checkout"`
	Name    string `json:"name,omitempty"     jsonschema:"branch name for create/delete/rename/checkout"`
	NewName string `json:"new_name,omitempty" jsonschema:"target name for rename"`
	From    string `json:"from,omitempty"     jsonschema:"start point for create"`
	All     bool   `json:"all,omitempty"      jsonschema:"list: include remote branches"`
	Force   bool   `json:"force,omitempty"    jsonschema:"delete: force-delete an unmerged branch"`
	Confirm bool   `json:"confirm,omitempty"  jsonschema:"acknowledge a destructive operation on a protected branch"`
}

// BranchPayload is one branch in list output.
type BranchPayload struct {
	Name       string `json:"name"               jsonschema:"branch name"`
	Current    bool   `json:"current"            jsonschema:"true for the checked-out branch"`
	Remote     bool   `json:"remote"             jsonschema:"true for remote-tracking branches"`
	CommitHash string `json:"commit_hash"        jsonschema:"hash of the branch tip"`
	Upstream   string `json:"upstream,omitempty" jsonschema:"upstream tracking ref"`
	Ahead      int    `json:"ahead,omitempty"    jsonschema:"commits ahead of upstream"`
	Behind     int    `json:"behind,omitempty"   jsonschema:"commits behind upstream"`
}

// BranchOutput is the branch operation outcome.
type BranchOutput struct {
	Mode       string          `json:"mode"                  jsonschema:"the executed mode"`
	Branches   []BranchPayload `json:"branches,omitempty"    jsonschema:"branches, for list"`
	Created    string          `json:"created,omitempty"     jsonschema:"created branch name"`
	Deleted    string          `json:"deleted,omitempty"     jsonschema:"deleted branch name"`
	Renamed    string          `json:"renamed,omitempty"     jsonschema:"new name after rename"`
	CheckedOut string          `json:"checked_out,omitempty" jsonschema:"branch now checked out"`
}

func handleBranch(d *deps) mcp.ToolHandlerFor[BranchInput, BranchOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input BranchInput) (*mcp.CallToolResult, BranchOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, BranchOutput{}, err
		}

		result, err := d.provider.Branch(ctx, opCtx, provider.BranchOptions{
			Mode:    provider.BranchMode(input.Mode),
			Name:    input.Name,
			NewName: input.NewName,
			From:    input.From,
			All:     input.All,
			Force:   input.Force,
			Confirm: input.Confirm,
		})
		if err != nil {
			return nil, BranchOutput{}, err
		}

		out := BranchOutput{
			Mode:       string(result.Mode),
			Created:    result.Created,
			Deleted:    result.Deleted,
			CheckedOut: result.CheckedOut,
		}
		if result.Renamed != nil {
			out.Renamed = result.Renamed.To
		}
		for _, b := range result.Branches {
			out.Branches = append(out.Branches, BranchPayload{
				Name:       b.Name,
				Current:    b.Current,
				Remote:     b.Remote,
				CommitHash: b.CommitHash,
				Upstream:   b.Upstream,
				Ahead:      b.Ahead,
				Behind:     b.Behind,
			})
		}
		return nil, out, nil
	}
}

// --- git_merge ---

// MergeInput merges a ref into the current branch.
type MergeInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"repository path; empty or '.' uses the session working directory"`
	Ref     string `json:"ref,omitempty"     jsonschema:"branch or revision to merge"`
	NoFF    bool   `json:"no_ff,omitempty"   jsonschema:"always create a merge commit"`
	Squash  bool   `json:"squash,omitempty"  jsonschema:"squash instead of merging"`
	Message string `json:"message,omitempty" jsonschema:"merge commit message"`
	Abort   bool   `json:"abort,omitempty"   jsonschema:"abort an in-progress merge"`
}

// MergeOutput reports the merge outcome.
type MergeOutput struct {
	Head    string `json:"head,omitempty" jsonschema:"HEAD after the merge"`
	Aborted bool   `json:"aborted"        jsonschema:"true when an in-progress merge was aborted"`
}

func handleMerge(d *deps) mcp.ToolHandlerFor[MergeInput, MergeOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MergeInput) (*mcp.CallToolResult, MergeOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, MergeOutput{}, err
		}

		result, err := d.provider.Merge(ctx, opCtx, provider.MergeOptions{
			Ref:     input.Ref,
			NoFF:    input.NoFF,
			Squash:  input.Squash,
			Message: input.Message,
			Abort:   input.Abort,
		})
		if err != nil {
			return nil, MergeOutput{}, err
		}
		return nil, MergeOutput{Head: result.Head, Aborted: result.Aborted}, nil
	}
}

// --- git_rebase ---

// RebaseInput selects a rebase action by mode.
type RebaseInput struct {
	Path     string `json:"path,omitempty"     jsonschema:"repository path; empty or '.' uses the session working directory"`
	Mode     string `json:"mode"               jsonschema:"one of start, continue, abort, skip"`
	Upstream string `json:"upstream,omitempty" jsonschema:"upstream to rebase onto, for start"`
	Onto     string `json:"onto,omitempty"     jsonschema:"explicit new base, for start"`
	Confirm  bool   `json:"confirm,omitempty"  jsonschema:"acknowledge rebasing a protected branch"`
}

// RebaseOutput reports the rebase outcome.
type RebaseOutput struct {
	Mode string `json:"mode"           jsonschema:"the executed mode"`
	Head string `json:"head,omitempty" jsonschema:"HEAD after the rebase step"`
}

func handleRebase(d *deps) mcp.ToolHandlerFor[RebaseInput, RebaseOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RebaseInput) (*mcp.CallToolResult, RebaseOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, RebaseOutput{}, err
		}

		result, err := d.provider.Rebase(ctx, opCtx, provider.RebaseOptions{
			Mode:     provider.RebaseMode(input.Mode),
			Upstream: input.Upstream,
			Onto:     input.Onto,
			Confirm:  input.Confirm,
		})
		if err != nil {
			return nil, RebaseOutput{}, err
		}
		return nil, RebaseOutput{Mode: string(result.Mode), Head: result.Head}, nil
	}
}

// --- git_cherry_pick ---

// CherryPickInput applies commits onto the current branch.
type CherryPickInput struct {
	Path     string   `json:"path,omitempty"      jsonschema:"repository path; empty or '.' uses the session working directory"`
	Revs     []string `json:"revs,omitempty"      jsonschema:"revisions to apply, in order"`
	NoCommit bool     `json:"no_commit,omitempty" jsonschema:"stage the changes without committing"`
	Abort    bool     `json:"abort,omitempty"     jsonschema:"abort an in-progress cherry-pick"`
}

// CherryPickOutput reports the cherry-pick outcome.
type CherryPickOutput struct {
	Head    string `json:"head,omitempty" jsonschema:"HEAD after the cherry-pick"`
	Aborted bool   `json:"aborted"        jsonschema:"true when an in-progress cherry-pick was aborted"`
}

func handleCherryPick(d *deps) mcp.ToolHandlerFor[CherryPickInput, CherryPickOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CherryPickInput) (*mcp.CallToolResult, CherryPickOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, CherryPickOutput{}, err
		}

		result, err := d.provider.CherryPick(ctx, opCtx, provider.CherryPickOptions{
			Revs:     input.Revs,
			NoCommit: input.NoCommit,
			Abort:    input.Abort,
		})
		if err != nil {
			return nil, CherryPickOutput{}, err
		}
		return nil, CherryPickOutput{Head: result.Head, Aborted: result.Aborted}, nil
	}
}

// --- git_stash ---

// StashInput selects a stash operation by mode.
type StashInput struct {
	Path             string `json:"path,omitempty"              jsonschema:"repository path; empty or '.' uses the session working directory"`
	Mode             string `json:"mode"                        jsonschema:"one of list, push, pop, apply, drop"`
	Message          string `json:"message,omitempty"           jsonschema:"stash message, for push"`
	Ref              string `json:"ref,omitempty"               jsonschema:"stash reference like stash@{1}; defaults to the latest"`
	IncludeUntracked bool   `json:"include_untracked,omitempty" jsonschema:"push: include untracked files"`
}

// StashPayload is one stash in list output.
type StashPayload struct {
	Index   int    `json:"index"            jsonschema:"stash index"`
	Ref     string `json:"ref"              jsonschema:"stash reference"`
	Branch  string `json:"branch,omitempty" jsonschema:"branch the stash was made on"`
	Message string `json:"message"          jsonschema:"stash message"`
}

// StashOutput is the stash operation outcome.
type StashOutput struct {
	Mode    string         `json:"mode"              jsonschema:"the executed mode"`
	Stashes []StashPayload `json:"stashes,omitempty" jsonschema:"stashes, for list"`
	Ref     string         `json:"ref,omitempty"     jsonschema:"the affected stash reference"`
}

func handleStash(d *deps) mcp.ToolHandlerFor[StashInput, StashOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StashInput) (*mcp.CallToolResult, StashOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, StashOutput{}, err
		}

		result, err := d.provider.Stash(ctx, opCtx, provider.StashOptions{
			Mode:             provider.StashMode(input.Mode),
			Message:          input.Message,
			Ref:              input.Ref,
			IncludeUntracked: input.IncludeUntracked,
		})
		if err != nil {
			return nil, StashOutput{}, err
		}

		out := StashOutput{Mode: string(result.Mode), Ref: result.Ref}
		for _, s := range result.Stashes {
			out.Stashes = append(out.Stashes, StashPayload{
				Index:   s.Index,
				Ref:     s.Ref,
				Branch:  s.Branch,
				Message: s.Message,
			})
		}
		return nil, out, nil
	}
}

// --- git_tag ---

// TagInput selects a tag operation by mode.
type TagInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"repository path; empty or '.' uses the session working directory"`
	Mode    string `json:"mode"              jsonschema:"one of list, create, delete"`
	Name    string `json:"name,omitempty"    jsonschema:"tag name for create/delete"`
	Ref     string `json:"ref,omitempty"     jsonschema:"revision to tag; defaults to HEAD"`
	Message string `json:"message,omitempty" jsonschema:"annotation message; creates an annotated tag"`
}

// TagPayload is one tag in list output.
type TagPayload struct {
	Name       string `json:"name"                 jsonschema:"tag name"`
	CommitHash string `json:"commit_hash"          jsonschema:"tagged object hash"`
	Annotation string `json:"annotation,omitempty" jsonschema:"annotation subject, empty for lightweight tags"`
}

// TagOutput is the tag operation outcome.
type TagOutput struct {
	Mode    string       `json:"mode"              jsonschema:"the executed mode"`
	Tags    []TagPayload `json:"tags,omitempty"    jsonschema:"tags, for list"`
	Created string       `json:"created,omitempty" jsonschema:"created tag name"`
	Deleted string       `json:"deleted,omitempty" jsonschema:"deleted tag name"`
}

func handleTag(d *deps) mcp.ToolHandlerFor[TagInput, TagOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TagInput) (*mcp.CallToolResult, TagOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, TagOutput{}, err
		}

		result, err := d.provider.Tag(ctx, opCtx, provider.TagOptions{
			Mode:    provider.TagMode(input.Mode),
			Name:    input.Name,
			Ref:     input.Ref,
			Message: input.Message,
		})
		if err != nil {
			return nil, TagOutput{}, err
		}

		out := TagOutput{Mode: string(result.Mode), Created: result.Created, Deleted: result.Deleted}
		for _, tag := range result.Tags {
			out.Tags = append(out.Tags, TagPayload{
				Name:       tag.Name,
				CommitHash: tag.CommitHash,
				Annotation: tag.Annotation,
			})
		}
		return nil, out, nil
	}
}

// --- git_worktree ---

// WorktreeInput selects a worktree operation by mode.
type WorktreeInput struct {
	Path      string `json:"path,omitempty"          jsonschema:"repository path; empty or '.' uses the session working directory"`
	Mode      string `json:"mode"                    jsonschema:"one of list, add, remove, prune, lock, unlock"`
	Worktree  string `json:"worktree,omitempty"      jsonschema:"worktree path for add/remove/lock/unlock"`
	Branch    string `json:"branch,omitempty"        jsonschema:"branch to check out in the new worktree"`
	NewBranch bool   `json:"create_branch,omitempty" jsonschema:"add: create the branch"`
	Force     bool   `json:"force,omitempty"         jsonschema:"remove: discard local changes"`
	Reason    string `json:"reason,omitempty"        jsonschema:"lock reason"`
}

// WorktreePayload is one worktree in list output.
type WorktreePayload struct {
	Path     string `json:"path"             jsonschema:"worktree path"`
	Head     string `json:"head,omitempty"   jsonschema:"checked-out commit"`
	Branch   string `json:"branch,omitempty" jsonschema:"checked-out branch"`
	Bare     bool   `json:"bare,omitempty"   jsonschema:"true for the bare repository entry"`
	Detached bool   `json:"detached,omitempty" jsonschema:"true for a detached HEAD"`
	Locked   bool   `json:"locked,omitempty" jsonschema:"true when locked"`
	Reason   string `json:"reason,omitempty" jsonschema:"lock or prune reason"`
}

// WorktreeOutput is the worktree operation outcome.
type WorktreeOutput struct {
	Mode      string            `json:"mode"                jsonschema:"the executed mode"`
	Worktrees []WorktreePayload `json:"worktrees,omitempty" jsonschema:"worktrees, for list"`
	Path      string            `json:"path,omitempty"      jsonschema:"the affected worktree path"`
}

func handleWorktree(d *deps) mcp.ToolHandlerFor[WorktreeInput, WorktreeOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WorktreeInput) (*mcp.CallToolResult, WorktreeOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, WorktreeOutput{}, err
		}

		result, err := d.provider.Worktree(ctx, opCtx, provider.WorktreeOptions{
			Mode:      provider.WorktreeMode(input.Mode),
			Path:      input.Worktree,
			Branch:    input.Branch,
			NewBranch: input.NewBranch,
			Force:     input.Force,
			Reason:    input.Reason,
		})
		if err != nil {
			return nil, WorktreeOutput{}, err
		}

		out := WorktreeOutput{Mode: string(result.Mode), Path: result.Path}
		for _, w := range result.Worktrees {
			out.Worktrees = append(out.Worktrees, WorktreePayload{
				Path:     w.Path,
				Head:     w.Head,
				Branch:   w.Branch,
				Bare:     w.Bare,
				Detached: w.Detached,
				Locked:   w.Locked,
				Reason:   w.Reason,
			})
		}
		return nil, out, nil
	}
}

// --- git_remote ---

// RemoteInput selects a remote operation by mode.
type RemoteInput struct {
	Path string `json:"path,omitempty" jsonschema:"repository path; empty or '.' uses the session working directory"`
	Mode string `json:"mode"           jsonschema:"one of list, add, remove, set-url"`
	Name string `json:"name,omitempty" jsonschema:"remote name for add/remove/set-url"`
	URL  string `json:"url,omitempty"  jsonschema:"remote URL for add/set-url"`
}

// RemotePayload is one remote in list output.
type RemotePayload struct {
	Name     string `json:"name"      jsonschema:"remote name"`
	FetchURL string `json:"fetch_url" jsonschema:"fetch URL"`
	PushURL  string `json:"push_url"  jsonschema:"push URL"`
}

// RemoteOutput is the remote operation outcome.
type RemoteOutput struct {
	Mode    string          `json:"mode"              jsonschema:"the executed mode"`
	Remotes []RemotePayload `json:"remotes,omitempty" jsonschema:"remotes, for list"`
	Name    string          `json:"name,omitempty"    jsonschema:"the affected remote"`
}

func handleRemote(d *deps) mcp.ToolHandlerFor[RemoteInput, RemoteOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RemoteInput) (*mcp.CallToolResult, RemoteOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, RemoteOutput{}, err
		}

		result, err := d.provider.Remote(ctx, opCtx, provider.RemoteOptions{
			Mode: provider.RemoteMode(input.Mode),
			Name: input.Name,
			URL:  input.URL,
		})
		if err != nil {
			return nil, RemoteOutput{}, err
		}

		out := RemoteOutput{Mode: string(result.Mode), Name: result.Name}
		for _, r := range result.Remotes {
			out.Remotes = append(out.Remotes, RemotePayload{
				Name:     r.Name,
				FetchURL: r.FetchURL,
				PushURL:  r.PushURL,
			})
		}
		return nil, out, nil
	}
}

// --- git_reset ---

// ResetInput resets the current branch.
type ResetInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"repository path; empty or '.' uses the session working directory"`
	Mode    string `json:"mode,omitempty"    jsonschema:"one of soft, mixed, hard; defaults to mixed"`
	Ref     string `json:"ref,omitempty"     jsonschema:"revision to reset to; defaults to HEAD"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"acknowledge a hard reset of a protected branch"`
}

// ResetOutput reports the reset outcome.
type ResetOutput struct {
	Mode string `json:"mode" jsonschema:"the applied reset mode"`
	Head string `json:"head" jsonschema:"HEAD after the reset"`
}

func handleReset(d *deps) mcp.ToolHandlerFor[ResetInput, ResetOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ResetInput) (*mcp.CallToolResult, ResetOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, ResetOutput{}, err
		}

		result, err := d.provider.Reset(ctx, opCtx, provider.ResetOptions{
			Mode:    provider.ResetMode(input.Mode),
			Ref:     input.Ref,
			Confirm: input.Confirm,
		})
		if err != nil {
			return nil, ResetOutput{}, err
		}
		return nil, ResetOutput{Mode: string(result.Mode), Head: result.Head}, nil
	}
}

// --- git_clean ---

// CleanInput removes untracked files.
type CleanInput struct {
	Path        string `json:"path,omitempty"        jsonschema:"repository path; empty or '.' uses the session working directory"`
	Force       bool   `json:"force,omitempty"       jsonschema:"actually remove files; required unless dry_run is set"`
	Directories bool   `json:"directories,omitempty" jsonschema:"also remove untracked directories"`
	DryRun      bool   `json:"dry_run,omitempty"     jsonschema:"preview what would be removed"`
}

// CleanOutput lists what was (or would be) removed.
type CleanOutput struct {
	Removed []string `json:"removed" jsonschema:"removed paths, or candidates under dry_run"`
	DryRun  bool     `json:"dry_run" jsonschema:"true when nothing was actually removed"`
}

func handleClean(d *deps) mcp.ToolHandlerFor[CleanInput, CleanOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CleanInput) (*mcp.CallToolResult, CleanOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, CleanOutput{}, err
		}

		result, err := d.provider.Clean(ctx, opCtx, provider.CleanOptions{
			Force:       input.Force,
			Directories: input.Directories,
			DryRun:      input.DryRun,
		})
		if err != nil {
			return nil, CleanOutput{}, err
		}
		return nil, CleanOutput{Removed: result.Removed, DryRun: result.DryRun}, nil
	}
}

// --- git_init ---

// InitInput initializes a repository.
type InitInput struct {
	Path          string `json:"path,omitempty"           jsonschema:"directory to initialize; empty or '.' uses the session working directory"`
	InitialBranch string `json:"initial_branch,omitempty" jsonschema:"initial branch name; defaults to the configured default"`
	Bare          bool   `json:"bare,omitempty"           jsonschema:"create a bare repository"`
}

// InitOutput reports the initialized repository.
type InitOutput struct {
	Path   string `json:"path"   jsonschema:"repository path"`
	Branch string `json:"branch" jsonschema:"initial branch name"`
}

func handleInit(d *deps) mcp.ToolHandlerFor[InitInput, InitOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input InitInput) (*mcp.CallToolResult, InitOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, InitOutput{}, err
		}

		result, err := d.provider.Init(ctx, opCtx, provider.InitOptions{
			InitialBranch: input.InitialBranch,
			Bare:          input.Bare,
		})
		if err != nil {
			return nil, InitOutput{}, err
		}
		return nil, InitOutput{Path: result.Path, Branch: result.Branch}, nil
	}
}
