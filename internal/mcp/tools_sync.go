package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
)

// --- git_push ---

// PushInput pushes a ref to a remote.
type PushInput struct {
	Path        string `json:"path,omitempty"         jsonschema:"repository path; empty or '.' uses the session working directory"`
	Remote      string `json:"remote,omitempty"       jsonschema:"remote name; defaults to origin"`
	Ref         string `json:"ref,omitempty"          jsonschema:"branch or refspec to push; defaults to the current branch"`
	Force       bool   `json:"force,omitempty"        jsonschema:"force-push, overwriting the remote ref"`
	SetUpstream bool   `json:"set_upstream,omitempty" jsonschema:"set the upstream tracking ref"`
	Tags        bool   `json:"tags,omitempty"         jsonschema:"also push tags"`
	Confirm     bool   `json:"confirm,omitempty"      jsonschema:"acknowledge a force-push to a protected branch"`
}

// PushOutput reports what was pushed.
type PushOutput struct {
	Remote string `json:"remote"        jsonschema:"the remote pushed to"`
	Ref    string `json:"ref,omitempty" jsonschema:"the pushed ref"`
	Forced bool   `json:"forced"        jsonschema:"true when the push was forced"`
}

func handlePush(d *deps) mcp.ToolHandlerFor[PushInput, PushOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input PushInput) (*mcp.CallToolResult, PushOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, PushOutput{}, err
		}

		result, err := d.provider.Push(ctx, opCtx, provider.PushOptions{
			Remote:      input.Remote,
			Ref:         input.Ref,
			Force:       input.Force,
			SetUpstream: input.SetUpstream,
			Tags:        input.Tags,
			Confirm:     input.Confirm,
		})
		if err != nil {
			return nil, PushOutput{}, err
		}
		return nil, PushOutput{Remote: result.Remote, Ref: result.Ref, Forced: result.Forced}, nil
	}
}

// --- git_fetch ---

// FetchInput fetches from a remote.
type FetchInput struct {
	Path   string `json:"path,omitempty"   jsonschema:"repository path; empty or '.' uses the session working directory"`
	Remote string `json:"remote,omitempty" jsonschema:"remote name; defaults to all configured remotes"`
	Prune  bool   `json:"prune,omitempty"  jsonschema:"remove remote-tracking refs deleted upstream"`
	Tags   bool   `json:"tags,omitempty"   jsonschema:"also fetch tags"`
}

// FetchOutput acknowledges a completed fetch.
type FetchOutput struct {
	Fetched bool `json:"fetched" jsonschema:"true when the fetch completed"`
}

func handleFetch(d *deps) mcp.ToolHandlerFor[FetchInput, FetchOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FetchInput) (*mcp.CallToolResult, FetchOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, FetchOutput{}, err
		}

		if err := d.provider.Fetch(ctx, opCtx, provider.FetchOptions{
			Remote: input.Remote,
			Prune:  input.Prune,
			Tags:   input.Tags,
		}); err != nil {
			return nil, FetchOutput{}, err
		}
		return nil, FetchOutput{Fetched: true}, nil
	}
}

// --- git_pull ---

// PullInput pulls a ref from a remote.
type PullInput struct {
	Path   string `json:"path,omitempty"   jsonschema:"repository path; empty or '.' uses the session working directory"`
	Remote string `json:"remote,omitempty" jsonschema:"remote name"`
	Ref    string `json:"ref,omitempty"    jsonschema:"branch to pull"`
	Rebase bool   `json:"rebase,omitempty" jsonschema:"rebase instead of merging"`
}

// PullOutput reports the new HEAD after a pull.
type PullOutput struct {
	Head string `json:"head" jsonschema:"HEAD after the pull"`
}

func handlePull(d *deps) mcp.ToolHandlerFor[PullInput, PullOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input PullInput) (*mcp.CallToolResult, PullOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, PullOutput{}, err
		}

		result, err := d.provider.Pull(ctx, opCtx, provider.PullOptions{
			Remote: input.Remote,
			Ref:    input.Ref,
			Rebase: input.Rebase,
		})
		if err != nil {
			return nil, PullOutput{}, err
		}
		return nil, PullOutput{Head: result.Head}, nil
	}
}

// --- git_clone ---

// CloneInput clones a repository.
type CloneInput struct {
	Path   string `json:"path,omitempty"   jsonschema:"directory to clone under; empty or '.' uses the session working directory"`
	URL    string `json:"url"              jsonschema:"repository URL to clone"`
	Target string `json:"target,omitempty" jsonschema:"target directory name"`
	Branch string `json:"branch,omitempty" jsonschema:"branch to check out"`
	Depth  int    `json:"depth,omitempty"  jsonschema:"create a shallow clone of this depth"`
}

// CloneOutput reports where the clone landed.
type CloneOutput struct {
	Path string `json:"path" jsonschema:"path of the cloned repository"`
}

func handleClone(d *deps) mcp.ToolHandlerFor[CloneInput, CloneOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CloneInput) (*mcp.CallToolResult, CloneOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, CloneOutput{}, err
		}

		result, err := d.provider.Clone(ctx, opCtx, provider.CloneOptions{
			URL:    input.URL,
			Target: input.Target,
			Branch: input.Branch,
			Depth:  input.Depth,
		})
		if err != nil {
			return nil, CloneOutput{}, err
		}
		return nil, CloneOutput{Path: result.Path}, nil
	}
}
