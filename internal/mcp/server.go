// Package mcp provides the Model Context Protocol server. It exposes
// git operations as schema-described tools that any MCP-capable agent
// can call, with per-session working directory state.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/config"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/safety"
)

// deps carries everything the tool handlers need.
type deps struct {
	provider provider.Provider
	resolver *safety.Resolver
	store    safety.SessionStore
	sanitize safety.SanitizeOptions
}

// ToolInfo describes one registered tool.
type ToolInfo struct {
	Name        string
	Description string
}

// toolRegistry collects tool metadata during registration. With a nil
// server it only records the catalog.
type toolRegistry struct {
	server *mcp.Server
	infos  []ToolInfo
}

func addTool[In, Out any](r *toolRegistry, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) {
	if r.server != nil {
		mcp.AddTool(r.server, tool, handler)
	}
	r.infos = append(r.infos, ToolInfo{Name: tool.Name, Description: tool.Description})
}

// NewServer creates an MCP server with all git tools registered.
func NewServer(version string, p provider.Provider, settings config.Settings) *mcp.Server {
	store := safety.NewCacheStore(settings.SessionTTL)
	sanitize := safety.SanitizeOptions{RootDir: settings.BaseDir}
	d := &deps{
		provider: p,
		resolver: safety.NewResolver(store, sanitize),
		store:    store,
		sanitize: sanitize,
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "git-mcp-server",
		Version: version,
	}, nil)
	registerTools(&toolRegistry{server: server}, d)
	return server
}

// ToolList returns the registered tools in registration order.
func ToolList() []ToolInfo {
	r := &toolRegistry{}
	registerTools(r, &deps{})
	return r.infos
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for local write tools
// (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// destructiveAnnotations returns annotations for tools that can lose
// work (reset, clean, forced operations).
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

// networkAnnotations returns annotations for tools that talk to
// remotes.
func networkAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all git tools to the registry.
func registerTools(r *toolRegistry, d *deps) {
	addTool(r, &mcp.Tool{
		Name:        "git_status",
		Description: "Show working tree status: current branch, upstream tracking, staged, unstaged, untracked, and conflicted files.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(d))

	addTool(r, &mcp.Tool{
		Name:        "git_log",
		Description: "List commit history with optional ref, author, date range, path, and count filters. Returns structured commits.",
		Annotations: readOnlyAnnotations(),
	}, handleLog(d))

	addTool(r, &mcp.Tool{
		Name:        "git_diff",
		Description: "Show changes between commits, the index, or the working tree, with aggregated file/insertion/deletion counts.",
		Annotations: readOnlyAnnotations(),
	}, handleDiff(d))

	addTool(r, &mcp.Tool{
		Name:        "git_show",
		Description: "Inspect a single revision: structured commit metadata plus the files it changed.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(d))

	addTool(r, &mcp.Tool{
		Name:        "git_blame",
		Description: "Attribute each line of a file to the commit that last changed it, optionally limited to a line range.",
		Annotations: readOnlyAnnotations(),
	}, handleBlame(d))

	addTool(r, &mcp.Tool{
		Name:        "git_reflog",
		Description: "List reference history entries, useful for recovering lost commits.",
		Annotations: readOnlyAnnotations(),
	}, handleReflog(d))

	addTool(r, &mcp.Tool{
		Name:        "git_add",
		Description: "Stage files for the next commit. With no paths, stages everything.",
		Annotations: writeAnnotations(),
	}, handleAdd(d))

	addTool(r, &mcp.Tool{
		Name:        "git_commit",
		Description: "Create a commit from staged changes. Returns the new commit's hash, metadata, and changed files.",
		Annotations: writeAnnotations(),
	}, handleCommit(d))

	addTool(r, &mcp.Tool{
		Name:        "git_branch",
		Description: "List, create, delete, rename, or checkout branches. Force-deleting a protected branch requires confirm=true.",
		Annotations: writeAnnotations(),
	}, handleBranch(d))

	addTool(r, &mcp.Tool{
		Name:        "git_merge",
		Description: "Merge a ref into the current branch, or abort an in-progress merge.",
		Annotations: writeAnnotations(),
	}, handleMerge(d))

	addTool(r, &mcp.Tool{
		Name:        "git_rebase",
		Description: "Rebase the current branch onto an upstream, or continue/abort/skip an in-progress rebase.",
		Annotations: writeAnnotations(),
	}, handleRebase(d))

	addTool(r, &mcp.Tool{
		Name:        "git_cherry_pick",
		Description: "Apply existing commits onto the current branch, or abort an in-progress cherry-pick.",
		Annotations: writeAnnotations(),
	}, handleCherryPick(d))

	addTool(r, &mcp.Tool{
		Name:        "git_stash",
		Description: "List, push, pop, apply, or drop stashes.",
		Annotations: writeAnnotations(),
	}, handleStash(d))

	addTool(r, &mcp.Tool{
		Name:        "git_tag",
		Description: "List, create, or delete tags. A message creates an annotated tag.",
		Annotations: writeAnnotations(),
	}, handleTag(d))

	addTool(r, &mcp.Tool{
		Name:        "git_worktree",
		Description: "List, add, remove, prune, lock, or unlock worktrees.",
		Annotations: writeAnnotations(),
	}, handleWorktree(d))

	addTool(r, &mcp.Tool{
		Name:        "git_remote",
		Description: "List, add, remove, or change the URL of remotes.",
		Annotations: writeAnnotations(),
	}, handleRemote(d))

	addTool(r, &mcp.Tool{
		Name:        "git_fetch",
		Description: "Fetch refs from a remote, optionally pruning deleted branches.",
		Annotations: networkAnnotations(),
	}, handleFetch(d))

	addTool(r, &mcp.Tool{
		Name:        "git_pull",
		Description: "Pull a ref from a remote into the current branch.",
		Annotations: networkAnnotations(),
	}, handlePull(d))

	addTool(r, &mcp.Tool{
		Name:        "git_push",
		Description: "Push a ref to a remote. Force-pushing a protected branch requires confirm=true.",
		Annotations: networkAnnotations(),
	}, handlePush(d))

	addTool(r, &mcp.Tool{
		Name:        "git_clone",
		Description: "Clone a repository into the working directory or a target path.",
		Annotations: networkAnnotations(),
	}, handleClone(d))

	addTool(r, &mcp.Tool{
		Name:        "git_init",
		Description: "Initialize a new repository in the working directory.",
		Annotations: writeAnnotations(),
	}, handleInit(d))

	addTool(r, &mcp.Tool{
		Name:        "git_reset",
		Description: "Reset the current branch to a ref (soft, mixed, or hard). Hard reset of a protected branch requires confirm=true.",
		Annotations: destructiveAnnotations(),
	}, handleReset(d))

	addTool(r, &mcp.Tool{
		Name:        "git_clean",
		Description: "Remove untracked files. Requires force=true, or dryRun=true to preview.",
		Annotations: destructiveAnnotations(),
	}, handleClean(d))

	addTool(r, &mcp.Tool{
		Name:        "git_set_working_dir",
		Description: "Set the session's working directory to an existing git repository. Subsequent tools with no path, or path \".\", operate here.",
		Annotations: writeAnnotations(),
	}, handleSetWorkingDir(d))

	addTool(r, &mcp.Tool{
		Name:        "git_clear_working_dir",
		Description: "Clear the session's working directory.",
		Annotations: writeAnnotations(),
	}, handleClearWorkingDir(d))
}
