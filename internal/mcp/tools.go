package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
)

// --- git_status ---

// StatusInput selects the repository to inspect.
type StatusInput struct {
	Path string `json:"path,omitempty" jsonschema:"repository path; empty or '.' uses the session working directory"`
}

// StatusOutput is the structured working-tree state.
type StatusOutput struct {
	Branch     string   `json:"branch"               jsonschema:"current branch name, or HEAD when detached"`
	Upstream   string   `json:"upstream,omitempty"   jsonschema:"upstream tracking ref"`
	Ahead      int      `json:"ahead"                jsonschema:"commits ahead of upstream"`
	Behind     int      `json:"behind"               jsonschema:"commits behind upstream"`
	Staged     []string `json:"staged,omitempty"     jsonschema:"files staged for commit"`
	Unstaged   []string `json:"unstaged,omitempty"   jsonschema:"files with unstaged modifications"`
	Untracked  []string `json:"untracked,omitempty"  jsonschema:"untracked files"`
	Conflicted []string `json:"conflicted,omitempty" jsonschema:"files with merge conflicts"`
	Clean      bool     `json:"clean"                jsonschema:"true when the working tree has no changes"`
}

func handleStatus(d *deps) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		summary, err := d.provider.Status(ctx, opCtx)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		return nil, StatusOutput{
			Branch:     summary.Branch,
			Upstream:   summary.Upstream,
			Ahead:      summary.Ahead,
			Behind:     summary.Behind,
			Staged:     summary.Staged,
			Unstaged:   summary.Unstaged,
			Untracked:  summary.Untracked,
			Conflicted: summary.Conflicted,
			Clean:      summary.Clean,
		}, nil
	}
}

// --- git_log ---

// LogInput filters commit history.
type LogInput struct {
	Path     string `json:"path,omitempty"      jsonschema:"repository path; empty or '.' uses the session working directory"`
	Ref      string `json:"ref,omitempty"       jsonschema:"branch, tag, or revision to start from"`
	MaxCount int    `json:"max_count,omitempty" jsonschema:"maximum number of commits to return"`
	Author   string `json:"author,omitempty"    jsonschema:"filter by author substring"`
	Since    string `json:"since,omitempty"     jsonschema:"only commits after this date"`
	Until    string `json:"until,omitempty"     jsonschema:"only commits before this date"`
	File     string `json:"file,omitempty"      jsonschema:"only commits touching this path"`
}

// LogOutput lists structured commits.
type LogOutput struct {
	Commits []CommitPayload `json:"commits" jsonschema:"commits, newest first"`
	Count   int             `json:"count"   jsonschema:"number of commits returned"`
}

func handleLog(d *deps) mcp.ToolHandlerFor[LogInput, LogOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LogInput) (*mcp.CallToolResult, LogOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, LogOutput{}, err
		}

		commits, err := d.provider.Log(ctx, opCtx, provider.LogOptions{
			Ref:      input.Ref,
			MaxCount: input.MaxCount,
			Author:   input.Author,
			Since:    input.Since,
			Until:    input.Until,
			Path:     input.File,
		})
		if err != nil {
			return nil, LogOutput{}, err
		}

		return nil, LogOutput{
			Commits: toCommitPayloads(commits),
			Count:   len(commits),
		}, nil
	}
}

// --- git_diff ---

// DiffInput selects what to diff.
type DiffInput struct {
	Path   string   `json:"path,omitempty"   jsonschema:"repository path; empty or '.' uses the session working directory"`
	From   string   `json:"from,omitempty"   jsonschema:"base revision"`
	To     string   `json:"to,omitempty"     jsonschema:"target revision"`
	Files  []string `json:"files,omitempty"  jsonschema:"limit the diff to these paths"`
	Staged bool     `json:"staged,omitempty" jsonschema:"diff the index against HEAD instead of the working tree"`
}

// DiffOutput carries diff content and aggregated statistics.
type DiffOutput struct {
	Diff         string `json:"diff"          jsonschema:"unified diff text"`
	FilesChanged int    `json:"files_changed" jsonschema:"number of files changed"`
	Insertions   int    `json:"insertions"    jsonschema:"lines added"`
	Deletions    int    `json:"deletions"     jsonschema:"lines removed"`
	Binary       bool   `json:"binary"        jsonschema:"true when binary files are involved"`
	Truncated    bool   `json:"truncated"     jsonschema:"true when the diff exceeded the output cap"`
}

func handleDiff(d *deps) mcp.ToolHandlerFor[DiffInput, DiffOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DiffInput) (*mcp.CallToolResult, DiffOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, DiffOutput{}, err
		}

		result, err := d.provider.Diff(ctx, opCtx, provider.DiffOptions{
			From:   input.From,
			To:     input.To,
			Paths:  input.Files,
			Staged: input.Staged,
		})
		if err != nil {
			return nil, DiffOutput{}, err
		}

		return nil, DiffOutput{
			Diff:         result.Content,
			FilesChanged: result.Summary.FilesChanged,
			Insertions:   result.Summary.Insertions,
			Deletions:    result.Summary.Deletions,
			Binary:       result.Summary.Binary,
			Truncated:    result.Truncated,
		}, nil
	}
}

// --- git_show ---

// ShowInput selects a revision to inspect.
type ShowInput struct {
	Path string `json:"path,omitempty" jsonschema:"repository path; empty or '.' uses the session working directory"`
	Ref  string `json:"ref,omitempty"  jsonschema:"revision to show; defaults to HEAD"`
}

// ShowOutput is a commit plus the files it touched.
type ShowOutput struct {
	Commit       CommitPayload `json:"commit"                  jsonschema:"the commit"`
	ChangedFiles []string      `json:"changed_files,omitempty" jsonschema:"files the commit touched"`
}

func handleShow(d *deps) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, ShowOutput{}, err
		}

		result, err := d.provider.Show(ctx, opCtx, provider.ShowOptions{Ref: input.Ref})
		if err != nil {
			return nil, ShowOutput{}, err
		}

		return nil, ShowOutput{
			Commit:       toCommitPayload(result.Commit),
			ChangedFiles: result.ChangedFiles,
		}, nil
	}
}

// --- git_blame ---

// BlameInput selects a file and optional line range.
type BlameInput struct {
	Path      string `json:"path,omitempty"       jsonschema:"repository path; empty or '.' uses the session working directory"`
	File      string `json:"file"                 jsonschema:"file to annotate, relative to the repository root"`
	StartLine int    `json:"start_line,omitempty" jsonschema:"first line of the range (1-based)"`
	EndLine   int    `json:"end_line,omitempty"   jsonschema:"last line of the range (inclusive)"`
	Ref       string `json:"ref,omitempty"        jsonschema:"revision to blame at; defaults to the working tree"`
}

// BlameLinePayload attributes one line.
type BlameLinePayload struct {
	Line      int    `json:"line"      jsonschema:"line number"`
	Hash      string `json:"hash"      jsonschema:"commit hash, all zeros for uncommitted lines"`
	Author    string `json:"author"    jsonschema:"author name"`
	Date      string `json:"date"      jsonschema:"author date, RFC 3339"`
	Content   string `json:"content"   jsonschema:"line content"`
	Committed bool   `json:"committed" jsonschema:"false for not-yet-committed lines"`
}

// BlameOutput lists attributed lines.
type BlameOutput struct {
	File  string             `json:"file"  jsonschema:"the annotated file"`
	Lines []BlameLinePayload `json:"lines" jsonschema:"attributed lines in order"`
}

func handleBlame(d *deps) mcp.ToolHandlerFor[BlameInput, BlameOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input BlameInput) (*mcp.CallToolResult, BlameOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, BlameOutput{}, err
		}

		lines, err := d.provider.Blame(ctx, opCtx, provider.BlameOptions{
			Path:      input.File,
			StartLine: input.StartLine,
			EndLine:   input.EndLine,
			Ref:       input.Ref,
		})
		if err != nil {
			return nil, BlameOutput{}, err
		}

		out := BlameOutput{File: input.File, Lines: make([]BlameLinePayload, 0, len(lines))}
		for _, line := range lines {
			out.Lines = append(out.Lines, BlameLinePayload{
				Line:      line.Line,
				Hash:      line.Hash,
				Author:    line.Author,
				Date:      line.Date.Format(time.RFC3339),
				Content:   line.Content,
				Committed: line.Committed,
			})
		}
		return nil, out, nil
	}
}

// --- git_reflog ---

// ReflogInput filters reference history.
type ReflogInput struct {
	Path     string `json:"path,omitempty"      jsonschema:"repository path; empty or '.' uses the session working directory"`
	Ref      string `json:"ref,omitempty"       jsonschema:"reference to list; defaults to HEAD"`
	MaxCount int    `json:"max_count,omitempty" jsonschema:"maximum number of entries to return"`
}

// ReflogEntryPayload is one reference history entry.
type ReflogEntryPayload struct {
	Hash     string `json:"hash"     jsonschema:"commit hash"`
	Selector string `json:"selector" jsonschema:"reflog selector, e.g. HEAD@{0}"`
	Action   string `json:"action"   jsonschema:"recorded action, e.g. commit or rebase"`
	Message  string `json:"message"  jsonschema:"reflog message"`
}

// ReflogOutput lists reference history entries.
type ReflogOutput struct {
	Entries []ReflogEntryPayload `json:"entries" jsonschema:"entries, newest first"`
	Count   int                  `json:"count"   jsonschema:"number of entries returned"`
}

func handleReflog(d *deps) mcp.ToolHandlerFor[ReflogInput, ReflogOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReflogInput) (*mcp.CallToolResult, ReflogOutput, error) {
		opCtx, err := d.operationContext(ctx, req, input.Path)
		if err != nil {
			return nil, ReflogOutput{}, err
		}

		entries, err := d.provider.Reflog(ctx, opCtx, provider.ReflogOptions{
			Ref:      input.Ref,
			MaxCount: input.MaxCount,
		})
		if err != nil {
			return nil, ReflogOutput{}, err
		}

		out := ReflogOutput{Entries: make([]ReflogEntryPayload, 0, len(entries)), Count: len(entries)}
		for _, entry := range entries {
			out.Entries = append(out.Entries, ReflogEntryPayload{
				Hash:     entry.Hash,
				Selector: entry.Selector,
				Action:   entry.Action,
				Message:  entry.Message,
			})
		}
		return nil, out, nil
	}
}
