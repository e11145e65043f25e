package mcp

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/safety"
)

// --- git_set_working_dir ---

// SetWorkingDirInput sets the session working directory.
type SetWorkingDirInput struct {
	Path string `json:"path" jsonschema:"absolute path to use as the session working directory"`
}

// SetWorkingDirOutput confirms the stored directory.
type SetWorkingDirOutput struct {
	WorkingDir string `json:"working_dir" jsonschema:"the sanitized absolute path now in effect"`
}

func handleSetWorkingDir(d *deps) mcp.ToolHandlerFor[SetWorkingDirInput, SetWorkingDirOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SetWorkingDirInput) (*mcp.CallToolResult, SetWorkingDirOutput, error) {
		// Sanitize and validate before storing so later calls never
		// resolve a path that was invalid at set time.
		dir, err := safety.SanitizePath(input.Path, d.sanitize)
		if err != nil {
			return nil, SetWorkingDirOutput{}, err
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, SetWorkingDirOutput{}, giterr.Validation(
				"set-working-dir", "not a directory: "+dir, nil)
		}
		opCtx := provider.OperationContext{
			WorkingDir: dir,
			TenantID:   sessionTenant(req),
			TraceID:    uuid.NewString(),
		}
		if err := d.provider.ValidateRepository(ctx, opCtx); err != nil {
			return nil, SetWorkingDirOutput{}, err
		}
		if err := d.store.Set(ctx, opCtx.TenantID, dir); err != nil {
			return nil, SetWorkingDirOutput{}, err
		}
		return nil, SetWorkingDirOutput{WorkingDir: dir}, nil
	}
}

// --- git_clear_working_dir ---

// ClearWorkingDirInput has no parameters.
type ClearWorkingDirInput struct{}

// ClearWorkingDirOutput confirms the cleared state.
type ClearWorkingDirOutput struct {
	Cleared bool `json:"cleared" jsonschema:"true when the session working directory was cleared"`
}

func handleClearWorkingDir(d *deps) mcp.ToolHandlerFor[ClearWorkingDirInput, ClearWorkingDirOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, _ ClearWorkingDirInput) (*mcp.CallToolResult, ClearWorkingDirOutput, error) {
		if err := d.store.Delete(ctx, sessionTenant(req)); err != nil {
			return nil, ClearWorkingDirOutput{}, err
		}
		return nil, ClearWorkingDirOutput{Cleared: true}, nil
	}
}
