package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
)

// defaultTenant keys session state when the transport provides no
// session ID, as stdio does for its single client.
const defaultTenant = "default"

// CommitPayload is the wire shape for a commit in tool output.
type CommitPayload struct {
	Hash        string   `json:"hash"              jsonschema:"full commit hash"`
	ShortHash   string   `json:"short_hash"        jsonschema:"abbreviated commit hash"`
	Author      string   `json:"author"            jsonschema:"author name"`
	AuthorEmail string   `json:"author_email"      jsonschema:"author email"`
	Date        string   `json:"date"              jsonschema:"author date, RFC 3339"`
	Subject     string   `json:"subject"           jsonschema:"commit subject line"`
	Body        string   `json:"body,omitempty"    jsonschema:"commit message body"`
	Parents     []string `json:"parents,omitempty" jsonschema:"parent commit hashes"`
}

func toCommitPayload(c git.Commit) CommitPayload {
	return CommitPayload{
		Hash:        c.Hash,
		ShortHash:   c.ShortHash,
		Author:      c.Author,
		AuthorEmail: c.AuthorEmail,
		Date:        c.Date.Format(time.RFC3339),
		Subject:     c.Subject,
		Body:        c.Body,
		Parents:     c.Parents,
	}
}

func toCommitPayloads(commits []git.Commit) []CommitPayload {
	out := make([]CommitPayload, 0, len(commits))
	for _, c := range commits {
		out = append(out, toCommitPayload(c))
	}
	return out
}

// sessionTenant derives the session key for a call. Transports that
// carry a session ID isolate tenants by it.
func sessionTenant(req *mcp.CallToolRequest) string {
	if req != nil && req.Session != nil {
		if id := req.Session.ID(); id != "" {
			return id
		}
	}
	return defaultTenant
}

// operationContext resolves the working directory for a call and
// stamps it with a fresh trace ID.
func (d *deps) operationContext(ctx context.Context, req *mcp.CallToolRequest, path string) (provider.OperationContext, error) {
	tenant := sessionTenant(req)
	dir, err := d.resolver.Resolve(ctx, tenant, path)
	if err != nil {
		return provider.OperationContext{}, err
	}
	return provider.OperationContext{
		WorkingDir: dir,
		TenantID:   tenant,
		TraceID:    uuid.NewString(),
	}, nil
}
