// Package main provides the entry point for the gitmcp server CLI.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
)

// skipWithoutGit skips tests that need a real git binary.
func skipWithoutGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(git.Binary); err != nil {
		t.Skip("git not installed")
	}
}

func TestGatherDoctorChecks(t *testing.T) {
	skipWithoutGit(t)

	result := gatherDoctorChecks(context.Background())
	if len(result.Core) == 0 || len(result.Safety) == 0 {
		t.Fatalf("expected checks in both categories, got %+v", result)
	}

	total := result.Summary.Passed + result.Summary.Warnings + result.Summary.Failed
	if total != len(result.Core)+len(result.Safety) {
		t.Errorf("summary total = %d, want %d", total, len(result.Core)+len(result.Safety))
	}

	if result.Core[0].Name != "Git Binary" || result.Core[0].Status != checkPass {
		t.Errorf("git binary check = %+v, want pass", result.Core[0])
	}
}

func TestDoctorJSONOutput(t *testing.T) {
	skipWithoutGit(t)

	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"doctor", "--json"})

	// The exit status depends on the host configuration; only the
	// output shape is asserted here.
	_ = cmd.Execute()

	var payload struct {
		Version string `json:"version"`
		Core    []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"core"`
		Summary map[string]int `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(payload.Core) == 0 {
		t.Error("no core checks in JSON output")
	}
}
