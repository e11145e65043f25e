// Package main provides the entry point for the gitmcp server CLI.
package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/config"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version string         `json:"version"`
	Core    []checkResult  `json:"core"`
	Safety  []checkResult  `json:"safety"`
	Summary *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	quiet := false

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check server prerequisites and configuration",
		Long: `Check gitmcp prerequisites and configuration.

Runs health checks across two categories:
  CORE    - git binary availability and version
  SAFETY  - settings file, protected branches, base directory

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - Critical issue that needs attention

Examples:
  gitmcp doctor           # Run all health checks
  gitmcp doctor --quiet   # Only show failures and warnings
  gitmcp doctor --json    # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, quiet)
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, quiet bool) error {
	jsonMode := isJSONMode(cmd)
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY)

	result := gatherDoctorChecks(cmd.Context())

	if jsonMode {
		return outputDoctorJSON(printer, result)
	}

	outputDoctorHuman(printer, result, quiet)
	if result.Summary.Failed > 0 {
		return output.NewSystemError("doctor found failing checks")
	}
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(ctx context.Context) *doctorResult {
	result := &doctorResult{
		Version: version,
		Core:    runCoreChecks(ctx),
		Safety:  runSafetyChecks(),
		Summary: &doctorSummary{},
	}

	for _, check := range append(append([]checkResult{}, result.Core...), result.Safety...) {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	return result
}

// runCoreChecks verifies the git binary.
func runCoreChecks(ctx context.Context) []checkResult {
	checks := make([]checkResult, 0, 2)

	path, err := exec.LookPath(git.Binary)
	if err != nil {
		checks = append(checks, checkResult{
			Name:    "Git Binary",
			Status:  checkFail,
			Message: "git not found on PATH",
			Hint:    "Install git and ensure it is on PATH",
		})
		return checks
	}
	checks = append(checks, checkResult{
		Name:    "Git Binary",
		Status:  checkPass,
		Message: "found at " + path,
	})

	runner := git.NewRunner()
	raw, err := runner.Run(ctx, git.Build("--version"), git.ExecOptions{})
	if err != nil {
		checks = append(checks, checkResult{
			Name:    "Git Version",
			Status:  checkFail,
			Message: "git --version failed: " + err.Error(),
		})
		return checks
	}
	checks = append(checks, checkResult{
		Name:    "Git Version",
		Status:  checkPass,
		Message: strings.TrimSpace(raw.Stdout),
	})

	return checks
}

// runSafetyChecks verifies settings and guard configuration.
func runSafetyChecks() []checkResult {
	checks := make([]checkResult, 0, 3)

	settingsPath := filepath.Join(config.Dir(), "settings.yaml")
	settings, err := config.Load(settingsPath)
	switch {
	case err != nil:
		checks = append(checks, checkResult{
			Name:    "Settings File",
			Status:  checkFail,
			Message: "cannot parse " + settingsPath + ": " + err.Error(),
		})
		settings = config.Defaults()
	case fileExists(settingsPath):
		checks = append(checks, checkResult{
			Name:    "Settings File",
			Status:  checkPass,
			Message: settingsPath,
		})
	default:
		checks = append(checks, checkResult{
			Name:    "Settings File",
			Status:  checkWarn,
			Message: "no settings file, using defaults",
			Hint:    "Create " + settingsPath + " to customize timeouts and protected branches",
		})
	}

	if len(settings.ProtectedBranches) == 0 {
		checks = append(checks, checkResult{
			Name:    "Protected Branches",
			Status:  checkWarn,
			Message: "no protected branches configured",
			Hint:    "Destructive operations will run without confirmation prompts",
		})
	} else {
		checks = append(checks, checkResult{
			Name:    "Protected Branches",
			Status:  checkPass,
			Message: strings.Join(settings.ProtectedBranches, ", "),
		})
	}

	switch {
	case settings.BaseDir == "":
		checks = append(checks, checkResult{
			Name:    "Base Directory",
			Status:  checkWarn,
			Message: "no base directory restriction",
			Hint:    "Set baseDir in settings.yaml to confine operations to one tree",
		})
	case dirExists(settings.BaseDir):
		checks = append(checks, checkResult{
			Name:    "Base Directory",
			Status:  checkPass,
			Message: settings.BaseDir,
		})
	default:
		checks = append(checks, checkResult{
			Name:    "Base Directory",
			Status:  checkFail,
			Message: settings.BaseDir + " does not exist",
		})
	}

	return checks
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// outputDoctorJSON outputs the doctor result as JSON.
func outputDoctorJSON(printer *output.Printer, result *doctorResult) error {
	return printer.WriteJSON(map[string]any{
		"version": result.Version,
		"core":    result.Core,
		"safety":  result.Safety,
		"summary": map[string]any{
			"passed":   result.Summary.Passed,
			"warnings": result.Summary.Warnings,
			"failed":   result.Summary.Failed,
		},
	})
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("gitmcp doctor v%s\n", result.Version)

	printCheckSection(printer, "CORE", result.Core, quiet)
	printCheckSection(printer, "SAFETY", result.Safety, quiet)

	printer.Println()
	printer.Print("%d passed, %d warnings, %d failed\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Failed)
}

// printCheckSection prints one category of checks.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	printer.Section(title)
	for _, check := range checks {
		if quiet && check.Status == checkPass {
			continue
		}
		marker := "ok"
		switch check.Status {
		case checkWarn:
			marker = "warn"
		case checkFail:
			marker = "FAIL"
		}
		printer.Print("  [%s] %s: %s\n", marker, check.Name, check.Message)
		if check.Hint != "" && check.Status != checkPass {
			printer.Print("        hint: %s\n", check.Hint)
		}
	}
}
