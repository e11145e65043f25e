// Package giterr classifies raw git failures into a closed error
// taxonomy. Every error leaving the engine is a *StructuredError; no
// raw subprocess error, stderr text, or stack trace crosses the
// boundary uncategorized.
package giterr

import (
	"errors"
	"regexp"
	"strings"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
)

// Kind identifies one failure category. The set is closed: callers
// can switch exhaustively over these values.
type Kind string

const (
	KindNotARepository    Kind = "not-a-repository"
	KindPermissionDenied  Kind = "permission-denied"
	KindPathspecNotFound  Kind = "pathspec-not-found"
	KindPathConflict      Kind = "path-conflict"
	KindBranchExists      Kind = "branch-exists"
	KindBranchNotFound    Kind = "branch-not-found"
	KindRemoteUnreachable Kind = "remote-unreachable"
	KindAuthFailed        Kind = "auth-failed"
	KindNetworkError      Kind = "network-error"
	KindNothingToCommit   Kind = "nothing-to-commit"
	KindMergeConflict     Kind = "merge-conflict"
	KindUnknownRevision   Kind = "unknown-revision"
	KindAmbiguousRef      Kind = "ambiguous-reference"
	KindToolNotInstalled  Kind = "tool-not-installed"
	KindValidation        Kind = "validation-error"
	KindInternal          Kind = "internal"
)

// StructuredError is the only error shape the engine raises.
type StructuredError struct {
	Kind    Kind
	Op      string
	Message string
	Details map[string]string
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Op == "" {
		return string(e.Kind) + ": " + e.Message
	}
	return e.Op + ": " + string(e.Kind) + ": " + e.Message
}

// Rule pairs a stderr pattern with the kind it classifies to, plus an
// optional detail extractor fed the regex submatches.
type Rule struct {
	Pattern *regexp.Regexp
	Kind    Kind
	Details func(matches []string) map[string]string
}

// DefaultRules is the fixed, ordered classification list. The first
// matching rule wins, so ordering is part of the contract: generic
// repository-state patterns come before more specific ones that can
// co-occur with them in the same stderr text.
var DefaultRules = []Rule{
	{
		Pattern: regexp.MustCompile(`(?i)not a git repository`),
		Kind:    KindNotARepository,
	},
	{
		Pattern: regexp.MustCompile(`(?i)permission denied`),
		Kind:    KindPermissionDenied,
	},
	{
		Pattern: regexp.MustCompile(`(?i)pathspec '([^']+)' did not match`),
		Kind:    KindPathspecNotFound,
		Details: func(matches []string) map[string]string {
			return map[string]string{"pathspec": matches[1]}
		},
	},
	{
		Pattern: regexp.MustCompile(`(?i)destination path '([^']+)' already exists`),
		Kind:    KindPathConflict,
		Details: func(matches []string) map[string]string {
			return map[string]string{"path": matches[1]}
		},
	},
	{
		Pattern: regexp.MustCompile(`(?i)branch (?:named )?'([^']+)' (?:already exists|exists)`),
		Kind:    KindBranchExists,
		Details: func(matches []string) map[string]string {
			return map[string]string{"branch": matches[1]}
		},
	},
	{
		Pattern: regexp.MustCompile(`(?i)branch '([^']+)' not found`),
		Kind:    KindBranchNotFound,
		Details: func(matches []string) map[string]string {
			return map[string]string{"branch": matches[1]}
		},
	},
	{
		Pattern: regexp.MustCompile(`(?i)could not read from remote repository|unable to access|connection refused|repository '[^']*' not found`),
		Kind:    KindRemoteUnreachable,
	},
	{
		Pattern: regexp.MustCompile(`(?i)authentication failed|could not read username|invalid credentials`),
		Kind:    KindAuthFailed,
	},
	{
		Pattern: regexp.MustCompile(`(?i)could not resolve host|network is unreachable|operation timed out|timed out`),
		Kind:    KindNetworkError,
	},
	{
		Pattern: regexp.MustCompile(`(?i)nothing to commit|no changes added to commit`),
		Kind:    KindNothingToCommit,
	},
	{
		Pattern: regexp.MustCompile(`(?i)CONFLICT \(|fix conflicts|needs merge|merge conflict`),
		Kind:    KindMergeConflict,
	},
	{
		Pattern: regexp.MustCompile(`(?i)unknown revision or path not in the working tree`),
		Kind:    KindUnknownRevision,
	},
	{
		Pattern: regexp.MustCompile(`(?i)is ambiguous|ambiguous argument`),
		Kind:    KindAmbiguousRef,
	},
}

// toolMissingRegex is the fallback heuristic for a missing git binary
// when no rule matched: the message names the tool plus a not-found
// marker.
var toolMissingRegex = regexp.MustCompile(`(?i)git.*(not found|no such file|executable file not found|command not found|ENOENT)`)

// Classify converts a raw failure into a StructuredError using the
// default rule list. Classification is pure and deterministic: the
// same input always yields the same kind.
func Classify(err error, op string) *StructuredError {
	return ClassifyWith(DefaultRules, err, op)
}

// ClassifyWith classifies using an explicit rule list. Tests use this
// to reorder rules and observe the outcome change.
func ClassifyWith(rules []Rule, err error, op string) *StructuredError {
	if structured := asStructured(err); structured != nil {
		return structured
	}

	message := rawMessage(err)

	var execErr *git.ExecError
	if errors.As(err, &execErr) {
		if execErr.NotFound {
			return &StructuredError{
				Kind:    KindToolNotInstalled,
				Op:      op,
				Message: "git not found: ensure git is installed and in PATH",
			}
		}
		if execErr.TimedOut {
			return &StructuredError{
				Kind:    KindNetworkError,
				Op:      op,
				Message: "git command timed out: " + execErr.Spec.String(),
			}
		}
	}

	for _, rule := range rules {
		matches := rule.Pattern.FindStringSubmatch(message)
		if matches == nil {
			continue
		}
		structured := &StructuredError{
			Kind:    rule.Kind,
			Op:      op,
			Message: firstLine(message),
		}
		if rule.Details != nil {
			structured.Details = rule.Details(matches)
		}
		return structured
	}

	if toolMissingRegex.MatchString(message) {
		return &StructuredError{
			Kind:    KindToolNotInstalled,
			Op:      op,
			Message: firstLine(message),
		}
	}

	return &StructuredError{
		Kind:    KindInternal,
		Op:      op,
		Message: firstLine(message),
	}
}

// Validation raises a validation-error directly, bypassing the
// classifier. Safety validators use this before any subprocess runs.
func Validation(op, message string, details map[string]string) *StructuredError {
	return &StructuredError{
		Kind:    KindValidation,
		Op:      op,
		Message: message,
		Details: details,
	}
}

// asStructured passes already-classified errors through unchanged.
func asStructured(err error) *StructuredError {
	var structured *StructuredError
	if errors.As(err, &structured) {
		return structured
	}
	return nil
}

// rawMessage combines stderr, stdout, and the error text so patterns
// can match wherever git printed them.
func rawMessage(err error) string {
	var execErr *git.ExecError
	if errors.As(err, &execErr) {
		parts := make([]string, 0, 3)
		if s := strings.TrimSpace(execErr.Stderr); s != "" {
			parts = append(parts, s)
		}
		if s := strings.TrimSpace(execErr.Stdout); s != "" {
			parts = append(parts, s)
		}
		if len(parts) == 0 && execErr.Err != nil {
			parts = append(parts, execErr.Err.Error())
		}
		return strings.Join(parts, "\n")
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return line
}
