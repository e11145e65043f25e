package provider

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/config"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/git"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/giterr"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/safety"
)

// Kind selects a provider implementation.
type Kind string

// KindCLI is the git-binary-backed provider.
const KindCLI Kind = "cli"

// Factory builds and caches providers. It is injected where needed
// rather than held in a package variable, so tests get isolated
// instances.
type Factory struct {
	settings config.Settings
	guard    *safety.Guard
	lookPath func(file string) (string, error)

	mu    sync.Mutex
	cache map[Kind]Provider
}

// NewFactory creates a Factory over the given settings.
func NewFactory(settings config.Settings) *Factory {
	return &Factory{
		settings: settings,
		guard:    safety.NewGuard(settings.ProtectedBranches),
		lookPath: exec.LookPath,
		cache:    map[Kind]Provider{},
	}
}

// Get returns the provider for kind, constructing it on first use.
// required lists capability names the caller depends on; the error
// names every capability the provider lacks.
func (f *Factory) Get(kind Kind, required ...string) (Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.cache[kind]
	if !ok {
		built, err := f.build(kind)
		if err != nil {
			return nil, err
		}
		f.cache[kind] = built
		p = built
	}

	if missing := missingCapabilities(p, required); len(missing) > 0 {
		return nil, fmt.Errorf("provider %q lacks required capabilities: %s",
			kind, strings.Join(missing, ", "))
	}
	return p, nil
}

// Reset drops all cached providers.
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = map[Kind]Provider{}
}

func (f *Factory) build(kind Kind) (Provider, error) {
	switch kind {
	case KindCLI:
		if _, err := f.lookPath(git.Binary); err != nil {
			return nil, &giterr.StructuredError{
				Kind:    giterr.KindToolNotInstalled,
				Op:      "provider",
				Message: "git executable not found on PATH",
			}
		}
		return NewCLIProvider(git.NewRunner(), f.guard, f.settings), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", kind)
	}
}

func missingCapabilities(p Provider, required []string) []string {
	caps := p.Capabilities()
	var missing []string
	for _, name := range required {
		if !caps[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
