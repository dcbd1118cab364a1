package logic

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bradleypallen/tableaux-go/internal/diagnostics"
)

// Registry is a process-wide mapping from canonical names and aliases to
// plugins. Writes happen at program startup or test setup; reads are
// lock-free-equivalent via RWMutex after initialization.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*Plugin
	aliases map[string]string // alias (lowercase) -> canonical name
}

// NewRegistry creates an empty registry. Tests use scoped registries
// rather than mutating the process-wide Global().
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Plugin{}, aliases: map[string]string{}}
}

// Register adds plugin under name plus any aliases, failing if name or any
// alias already refers to a different registration.
func (r *Registry) Register(name string, plugin *Plugin, aliases ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.byName[key]; exists {
		return fmt.Errorf("logic registry: name %q already registered", name)
	}
	if _, exists := r.aliases[key]; exists {
		return fmt.Errorf("logic registry: name %q collides with an existing alias", name)
	}
	for _, alias := range aliases {
		akey := strings.ToLower(alias)
		if _, exists := r.byName[akey]; exists {
			return fmt.Errorf("logic registry: alias %q collides with a registered name", alias)
		}
		if existing, exists := r.aliases[akey]; exists && existing != key {
			return fmt.Errorf("logic registry: alias %q already registered for %q", alias, existing)
		}
	}

	r.byName[key] = plugin
	r.aliases[key] = key
	for _, alias := range aliases {
		r.aliases[strings.ToLower(alias)] = key
	}
	return nil
}

// Get resolves a canonical name or alias to its plugin, failing with
// UnknownLogic if nothing matches.
func (r *Registry) Get(nameOrAlias string) (*Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.aliases[strings.ToLower(nameOrAlias)]
	if !ok {
		return nil, diagnostics.New(diagnostics.ErrUnknownLogic, diagnostics.Position{},
			fmt.Sprintf("unknown logic %q", nameOrAlias))
	}
	return r.byName[key], nil
}

// List returns the canonical names of every registered logic, sorted, for
// the CLI's --list-logics.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	globalOnce         sync.Once
	global             *Registry
	builtinRegisterers []func(*Registry)
)

// RegisterBuiltin is called from a logic package's init() (e.g.
// internal/logics/classical.go) to contribute a registration function run
// the first time Global() is requested. This keeps internal/logic free of
// any import on internal/logics (which itself imports internal/logic) — a
// new logic package only needs to call this once, with no other component
// requiring changes.
func RegisterBuiltin(register func(*Registry)) {
	builtinRegisterers = append(builtinRegisterers, register)
}

// Global returns the process-wide registry, lazily initialized on first
// lookup by running every builtin registerer exactly once.
func Global() *Registry {
	globalOnce.Do(func() {
		global = NewRegistry()
		for _, register := range builtinRegisterers {
			register(global)
		}
	})
	return global
}
