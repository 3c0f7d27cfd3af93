package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// suggestionDistance is the largest edit distance at which Suggest still
// offers a registered key.
const suggestionDistance = 2

// Registry holds entity definitions by key. Definitions are immutable once
// registered; the registry is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]EntityDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]EntityDefinition)}
}

// Register adds an entity definition.
// Panics if an entity with the same key is already registered or the key is empty.
func (r *Registry) Register(def EntityDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if def.Info.Key == "" {
		panic("entity key is empty")
	}
	if _, exists := r.defs[def.Info.Key]; exists {
		panic(fmt.Sprintf("entity already registered: %s", def.Info.Key))
	}
	if def.Info.File == "" {
		def.Info.File = def.Info.Key + ".json"
	}
	def.Fields = append([]string(nil), def.Fields...)

	r.defs[def.Info.Key] = def
}

// Get returns an entity definition by key.
func (r *Registry) Get(key string) (EntityDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[key]
	return def, ok
}

// All returns every definition, sorted by group then key.
func (r *Registry) All() []EntityDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]EntityDefinition, 0, len(r.defs))
	for _, def := range r.defs {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Group != result[j].Info.Group {
			return result[i].Info.Group < result[j].Info.Group
		}
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// ByGroup returns the definitions of one group, sorted by key.
func (r *Registry) ByGroup(group string) []EntityDefinition {
	var result []EntityDefinition
	for _, def := range r.All() {
		if def.Info.Group == group {
			result = append(result, def)
		}
	}
	return result
}

// Groups returns the distinct group names, sorted.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, def := range r.defs {
		seen[def.Info.Group] = true
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}

	sort.Strings(groups)
	return groups
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Suggest returns the registered keys within suggestionDistance edits of
// key, or starting with it, in sorted order.
func (r *Registry) Suggest(key string) []string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for k := range r.defs {
		if levenshtein.ComputeDistance(key, k) <= suggestionDistance || strings.HasPrefix(k, key) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
