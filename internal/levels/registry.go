// Package levels provides the built-in stages and a registry for stage
// factories. Stages register themselves in init() functions, allowing
// drivers to discover and instantiate them without hardcoded dependencies.
// Stage geometry lives in code; there is no level file format.
package levels

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/jump-runner/internal/level"
)

// StageInfo contains metadata about a registered stage.
type StageInfo struct {
	ID   string
	Name string
}

// Factory is a function that builds a fresh geometry bundle for a stage.
// Each call returns a new Level so callers can never alias each other's
// geometry.
type Factory func() *level.Level

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a stage factory to the registry.
// Typically called from a stage's init() function.
// Panics if a stage with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("levels: stage %q already registered", id))
	}

	factories[id] = f
	names[id] = f().Name
}

// List returns information about all registered stages, sorted by ID.
func List() []StageInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StageInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StageInfo{ID: id, Name: names[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Exists returns true if a stage with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Create builds a fresh geometry bundle for the stage with the given ID.
func Create(id string) (*level.Level, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("levels: unknown stage %q", id)
	}
	return f(), nil
}
