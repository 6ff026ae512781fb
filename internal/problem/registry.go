// Package problem hosts the built-in benchmark problems and the registry the
// CLI resolves them through. Each problem binds a genome type to a Runner so
// callers never touch the generic machinery directly.
package problem

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrProblemExists   = errors.New("problem already registered")
	ErrProblemNotFound = errors.New("problem not found")
)

var registry = struct {
	mu sync.RWMutex
	m  map[string]Runner
}{
	m: make(map[string]Runner),
}

func Register(name string, runner Runner) error {
	if name == "" {
		return errors.New("problem name is required")
	}
	if runner == nil {
		return errors.New("problem runner is required")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrProblemExists, name)
	}
	registry.m[name] = runner
	return nil
}

func MustRegister(name string, runner Runner) {
	if err := Register(name, runner); err != nil {
		panic(err)
	}
}

func Resolve(name string) (Runner, error) {
	registry.mu.RLock()
	runner, ok := registry.m[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProblemNotFound, name)
	}
	return runner, nil
}

func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.m))
	for name := range registry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
