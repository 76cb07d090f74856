package module

import (
	"slices"
	"sync"
)

// ports registered at bootstrap, keyed by module name
var registry = struct {
	sync.RWMutex
	byName map[string]any
}{byName: map[string]any{}}

// Register records the ports of the named module, replacing earlier ones
func Register(name string, ports any) {
	registry.Lock()
	defer registry.Unlock()
	registry.byName[name] = ports
}

// PortsAs returns the ports registered under name as T
func PortsAs[T any](name string) (T, bool) {
	registry.RLock()
	p, found := registry.byName[name]
	registry.RUnlock()
	v, ok := p.(T)
	return v, found && ok
}

// Names lists registered module names in order
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	out := make([]string, 0, len(registry.byName))
	for n := range registry.byName {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Reset forgets every registration, tests use it between mounts
func Reset() {
	registry.Lock()
	defer registry.Unlock()
	registry.byName = map[string]any{}
}
