// Package suggest provides ready-made completers for komand arguments
// and a registry to share them by name, so declarative command sources
// can refer to completers they cannot construct themselves.
package suggest

import (
	"strings"

	"github.com/samber/lo"

	"github.com/statikomand/komand"
)

// Static returns a completer proposing the given values filtered by
// prefix, preserving their declared order.
func Static(values ...string) komand.Completer {
	fixed := append([]string(nil), values...)
	return komand.CompleterFunc(func(partial string) []string {
		return lo.Filter(fixed, func(value string, _ int) bool {
			return strings.HasPrefix(value, partial)
		})
	})
}

var registry = make(map[string]komand.Completer)

// Register stores a completer under name for later lookup. Registering
// the same name twice overwrites the previous completer.
func Register(name string, completer komand.Completer) {
	registry[name] = completer
}

// Get returns the completer registered under name.
func Get(name string) (komand.Completer, bool) {
	completer, ok := registry[name]
	return completer, ok
}

// Unregister removes the completer registered under name.
func Unregister(name string) {
	delete(registry, name)
}

// Named returns a completer resolving name against the registry at
// completion time, so declaration and registration order do not matter.
// An unregistered name proposes nothing.
func Named(name string) komand.Completer {
	return komand.CompleterFunc(func(partial string) []string {
		completer, ok := Get(name)
		if !ok {
			return nil
		}
		return completer.Complete(partial)
	})
}
