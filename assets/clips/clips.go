// Package clips is the asset boundary for animation clips. The core
// requests clips by logical name per character class; the resolver maps
// names to concrete assets and may fail per clip. Any subset of a class
// failing to load is tolerated: missing clips are skipped and the
// animation selector falls back to idle for them.
package clips

import (
	"fmt"
	"log"

	"github.com/mossback/spellstorm-mp/config"
)

// Library holds the clips that actually loaded for one character class.
type Library struct {
	Class string
	Clips map[string]config.ClipDef
}

// Resolver checks that a clip's backing asset exists. Swapped in tests
// to simulate load failures.
type Resolver func(class, name string) error

var resolver Resolver = func(class, name string) error { return nil }

// SetResolver installs a custom clip resolver.
func SetResolver(r Resolver) {
	resolver = r
}

// Load resolves every registered clip for a class. Per-clip failures
// are logged and skipped; only an unknown class is an error.
func Load(class string) (*Library, error) {
	registry, ok := config.CharacterClips[class]
	if !ok {
		return nil, fmt.Errorf("unknown character class %q", class)
	}

	lib := &Library{
		Class: class,
		Clips: make(map[string]config.ClipDef, len(registry)),
	}
	for name, def := range registry {
		if err := resolver(class, name); err != nil {
			log.Printf("[clips] failed to load %s/%s: %v", class, name, err)
			continue
		}
		lib.Clips[name] = def
	}
	return lib, nil
}

// Registry returns the full clip table for a class, nil when unknown.
// The animation mixer uses it to distinguish unrecognized tags from
// known-but-unloaded clips.
func Registry(class string) map[string]config.ClipDef {
	return config.CharacterClips[class]
}
