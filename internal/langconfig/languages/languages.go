// Package languages wires the ten languages named in the module's
// language list (plus TSX as TypeScript's JSX dialect) to concrete
// langconfig.Config values, then exposes a ready-built registry.
package languages

import (
	"github.com/oxhq/sce/internal/langconfig"
)

// All returns every built-in Config, built fresh on each call.
func All() []*langconfig.Config {
	return []*langconfig.Config{
		C(),
		Cpp(),
		CSharp(),
		Golang(),
		Java(),
		JavaScript(),
		Python(),
		Ruby(),
		Rust(),
		TypeScript(),
		TSX(),
	}
}

// Registry builds and returns a langconfig.Registry with every built-in
// language registered. Returns a multierr aggregate if any language's
// queries fail to compile or its names collide.
func Registry() (*langconfig.Registry, error) {
	r := langconfig.NewRegistry()
	err := langconfig.RegisterAll(r, All())
	return r, err
}
