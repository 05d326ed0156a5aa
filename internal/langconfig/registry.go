package langconfig

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// Registry maps a language name, alias, or file extension to its Config.
// Shaped after the teacher's provider registry (internal/registry):
// thread-safe, conflict-detecting registration, lookup by any of the
// three identifier spaces.
type Registry struct {
	mu         sync.RWMutex
	configs    map[string]*Config
	aliases    map[string]string
	extensions map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		configs:    make(map[string]*Config),
		aliases:    make(map[string]string),
		extensions: make(map[string]string),
	}
}

// Register compiles cfg and adds it under its name, aliases, and
// extensions. It refuses to register a Config whose name is empty,
// whose queries fail to compile, or that conflicts with an
// already-registered name/alias/extension; in every case it returns a
// multierr aggregate describing each problem found.
func (r *Registry) Register(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("langconfig: cannot register a nil config")
	}
	if cfg.Name == "" {
		return fmt.Errorf("langconfig: config must have a non-empty name")
	}

	var errs error
	if err := cfg.Compile(); err != nil {
		errs = multierr.Append(errs, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[cfg.Name]; exists {
		errs = multierr.Append(errs, fmt.Errorf("langconfig: %q already registered", cfg.Name))
	}
	for _, alias := range cfg.Aliases {
		if existing, exists := r.aliases[alias]; exists {
			errs = multierr.Append(errs, fmt.Errorf("langconfig: alias %q conflicts with %q", alias, existing))
		}
	}
	for _, ext := range cfg.Extensions {
		if existing, exists := r.extensions[ext]; exists {
			errs = multierr.Append(errs, fmt.Errorf("langconfig: extension %q conflicts with %q", ext, existing))
		}
	}
	if errs != nil {
		return errs
	}

	r.configs[cfg.Name] = cfg
	for _, alias := range cfg.Aliases {
		r.aliases[alias] = cfg.Name
	}
	for _, ext := range cfg.Extensions {
		r.extensions[ext] = cfg.Name
	}
	return nil
}

// Get resolves identifier (a language name, alias, or extension such as
// ".py") to its Config.
func (r *Registry) Get(identifier string) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.configs[identifier]; ok {
		return c, nil
	}
	if canonical, ok := r.aliases[identifier]; ok {
		return r.configs[canonical], nil
	}
	if canonical, ok := r.extensions[identifier]; ok {
		return r.configs[canonical], nil
	}
	return nil, fmt.Errorf("langconfig: no config registered for %q", identifier)
}

// Names returns every registered canonical language name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.configs))
	for name := range r.configs {
		out = append(out, name)
	}
	return out
}

// RegisterAll registers every Config in cfgs, aggregating any errors.
// langconfig/languages.Registry calls this with the full built-in set;
// it is exported so a caller can build a registry from a custom subset
// too.
func RegisterAll(r *Registry, cfgs []*Config) error {
	var errs error
	for _, cfg := range cfgs {
		if err := r.Register(cfg); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
