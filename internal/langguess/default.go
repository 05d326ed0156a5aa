package langguess

import "github.com/oxhq/sce/internal/langconfig"

// shebangInterpreters maps an interpreter-line substring to the language
// tag used when a script has no recognized extension.
var shebangInterpreters = Shebangs{
	"python":  "python",
	"ruby":    "ruby",
	"node":    "javascript",
	"ts-node": "typescript",
}

// FromRegistry builds a Guesser whose extension table is read directly
// from every language Config registered in r.
func FromRegistry(r *langconfig.Registry) *Guesser {
	ext := make(Extensions)
	for _, name := range r.Names() {
		cfg, err := r.Get(name)
		if err != nil {
			continue
		}
		for _, e := range cfg.Extensions {
			ext[e] = cfg.Name
		}
	}
	return New(ext, shebangInterpreters)
}
