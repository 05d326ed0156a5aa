// Package langconfig holds one data table per supported language: the
// tree-sitter kind names the rest of the engine needs to know about, plus
// the three queries the inliner runs. Nothing here contains algorithm
// logic — it is the single place a new language is added, mirroring
// original_source/slicer/src/slicer_config.rs's SlicerConfig and
// from_guessed_language table.
package langconfig

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/multierr"
)

// PropagatingType names a CST kind that behaves like an assignment: a
// value flows from its RefsField subtree into the name(s) in its
// DefsField subtree (slicer.rs's propagating_types).
type PropagatingType struct {
	Kind      string
	DefsField string
	RefsField string
}

// Config is one language's complete slicer/inliner configuration.
type Config struct {
	Name     string
	Aliases  []string
	Extensions []string
	Language func() *sitter.Language

	// Subtypes maps a grammar supertype (e.g. "_statement") to itself plus
	// every concrete kind it stands for. A kind with no entry is treated
	// as its own singleton set.
	Subtypes map[string][]string

	IdentifierTypes         []string
	NameTypes               []string
	ConstantTypes           []string
	PropagatingTypes        []PropagatingType
	StatementTypes          []string
	SliceScopeTypes         []string
	VarDefinitionScopeTypes []string
	FunctionCallTypes       []string

	FunctionQuery string
	CallArgsQuery string
	ReturnsQuery  string
	TempVarFormat string

	identifierSet map[string]bool
	nameSet       map[string]bool
	constantSet   map[string]bool
	statementSet  map[string]bool
	sliceScopeSet map[string]bool
	varDefSet     map[string]bool
	callSet       map[string]bool

	compiledFunctionQuery *sitter.Query
	compiledCallArgsQuery *sitter.Query
	compiledReturnsQuery  *sitter.Query
}

func expand(subtypes map[string][]string, kinds []string) map[string]bool {
	set := make(map[string]bool)
	for _, k := range kinds {
		if expanded, ok := subtypes[k]; ok {
			for _, e := range expanded {
				set[e] = true
			}
			continue
		}
		set[k] = true
	}
	return set
}

// Compile expands subtype sets and compiles the three tree-sitter queries.
// It must be called once before a Config's Is*Type methods or queries are
// used; Registry.Register calls it automatically.
func (c *Config) Compile() error {
	c.identifierSet = expand(c.Subtypes, c.IdentifierTypes)
	c.nameSet = expand(c.Subtypes, c.NameTypes)
	c.constantSet = expand(c.Subtypes, c.ConstantTypes)
	c.statementSet = expand(c.Subtypes, c.StatementTypes)
	c.sliceScopeSet = expand(c.Subtypes, c.SliceScopeTypes)
	c.varDefSet = expand(c.Subtypes, c.VarDefinitionScopeTypes)
	c.callSet = expand(c.Subtypes, c.FunctionCallTypes)

	var errs error
	lang := c.Language()

	q, err := sitter.NewQuery([]byte(c.FunctionQuery), lang)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s: function_query: %w", c.Name, err))
	} else {
		c.compiledFunctionQuery = q
	}

	q, err = sitter.NewQuery([]byte(c.CallArgsQuery), lang)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s: call_args_query: %w", c.Name, err))
	} else {
		c.compiledCallArgsQuery = q
	}

	q, err = sitter.NewQuery([]byte(c.ReturnsQuery), lang)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s: returns_query: %w", c.Name, err))
	} else {
		c.compiledReturnsQuery = q
	}

	return errs
}

func (c *Config) IsIdentifierType(kind string) bool       { return c.identifierSet[kind] }
func (c *Config) IsNameType(kind string) bool              { return c.nameSet[kind] }
func (c *Config) IsConstantType(kind string) bool          { return c.constantSet[kind] }
func (c *Config) IsStatementType(kind string) bool         { return c.statementSet[kind] }
func (c *Config) IsSliceScopeType(kind string) bool         { return c.sliceScopeSet[kind] }
func (c *Config) IsVarDefinitionScopeType(kind string) bool { return c.varDefSet[kind] }
func (c *Config) IsFunctionCallType(kind string) bool       { return c.callSet[kind] }

// PropagatingFor returns the PropagatingType entry for kind, if any.
func (c *Config) PropagatingFor(kind string) (PropagatingType, bool) {
	for _, p := range c.PropagatingTypes {
		if p.Kind == kind {
			return p, true
		}
	}
	return PropagatingType{}, false
}

func (c *Config) FunctionQueryCompiled() *sitter.Query { return c.compiledFunctionQuery }
func (c *Config) CallArgsQueryCompiled() *sitter.Query { return c.compiledCallArgsQuery }
func (c *Config) ReturnsQueryCompiled() *sitter.Query  { return c.compiledReturnsQuery }
