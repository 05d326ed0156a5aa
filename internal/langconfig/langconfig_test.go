package langconfig_test

import (
	"testing"

	"github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/langconfig"
)

func minimalPython() *langconfig.Config {
	return &langconfig.Config{
		Name:     "python",
		Language: python.GetLanguage,
		Subtypes: map[string][]string{
			"_simple_statement": {"_simple_statement", "return_statement", "expression_statement"},
		},
		IdentifierTypes:         []string{"identifier"},
		NameTypes:               []string{"identifier", "attribute"},
		StatementTypes:          []string{"_simple_statement"},
		SliceScopeTypes:         []string{"function_definition"},
		VarDefinitionScopeTypes: []string{"function_definition"},
		FunctionCallTypes:       []string{"call"},
		FunctionQuery: `(function_definition
			parameters: (parameters (identifier) @param_name)
			body: (block) @function_body)`,
		CallArgsQuery: `(call arguments: (argument_list (_) @value))`,
		ReturnsQuery:  `(return_statement (_) @return_value) @return_statement`,
		TempVarFormat: "{name} = {value}",
	}
}

func TestCompileExpandsSubtypes(t *testing.T) {
	cfg := minimalPython()
	require.NoError(t, cfg.Compile())

	require.True(t, cfg.IsStatementType("return_statement"))
	require.True(t, cfg.IsStatementType("expression_statement"))
	require.False(t, cfg.IsStatementType("function_definition"))
}

func TestCompileLeavesUnlistedKindsAsSingletons(t *testing.T) {
	cfg := minimalPython()
	require.NoError(t, cfg.Compile())

	require.True(t, cfg.IsSliceScopeType("function_definition"))
	require.False(t, cfg.IsSliceScopeType("class_definition"))
}

func TestCompileFailsOnBadQuery(t *testing.T) {
	cfg := minimalPython()
	cfg.FunctionQuery = "(this is not valid tree-sitter query syntax"
	err := cfg.Compile()
	require.Error(t, err)
}

func TestPropagatingFor(t *testing.T) {
	cfg := minimalPython()
	cfg.PropagatingTypes = []langconfig.PropagatingType{
		{Kind: "assignment", DefsField: "left", RefsField: "right"},
	}
	require.NoError(t, cfg.Compile())

	p, ok := cfg.PropagatingFor("assignment")
	require.True(t, ok)
	require.Equal(t, "left", p.DefsField)

	_, ok = cfg.PropagatingFor("nonexistent")
	require.False(t, ok)
}
