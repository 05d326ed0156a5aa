package languages

import (
	"github.com/smacker/go-tree-sitter/python"

	"github.com/oxhq/sce/internal/langconfig"
)

// Python is grounded on slicer_config.rs's commented-out Python arm.
func Python() *langconfig.Config {
	return &langconfig.Config{
		Name:       "python",
		Aliases:    []string{"py"},
		Extensions: []string{".py", ".pyi"},
		Language:   python.GetLanguage,

		Subtypes: map[string][]string{
			"_compound_statement": {
				"_compound_statement", "if_statement", "for_statement", "while_statement",
				"try_statement", "with_statement", "function_definition", "class_definition",
				"match_statement",
			},
			"_simple_statement": {
				"_simple_statement", "expression_statement", "return_statement", "delete_statement",
				"raise_statement", "pass_statement", "break_statement", "continue_statement",
				"import_statement", "import_from_statement", "global_statement", "assert_statement",
			},
		},

		IdentifierTypes: []string{"identifier"},
		NameTypes:       []string{"identifier", "attribute"},
		ConstantTypes:   []string{"none", "true", "false", "integer", "float", "string"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment", DefsField: "left", RefsField: "right"},
			{Kind: "with_item", DefsField: "alias", RefsField: "value"},
		},
		StatementTypes:          []string{"_compound_statement", "_simple_statement"},
		SliceScopeTypes:         []string{"function_definition"},
		VarDefinitionScopeTypes: []string{"function_definition"},
		FunctionCallTypes:       []string{"call"},

		FunctionQuery: `
			(function_definition
				parameters: (parameters
					(identifier) @param_name
				)
				body: (block) @function_body
			)`,
		CallArgsQuery: `
			(call
				arguments: (argument_list
					(_) @value
				)
			)`,
		ReturnsQuery: `
			(return_statement
				(_) @return_value
			) @return_statement`,
		TempVarFormat: "{name} = {value}",
	}
}
