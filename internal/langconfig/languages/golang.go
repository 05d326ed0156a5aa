package languages

import (
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/oxhq/sce/internal/langconfig"
)

// Golang is grounded on slicer_config.rs's commented-out Go arm.
func Golang() *langconfig.Config {
	return &langconfig.Config{
		Name:       "go",
		Aliases:    []string{"golang"},
		Extensions: []string{".go"},
		Language:   golang.GetLanguage,

		Subtypes: map[string][]string{
			"_statement": {
				"_statement", "block", "expression_statement", "if_statement", "for_statement",
				"return_statement", "break_statement", "continue_statement", "switch_statement",
				"go_statement", "defer_statement", "send_statement", "short_var_declaration",
				"assignment_statement",
			},
		},

		IdentifierTypes: []string{"identifier", "field_identifier"},
		NameTypes:       []string{"identifier", "selector_expression"},
		ConstantTypes:   []string{"nil", "true", "false", "int_literal", "float_literal", "interpreted_string_literal", "raw_string_literal", "rune_literal"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment_statement", DefsField: "left", RefsField: "right"},
			{Kind: "short_var_declaration", DefsField: "left", RefsField: "right"},
		},
		StatementTypes:          []string{"_statement"},
		SliceScopeTypes:         []string{"function_declaration"},
		VarDefinitionScopeTypes: []string{"block"},
		FunctionCallTypes:       []string{"call_expression"},

		FunctionQuery: `
			(function_declaration
				parameters: (parameter_list
					(parameter_declaration
						type: (_) @param_type
						name: (identifier) @param_name
					)
				)
				result: (_)? @function_type
				body: (block) @function_body
			)`,
		CallArgsQuery: `
			(call_expression
				arguments: (argument_list
					(_) @value
				)
			)`,
		ReturnsQuery: `
			(return_statement
				(expression_list
					(_) @return_value
				)
			) @return_statement`,
		TempVarFormat: "{name} := {value}",
	}
}
