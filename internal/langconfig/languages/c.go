package languages

import (
	"github.com/smacker/go-tree-sitter/c"

	"github.com/oxhq/sce/internal/langconfig"
)

// C is grounded directly on original_source/slicer/src/slicer_config.rs's
// C arm, the only language the Rust original fully implemented (queries
// included). Field-for-field copy of that arm's type lists.
func C() *langconfig.Config {
	return &langconfig.Config{
		Name:       "c",
		Aliases:    nil,
		Extensions: []string{".c", ".h"},
		Language:   c.GetLanguage,

		Subtypes: map[string][]string{
			"_statement": {
				"_statement", "case_statement", "compound_statement", "expression_statement",
				"labeled_statement", "break_statement", "continue_statement", "do_statement",
				"for_statement", "goto_statement", "if_statement", "return_statement",
				"switch_statement", "while_statement", "seh_leave_statement", "seh_try_statement",
			},
			"_type_specifier": {
				"_type_specifier", "struct_specifier", "union_specifier", "enum_specifier",
				"sized_type_specifier", "primitive_type", "type_identifier",
			},
			"_declarator": {
				"_declarator", "identifier", "pointer_declarator", "array_declarator",
				"function_declarator", "parenthesized_declarator",
			},
			"_expression": {
				"_expression", "binary_expression", "unary_expression", "call_expression",
				"assignment_expression", "identifier", "field_expression", "number_literal",
				"string_literal", "char_literal",
			},
		},

		IdentifierTypes: []string{"identifier", "field_identifier"},
		NameTypes:       []string{"identifier", "field_expression"},
		ConstantTypes:   []string{"null", "true", "false", "number_literal", "string_literal", "char_literal"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment_expression", DefsField: "left", RefsField: "right"},
			{Kind: "init_declarator", DefsField: "declarator", RefsField: "value"},
		},
		StatementTypes:          []string{"_statement", "declaration"},
		SliceScopeTypes:         []string{"function_definition"},
		VarDefinitionScopeTypes: []string{"compound_statement"},
		FunctionCallTypes:       []string{"call_expression"},

		FunctionQuery: `
			(function_definition
				type: (_type_specifier) @function_type
				declarator: (function_declarator
					parameters: (parameter_list
						(parameter_declaration
							type: (_type_specifier) @param_type
							declarator: (_declarator) @param_name
						)
					)
				)
				body: (compound_statement) @function_body
			)`,
		CallArgsQuery: `
			(call_expression
				arguments: (argument_list
					"("
					(_expression) @value
					")"
				)
			)`,
		ReturnsQuery: `
			(return_statement
				(_expression) @return_value
			) @return_statement`,
		TempVarFormat: "{type} {name} = {value};",
	}
}
