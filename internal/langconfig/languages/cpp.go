package languages

import (
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/oxhq/sce/internal/langconfig"
)

// Cpp fills in the queries and subtypes the Rust original left as a
// commented-out stub ("// TODO") in slicer_config.rs, keeping its
// identifier/name/propagating/statement/scope type lists unchanged.
func Cpp() *langconfig.Config {
	return &langconfig.Config{
		Name:       "cpp",
		Aliases:    []string{"c++"},
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"},
		Language:   cpp.GetLanguage,

		Subtypes: map[string][]string{
			"_statement": {
				"_statement", "compound_statement", "expression_statement", "if_statement",
				"while_statement", "do_statement", "for_statement", "for_range_loop",
				"return_statement", "break_statement", "continue_statement", "switch_statement",
				"try_statement", "declaration",
			},
			"_type_specifier": {
				"_type_specifier", "struct_specifier", "class_specifier", "union_specifier",
				"enum_specifier", "sized_type_specifier", "primitive_type", "type_identifier",
				"qualified_identifier", "template_type",
			},
			"_declarator": {
				"_declarator", "identifier", "pointer_declarator", "reference_declarator",
				"array_declarator", "function_declarator",
			},
		},

		IdentifierTypes: []string{"identifier", "field_identifier"},
		NameTypes:       []string{"identifier", "field_expression", "qualified_identifier"},
		ConstantTypes:   []string{"null", "nullptr", "true", "false", "number_literal", "string_literal", "char_literal"},
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
