package languages

import (
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/oxhq/sce/internal/langconfig"
)

// Rust is grounded on slicer_config.rs's commented-out Rust arm. Its
// comment notes tree-sitter-rust has no generic "statement" node, so
// statement_types is an explicit enumeration rather than a supertype —
// carried over unchanged here.
func Rust() *langconfig.Config {
	return &langconfig.Config{
		Name:       "rust",
		Aliases:    []string{"rs"},
		Extensions: []string{".rs"},
		Language:   rust.GetLanguage,

		Subtypes: map[string][]string{},

		IdentifierTypes: []string{"identifier"},
		NameTypes:       []string{"identifier", "field_expression"},
		ConstantTypes:   []string{"integer_literal", "float_literal", "string_literal", "char_literal", "boolean_literal"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment_expression", DefsField: "left", RefsField: "right"},
			{Kind: "let_declaration", DefsField: "pattern", RefsField: "value"},
		},
		StatementTypes: []string{
			"let_declaration", "macro_invocation", "assignment_expression", "await_expression",
			"call_expression", "compound_assignment_expr", "for_expression", "if_expression",
			"if_let_expression", "loop_expression", "match_expression", "return_expression",
			"struct_expression", "try_expression", "while_expression", "while_let_expression",
		},
		SliceScopeTypes:         []string{"function_item"},
		VarDefinitionScopeTypes: []string{"block"},
		FunctionCallTypes:       []string{"call_expression"},

		FunctionQuery: `
			(function_item
				parameters: (parameters
					(parameter
						pattern: (identifier) @param_name
						type: (_) @param_type
					)
				)
				return_type: (_)? @function_type
				body: (block) @function_body
			)`,
		CallArgsQuery: `
			(call_expression
				arguments: (arguments
					(_) @value
				)
			)`,
		ReturnsQuery: `
			(return_expression
				(_) @return_value
			) @return_statement`,
		TempVarFormat: "let {name} = {value};",
	}
}
