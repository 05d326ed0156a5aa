package languages

import (
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/oxhq/sce/internal/langconfig"
)

// JavaScript is grounded on slicer_config.rs's commented-out JavaScript arm.
func JavaScript() *langconfig.Config {
	return &langconfig.Config{
		Name:       "javascript",
		Aliases:    []string{"js"},
		Extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		Language:   javascript.GetLanguage,

		Subtypes: map[string][]string{
			"statement": {
				"statement", "statement_block", "expression_statement", "if_statement",
				"while_statement", "do_statement", "for_statement", "for_in_statement",
				"return_statement", "break_statement", "continue_statement", "switch_statement",
				"try_statement", "lexical_declaration", "variable_declaration",
			},
		},

		IdentifierTypes: []string{"identifier", "property_identifier"},
		NameTypes:       []string{"identifier", "member_expression"},
		ConstantTypes:   []string{"null", "undefined", "true", "false", "number", "string", "template_string"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment_expression", DefsField: "left", RefsField: "right"},
			{Kind: "variable_declarator", DefsField: "name", RefsField: "value"},
		},
		StatementTypes:          []string{"statement"},
		SliceScopeTypes:         []string{"function_declaration", "generator_function_declaration", "arrow_function", "method_definition"},
		VarDefinitionScopeTypes: []string{"statement_block"},
		FunctionCallTypes:       []string{"call_expression"},

		FunctionQuery: `
			(function_declaration
				parameters: (formal_parameters
					(identifier) @param_name
				)
				body: (statement_block) @function_body
			)`,
		CallArgsQuery: `
			(call_expression
				arguments: (arguments
					(_) @value
				)
			)`,
		ReturnsQuery: `
			(return_statement
				(_) @return_value
			) @return_statement`,
		TempVarFormat: "const {name} = {value};",
	}
}
