package languages

import (
	"github.com/smacker/go-tree-sitter/java"

	"github.com/oxhq/sce/internal/langconfig"
)

// Java is grounded on slicer_config.rs's commented-out Java arm.
func Java() *langconfig.Config {
	return &langconfig.Config{
		Name:       "java",
		Extensions: []string{".java"},
		Language:   java.GetLanguage,

		Subtypes: map[string][]string{
			"statement": {
				"statement", "block", "expression_statement", "if_statement", "while_statement",
				"do_statement", "for_statement", "enhanced_for_statement", "return_statement",
				"break_statement", "continue_statement", "switch_expression", "try_statement",
				"local_variable_declaration",
			},
		},

		IdentifierTypes: []string{"identifier"},
		NameTypes:       []string{"identifier", "field_access"},
		ConstantTypes:   []string{"null_literal", "true", "false", "decimal_integer_literal", "decimal_floating_point_literal", "string_literal", "character_literal"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment_expression", DefsField: "left", RefsField: "right"},
			{Kind: "variable_declarator", DefsField: "name", RefsField: "value"},
		},
		StatementTypes:          []string{"statement"},
		SliceScopeTypes:         []string{"method_declaration"},
		VarDefinitionScopeTypes: []string{"block"},
		FunctionCallTypes:       []string{"method_invocation"},

		FunctionQuery: `
			(method_declaration
				type: (_) @function_type
				parameters: (formal_parameters
					(formal_parameter
						type: (_) @param_type
						name: (identifier) @param_name
					)
				)
				body: (block) @function_body
			)`,
		CallArgsQuery: `
			(method_invocation
				arguments: (argument_list
					(_) @value
				)
			)`,
		ReturnsQuery: `
			(return_statement
				(_) @return_value
			) @return_statement`,
		TempVarFormat: "var {name} = {value};",
	}
}
