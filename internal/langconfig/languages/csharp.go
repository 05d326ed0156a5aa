package languages

import (
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/oxhq/sce/internal/langconfig"
)

// CSharp is grounded on slicer_config.rs's commented-out CSharp arm.
func CSharp() *langconfig.Config {
	return &langconfig.Config{
		Name:       "csharp",
		Aliases:    []string{"c#", "cs"},
		Extensions: []string{".cs"},
		Language:   csharp.GetLanguage,

		Subtypes: map[string][]string{
			"_statement": {
				"_statement", "block", "expression_statement", "if_statement", "while_statement",
				"do_statement", "for_statement", "foreach_statement", "return_statement",
				"break_statement", "continue_statement", "switch_statement", "try_statement",
				"local_declaration_statement",
			},
			"_function_body": {"_function_body", "block", "arrow_expression_clause"},
		},

		IdentifierTypes: []string{"identifier"},
		NameTypes:       []string{"identifier", "member_access_expression"},
		ConstantTypes:   []string{"null_literal", "boolean_literal", "integer_literal", "real_literal", "string_literal", "character_literal"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment_expression", DefsField: "left", RefsField: "right"},
			{Kind: "variable_declarator", DefsField: "name", RefsField: "value"},
		},
		StatementTypes:          []string{"_statement"},
		SliceScopeTypes:         []string{"_function_body", "method_declaration"},
		VarDefinitionScopeTypes: []string{"block"},
		FunctionCallTypes:       []string{"invocation_expression"},

		FunctionQuery: `
			(method_declaration
				returns: (_) @function_type
				parameters: (parameter_list
					(parameter
						type: (_) @param_type
						name: (identifier) @param_name
					)
				)
				body: (block) @function_body
			)`,
		CallArgsQuery: `
			(invocation_expression
				arguments: (argument_list
					(argument (_) @value)
				)
			)`,
		ReturnsQuery: `
			(return_statement
				(_) @return_value
			) @return_statement`,
		TempVarFormat: "var {name} = {value};",
	}
}
