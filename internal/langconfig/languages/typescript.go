package languages

import (
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/oxhq/sce/internal/langconfig"
)

// TypeScript is grounded on slicer_config.rs's commented-out TypeScript
// arm, which is itself a copy of the JavaScript arm with the same type
// names (the TS grammar reuses JS node kinds for these constructs).
func TypeScript() *langconfig.Config {
	return &langconfig.Config{
		Name:       "typescript",
		Aliases:    []string{"ts"},
		Extensions: []string{".ts", ".mts", ".cts"},
		Language:   typescript.GetLanguage,

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
					(required_parameter
						pattern: (identifier) @param_name
					)
				)
				return_type: (type_annotation)? @function_type
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

// TSX is TypeScript's JSX dialect, built from the distinct tsx grammar
// subpackage but otherwise identical in the kind names that matter here.
func TSX() *langconfig.Config {
	cfg := TypeScript()
	cfg.Name = "tsx"
	cfg.Aliases = nil
	cfg.Extensions = []string{".tsx"}
	cfg.Language = tsx.GetLanguage
	return cfg
}
