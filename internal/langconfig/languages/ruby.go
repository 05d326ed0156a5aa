package languages

import (
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/oxhq/sce/internal/langconfig"
)

// Ruby is grounded on slicer_config.rs's commented-out Ruby arm, whose
// comment notes statement_types can't use "_primary" because that
// supertype also covers literals like `integer` — kept as an explicit
// enumeration here too.
func Ruby() *langconfig.Config {
	return &langconfig.Config{
		Name:       "ruby",
		Aliases:    []string{"rb"},
		Extensions: []string{".rb"},
		Language:   ruby.GetLanguage,

		Subtypes: map[string][]string{},

		IdentifierTypes: []string{"identifier"},
		NameTypes:       []string{"identifier", "call"},
		ConstantTypes:   []string{"nil", "true", "false", "integer", "float", "string"},
		PropagatingTypes: []langconfig.PropagatingType{
			{Kind: "assignment", DefsField: "left", RefsField: "right"},
		},
		StatementTypes:          []string{"_statement", "begin", "while", "until", "if", "unless", "for", "case"},
		SliceScopeTypes:         []string{"method", "singleton_method"},
		VarDefinitionScopeTypes: []string{"method", "singleton_method"},
		FunctionCallTypes:       []string{"call"},

		FunctionQuery: `
			(method
				parameters: (method_parameters
					(identifier) @param_name
				)
				body: (body_statement) @function_body
			)`,
		CallArgsQuery: `
			(call
				arguments: (argument_list
					(_) @value
				)
			)`,
		ReturnsQuery: `
			(return
				(_) @return_value
			) @return_statement`,
		TempVarFormat: "{name} = {value}",
	}
}
