// Package suite defines the YAML schema for contract suites: named
// groups of contracts bound to fields of a document, declared as rule
// specs that a registry compiles into runnable contracts.
package suite

// Suite represents a full contract suite document.
type Suite struct {
	Version     string         `yaml:"version" validate:"required"`
	Name        string         `yaml:"name" validate:"required,min=1,max=100"`
	Description string         `yaml:"description,omitempty"`
	Contracts   []ContractSpec `yaml:"contracts" validate:"required,min=1,dive"`
}

// ContractSpec declares one contract: the document field it applies to
// and the rules that compose it.
type ContractSpec struct {
	ID    string     `yaml:"id" validate:"required,contract_id"`
	Field string     `yaml:"field" validate:"required,field_path"`
	Mode  string     `yaml:"mode,omitempty" validate:"omitempty,oneof=all any"`
	Rules []RuleSpec `yaml:"rules" validate:"required,min=1,dive"`
}

// CompositionMode returns the declared mode, defaulting to "all".
func (c ContractSpec) CompositionMode() string {
	if c.Mode == "" {
		return ModeAll
	}
	return c.Mode
}

// Composition modes for a contract's rules.
const (
	ModeAll = "all"
	ModeAny = "any"
)

// RuleSpec declares a single rule. Type selects the rule factory; the
// remaining fields are per-rule parameters, validated by the factory
// when the rule is built. Message optionally overrides the failure
// message reported for the rule.
type RuleSpec struct {
	Type    string   `yaml:"type" validate:"required"`
	Pattern string   `yaml:"pattern,omitempty"`
	Length  *int     `yaml:"length,omitempty"`
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
	Values  []string `yaml:"values,omitempty"`
	Message string   `yaml:"message,omitempty"`
}
