package models

// TypeString is the semantic type eligible for rule-supplied enumerations.
const TypeString = "string"

// EnumOption is one allowed value of an enumerated field. Label is empty
// until the rule set has been localized.
type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// PropertyDescriptor describes one addressable contact field. The optional
// block is only populated once creation rules have been merged in.
type PropertyDescriptor struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type,omitempty"`
	FullType    string `json:"fullType"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`

	DefaultValue      any          `json:"defaultValue,omitempty"`
	InitialValue      any          `json:"initialValue,omitempty"`
	RegularExpression string       `json:"regularExpression,omitempty"`
	Prefix            string       `json:"prefix,omitempty"`
	Examples          []string     `json:"examples,omitempty"`
	Enum              []EnumOption `json:"enum,omitempty"`
}

// Clone returns a copy that shares no slices with d.
func (d PropertyDescriptor) Clone() PropertyDescriptor {
	out := d
	out.DefaultValue = cloneValue(d.DefaultValue)
	out.InitialValue = cloneValue(d.InitialValue)
	if d.Examples != nil {
		out.Examples = append([]string(nil), d.Examples...)
	}
	if d.Enum != nil {
		out.Enum = append([]EnumOption(nil), d.Enum...)
	}
	return out
}

// PropertySet is the canonical descriptor set keyed by path.
type PropertySet map[string]PropertyDescriptor

// Paths lists the descriptor paths in no particular order.
func (s PropertySet) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	return paths
}

// RuleSet maps a contact field path to its merged, render-ready descriptor.
type RuleSet map[string]PropertyDescriptor
