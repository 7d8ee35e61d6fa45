package models

import "net/http"

// Schema is the subset of a fetched API description the engine reads.
type Schema struct {
	APIs   []APIPath        `json:"apis"`
	Models map[string]Model `json:"models"`
}

// APIPath is one documented endpoint and its operations.
type APIPath struct {
	Path        string      `json:"path"`
	Description string      `json:"description,omitempty"`
	Operations  []Operation `json:"operations"`
}

// Operation is one HTTP-method-tagged call on an APIPath.
type Operation struct {
	HTTPMethod  string      `json:"httpMethod"`
	Description string      `json:"description,omitempty"`
	Parameters  []Parameter `json:"parameters"`
}

// Parameter is a declared operation argument.
type Parameter struct {
	Name        string `json:"name"`
	DataType    string `json:"dataType,omitempty"`
	FullType    string `json:"fullType,omitempty"`
	ParamType   string `json:"paramType,omitempty"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Model is an entity or enum type definition.
type Model struct {
	ID          string              `json:"id,omitempty"`
	Namespace   string              `json:"namespace,omitempty"`
	Description string              `json:"description,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	EnumType    string              `json:"enumType,omitempty"`
}

// Property is one entity attribute as declared by the schema.
type Property struct {
	Type        string `json:"type"`
	FullType    string `json:"fullType"`
	Description string `json:"description,omitempty"`
	CanBeNull   bool   `json:"canBeNull"`
	ReadOnly    bool   `json:"readOnly"`
}

// FindPath returns the APIPath with the given path.
func (s *Schema) FindPath(path string) (APIPath, bool) {
	for _, api := range s.APIs {
		if api.Path == path {
			return api, true
		}
	}
	return APIPath{}, false
}

// FindOperation returns the first operation tagged with method.
func (p APIPath) FindOperation(method string) (Operation, bool) {
	for _, op := range p.Operations {
		if op.HTTPMethod == method {
			return op, true
		}
	}
	return Operation{}, false
}

// FindParameter returns the parameter with the given name.
func (o Operation) FindParameter(name string) (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// EnumValues returns the values of an enum model. ok is false when the model
// is unknown or declares no enumeration.
func (s *Schema) EnumValues(typeName string) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	model, ok := s.Models[typeName]
	if !ok || model.Enum == nil {
		return nil, false
	}
	return model.Enum, true
}

// SchemaLayout names the schema entries the engine reads.
type SchemaLayout struct {
	ContactModel string
	AddressModel string
	CreatePath   string
	CreateMethod string
}

// DefaultSchemaLayout is the registrar's contact layout.
func DefaultSchemaLayout() SchemaLayout {
	return SchemaLayout{
		ContactModel: "contact.Contact",
		AddressModel: "contact.Address",
		CreatePath:   "/me/contact",
		CreateMethod: http.MethodPost,
	}
}
