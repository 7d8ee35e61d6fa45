package transform

import (
	"errors"
	"fmt"

	"regcontacts/internal/contacts/models"
)

// ErrSchemaShape reports a schema without the contact-creation operation.
var ErrSchemaShape = errors.New("schema shape")

const addressProperty = "address"

// DeriveContactProperties builds the canonical descriptor set from a schema.
// Contact properties keep their name as path; address properties are nested
// under "address.". Required-ness comes from the creation operation when it
// declares the parameter, otherwise from the property's nullability.
func DeriveContactProperties(schema *models.Schema, layout models.SchemaLayout) (models.PropertySet, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: schema is nil", ErrSchemaShape)
	}
	api, ok := schema.FindPath(layout.CreatePath)
	if !ok {
		return nil, fmt.Errorf("%w: path %s not found", ErrSchemaShape, layout.CreatePath)
	}
	create, ok := api.FindOperation(layout.CreateMethod)
	if !ok {
		return nil, fmt.Errorf("%w: no %s operation on %s", ErrSchemaShape, layout.CreateMethod, layout.CreatePath)
	}

	props := models.PropertySet{}
	for name, prop := range schema.Models[layout.ContactModel].Properties {
		if name == addressProperty {
			continue
		}
		props[name] = describe(name, name, prop, create)
	}
	for name, prop := range schema.Models[layout.AddressModel].Properties {
		path := addressProperty + "." + name
		props[path] = describe(name, path, prop, create)
	}
	return props, nil
}

func describe(name, path string, prop models.Property, create models.Operation) models.PropertyDescriptor {
	required := !prop.CanBeNull
	if param, ok := create.FindParameter(name); ok {
		required = param.Required
	}
	return models.PropertyDescriptor{
		Name:        name,
		Path:        path,
		Type:        prop.Type,
		FullType:    prop.FullType,
		Description: prop.Description,
		Required:    required,
	}
}
