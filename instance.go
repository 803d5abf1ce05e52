package orm

import (
	"fmt"
	"strings"

	"gorm.io/orm/schema"
)

// Instance an object of a registered model, tied to a single row once saved.
// Values live in the instance's own storage keyed by each field's StorageKey,
// fields without a stored value read as their default.
type Instance struct {
	db      *DB
	schema  *schema.Schema
	storage map[string]interface{}
}

func newInstance(db *DB, s *schema.Schema, values map[string]interface{}) (*Instance, error) {
	for name := range values {
		if _, ok := s.FieldsByName[name]; !ok {
			return nil, fmt.Errorf("%w: %s has no field %s", ErrInvalidField, s.Name, name)
		}
	}

	inst := &Instance{db: db, schema: s, storage: make(map[string]interface{}, len(values))}
	for _, field := range s.Fields {
		if v, ok := values[field.Name]; ok {
			if err := field.Set(inst.storage, v); err != nil {
				return nil, err
			}
		}
	}
	return inst, nil
}

// Schema returns the schema of the instance's model
func (inst *Instance) Schema() *schema.Schema {
	return inst.schema
}

// Get returns the value of field name, the default when none is stored
func (inst *Instance) Get(name string) (interface{}, error) {
	field, err := inst.field(name)
	if err != nil {
		return nil, err
	}
	return field.ValueOf(inst.storage), nil
}

// Set validates value and assigns it to field name, the instance is left
// unchanged when validation fails
func (inst *Instance) Set(name string, value interface{}) error {
	field, err := inst.field(name)
	if err != nil {
		return err
	}
	return field.Set(inst.storage, value)
}

// Unset clears the value of field name, reads fall back to the default
func (inst *Instance) Unset(name string) error {
	field, err := inst.field(name)
	if err != nil {
		return err
	}
	field.Unset(inst.storage)
	return nil
}

// Values returns the current values in schema order
func (inst *Instance) Values() []interface{} {
	values := make([]interface{}, len(inst.schema.Fields))
	for idx, field := range inst.schema.Fields {
		values[idx] = field.ValueOf(inst.storage)
	}
	return values
}

// Map returns the current values keyed by field name
func (inst *Instance) Map() map[string]interface{} {
	values := make(map[string]interface{}, len(inst.schema.Fields))
	for _, field := range inst.schema.Fields {
		values[field.Name] = field.ValueOf(inst.storage)
	}
	return values
}

// PrimaryKey returns the value of the id field
func (inst *Instance) PrimaryKey() (interface{}, error) {
	if inst.schema.PrimaryField == nil {
		return nil, primaryKeyMissing(inst.schema)
	}

	v := inst.schema.PrimaryField.ValueOf(inst.storage)
	if v == nil {
		return nil, primaryKeyMissing(inst.schema)
	}
	return v, nil
}

// String formats the instance as Model(field=value, ...) in schema order
func (inst *Instance) String() string {
	var b strings.Builder
	b.WriteString(inst.schema.Name)
	b.WriteByte('(')
	for idx, field := range inst.schema.Fields {
		if idx > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", field.Name, field.ValueOf(inst.storage))
	}
	b.WriteByte(')')
	return b.String()
}

func (inst *Instance) field(name string) (*schema.Field, error) {
	field, ok := inst.schema.FieldsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %s", ErrInvalidField, inst.schema.Name, name)
	}
	return field, nil
}

// checkRequired reports a required field that resolves to nil, a row can
// not be written without it
func (inst *Instance) checkRequired() error {
	for _, field := range inst.schema.Fields {
		if field.Required && field.ValueOf(inst.storage) == nil {
			_, err := field.Validate(nil)
			return err
		}
	}
	return nil
}
