package schema

import (
	"fmt"
	"math"
	"reflect"
)

type DataType string

const (
	Int    DataType = "int"
	Float  DataType = "float"
	String DataType = "string"
	Time   DataType = "time"
	UUID   DataType = "uuid"
)

// Kind is the type specific part of a field: its SQL type, the range or
// length rule and the coercion to the declared Go type.
type Kind interface {
	DataType() DataType
	SQLType() string
	// Check reports a violated range or length rule, value is never nil
	Check(value interface{}) error
	// Coerce converts a checked value to the declared Go type
	Coerce(value interface{}) (interface{}, error)
}

// Field a typed, validated attribute of a model. A Field is shared by every
// instance of its model; instance values live under StorageKey in the
// instance's own storage.
type Field struct {
	Name            string
	DBName          string
	StorageKey      string
	DataType        DataType
	SQLType         string
	Required        bool
	HasDefaultValue bool
	DefaultValue    interface{}
	PrimaryKey      bool
	Kind            Kind
	Schema          *Schema

	err error
}

// FieldOption configures a field on construction
type FieldOption func(*Field)

// NewField creates a field of any kind, see IntField, StringField and friends
// for the builtin ones
func NewField(name string, kind Kind, opts ...FieldOption) *Field {
	field := &Field{
		Name:       name,
		DBName:     name,
		StorageKey: "_" + name,
		Kind:       kind,
	}

	if kind != nil {
		field.DataType = kind.DataType()
		field.SQLType = kind.SQLType()
	}

	for _, opt := range opts {
		opt(field)
	}
	return field
}

// Required rejects nil values
func Required() FieldOption {
	return func(field *Field) {
		field.Required = true
	}
}

// Default sets the value read from an instance that holds no value for the field
func Default(value interface{}) FieldOption {
	return func(field *Field) {
		field.HasDefaultValue = true
		field.DefaultValue = value
	}
}

// Column stores the field under a column name other than its name
func Column(dbName string) FieldOption {
	return func(field *Field) {
		field.DBName = dbName
	}
}

// Range narrows the bounds of Int and Float fields
func Range(min, max float64) FieldOption {
	return func(field *Field) {
		switch k := field.Kind.(type) {
		case IntKind:
			if min < IntMin || max > IntMax {
				field.err = fmt.Errorf("range [%v, %v] exceeds [%d, %d]", min, max, IntMin, IntMax)
				return
			}
			if min != math.Trunc(min) || max != math.Trunc(max) {
				field.err = fmt.Errorf("range [%v, %v] of an int field must have integral bounds", min, max)
				return
			}
			k.Min, k.Max = int64(min), int64(max)
			field.Kind = k
		case FloatKind:
			if min < FloatMin || max > FloatMax {
				field.err = fmt.Errorf("range [%v, %v] exceeds [%v, %v]", min, max, FloatMin, FloatMax)
				return
			}
			k.Min, k.Max = min, max
			field.Kind = k
		default:
			field.err = fmt.Errorf("range does not apply to %v fields", field.DataType)
			return
		}

		if min > max {
			field.err = fmt.Errorf("range [%v, %v] is empty", min, max)
		}
	}
}

// Length narrows the length bounds of String fields
func Length(min, max int) FieldOption {
	return func(field *Field) {
		k, ok := field.Kind.(StringKind)
		if !ok {
			field.err = fmt.Errorf("length does not apply to %v fields", field.DataType)
			return
		}

		if min < StringMinLength || max > StringMaxLength || min > max {
			field.err = fmt.Errorf("length [%d, %d] must be within [%d, %d]", min, max, StringMinLength, StringMaxLength)
			return
		}
		k.MinLength, k.MaxLength = min, max
		field.Kind = k
	}
}

// Validate applies the field's policy to value and returns the value to store:
// nil is accepted unless the field is required, then the kind's range or
// length rule is checked and finally the value is coerced to the field type.
func (field *Field) Validate(value interface{}) (interface{}, error) {
	if isNil(value) {
		if field.Required {
			return nil, field.invalid(value, "field is required")
		}
		return nil, nil
	}

	if err := field.Kind.Check(value); err != nil {
		return nil, field.invalid(value, err.Error())
	}

	coerced, err := field.Kind.Coerce(value)
	if err != nil {
		return nil, field.invalid(value, err.Error())
	}
	return coerced, nil
}

// ValueOf returns the value stored for the field in storage, or the default
func (field *Field) ValueOf(storage map[string]interface{}) interface{} {
	if v, ok := storage[field.StorageKey]; ok {
		return v
	}
	return field.DefaultValue
}

// Set validates value and stores it in storage, nil clears the stored value
func (field *Field) Set(storage map[string]interface{}, value interface{}) error {
	v, err := field.Validate(value)
	if err != nil {
		return err
	}

	if v == nil {
		delete(storage, field.StorageKey)
	} else {
		storage[field.StorageKey] = v
	}
	return nil
}

// Unset removes the stored value, reads fall back to the default
func (field *Field) Unset(storage map[string]interface{}) {
	delete(storage, field.StorageKey)
}

// clone copies the definition so a schema never shares mutable fields with
// its parents
func (field *Field) clone() *Field {
	f := *field
	return &f
}

func (field *Field) invalid(value interface{}, reason string) *ValidationError {
	err := &ValidationError{Field: field.Name, Value: value, Reason: reason}
	if field.Schema != nil {
		err.Model = field.Schema.Name
	}
	return err
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}

	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
