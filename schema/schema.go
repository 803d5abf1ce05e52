package schema

import (
	"strings"
	"sync"

	"gorm.io/orm/utils"
)

// DefaultManager name of the manager attached to models declaring none
const DefaultManager = "objects"

// PrimaryKeyName name of the field update and delete statements are keyed on
const PrimaryKeyName = "id"

// Definition declares a model: its own fields, the models it derives from
// (already built, merged in the declared order) and its managers.
type Definition struct {
	Name     string
	Table    string
	Parents  []string
	Fields   []*Field
	Managers []string
}

// Schema the flattened, immutable description of a model
type Schema struct {
	Name           string
	Table          string
	Fields         []*Field
	FieldsByName   map[string]*Field
	FieldsByDBName map[string]*Field
	PrimaryField   *Field
	Manager        string
	Parents        []*Schema
}

func (schema Schema) String() string {
	return schema.Name
}

// LookUpField finds a field by column or field name
func (schema Schema) LookUpField(name string) *Field {
	if field, ok := schema.FieldsByDBName[name]; ok {
		return field
	}
	if field, ok := schema.FieldsByName[name]; ok {
		return field
	}
	return nil
}

// DBNames returns the column names in field order
func (schema Schema) DBNames() []string {
	names := make([]string, len(schema.Fields))
	for idx, field := range schema.Fields {
		names[idx] = field.DBName
	}
	return names
}

// Parse builds the schema of def. Parents are looked up in cacheStore by
// name and must have been parsed before; the result is stored there too.
//
// Fields are merged first-defined-wins: a field declared on the model shadows
// a parent's field of the same name, an earlier parent shadows a later one.
// Inherited fields come first, in their parent's order; a shadowing field
// takes the position of the field it shadows.
func Parse(def Definition, cacheStore *sync.Map, namer Namer) (*Schema, error) {
	if !utils.IsValidIdentifier(def.Name) {
		return nil, configErrorf(def.Name, "model name %q is not a valid identifier", def.Name)
	}

	if _, ok := cacheStore.Load(def.Name); ok {
		return nil, configErrorf(def.Name, "model is already registered")
	}

	if namer == nil {
		namer = IdentityNamer{}
	}

	schema := &Schema{
		Name:           def.Name,
		Table:          def.Table,
		FieldsByName:   map[string]*Field{},
		FieldsByDBName: map[string]*Field{},
	}

	if schema.Table == "" {
		schema.Table = namer.TableName(def.Name)
	}

	if !utils.IsValidIdentifier(schema.Table) {
		return nil, configErrorf(def.Name, "table name %q is not a valid identifier", schema.Table)
	}

	own := make(map[string]*Field, len(def.Fields))
	for _, field := range def.Fields {
		if field == nil || field.Kind == nil {
			return nil, configErrorf(def.Name, "field declared without a kind")
		}

		if _, ok := own[field.Name]; ok {
			return nil, configErrorf(def.Name, "field %s declared twice", field.Name)
		}
		own[field.Name] = field
	}

	var ordered []*Field
	for _, name := range def.Parents {
		v, ok := cacheStore.Load(name)
		if !ok {
			return nil, configErrorf(def.Name, "parent model %s is not registered", name)
		}

		parent := v.(*Schema)
		schema.Parents = append(schema.Parents, parent)
		for _, field := range parent.Fields {
			if _, ok := schema.FieldsByName[field.Name]; ok {
				continue
			}

			if f, ok := own[field.Name]; ok {
				field = f
			}

			if err := schema.addField(field); err != nil {
				return nil, err
			}
			ordered = append(ordered, field)
		}
	}

	for _, field := range def.Fields {
		if _, ok := schema.FieldsByName[field.Name]; ok {
			continue
		}

		if err := schema.addField(field); err != nil {
			return nil, err
		}
		ordered = append(ordered, field)
	}

	for _, field := range ordered {
		schema.Fields = append(schema.Fields, schema.FieldsByName[field.Name])
	}

	if len(schema.Fields) == 0 {
		return nil, configErrorf(def.Name, "model declares no fields")
	}

	switch len(def.Managers) {
	case 0:
		schema.Manager = DefaultManager
	case 1:
		if !utils.IsValidIdentifier(def.Managers[0]) {
			return nil, configErrorf(def.Name, "manager name %q is not a valid identifier", def.Managers[0])
		}
		schema.Manager = def.Managers[0]
	default:
		return nil, configErrorf(def.Name, "model must declare exactly one manager, got %s", strings.Join(def.Managers, ", "))
	}

	schema.PrimaryField = schema.FieldsByName[PrimaryKeyName]

	if _, loaded := cacheStore.LoadOrStore(def.Name, schema); loaded {
		return nil, configErrorf(def.Name, "model is already registered")
	}
	return schema, nil
}

// addField binds a copy of field to the schema, the definition passed in by
// the caller or owned by a parent is left untouched.
func (schema *Schema) addField(declared *Field) error {
	if declared.err != nil {
		return configErrorf(schema.Name, "field %s: %v", declared.Name, declared.err)
	}

	if !utils.IsValidIdentifier(declared.Name) {
		return configErrorf(schema.Name, "field name %q is not a valid identifier", declared.Name)
	}

	if !utils.IsValidIdentifier(declared.DBName) {
		return configErrorf(schema.Name, "column name %q of field %s is not a valid identifier", declared.DBName, declared.Name)
	}

	if other, ok := schema.FieldsByDBName[declared.DBName]; ok {
		return configErrorf(schema.Name, "fields %s and %s share column %s", other.Name, declared.Name, declared.DBName)
	}

	field := declared.clone()
	field.Schema = schema
	field.PrimaryKey = field.Name == PrimaryKeyName

	if field.HasDefaultValue && !isNil(field.DefaultValue) {
		if err := field.Kind.Check(field.DefaultValue); err != nil {
			return configErrorf(schema.Name, "default value of field %s: %v", field.Name, err)
		}

		v, err := field.Kind.Coerce(field.DefaultValue)
		if err != nil {
			return configErrorf(schema.Name, "default value of field %s: %v", field.Name, err)
		}
		field.DefaultValue = v
	}

	schema.FieldsByName[field.Name] = field
	schema.FieldsByDBName[field.DBName] = field
	return nil
}
