package orm

import (
	"gorm.io/orm/schema"
)

// Manager the single access point handing out query sets of a model
type Manager struct {
	Name   string
	db     *DB
	schema *schema.Schema
}

// QuerySet returns a fresh, empty query set bound to the manager's model
func (m *Manager) QuerySet() (*QuerySet, error) {
	if m == nil || m.db == nil || m.schema == nil {
		return nil, &schema.ConfigurationError{Reason: "manager is not bound to a model"}
	}
	return &QuerySet{db: m.db, schema: m.schema}, nil
}

// Schema returns the schema of the manager's model
func (m *Manager) Schema() *schema.Schema {
	if m == nil {
		return nil
	}
	return m.schema
}
