package orm

import (
	"gorm.io/orm/clause"
	"gorm.io/orm/schema"
)

func (db *DB) selectStatement(s *schema.Schema) *Statement {
	stmt := db.newStatement(s)
	stmt.AddClause(clause.Select{})
	stmt.AddClause(clause.From{})
	if s.PrimaryField != nil {
		stmt.AddClause(clause.OrderBy{Columns: []clause.Column{{Name: clause.PrimaryKey}}})
	}
	stmt.Build("SELECT", "FROM", "ORDER BY")
	return stmt
}

// scanInstance maps a fetched row to a new instance, every value goes through
// validated assignment and columns without a field are ignored
func (db *DB) scanInstance(s *schema.Schema, row map[string]interface{}) (*Instance, error) {
	inst := &Instance{db: db, schema: s, storage: make(map[string]interface{}, len(s.Fields))}
	for _, field := range s.Fields {
		if v, ok := row[field.DBName]; ok {
			if err := field.Set(inst.storage, v); err != nil {
				return nil, err
			}
		}
	}
	return inst, nil
}
