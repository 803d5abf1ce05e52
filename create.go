package orm

import (
	"context"

	"gorm.io/orm/clause"
	"gorm.io/orm/schema"
)

// columnsOf returns the columns of s in schema order
func columnsOf(s *schema.Schema) []clause.Column {
	columns := make([]clause.Column, len(s.Fields))
	for idx, field := range s.Fields {
		columns[idx] = clause.Column{Name: field.DBName}
	}
	return columns
}

func (db *DB) insertStatement(s *schema.Schema, values []interface{}) *Statement {
	stmt := db.newStatement(s)
	stmt.AddClause(clause.Insert{})
	stmt.AddClause(clause.Values{Columns: columnsOf(s), Values: values})
	stmt.Build("INSERT", "VALUES")
	return stmt
}

// Save creates the table if needed and inserts the instance's current values
// as a new row, on one connection. Saving twice inserts two rows.
func (inst *Instance) Save(ctx context.Context) error {
	if err := inst.checkRequired(); err != nil {
		return err
	}

	return inst.db.exec(ctx, operation("save", inst.schema),
		inst.db.createTableStatement(inst.schema),
		inst.db.insertStatement(inst.schema, inst.Values()),
	)
}
