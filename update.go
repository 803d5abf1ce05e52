package orm

import (
	"context"

	"gorm.io/orm/clause"
	"gorm.io/orm/schema"
)

func (db *DB) updateStatement(s *schema.Schema, values []interface{}, id interface{}) *Statement {
	stmt := db.newStatement(s)
	stmt.AddClause(clause.Update{})
	stmt.AddClause(clause.Set{Columns: columnsOf(s), Values: values})
	stmt.AddClause(wherePrimaryKey(id))
	stmt.Build("UPDATE", "SET", "WHERE")
	return stmt
}

// Update writes every current value to the row with the instance's id, all
// values are bound parameters
func (inst *Instance) Update(ctx context.Context) error {
	id, err := inst.PrimaryKey()
	if err != nil {
		return err
	}

	if err := inst.checkRequired(); err != nil {
		return err
	}

	return inst.db.exec(ctx, operation("update", inst.schema), inst.db.updateStatement(inst.schema, inst.Values(), id))
}
