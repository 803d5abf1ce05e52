package orm

import (
	"context"

	"gorm.io/orm/clause"
	"gorm.io/orm/schema"
)

// wherePrimaryKey matches the row whose id is id
func wherePrimaryKey(id interface{}) clause.Where {
	return clause.Where{Exprs: []clause.Expression{clause.Eq{Column: clause.Column{Name: clause.PrimaryKey}, Value: id}}}
}

func (db *DB) deleteStatement(s *schema.Schema, id interface{}) *Statement {
	stmt := db.newStatement(s)
	stmt.AddClause(clause.Delete{})
	stmt.AddClause(clause.From{})
	stmt.AddClause(wherePrimaryKey(id))
	stmt.Build("DELETE", "FROM", "WHERE")
	return stmt
}

// Delete removes the row with the instance's id
func (inst *Instance) Delete(ctx context.Context) error {
	id, err := inst.PrimaryKey()
	if err != nil {
		return err
	}
	return inst.db.exec(ctx, operation("delete", inst.schema), inst.db.deleteStatement(inst.schema, id))
}
