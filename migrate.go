package orm

import (
	"context"

	"gorm.io/orm/clause"
	"gorm.io/orm/schema"
)

func (db *DB) createTableStatement(s *schema.Schema) *Statement {
	stmt := db.newStatement(s)

	create := clause.CreateTable{IfNotExists: true}
	for _, field := range s.Fields {
		create.Columns = append(create.Columns, clause.ColumnDefinition{
			Column: clause.Column{Name: field.DBName},
			Type:   db.Dialector.DataTypeOf(field),
		})
	}

	stmt.AddClause(create)
	stmt.Build("CREATE TABLE")
	return stmt
}

// Migrate creates the tables of models that do not exist yet, each table on
// its own connection. Existing tables are left as they are.
func (db *DB) Migrate(ctx context.Context, models ...string) error {
	for _, model := range models {
		s, err := db.Schema(model)
		if err != nil {
			return err
		}

		if err := db.exec(ctx, operation("migrate", s), db.createTableStatement(s)); err != nil {
			return err
		}
	}
	return nil
}

// CreateTable creates the table of the instance's model if it does not exist
func (inst *Instance) CreateTable(ctx context.Context) error {
	return inst.db.exec(ctx, operation("create table", inst.schema), inst.db.createTableStatement(inst.schema))
}
