package orm

import (
	"fmt"
	"strings"

	"gorm.io/orm/clause"
	"gorm.io/orm/schema"
)

// Statement a single SQL statement built from clauses against one model
type Statement struct {
	DB      *DB
	Schema  *schema.Schema
	Table   string
	Clauses map[string]clause.Clause

	// SQL Builder
	SQL  strings.Builder
	Vars []interface{}
}

func (db *DB) newStatement(s *schema.Schema) *Statement {
	return &Statement{
		DB:      db,
		Schema:  s,
		Table:   s.Table,
		Clauses: map[string]clause.Clause{},
	}
}

// WriteString write string
func (stmt *Statement) WriteString(str string) (int, error) {
	return stmt.SQL.WriteString(str)
}

// WriteByte write byte
func (stmt *Statement) WriteByte(c byte) error {
	return stmt.SQL.WriteByte(c)
}

// WriteQuoted write quoted value
func (stmt *Statement) WriteQuoted(value interface{}) {
	stmt.QuoteTo(&stmt.SQL, value)
}

// QuoteTo write quoted value to writer, table and column names resolve the
// current table and primary key placeholders
func (stmt *Statement) QuoteTo(writer clause.Writer, field interface{}) {
	switch v := field.(type) {
	case clause.Table:
		if v.Name == clause.CurrentTable {
			stmt.DB.Dialector.QuoteTo(writer, stmt.Table)
		} else if v.Raw {
			writer.WriteString(v.Name)
		} else {
			stmt.DB.Dialector.QuoteTo(writer, v.Name)
		}
	case clause.Column:
		if v.Table != "" {
			if v.Table == clause.CurrentTable {
				stmt.DB.Dialector.QuoteTo(writer, stmt.Table)
			} else {
				stmt.DB.Dialector.QuoteTo(writer, v.Table)
			}
			writer.WriteByte('.')
		}

		if v.Name == clause.PrimaryKey {
			if stmt.Schema != nil && stmt.Schema.PrimaryField != nil {
				stmt.DB.Dialector.QuoteTo(writer, stmt.Schema.PrimaryField.DBName)
			}
		} else if v.Raw {
			writer.WriteString(v.Name)
		} else {
			stmt.DB.Dialector.QuoteTo(writer, v.Name)
		}
	case string:
		stmt.DB.Dialector.QuoteTo(writer, v)
	default:
		stmt.DB.Dialector.QuoteTo(writer, fmt.Sprint(field))
	}
}

// Quote returns quoted value
func (stmt *Statement) Quote(field interface{}) string {
	var builder strings.Builder
	stmt.QuoteTo(&builder, field)
	return builder.String()
}

// AddVar add var, every value is bound through the dialector's placeholder
func (stmt *Statement) AddVar(writer clause.Writer, vars ...interface{}) {
	for idx, v := range vars {
		if idx > 0 {
			writer.WriteByte(',')
		}

		switch v := v.(type) {
		case clause.Column, clause.Table:
			stmt.QuoteTo(writer, v)
		default:
			stmt.Vars = append(stmt.Vars, v)
			stmt.DB.Dialector.BindVarTo(writer, stmt, v)
		}
	}
}

// AddClause add clause
func (stmt *Statement) AddClause(v clause.Interface) {
	c, ok := stmt.Clauses[v.Name()]
	if !ok {
		c.Name = v.Name()
	}
	v.MergeClause(&c)
	stmt.Clauses[v.Name()] = c
}

// Build build sql with clauses names, the statement is terminated with ';'
func (stmt *Statement) Build(clauses ...string) {
	var firstClauseWritten bool

	for _, name := range clauses {
		if c, ok := stmt.Clauses[name]; ok {
			if firstClauseWritten {
				stmt.WriteByte(' ')
			}

			firstClauseWritten = true
			c.Build(stmt)
		}
	}

	if firstClauseWritten {
		stmt.WriteByte(';')
	}
}

// String the built SQL
func (stmt *Statement) String() string {
	return stmt.SQL.String()
}
