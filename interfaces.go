package orm

import (
	"context"

	"gorm.io/orm/clause"
	"gorm.io/orm/schema"
)

// Dialector database dialector, it binds a SQL executor to the statements
// built by the persistence operations
type Dialector interface {
	Name() string
	Connector
	DataTypeOf(*schema.Field) string
	BindVarTo(writer clause.Writer, stmt *Statement, v interface{})
	QuoteTo(clause.Writer, string)
	Explain(sql string, vars ...interface{}) string
}

// Connector opens the connection a single operation runs on
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// Conn a private, short lived connection. Statements run inside an implicit
// transaction that is only made durable by Commit, closing a connection that
// was not committed discards its work.
type Conn interface {
	// Exec runs a statement and returns the number of affected rows
	Exec(ctx context.Context, sql string, vars ...interface{}) (int64, error)
	// Query runs a statement and returns every row as a column to value map
	Query(ctx context.Context, sql string, vars ...interface{}) ([]map[string]interface{}, error)
	Commit() error
	Close() error
}
