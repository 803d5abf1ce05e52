package sqlite

import (
	"gorm.io/orm"
	"gorm.io/orm/clause"
	"gorm.io/orm/dialects/sqldb"
	"gorm.io/orm/logger"
	"gorm.io/orm/schema"

	// register the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// DriverName the database/sql driver registered by go-sqlite3
const DriverName = "sqlite3"

type Dialector struct {
	DSN string
	sqldb.Connector
}

// Open returns a dialector for the database file dsn. Every operation opens
// the file anew, an in-memory dsn would not outlive a single operation.
func Open(dsn string) orm.Dialector {
	return &Dialector{DSN: dsn, Connector: sqldb.Connector{DriverName: DriverName, DSN: dsn}}
}

func (Dialector) Name() string {
	return "sqlite"
}

func (Dialector) DataTypeOf(field *schema.Field) string {
	return field.SQLType
}

func (Dialector) BindVarTo(writer clause.Writer, stmt *orm.Statement, v interface{}) {
	writer.WriteByte('?')
}

func (Dialector) QuoteTo(writer clause.Writer, str string) {
	writer.WriteString(str)
}

func (Dialector) Explain(sql string, vars ...interface{}) string {
	return logger.ExplainSQL(sql, nil, "?", `'`, vars...)
}
