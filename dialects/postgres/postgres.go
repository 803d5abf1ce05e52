package postgres

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"gorm.io/orm"
	"gorm.io/orm/clause"
	"gorm.io/orm/dialects/sqldb"
	"gorm.io/orm/logger"
	"gorm.io/orm/schema"
)

// DriverName the database/sql driver registered by lib/pq
const DriverName = "postgres"

var numericPlaceholder = regexp.MustCompile(`\$(\d+)`)

type Dialector struct {
	DSN string
	sqldb.Connector
}

// Open returns a dialector for dsn, given either as URL or as key=value pairs
func Open(dsn string) orm.Dialector {
	dialector, err := New(dsn)
	if err != nil {
		return &Dialector{DSN: dsn, Connector: sqldb.Connector{DriverName: DriverName, DSN: dsn}}
	}
	return dialector
}

// New converts a postgres:// URL to the key=value form understood by lib/pq
func New(dsn string) (*Dialector, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		converted, err := pq.ParseURL(dsn)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", orm.ErrConnection, err)
		}
		dsn = converted
	}
	return &Dialector{DSN: dsn, Connector: sqldb.Connector{DriverName: DriverName, DSN: dsn}}, nil
}

func (Dialector) Name() string {
	return "postgres"
}

func (Dialector) DataTypeOf(field *schema.Field) string {
	switch field.DataType {
	case schema.Int:
		return "INTEGER"
	case schema.String:
		return "VARCHAR(255)"
	case schema.Float:
		return "DOUBLE PRECISION"
	case schema.Time:
		return "TIMESTAMP"
	case schema.UUID:
		return "UUID"
	}
	return field.SQLType
}

func (Dialector) BindVarTo(writer clause.Writer, stmt *orm.Statement, v interface{}) {
	writer.WriteByte('$')
	writer.WriteString(strconv.Itoa(len(stmt.Vars)))
}

// QuoteTo quotes identifiers, unquoted names are folded to lower case and
// user is a reserved word
func (Dialector) QuoteTo(writer clause.Writer, str string) {
	writer.WriteByte('"')
	writer.WriteString(str)
	writer.WriteByte('"')
}

func (Dialector) Explain(sql string, vars ...interface{}) string {
	return logger.ExplainSQL(sql, numericPlaceholder, "", `'`, vars...)
}
