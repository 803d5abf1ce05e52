package mysql

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/orm"
	"gorm.io/orm/clause"
	"gorm.io/orm/dialects/sqldb"
	"gorm.io/orm/logger"
	"gorm.io/orm/schema"
)

// DriverName the database/sql driver registered by go-sql-driver/mysql
const DriverName = "mysql"

type Config struct {
	DSN       string
	DSNConfig *mysql.Config
}

type Dialector struct {
	*Config
	sqldb.Connector
}

// Open returns a dialector for dsn, see New to validate the DSN up front
func Open(dsn string) orm.Dialector {
	dialector, err := New(Config{DSN: dsn})
	if err != nil {
		return &Dialector{Config: &Config{DSN: dsn}, Connector: sqldb.Connector{DriverName: DriverName, DSN: dsn}}
	}
	return dialector
}

// New parses the DSN and turns on parseTime so DATETIME columns scan to
// time.Time
func New(config Config) (*Dialector, error) {
	if config.DSNConfig == nil {
		cfg, err := mysql.ParseDSN(config.DSN)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", orm.ErrConnection, err)
		}
		config.DSNConfig = cfg
	}

	config.DSNConfig.ParseTime = true
	config.DSN = config.DSNConfig.FormatDSN()

	return &Dialector{
		Config:    &config,
		Connector: sqldb.Connector{DriverName: DriverName, DSN: config.DSN},
	}, nil
}

func (Dialector) Name() string {
	return "mysql"
}

func (Dialector) DataTypeOf(field *schema.Field) string {
	return field.SQLType
}

func (Dialector) BindVarTo(writer clause.Writer, stmt *orm.Statement, v interface{}) {
	writer.WriteByte('?')
}

// QuoteTo writes identifiers as they are, they are validated when models are
// registered
func (Dialector) QuoteTo(writer clause.Writer, str string) {
	writer.WriteString(str)
}

func (Dialector) Explain(sql string, vars ...interface{}) string {
	return logger.ExplainSQL(sql, nil, "?", `'`, vars...)
}
