package tests

import (
	"context"
	"errors"
	"strings"
	"sync"

	"gorm.io/orm"
	"gorm.io/orm/clause"
	"gorm.io/orm/logger"
	"gorm.io/orm/schema"
)

// Call a call made by the ORM on a DummyConn
type Call struct {
	Method string
	SQL    string
	Vars   []interface{}
}

// DummyDialector a dialector using %s placeholders whose connections record
// every call instead of talking to a database
type DummyDialector struct {
	// ConnectError is returned by Connect when set
	ConnectError error
	// ExecError returns the error of an Exec, nil lets it succeed
	ExecError func(sql string) error
	// Rows are returned by Query, in order, one entry per call
	Rows [][]map[string]interface{}

	mu    sync.Mutex
	calls []Call
	open  int
}

func (*DummyDialector) Name() string {
	return "dummy"
}

func (d *DummyDialector) Connect(ctx context.Context) (orm.Conn, error) {
	d.record(Call{Method: "Connect"})
	if d.ConnectError != nil {
		return nil, d.ConnectError
	}

	d.mu.Lock()
	d.open++
	d.mu.Unlock()
	return &DummyConn{dialector: d}, nil
}

func (*DummyDialector) DataTypeOf(field *schema.Field) string {
	return field.SQLType
}

func (*DummyDialector) BindVarTo(writer clause.Writer, stmt *orm.Statement, v interface{}) {
	writer.WriteString("%s")
}

func (*DummyDialector) QuoteTo(writer clause.Writer, str string) {
	writer.WriteString(str)
}

func (*DummyDialector) Explain(sql string, vars ...interface{}) string {
	return logger.ExplainSQL(sql, nil, "%s", `'`, vars...)
}

// Calls returns the recorded calls
func (d *DummyDialector) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	calls := make([]Call, len(d.calls))
	copy(calls, d.calls)
	return calls
}

// Methods returns the names of the recorded calls
func (d *DummyDialector) Methods() []string {
	var methods []string
	for _, call := range d.Calls() {
		methods = append(methods, call.Method)
	}
	return methods
}

// Statements returns the SQL of every Exec and Query call
func (d *DummyDialector) Statements() []string {
	var statements []string
	for _, call := range d.Calls() {
		if call.SQL != "" {
			statements = append(statements, call.SQL)
		}
	}
	return statements
}

// Open returns the number of connections not closed yet
func (d *DummyDialector) Open() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Reset forgets the recorded calls
func (d *DummyDialector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

func (d *DummyDialector) record(call Call) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, call)
}

// ErrConnClosed is returned by a DummyConn used after Close
var ErrConnClosed = errors.New("connection is closed")

// DummyConn a connection of a DummyDialector
type DummyConn struct {
	dialector *DummyDialector
	closed    bool
}

func (c *DummyConn) Exec(ctx context.Context, sql string, vars ...interface{}) (int64, error) {
	if c.closed {
		return 0, ErrConnClosed
	}

	c.dialector.record(Call{Method: "Exec", SQL: sql, Vars: vars})
	if c.dialector.ExecError != nil {
		if err := c.dialector.ExecError(sql); err != nil {
			return 0, err
		}
	}

	if strings.HasPrefix(sql, "CREATE") {
		return 0, nil
	}
	return 1, nil
}

func (c *DummyConn) Query(ctx context.Context, sql string, vars ...interface{}) ([]map[string]interface{}, error) {
	if c.closed {
		return nil, ErrConnClosed
	}

	c.dialector.record(Call{Method: "Query", SQL: sql, Vars: vars})

	d := c.dialector
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Rows) == 0 {
		return nil, nil
	}

	rows := d.Rows[0]
	d.Rows = d.Rows[1:]
	return rows, nil
}

func (c *DummyConn) Commit() error {
	if c.closed {
		return ErrConnClosed
	}
	c.dialector.record(Call{Method: "Commit"})
	return nil
}

func (c *DummyConn) Close() error {
	if c.closed {
		return ErrConnClosed
	}

	c.closed = true
	c.dialector.record(Call{Method: "Close"})

	c.dialector.mu.Lock()
	c.dialector.open--
	c.dialector.mu.Unlock()
	return nil
}
