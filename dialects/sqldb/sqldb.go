// Package sqldb runs the statements of a single operation on database/sql:
// every connection opens its own handle limited to one physical connection
// and wraps the work in a transaction.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/orm"
)

// Connector connects through a registered database/sql driver
type Connector struct {
	DriverName string
	DSN        string
	// OpenDB opens the handle of a connection, sql.Open when nil
	OpenDB func(driverName, dsn string) (*sql.DB, error)
}

// Connect opens a fresh handle and begins the transaction the operation runs
// in. Failures wrap orm.ErrConnection.
func (c Connector) Connect(ctx context.Context) (orm.Conn, error) {
	open := c.OpenDB
	if open == nil {
		open = sql.Open
	}

	db, err := open(c.DriverName, c.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", orm.ErrConnection, err)
	}
	db.SetMaxOpenConns(1)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", orm.ErrConnection, err)
	}
	return &Conn{db: db, tx: tx}, nil
}

// Conn a connection opened by Connector
type Conn struct {
	db        *sql.DB
	tx        *sql.Tx
	committed bool
}

// Exec runs sql in the connection's transaction, the affected rows are -1
// when the driver does not report them
func (c *Conn) Exec(ctx context.Context, sql string, vars ...interface{}) (int64, error) {
	result, err := c.tx.ExecContext(ctx, sql, vars...)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return -1, nil
	}
	return rows, nil
}

// Query runs sql and returns every row keyed by column name, []byte values
// are owned by the caller
func (c *Conn) Query(ctx context.Context, sql string, vars ...interface{}) ([]map[string]interface{}, error) {
	rows, err := c.tx.QueryContext(ctx, sql, vars...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		for idx := range values {
			values[idx] = new(interface{})
		}

		if err := rows.Scan(values...); err != nil {
			return nil, err
		}

		result := make(map[string]interface{}, len(columns))
		for idx, column := range columns {
			v := *(values[idx].(*interface{}))
			if b, ok := v.([]byte); ok {
				v = append([]byte(nil), b...)
			}
			result[column] = v
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// Commit commits the connection's transaction
func (c *Conn) Commit() error {
	if err := c.tx.Commit(); err != nil {
		return err
	}
	c.committed = true
	return nil
}

// Close rolls back the transaction unless it was committed and releases the
// handle
func (c *Conn) Close() error {
	if !c.committed {
		if err := c.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			c.db.Close()
			return err
		}
	}
	return c.db.Close()
}
