package orm

import (
	"context"
	"fmt"
	"time"

	"gorm.io/orm/logger"
	"gorm.io/orm/schema"
)

func operation(name string, s *schema.Schema) logger.Operation {
	op := logger.Operation{Name: name}
	if s != nil {
		op.Model = s.Name
	}
	return op
}

func primaryKeyMissing(s *schema.Schema) error {
	if s.PrimaryField == nil {
		return fmt.Errorf("%w: %s has no %s field", ErrPrimaryKeyRequired, s.Name, schema.PrimaryKeyName)
	}
	return fmt.Errorf("%w: %s.%s is not set", ErrPrimaryKeyRequired, s.Name, schema.PrimaryKeyName)
}

// exec runs stmts in order on a single connection and commits after the last
// one succeeded, the first executor error is returned as is and the
// connection is closed without commit.
func (db *DB) exec(ctx context.Context, op logger.Operation, stmts ...*Statement) (err error) {
	ctx = logger.WithOperation(ctx, op)
	if db.DryRun {
		for _, stmt := range stmts {
			db.trace(ctx, time.Now(), stmt, 0, nil)
		}
		return nil
	}

	conn, err := db.Connect(ctx)
	if err != nil {
		db.Logger.Error(ctx, "failed to connect: %v", err)
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, stmt := range stmts {
		begin := time.Now()
		rows, err := conn.Exec(ctx, stmt.SQL.String(), stmt.Vars...)
		db.trace(ctx, begin, stmt, rows, err)
		if err != nil {
			return err
		}
	}
	return conn.Commit()
}

// query runs stmt on its own connection and returns the fetched rows
func (db *DB) query(ctx context.Context, op logger.Operation, stmt *Statement) (rows []map[string]interface{}, err error) {
	ctx = logger.WithOperation(ctx, op)
	if db.DryRun {
		db.trace(ctx, time.Now(), stmt, 0, nil)
		return nil, nil
	}

	conn, err := db.Connect(ctx)
	if err != nil {
		db.Logger.Error(ctx, "failed to connect: %v", err)
		return nil, err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	begin := time.Now()
	rows, err = conn.Query(ctx, stmt.SQL.String(), stmt.Vars...)
	db.trace(ctx, begin, stmt, int64(len(rows)), err)
	return rows, err
}

func (db *DB) trace(ctx context.Context, begin time.Time, stmt *Statement, rows int64, err error) {
	db.Logger.Trace(ctx, begin, func() (string, int64) {
		sql, vars := stmt.SQL.String(), stmt.Vars
		if filter, ok := db.Logger.(logger.ParamsFilter); ok {
			sql, vars = filter.ParamsFilter(ctx, sql, vars...)
		}
		return db.Dialector.Explain(sql, vars...), rows
	}, err)
}
