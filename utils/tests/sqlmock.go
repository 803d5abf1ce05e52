package tests

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// SQLMock hands out a new sqlmock database on every open, so that each
// connection of an operation gets its own expectations
type SQLMock struct {
	t     *testing.T
	mocks []sqlmock.Sqlmock
	dbs   []*sql.DB
	next  int
}

// NewSQLMock prepares n mocked databases matching statements literally
func NewSQLMock(t *testing.T, n int) *SQLMock {
	t.Helper()

	m := &SQLMock{t: t}
	for i := 0; i < n; i++ {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		if err != nil {
			t.Fatalf("failed to create sqlmock, got error %v", err)
		}
		m.dbs = append(m.dbs, db)
		m.mocks = append(m.mocks, mock)
	}
	return m
}

// Mock returns the expectations of the i-th opened database
func (m *SQLMock) Mock(i int) sqlmock.Sqlmock {
	return m.mocks[i]
}

// OpenDB has the signature of sql.Open
func (m *SQLMock) OpenDB(driverName, dsn string) (*sql.DB, error) {
	if m.next >= len(m.dbs) {
		return nil, fmt.Errorf("sqlmock: no database left to open for %s", driverName)
	}

	db := m.dbs[m.next]
	m.next++
	return db, nil
}

// AssertExpectations fails the test for every unmet expectation
func (m *SQLMock) AssertExpectations() {
	m.t.Helper()
	for i, mock := range m.mocks {
		if err := mock.ExpectationsWereMet(); err != nil {
			m.t.Errorf("database #%d: %v", i, err)
		}
	}
}
