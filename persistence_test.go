package orm_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/orm"
	"gorm.io/orm/internal/models"
	"gorm.io/orm/schema"
	"gorm.io/orm/utils/tests"
)

func trace(calls []tests.Call) []byte {
	var buf bytes.Buffer
	for _, call := range calls {
		buf.WriteString(call.Method)
		if call.SQL != "" {
			buf.WriteString(" " + call.SQL)
		}
		if len(call.Vars) > 0 {
			fmt.Fprintf(&buf, " %v", call.Vars)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func assertGolden(t *testing.T, name string, dialector *tests.DummyDialector) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, trace(dialector.Calls()))
}

func TestSave(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, tests.User())

	user, err := querySet(t, db, "User").Create(map[string]interface{}{"id": 1, "Name": "kirill"})
	require.NoError(t, err)
	require.NoError(t, user.Save(context.Background()))

	calls := dialector.Calls()
	require.Len(t, calls, 5)
	assert.Equal(t, []string{"Connect", "Exec", "Exec", "Commit", "Close"}, dialector.Methods())
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS User (id INT(10),Name CHAR(255));", calls[1].SQL)
	assert.Empty(t, calls[1].Vars)
	assert.Equal(t, "INSERT INTO User (id,Name) VALUES (%s,%s);", calls[2].SQL)
	assert.Equal(t, []interface{}{int64(1), "kirill"}, calls[2].Vars)
	assert.Equal(t, 0, dialector.Open())

	assertGolden(t, "save_user", dialector)
}

func TestSaveTwice(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, tests.User())

	user, err := db.New("User", map[string]interface{}{"id": 1, "Name": "kirill"})
	require.NoError(t, err)
	require.NoError(t, user.Save(context.Background()))
	require.NoError(t, user.Save(context.Background()))

	var inserts int
	for _, call := range dialector.Calls() {
		if call.Method == "Exec" && call.SQL == "INSERT INTO User (id,Name) VALUES (%s,%s);" {
			inserts++
		}
	}
	assert.Equal(t, 2, inserts, "save never upserts")
}

func TestSaveAdmins(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, models.User(), models.Admin())
	qs := querySet(t, db, "Admin")

	for _, values := range models.Admins() {
		admin, err := qs.Create(values)
		require.NoError(t, err)
		require.NoError(t, admin.Save(context.Background()))
	}

	assertGolden(t, "save_admins", dialector)
}

func TestUpdate(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, tests.User())

	user, err := db.New("User", map[string]interface{}{"id": 1, "Name": "kirill"})
	require.NoError(t, err)
	require.NoError(t, user.Set("Name", "O'Brien"))
	require.NoError(t, user.Update(context.Background()))

	calls := dialector.Calls()
	require.Len(t, calls, 4)
	assert.Equal(t, []string{"Connect", "Exec", "Commit", "Close"}, dialector.Methods())
	assert.Equal(t, "UPDATE User SET id=%s,Name=%s WHERE id = %s;", calls[1].SQL)
	assert.Equal(t, []interface{}{int64(1), "O'Brien", int64(1)}, calls[1].Vars, "every value is bound")

	assertGolden(t, "update_user", dialector)
}

func TestDelete(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, tests.User())
	ctx := context.Background()

	require.NoError(t, querySet(t, db, "User").Delete(ctx, 1))

	user, err := db.New("User", map[string]interface{}{"id": 2, "Name": "nikita"})
	require.NoError(t, err)
	require.NoError(t, user.Delete(ctx))

	assertGolden(t, "delete_user", dialector)

	var verr *schema.ValidationError
	assert.True(t, errors.As(querySet(t, db, "User").Delete(ctx, "one"), &verr))
	assert.ErrorIs(t, querySet(t, db, "User").Delete(ctx, nil), orm.ErrPrimaryKeyRequired)
}

func TestWithoutPrimaryKey(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, schema.Definition{
		Name:   "Log",
		Fields: []*schema.Field{schema.StringField("Message")},
	})
	ctx := context.Background()

	entry, err := db.New("Log", map[string]interface{}{"Message": "hello"})
	require.NoError(t, err)

	assert.ErrorIs(t, entry.Update(ctx), orm.ErrPrimaryKeyRequired)
	assert.ErrorIs(t, entry.Delete(ctx), orm.ErrPrimaryKeyRequired)
	assert.ErrorIs(t, querySet(t, db, "Log").Delete(ctx, 1), orm.ErrPrimaryKeyRequired)
	assert.Empty(t, dialector.Calls())

	_, err = querySet(t, db, "Log").All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"SELECT * FROM Log;"}, dialector.Statements())
}

func TestExecutorErrors(t *testing.T) {
	errInsert := errors.New("Duplicate entry '1' for key 'PRIMARY'")
	dialector := &tests.DummyDialector{
		ExecError: func(sql string) error {
			if sql == "INSERT INTO User (id,Name) VALUES (%s,%s);" {
				return errInsert
			}
			return nil
		},
	}
	db := tests.OpenTestDB(t, dialector, tests.User())

	user, err := db.New("User", map[string]interface{}{"id": 1, "Name": "kirill"})
	require.NoError(t, err)

	err = user.Save(context.Background())
	assert.Same(t, errInsert, err, "executor errors are returned unmodified")
	assert.Equal(t, []string{"Connect", "Exec", "Exec", "Close"}, dialector.Methods(), "nothing is committed after a failed statement")
	assert.Equal(t, 0, dialector.Open())
}

func TestConnectError(t *testing.T) {
	errConnect := fmt.Errorf("%w: dial tcp 127.0.0.1:3306: connect: connection refused", orm.ErrConnection)
	dialector := &tests.DummyDialector{ConnectError: errConnect}
	db := tests.OpenTestDB(t, dialector, tests.User())
	ctx := context.Background()

	user, err := db.New("User", map[string]interface{}{"id": 1, "Name": "kirill"})
	require.NoError(t, err)

	assert.Same(t, errConnect, user.Save(ctx))
	assert.ErrorIs(t, user.Update(ctx), orm.ErrConnection)
	_, err = querySet(t, db, "User").All(ctx)
	assert.ErrorIs(t, err, orm.ErrConnection)

	assert.Equal(t, []string{"Connect", "Connect", "Connect"}, dialector.Methods())
}
