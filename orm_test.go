package orm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/orm"
	"gorm.io/orm/logger"
	"gorm.io/orm/schema"
	"gorm.io/orm/utils/tests"
)

func TestOpen(t *testing.T) {
	_, err := orm.Open(nil, nil)
	assert.ErrorIs(t, err, orm.ErrMissingDialector)

	db, err := orm.Open(&tests.DummyDialector{}, nil)
	require.NoError(t, err)
	assert.Same(t, schema.DefaultRegistry, db.Registry)
	assert.Equal(t, logger.Default, db.Logger)
	assert.False(t, db.DryRun)
}

func TestSession(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, tests.User())

	dry := db.Session(&orm.Session{DryRun: true})
	assert.True(t, dry.DryRun)
	assert.False(t, db.DryRun, "sessions must not change the parent config")

	ctx := context.Background()
	user, err := dry.New("User", map[string]interface{}{"id": 1, "Name": "kirill"})
	require.NoError(t, err)
	require.NoError(t, user.Save(ctx))
	require.NoError(t, user.Update(ctx))
	require.NoError(t, user.Delete(ctx))

	qs := querySet(t, dry, "User")
	_, err = qs.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, qs.Len())

	assert.Empty(t, dialector.Calls(), "dry run must not touch the database")
}

func TestManager(t *testing.T) {
	db := tests.OpenTestDB(t, &tests.DummyDialector{}, tests.User(), schema.Definition{
		Name:     "Person",
		Fields:   []*schema.Field{schema.IntField("id")},
		Managers: []string{"people"},
	})

	manager, err := db.Manager("User")
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultManager, manager.Name)
	assert.Equal(t, "User", manager.Schema().Name)

	people, err := db.Manager("Person")
	require.NoError(t, err)
	assert.Equal(t, "people", people.Name)

	qs1, err := manager.QuerySet()
	require.NoError(t, err)
	qs2, err := manager.QuerySet()
	require.NoError(t, err)
	assert.NotSame(t, qs1, qs2, "every access yields a fresh query set")

	_, err = db.Manager("Missing")
	assert.ErrorIs(t, err, orm.ErrModelNotRegistered)

	var unbound *orm.Manager
	_, err = unbound.QuerySet()
	var cerr *schema.ConfigurationError
	assert.True(t, errors.As(err, &cerr))

	_, err = (&orm.Manager{}).QuerySet()
	assert.True(t, errors.As(err, &cerr))
}

func TestMigrate(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, tests.User())

	require.NoError(t, db.Migrate(context.Background(), "User"))
	assert.Equal(t, []string{"Connect", "Exec", "Commit", "Close"}, dialector.Methods())
	assert.Equal(t, []string{"CREATE TABLE IF NOT EXISTS User (id INT(10),Name CHAR(255));"}, dialector.Statements())

	assert.ErrorIs(t, db.Migrate(context.Background(), "Missing"), orm.ErrModelNotRegistered)
}

func querySet(t *testing.T, db *orm.DB, model string) *orm.QuerySet {
	t.Helper()
	manager, err := db.Manager(model)
	require.NoError(t, err)
	qs, err := manager.QuerySet()
	require.NoError(t, err)
	return qs
}
