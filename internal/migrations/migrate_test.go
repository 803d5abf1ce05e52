package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/orm/internal/models"
	"gorm.io/orm/utils/tests"
)

func TestMigrateAll(t *testing.T) {
	dialector := &tests.DummyDialector{}
	db := tests.OpenTestDB(t, dialector, models.User(), models.Admin())

	require.NoError(t, MigrateAll(context.Background(), db))
	assert.Equal(t, []string{
		"CREATE TABLE IF NOT EXISTS User (id INT(10),Telephone INT(10),Name CHAR(255),Sex CHAR(255));",
		"CREATE TABLE IF NOT EXISTS Admin (id INT(10),Telephone INT(10),Name CHAR(255),Sex CHAR(255),Level INT(10));",
	}, dialector.Statements())
	assert.Equal(t, 0, dialector.Open())
}
