package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/orm/schema"
)

func TestRegister(t *testing.T) {
	registry := schema.NewRegistry(nil)
	require.NoError(t, Register(registry))

	admin, ok := registry.Lookup("Admin")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "Telephone", "Name", "Sex", "Level"}, admin.DBNames())
	assert.Equal(t, "Admin", admin.Table)
	assert.Equal(t, int64(-1), admin.FieldsByName["Level"].DefaultValue)

	for _, values := range Admins() {
		for name, value := range values {
			field := admin.FieldsByName[name]
			require.NotNil(t, field, name)
			_, err := field.Validate(value)
			assert.NoError(t, err, name)
		}
	}

	assert.Error(t, Register(registry), "models can only be registered once")
}
