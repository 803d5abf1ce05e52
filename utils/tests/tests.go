package tests

import (
	"testing"

	"gorm.io/orm"
	"gorm.io/orm/logger"
	"gorm.io/orm/schema"
)

// User the model used through the tests: User{id, Name}
func User() schema.Definition {
	return schema.Definition{
		Name: "User",
		Fields: []*schema.Field{
			schema.IntField("id", schema.Required(), schema.Default(0)),
			schema.StringField("Name", schema.Required(), schema.Default("x")),
		},
	}
}

// OpenTestDB opens a DB on dialector with a fresh registry holding defs,
// statements are not logged
func OpenTestDB(t *testing.T, dialector orm.Dialector, defs ...schema.Definition) *orm.DB {
	t.Helper()

	registry := schema.NewRegistry(nil)
	for _, def := range defs {
		if _, err := registry.Register(def); err != nil {
			t.Fatalf("failed to register %v, got error %v", def.Name, err)
		}
	}

	db, err := orm.Open(dialector, &orm.Config{Registry: registry, Logger: logger.Discard})
	if err != nil {
		t.Fatalf("failed to open db, got error %v", err)
	}
	return db
}
