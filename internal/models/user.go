package models

import (
	"gorm.io/orm/schema"
)

// User a person reachable by phone
func User() schema.Definition {
	return schema.Definition{
		Name: "User",
		Fields: []*schema.Field{
			schema.IntField("id", schema.Required(), schema.Default(0)),
			schema.IntField("Telephone", schema.Required(), schema.Default(100)),
			schema.StringField("Name", schema.Required(), schema.Default("some_name")),
			schema.StringField("Sex", schema.Required(), schema.Default("unknown")),
		},
	}
}

// Admin a User with an access level
func Admin() schema.Definition {
	return schema.Definition{
		Name:    "Admin",
		Parents: []string{"User"},
		Fields: []*schema.Field{
			schema.IntField("Level", schema.Required(), schema.Default(-1)),
		},
	}
}

// Names the demo models, parents first
var Names = []string{"User", "Admin"}

// Register registers the demo models in registry
func Register(registry *schema.Registry) error {
	for _, def := range []schema.Definition{User(), Admin()} {
		if _, err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// Admins the admins created by the demo
func Admins() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": 1, "Telephone": 14513451, "Name": "kirill", "Sex": "Male"},
		{"id": 2, "Telephone": 492019, "Name": "nikita", "Sex": "Male", "Level": 100},
		{"id": 3, "Telephone": 30434, "Name": "sergey", "Sex": "Male", "Level": 99},
	}
}
