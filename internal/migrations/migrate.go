package migrations

import (
	"context"

	"gorm.io/orm"
	"gorm.io/orm/internal/models"
)

// MigrateAll creates the tables of the demo models that do not exist yet
func MigrateAll(ctx context.Context, db *orm.DB) error {
	db.Logger.Info(ctx, "running migrations")
	if err := db.Migrate(ctx, models.Names...); err != nil {
		return err
	}
	db.Logger.Info(ctx, "migrations completed")
	return nil
}
