package cli

import (
	"fmt"
	"strings"

	"gorm.io/orm"
	"gorm.io/orm/dialects/mysql"
	"gorm.io/orm/dialects/postgres"
	"gorm.io/orm/dialects/sqlite"
	"gorm.io/orm/utils"
)

// Drivers the supported values of the driver setting
var Drivers = []string{"sqlite", "mysql", "postgres"}

// OpenDialector returns the dialector of driver connecting to dsn
func OpenDialector(driver, dsn string) (orm.Dialector, error) {
	driver = strings.ToLower(driver)
	if !utils.Contains(Drivers, driver) {
		return nil, fmt.Errorf("unsupported driver %q, must be one of %v", driver, Drivers)
	}

	switch driver {
	case "mysql":
		dialector, err := mysql.New(mysql.Config{DSN: dsn})
		if err != nil {
			return nil, err
		}
		return dialector, nil
	case "postgres":
		dialector, err := postgres.New(dsn)
		if err != nil {
			return nil, err
		}
		return dialector, nil
	}
	return sqlite.Open(dsn), nil
}
