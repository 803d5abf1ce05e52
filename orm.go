package orm

import (
	"fmt"

	"gorm.io/orm/logger"
	"gorm.io/orm/schema"
)

// Config ORM config
type Config struct {
	// Registry the models known to the DB, schema.DefaultRegistry when nil
	Registry *schema.Registry
	// Logger
	Logger logger.Interface
	// DryRun generate sql without execute
	DryRun bool

	// Dialector database dialector
	Dialector
}

// DB ORM DB definition
type DB struct {
	*Config
}

// Session session config when create session with Session() method
type Session struct {
	DryRun bool
	Logger logger.Interface
}

// Open initialize db session based on dialector
func Open(dialector Dialector, config *Config) (*DB, error) {
	if config == nil {
		config = &Config{}
	}

	if config.Registry == nil {
		config.Registry = schema.DefaultRegistry
	}

	if config.Logger == nil {
		config.Logger = logger.Default
	}

	if dialector != nil {
		config.Dialector = dialector
	}

	if config.Dialector == nil {
		return nil, ErrMissingDialector
	}
	return &DB{Config: config}, nil
}

// Session create new db session
func (db *DB) Session(config *Session) *DB {
	txConfig := *db.Config
	if config.DryRun {
		txConfig.DryRun = true
	}

	if config.Logger != nil {
		txConfig.Logger = config.Logger
	}
	return &DB{Config: &txConfig}
}

// Debug start debug mode
func (db *DB) Debug() *DB {
	return db.Session(&Session{Logger: db.Logger.LogMode(logger.Info)})
}

// Schema returns the registered schema of model
func (db *DB) Schema(model string) (*schema.Schema, error) {
	s, ok := db.Registry.Lookup(model)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotRegistered, model)
	}
	return s, nil
}

// Manager returns the manager of model, the single access point to its rows
func (db *DB) Manager(model string) (*Manager, error) {
	s, err := db.Schema(model)
	if err != nil {
		return nil, err
	}
	return &Manager{Name: s.Manager, db: db, schema: s}, nil
}

// New creates an instance of model from values, see QuerySet.Create
func (db *DB) New(model string, values map[string]interface{}) (*Instance, error) {
	s, err := db.Schema(model)
	if err != nil {
		return nil, err
	}
	return newInstance(db, s, values)
}
