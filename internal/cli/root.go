package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/orm"
	"gorm.io/orm/internal/models"
	"gorm.io/orm/schema"
	"gorm.io/orm/utils"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Driver     string
	DSN        string
	LogBackend string
	LogLevel   string
	DryRun     bool
}

// NewRootCommand creates the root command of the orm CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "orm",
		Short: "Manage the rows of the demo models",
		Long: `Create the tables of the demo models User and Admin, save the demo
admins and list, fetch or delete rows.

Settings are read from a YAML file (--config) and overridden by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "orm.yaml", "config file")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", fmt.Sprintf("database driver %v", Drivers))
	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", "", "data source name")
	cmd.PersistentFlags().StringVar(&opts.LogBackend, "log-backend", "", fmt.Sprintf("logger backend %v", Backends))
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (silent|error|warn|info)")
	cmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "log statements without executing them, also set by ORM_DRY_RUN")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

// resolveConfig loads the config file and applies the flags set on cmd
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (Config, error) {
	flags := cmd.Flags()
	cfg, err := LoadConfig(opts.ConfigPath, flags.Changed("config"))
	if err != nil {
		return cfg, err
	}

	if flags.Changed("driver") {
		cfg.Driver = opts.Driver
	}
	if flags.Changed("dsn") {
		cfg.DSN = opts.DSN
	}
	if flags.Changed("log-backend") {
		cfg.Logger.Backend = opts.LogBackend
	}
	if flags.Changed("log-level") {
		cfg.Logger.Level = opts.LogLevel
	}
	return cfg, nil
}

// openDB opens the database described by the config with the demo models
// registered in a registry of its own
func openDB(cmd *cobra.Command, opts *RootOptions) (*orm.DB, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	log, err := NewLogger(cfg.Logger, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	dialector, err := OpenDialector(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	registry := schema.NewRegistry(nil)
	if err := models.Register(registry); err != nil {
		return nil, err
	}

	dryRun := opts.DryRun || utils.CheckTruth(os.Getenv("ORM_DRY_RUN"))
	return orm.Open(dialector, &orm.Config{Registry: registry, Logger: log, DryRun: dryRun})
}
