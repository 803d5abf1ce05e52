package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/orm"
	"gorm.io/orm/internal/migrations"
	"gorm.io/orm/internal/models"
)

// NewDemoCommand creates the demo command saving the demo admins.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Save the demo admins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd, rootOpts)
			if err != nil {
				return err
			}

			qs, err := querySet(db, "Admin")
			if err != nil {
				return err
			}

			for _, values := range models.Admins() {
				admin, err := qs.Create(values)
				if err != nil {
					return err
				}

				if err := admin.Save(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", admin)
			}
			return nil
		},
	}
}

// NewMigrateCommand creates the migrate command creating the demo tables.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables of the demo models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd, rootOpts)
			if err != nil {
				return err
			}
			return migrations.MigrateAll(cmd.Context(), db)
		},
	}
}

// NewListCommand creates the list command printing every row of a model.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <model>",
		Short: "Print every row of a model ordered by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd, rootOpts)
			if err != nil {
				return err
			}

			qs, err := querySet(db, args[0])
			if err != nil {
				return err
			}

			if _, err := qs.All(cmd.Context()); err != nil {
				return err
			}

			for _, inst := range qs.Instances() {
				fmt.Fprintln(cmd.OutOrStdout(), inst)
			}
			return nil
		},
	}
}

// NewGetCommand creates the get command printing the row at a position.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <model> <key>",
		Short: "Print the row at position key, counted from 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid key %q: %w", args[1], err)
			}

			db, err := openDB(cmd, rootOpts)
			if err != nil {
				return err
			}

			qs, err := querySet(db, args[0])
			if err != nil {
				return err
			}

			inst, err := qs.Get(cmd.Context(), key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inst)
			return nil
		},
	}
}

// NewDeleteCommand creates the delete command removing a row by id.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <model> <id>",
		Short: "Delete the row of a model by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}

			db, err := openDB(cmd, rootOpts)
			if err != nil {
				return err
			}

			qs, err := querySet(db, args[0])
			if err != nil {
				return err
			}

			if err := qs.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", args[0], id)
			return nil
		},
	}
}

func querySet(db *orm.DB, model string) (*orm.QuerySet, error) {
	manager, err := db.Manager(model)
	if err != nil {
		return nil, err
	}
	return manager.QuerySet()
}
