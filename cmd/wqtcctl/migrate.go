package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wqtc-api/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <up|down>",
	Short: "Apply or roll back database migrations",
	Long: `Apply or roll back every migration in MIGRATIONS_DIR.

Examples:
  wqtcctl migrate up
  wqtcctl migrate down --dir ./migrations`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().String("dir", "", "Migrations directory (default MIGRATIONS_DIR)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	direction := database.Direction(args[0])
	if direction != database.Up && direction != database.Down {
		return fmt.Errorf("direction must be up or down, got %q", args[0])
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = appConfig.MigrationsDir
	}

	if err := database.Migrate(appConfig.DSN(), dir, direction); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrations %s complete\n", direction)
	return nil
}
