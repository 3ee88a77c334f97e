package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var (
	migrateDir  string
	migrateDown bool
	migrateStep int
)

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		dsn := os.Getenv("MYSQL_DSN")
		if dsn == "" {
			fmt.Println("MYSQL_DSN is not set")
			os.Exit(1)
		}

		m, err := migrate.New("file://"+migrateDir, "mysql://"+dsn)
		if err != nil {
			fmt.Printf("Migration setup failed: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()

		switch {
		case migrateStep != 0:
			err = m.Steps(migrateStep)
		case migrateDown:
			err = m.Down()
		default:
			err = m.Up()
		}

		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Database already up to date.")
			return
		}
		if err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}

		version, dirty, _ := m.Version()
		fmt.Printf("Migrations applied. Schema version: %d (dirty=%v)\n", version, dirty)
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateDir, "dir", "d", "migrations", "Directory with migration files")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back all migrations")
	migrateCmd.Flags().IntVar(&migrateStep, "step", 0, "Apply N migrations (negative rolls back)")
	rootCmd.AddCommand(migrateCmd)
}
