package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/config"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/infrastructure/postgres"
)

const (
	versionTimeFormat = "20060102150405"
	migrationDir      = "migrations"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mealctl",
		Short: "staff tooling for the meal-ordering service",
	}
	rootCmd.AddCommand(
		createMigrationCommand(),
		migrateCommand(),
		ordersCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createMigrationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [name]",
		Short: "create empty up/down SQL migration files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := time.Now().Format(versionTimeFormat)
			name := args[0]
			up := fmt.Sprintf("%s/%s_%s.up.sql", migrationDir, version, name)
			down := fmt.Sprintf("%s/%s_%s.down.sql", migrationDir, version, name)

			if err := os.WriteFile(up, []byte{}, 0644); err != nil {
				return err
			}
			if err := os.WriteFile(down, []byte{}, 0644); err != nil {
				return err
			}

			fmt.Println("Created SQL up script:", up)
			fmt.Println("Created SQL down script:", down)
			return nil
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			m, err := migrate.New(
				fmt.Sprintf("file://%s", migrationDir),
				databaseURL(cfg),
			)
			if err != nil {
				return err
			}

			err = m.Up()
			if err == migrate.ErrNoChange {
				fmt.Println("No change in migration")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println("Migrated up")
			return nil
		},
	}
}

func ordersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "print the staff order listing as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := postgres.NewClient(ctx, postgres.Config{
				Host:     cfg.Postgres.Host,
				Port:     cfg.Postgres.Port,
				User:     cfg.Postgres.User,
				Password: cfg.Postgres.Password,
				DBName:   cfg.Postgres.DBName,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			orders, err := postgres.NewOrderRepository(pool).ListAll(ctx)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Meal", "Room", "Guest", "Guests", "Date", "Time", "Main", "Extra", "Notes", "Created"})
			for _, o := range orders {
				table.Append([]string{
					strconv.FormatInt(o.ID, 10),
					string(o.MealType),
					o.RoomNumber,
					o.GuestName,
					strconv.Itoa(o.GuestsCount),
					o.ServiceDate,
					o.PreferredTime,
					o.MainOption,
					o.ExtraOption,
					o.Notes,
					o.CreatedAt,
				})
			}
			table.Render()
			return nil
		},
	}
}

func databaseURL(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
	)
}
