package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"
	"text/tabwriter"

	"bookshelf/internal/config"
	"bookshelf/internal/database"
	"bookshelf/internal/models"
	"bookshelf/internal/services"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var logger = log.New(os.Stderr, "[bookctl] ", log.LstdFlags)

// openDB opens the configured database without touching the schema.
func openDB() (*database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.Open(cfg.Database.Driver, cfg.Database.URL)
}

// initDB opens the configured database and applies pending migrations.
func initDB() (*database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.Init(cfg.Database.Driver, cfg.Database.URL)
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				if err := db.MigrateUp(); err != nil {
					return err
				}
				logger.Println("schema is up to date")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				if err := db.MigrateDown(); err != nil {
					return err
				}
				logger.Println("schema rolled back")
				return nil
			},
		},
	)
	return cmd
}

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <username>",
		Short: "Create a user, prompting for the password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.OutOrStdout(), "Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			db, err := initDB()
			if err != nil {
				return err
			}
			defer db.Close()

			user, err := services.NewAuthService(db).Signup(cmd.Context(), args[0], password)
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				return errors.New(verr.Message)
			case errors.Is(err, services.ErrDuplicateUsername):
				return fmt.Errorf("user %q already exists", strings.TrimSpace(args[0]))
			case err != nil:
				return err
			}
			logger.Printf("created user %s (id %d)", user.Username, user.ID)
			return nil
		},
	})
	return cmd
}

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Inspect stored books",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <username>",
		Short: "List a user's books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := initDB()
			if err != nil {
				return err
			}
			defer db.Close()

			user, err := services.NewAuthService(db).UserByUsername(cmd.Context(), args[0])
			if errors.Is(err, database.ErrNotFound) {
				return fmt.Errorf("no user named %q", strings.TrimSpace(args[0]))
			}
			if err != nil {
				return err
			}
			books, err := services.NewBookService(db).List(cmd.Context(), models.Identity{UserID: user.ID})
			if err != nil {
				return err
			}
			return printBooks(cmd.OutOrStdout(), books)
		},
	})
	return cmd
}

func printBooks(out io.Writer, books []models.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(out, "No books found.")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tGENRE")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.Genre)
	}
	return tw.Flush()
}

func readPassword(out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(out)
	return string(bytePassword), nil
}
