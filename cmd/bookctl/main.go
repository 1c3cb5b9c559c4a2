// Command bookctl runs one-shot maintenance tasks against the bookshelf
// database: schema migrations, user creation and book listings.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bookctl",
		Short:        "Bookshelf maintenance tool",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newUserCmd(), newBooksCmd())
	return root
}
