// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kgatera/site-tools/internal/registry"
	"github.com/kgatera/site-tools/pkg/types"
)

var updateRegistryCmd = &cobra.Command{
	Use:   "update-registry",
	Short: "Regenerate the book registry page from the reading log",
	Long: `Update-registry parses the plain-text book log (one book per line:
rating - date - title - author - description) and rewrites the registry
page in place, replacing the content between its marker comments with
freshly rendered summary and detail lists.

Malformed log lines are reported and skipped; the rest of the log still
renders. A registry page without the expected markers is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runUpdateRegistry,
}

func runUpdateRegistry(cmd *cobra.Command, args []string) error {
	cfg := types.RegistryConfig{
		BooksFile:    stringSetting(cmd, "books-file", "registry.books_file", "book-reviews/books.txt"),
		RegistryPath: stringSetting(cmd, "registry", "registry.registry_path", "book-registry.html"),
	}

	_, err := registry.Update(cfg, os.Stderr)
	return err
}

func init() {
	updateRegistryCmd.Flags().String("books-file", "book-reviews/books.txt", "plain-text book log")
	updateRegistryCmd.Flags().String("registry", "book-registry.html", "registry HTML page updated in place")

	rootCmd.AddCommand(updateRegistryCmd)
}
