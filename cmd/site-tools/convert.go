// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kgatera/site-tools/internal/article"
	"github.com/kgatera/site-tools/internal/site"
	"github.com/kgatera/site-tools/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <markdown-file.md> [more files...]",
	Short: "Convert markdown drafts to styled HTML articles",
	Long: `Convert reads a markdown file with frontmatter (title required, date
optional), renders the body to HTML, and writes a self-contained article
page to the output directory as article-<slug>.html.

A bare relative filename is looked up under the drafts directory. An ISO
date (YYYY-MM-DD) is formatted as "Month D, YYYY"; any other date string
is used as written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := blogConfig(cmd)

	settings, err := site.Load(cfg.SitePath)
	if err != nil {
		return err
	}

	result := article.ConvertBatch(args, cfg, settings, os.Stderr)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func blogConfig(cmd *cobra.Command) types.BlogConfig {
	return types.BlogConfig{
		DraftsDir: stringSetting(cmd, "drafts-dir", "blog.drafts_dir", "drafts"),
		OutputDir: stringSetting(cmd, "output-dir", "blog.output_dir", "posts"),
		SitePath:  stringSetting(cmd, "site", "blog.site_path", "site.yaml"),
	}
}

func init() {
	convertCmd.Flags().String("drafts-dir", "drafts", "directory searched for bare markdown filenames")
	convertCmd.Flags().String("output-dir", "posts", "directory article HTML files are written to")
	convertCmd.Flags().String("site", "site.yaml", "site settings file (optional)")

	rootCmd.AddCommand(convertCmd)
}
