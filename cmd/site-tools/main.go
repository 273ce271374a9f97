// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the site-tools CLI, the static-site
// publishing helpers: markdown-to-article conversion and the book registry
// generator. Each stage is a subcommand.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the site-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "site-tools",
	Short: "Publishing helpers for a hand-rolled static site",
	Long: `site-tools converts markdown drafts into styled HTML articles and keeps
the book registry page in sync with a plain-text reading log.

Each task is a subcommand: convert renders one or more drafts into the
posts directory; update-registry rewrites the registry page between its
marker comments. Both are single-shot batch runs with no daemon mode.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./site-tools.yaml or ~/.config/site-tools/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("site-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "site-tools"))
		}
	}

	viper.SetEnvPrefix("SITE_TOOLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a setting with flag > config file/env > fallback
// precedence. Paths are resolved once here, in cmd; nothing below reads
// viper directly.
func stringSetting(cmd *cobra.Command, flag, viperKey, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(viperKey) {
		return viper.GetString(viperKey)
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
