// Command pptx-masters extracts the theme, masters and layouts of a
// PowerPoint template and writes them as JSON, Markdown, Go source, CSV,
// a swatch workbook and optional PDF or HTML previews.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var appVersion = "0.1.0"

// options holds the command-line flags.
type options struct {
	configPath string
	envFile    string
	outputDir  string
	formats    []string
	previews   []string
	pkg        string
	noRepair   bool
	noMaster   bool
	raw        bool
	verbose    bool
	force      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pptx-masters <template>",
		Short: "Extract slide masters and layouts from PowerPoint templates",
		Long: "pptx-masters reads a .potx or .pptx template and writes its resolved theme, " +
			"masters and layouts for code generators and documentation.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args[0])
		},
	}
	rootCmd.Version = appVersion
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: ./pptx-masters.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Environment file loaded before the config")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "Output directory (default: out)")
	rootCmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "Output formats: json, theme, markdown, go, csv, xlsx")
	rootCmd.Flags().StringSliceVar(&opts.previews, "preview", nil, "Preview renderings: pdf, html")
	rootCmd.Flags().StringVar(&opts.pkg, "package", "", "Package name of generated Go source")
	rootCmd.Flags().BoolVar(&opts.noRepair, "no-repair", false, "Report a limited palette without repairing it")
	rootCmd.Flags().BoolVar(&opts.noMaster, "no-master-shapes", false, "Do not copy master decoration into layouts")
	rootCmd.Flags().BoolVar(&opts.raw, "raw", false, "Skip text-color backfill and footer cleanup")

	inspectCmd := &cobra.Command{
		Use:   "inspect <template>",
		Short: "Print a summary of a template",
		Long:  "Print the theme colors, fonts and layouts of a template without writing any files.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage pptx-masters configuration files.",
	}
	configGenerateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a default configuration file",
		Long:  "Generate a default pptx-masters.toml at --config (or in the current directory if not specified).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGenerate(cmd, opts)
		},
	}
	configGenerateCmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(inspectCmd, configCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
