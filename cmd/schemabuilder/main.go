package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flavono123/schemabuilder/internal/config"
	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

var cfg = config.Load()

var printOnExit bool

var rootCmd = &cobra.Command{
	Use:   config.AppID,
	Short: "Build a nested schema and preview it as JSON",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		return theme.SetFlavour(cfg.Flavour)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Debug {
			f, err := tea.LogToFile(cfg.LogFile, "debug")
			if err != nil {
				return fmt.Errorf("failed to log to file: %w", err)
			}
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}

		program := tea.NewProgram(
			ui.InitModel(cfg),
			tea.WithAltScreen(),
		)

		final, err := program.Run()
		if err != nil {
			return fmt.Errorf("failed to run program: %w", err)
		}

		if !printOnExit {
			return nil
		}
		out, err := final.(*ui.Model).JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the field types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, kind := range schema.Kinds() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), kind); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to the log file")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "debug log file")
	rootCmd.PersistentFlags().StringVar(&cfg.Flavour, "flavour", cfg.Flavour, "catppuccin flavour (latte, frappe, macchiato, mocha)")
	rootCmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, "preview format (json or yaml)")
	rootCmd.Flags().IntVar(&cfg.Indent, "indent", cfg.Indent, "spaces per level in the preview")
	rootCmd.Flags().BoolVar(&printOnExit, "print", false, "print the schema as JSON on exit")

	rootCmd.AddCommand(kindsCmd)
}

func main() {
	// cobra reports the error itself
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
