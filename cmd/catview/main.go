package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tonylturner/catview/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	debug      bool
	logFile    string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "catview",
		Short: "Browse a spreadsheet-backed product catalogue",
		Long: `catview loads the items, images and categories sheets of a product
catalogue and lets you drill down from categories to items to variant
details, or search across every item. Each variant carries a pre-filled
chat link for enquiries.

Run without a subcommand to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultPath, "Config file (defaults are used when it does not exist)")
	rootCmd.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "Log sheet loads and other details to stderr")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&g.quiet, "quiet", false, "Hide the loading progress line")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newBrowseCmd(g))
	rootCmd.AddCommand(newCategoriesCmd(g))
	rootCmd.AddCommand(newItemsCmd(g))
	rootCmd.AddCommand(newShowCmd(g))
	rootCmd.AddCommand(newSearchCmd(g))
	rootCmd.AddCommand(newInitCmd(g))

	// Custom help command
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			fmt.Fprintf(os.Stdout, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
			if cmd.Example != "" {
				fmt.Fprintf(os.Stdout, "\nExamples:\n%s\n", cmd.Example)
			}
			if cmd.HasAvailableFlags() {
				fmt.Fprintf(os.Stdout, "\nFlags:\n%s", cmd.Flags().FlagUsages())
			}
			return
		}
		fmt.Fprintf(os.Stdout, "Usage:\n  %s <command> [arguments] [options]\n\n", cmd.Name())
		fmt.Fprintf(os.Stdout, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden {
				fmt.Fprintf(os.Stdout, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(os.Stdout, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
