package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tonylturner/catview/internal/tui"
)

func newBrowseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalogue browser",
		Long: `Open the full-screen catalogue browser.

Categories are listed first. Enter opens a category, then an item, which
shows its variants. Press / to search by item code, name or category, Esc
to go back, and c on a variant to copy its chat link.

Logs are written only to --log-file while the browser is open.`,
		Example: `  # Browse the default spreadsheet
  catview browse

  # Browse CSV exports in a local directory
  catview browse --config local.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), g)
		},
	}
}

func runBrowse(ctx context.Context, g *globalFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, g, "browse", true)
	if err != nil {
		return err
	}
	defer s.Close()

	// The loader draws no progress line here; the browser shows its own
	// loading screen.
	l := s.loader()
	return tui.Run(ctx, l.Load, s.chat(), s.logger)
}
