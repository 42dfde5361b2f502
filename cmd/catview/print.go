package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonylturner/catview/internal/catalogue"
	"github.com/tonylturner/catview/internal/render"
)

// printFlags control how a view is written to stdout.
type printFlags struct {
	plain bool
	width int
}

func (p *printFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.plain, "plain", false, "Print raw markdown instead of styled terminal output")
	cmd.Flags().IntVar(&p.width, "width", render.DefaultWidth, "Wrap width for styled output")
}

// navigate loads the catalogue, replays events from the categories view and
// prints the resulting view. A failed load prints the failure view.
func navigate(ctx context.Context, g *globalFlags, p *printFlags, command string, events ...catalogue.Event) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, g, command, false)
	if err != nil {
		return err
	}
	defer s.Close()

	x, err := s.load(ctx)
	if err != nil {
		if werr := render.Write(os.Stdout, catalogue.FailureView(), p.plain, p.width); werr != nil {
			s.logger.Error("write failure view: %v", werr)
		}
		return err
	}

	nav := catalogue.NewNavigator(x)
	for _, ev := range events {
		if err := nav.Dispatch(ev); err != nil {
			return explainTransition(x, ev, err)
		}
	}

	v, err := catalogue.Render(x, nav.State(), s.chat())
	if err != nil {
		return err
	}
	return render.Write(os.Stdout, v, p.plain, p.width)
}

func explainTransition(x *catalogue.Index, ev catalogue.Event, err error) error {
	if !errors.Is(err, catalogue.ErrInvalidTransition) {
		return err
	}
	switch ev.Kind {
	case catalogue.EventSelectCategory:
		return fmt.Errorf("unknown category %q (available: %s)", ev.Category, strings.Join(x.Categories(), ", "))
	case catalogue.EventSelectItem:
		return fmt.Errorf("item %q not found in that category: %w", ev.ItemCode, err)
	}
	return err
}

func newCategoriesCmd(g *globalFlags) *cobra.Command {
	p := &printFlags{}
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Long:  "Load the catalogue and print every category, sorted by name, with its image.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return navigate(cmd.Context(), g, p, "categories")
		},
	}
	p.register(cmd)
	return cmd
}

func newItemsCmd(g *globalFlags) *cobra.Command {
	p := &printFlags{}
	cmd := &cobra.Command{
		Use:   "items <category>",
		Short: "List the items of a category",
		Long: `Print one card per item code in a category, in sheet order.

The category must match exactly as listed by "catview categories".`,
		Example: `  catview items "Hand Tools"
  catview items Fasteners --plain`,
		Args: requireArgs("category"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return navigate(cmd.Context(), g, p, "items", catalogue.SelectCategory(args[0]))
		},
	}
	p.register(cmd)
	return cmd
}

func newShowCmd(g *globalFlags) *cobra.Command {
	p := &printFlags{}
	cmd := &cobra.Command{
		Use:   "show <category> <item-code>",
		Short: "Show an item with its variants and chat links",
		Long: `Print the detail of one item within one category: item code, HSN code,
image, specs and a variant table. Each variant row links to a pre-filled
chat enquiry.`,
		Example: `  catview show "Hand Tools" A1`,
		Args:    requireArgs("category", "item-code"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return navigate(cmd.Context(), g, p, "show",
				catalogue.SelectCategory(args[0]),
				catalogue.SelectItem(args[1]))
		},
	}
	p.register(cmd)
	return cmd
}

func newSearchCmd(g *globalFlags) *cobra.Command {
	p := &printFlags{}
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search items by code, name or category",
		Long: `Print one card per item code whose code, name or category contains the
query, ignoring case. A blank query leaves the categories view unchanged.`,
		Example: `  catview search hammer
  catview search "a1" --plain`,
		Args: requireArgs("query"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return navigate(cmd.Context(), g, p, "search", catalogue.SearchFor(args[0]))
		},
	}
	p.register(cmd)
	return cmd
}
