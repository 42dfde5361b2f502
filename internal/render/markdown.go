// Package render turns catalogue views into markdown for the printing
// subcommands.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/tonylturner/catview/internal/catalogue"
)

// DefaultWidth is the wrap width used when the terminal size is unknown.
const DefaultWidth = 80

// Markdown renders v as a markdown document.
func Markdown(v catalogue.View) string {
	var b strings.Builder

	if v.Breadcrumb != nil {
		fmt.Fprintf(&b, "← %s\n\n", v.Breadcrumb.Label)
	}
	if v.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", v.Title)
	}

	switch v.Kind {
	case catalogue.ViewCategories:
		for _, c := range v.Categories {
			fmt.Fprintf(&b, "- **%s** (image: %s)\n", c.Name, c.ImageURL)
		}
	case catalogue.ViewItems, catalogue.ViewSearch:
		for _, it := range v.Items {
			fmt.Fprintf(&b, "- **%s** Code: %s (image: %s)", it.Name, it.Code, it.ImageURL)
			if v.Kind == catalogue.ViewSearch {
				fmt.Fprintf(&b, " in %s", it.Category)
			}
			b.WriteString("\n")
		}
	case catalogue.ViewItemDetail:
		if v.Detail != nil {
			writeDetail(&b, *v.Detail)
		}
	}

	if v.Message != "" {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n\n") {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "_%s_\n", v.Message)
	}
	return b.String()
}

func writeDetail(b *strings.Builder, d catalogue.ItemDetail) {
	fmt.Fprintf(b, "**Item Code:** %s  \n", d.Code)
	fmt.Fprintf(b, "**HSN Code:** %s  \n", d.HSNCode)
	fmt.Fprintf(b, "**Image:** %s\n\n", d.ImageURL)
	if d.Specs != "" {
		fmt.Fprintf(b, "%s\n\n", d.Specs)
	}

	b.WriteString("| Variant Code | Description | Price/Unit | Unit | MOQ | Enquire |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range d.Variants {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | [chat](%s) |\n",
			cell(r.VariantCode), cell(r.Description), cell(r.PricePerUnit),
			cell(r.Unit), cell(r.MOQ), r.ChatLink)
	}
}

// cell keeps a value on one table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// Terminal styles markdown for a terminal of the given width.
func Terminal(md string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Write renders v to w, styled unless plain is set.
func Write(w io.Writer, v catalogue.View, plain bool, width int) error {
	md := Markdown(v)
	if !plain {
		styled, err := Terminal(md, width)
		if err != nil {
			return err
		}
		md = styled
	}
	_, err := io.WriteString(w, md)
	return err
}
