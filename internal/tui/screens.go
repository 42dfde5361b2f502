package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonylturner/catview/internal/catalogue"
)

// View implements tea.Model.
func (m *Model) View() string {
	s := m.styles
	var b strings.Builder

	switch m.phase {
	case phaseLoading:
		b.WriteString(m.renderHeader("catview"))
		b.WriteString("\n\n")
		b.WriteString(s.Dim.Render("Loading catalogue..."))
		b.WriteString("\n\n")
		b.WriteString(KeyHints([]KeyHint{{"q", "Quit"}}, s))
		return b.String()

	case phaseFailed:
		b.WriteString(m.renderHeader("catview"))
		b.WriteString("\n\n")
		b.WriteString(s.Error.Render(m.view.Message))
		b.WriteString("\n\n")
		b.WriteString(KeyHints([]KeyHint{{"q", "Quit"}}, s))
		return b.String()
	}

	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	if bc := m.view.Breadcrumb; bc != nil {
		b.WriteString(s.Breadcrumb.Render("← "+bc.Label) + " " + s.Dim.Render("[esc]"))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHeader(m.view.Title))
	b.WriteString("\n")

	switch m.view.Kind {
	case catalogue.ViewCategories:
		b.WriteString(m.renderCategories())
	case catalogue.ViewItems, catalogue.ViewSearch:
		b.WriteString(m.renderItems())
	case catalogue.ViewItemDetail:
		b.WriteString(m.renderDetail())
	}

	if m.view.Message != "" {
		b.WriteString(s.Warning.Render(m.view.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(s.Error.Render(m.status))
		} else {
			b.WriteString(s.Success.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.Footer())
	return b.String()
}

func (m *Model) renderHeader(title string) string {
	return m.styles.Title.Render(title) + "\n" + Divider(m.layout.ContentWidth, m.styles)
}

func (m *Model) renderSearchBar() string {
	s := m.styles
	label := s.SearchLabel.Render("Search: ")
	if m.searching {
		label = s.SearchActive.Render("Search: ")
	}
	return label + m.search.View()
}

func (m *Model) window(n int) (int, int) {
	start := m.scroll
	end := start + m.visibleRows()
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

func (m *Model) renderCategories() string {
	s := m.styles
	cards := m.view.Categories
	start, end := m.window(len(cards))

	var b strings.Builder
	for i := start; i < end; i++ {
		c := cards[i]
		line := padRight(c.Name, 32) + " " + s.Dim.Render(c.ImageURL)
		if i == m.cursor {
			b.WriteString(s.Selected.Render("> ") + s.Selected.Render(padRight(c.Name, 32)) + " " + s.Dim.Render(c.ImageURL))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderScrollInfo(len(cards), start, end, "categories"))
	return b.String()
}

func (m *Model) renderItems() string {
	cards := m.view.Items
	if len(cards) == 0 {
		return ""
	}
	start, end := m.window(len(cards))

	headers := []string{"Name", "Code", "Image"}
	if m.view.Kind == catalogue.ViewSearch {
		headers = []string{"Name", "Code", "Category", "Image"}
	}
	t := Table{Headers: headers, Widths: []int{32, 14}, Cursor: m.cursor - start}
	for _, c := range cards[start:end] {
		row := []string{c.Name, "Code: " + c.Code}
		if m.view.Kind == catalogue.ViewSearch {
			row = append(row, c.Category)
		}
		t.Rows = append(t.Rows, append(row, c.ImageURL))
	}
	return t.Render(m.layout.ContentWidth, m.styles) + "\n" +
		m.renderScrollInfo(len(cards), start, end, "items")
}

func (m *Model) renderDetail() string {
	s := m.styles
	d := m.view.Detail
	if d == nil {
		return ""
	}

	var header strings.Builder
	fmt.Fprintf(&header, "%s %s\n", s.SectionName.Render("Item Code:"), s.Code.Render(d.Code))
	fmt.Fprintf(&header, "%s %s\n", s.SectionName.Render("HSN Code: "), d.HSNCode)
	fmt.Fprintf(&header, "%s %s", s.SectionName.Render("Image:    "), s.Dim.Render(d.ImageURL))
	if d.Specs != "" {
		header.WriteString("\n\n" + lipgloss.NewStyle().Width(m.layout.ContentWidth-4).Render(d.Specs))
	}

	var b strings.Builder
	b.WriteString(s.Box.Render(header.String()))
	b.WriteString("\n\n")

	start, end := m.window(len(d.Variants))
	t := Table{
		Headers: []string{"Variant Code", "Description", "Price/Unit", "Unit", "MOQ"},
		Widths:  []int{14, 34, 12, 6, 6},
		Cursor:  m.cursor - start,
	}
	for _, v := range d.Variants[start:end] {
		t.Rows = append(t.Rows, []string{v.VariantCode, v.Description, v.PricePerUnit, v.Unit, v.MOQ})
	}
	b.WriteString(t.Render(m.layout.ContentWidth, s))
	b.WriteString("\n")
	b.WriteString(m.renderScrollInfo(len(d.Variants), start, end, "variants"))

	if link := m.selectedChatLink(); link != "" {
		b.WriteString(s.Dim.Render("Chat: ") + s.Link.Render(truncateString(link, m.layout.ContentWidth-6)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderScrollInfo(total, start, end int, noun string) string {
	if total <= end-start {
		return ""
	}
	return m.styles.Dim.Render(fmt.Sprintf("  %d-%d of %d %s", start+1, end, total, noun)) + "\n"
}

// Footer returns footer hints.
func (m *Model) Footer() string {
	if m.searching {
		return KeyHints([]KeyHint{
			{"Enter", "Search"},
			{"Esc", "Cancel"},
		}, m.styles)
	}
	switch m.view.Kind {
	case catalogue.ViewCategories:
		return KeyHints([]KeyHint{
			{"Enter", "Open"},
			{"/", "Search"},
			{"j/k", "Navigate"},
			{"q", "Quit"},
		}, m.styles)
	case catalogue.ViewItems:
		return KeyHints([]KeyHint{
			{"Enter", "Open"},
			{"/", "Search"},
			{"Esc", "Back"},
			{"q", "Quit"},
		}, m.styles)
	case catalogue.ViewItemDetail:
		return KeyHints([]KeyHint{
			{"c", "Copy chat link"},
			{"j/k", "Variant"},
			{"Esc", "Back"},
			{"h", "Home"},
			{"q", "Quit"},
		}, m.styles)
	case catalogue.ViewSearch:
		return KeyHints([]KeyHint{
			{"Enter", "Open"},
			{"/", "Search"},
			{"x", "Clear"},
			{"Esc", "Home"},
			{"q", "Quit"},
		}, m.styles)
	}
	return ""
}
