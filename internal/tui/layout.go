package tui

// Layout constants
const (
	DefaultWidth  = 100
	DefaultHeight = 30
	MinWidth      = 60
	MaxWidth      = 140

	// Lines taken by title, breadcrumb, search box, status and footer.
	chromeHeight = 10
)

// Layout holds layout calculations for the current terminal size.
type Layout struct {
	Width  int
	Height int

	ContentWidth  int
	ContentHeight int
}

// NewLayout creates a new layout for the given terminal size.
func NewLayout(width, height int) Layout {
	if width < MinWidth {
		width = MinWidth
	}
	if width > MaxWidth {
		width = MaxWidth
	}

	l := Layout{
		Width:  width,
		Height: height,
	}
	l.ContentWidth = width - 4
	l.ContentHeight = height - chromeHeight
	if l.ContentHeight < 3 {
		l.ContentHeight = 3
	}
	return l
}
