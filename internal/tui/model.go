package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonylturner/catview/internal/catalogue"
	"github.com/tonylturner/catview/internal/logging"
)

// LoadFunc produces the catalogue index. It runs once, off the UI loop.
type LoadFunc func(ctx context.Context) (*catalogue.Index, error)

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

// loadedMsg carries a freshly built index.
type loadedMsg struct {
	index *catalogue.Index
}

// loadFailedMsg reports that the catalogue could not be loaded.
type loadFailedMsg struct {
	err error
}

// Model is the catalogue browser. Navigation state lives in a
// catalogue.Navigator and is only touched from Update.
type Model struct {
	ctx    context.Context
	load   LoadFunc
	chat   catalogue.ChatLinker
	logger *logging.Logger

	styles Styles
	layout Layout

	phase   phase
	loadErr error
	nav     *catalogue.Navigator
	view    catalogue.View

	cursor    int
	scroll    int
	search    textinput.Model
	searching bool
	status    string
	statusErr bool
}

// NewModel creates a browser that loads its catalogue with load.
func NewModel(ctx context.Context, load LoadFunc, chat catalogue.ChatLinker, logger *logging.Logger) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	ti := textinput.New()
	ti.Placeholder = "Search by code, name or category..."
	ti.Prompt = ""
	ti.CharLimit = 80
	ti.Width = 40

	return &Model{
		ctx:    ctx,
		load:   load,
		chat:   chat,
		logger: logger,
		styles: DefaultStyles,
		layout: NewLayout(DefaultWidth, DefaultHeight),
		phase:  phaseLoading,
		search: ti,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) loadCmd() tea.Cmd {
	load, ctx := m.load, m.ctx
	return func() tea.Msg {
		if load == nil {
			return loadFailedMsg{err: errors.New("no catalogue loader configured")}
		}
		x, err := load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{index: x}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.adjustScroll()
		return m, nil

	case loadedMsg:
		m.phase = phaseReady
		m.nav = catalogue.NewNavigator(msg.index)
		m.refresh(true)
		return m, nil

	case loadFailedMsg:
		m.phase = phaseFailed
		m.loadErr = msg.err
		m.view = catalogue.FailureView()
		m.logger.Error("catalogue load failed: %v", msg.err)
		return m, nil

	case clipboardCopyMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.setStatus("Chat link copied to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if msg.String() == "q" {
		return m, tea.Quit
	}
	if m.phase != phaseReady {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.adjustScroll()
		}
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
			m.adjustScroll()
		}
	case "home", "g":
		m.cursor, m.scroll = 0, 0
	case "end", "G":
		if n := m.rowCount(); n > 0 {
			m.cursor = n - 1
			m.adjustScroll()
		}
	case "enter":
		return m, m.activate()
	case "c":
		return m, m.copyChatLink()
	case "esc", "backspace", "b":
		if bc, ok := catalogue.BreadcrumbFor(m.nav.State()); ok {
			m.dispatch(bc.Event)
		}
	case "h":
		m.dispatch(catalogue.ShowCategories())
	case "x":
		m.dispatch(catalogue.ClearSearch())
	case "/":
		m.searching = true
		m.status = ""
		return m, m.search.Focus()
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		if m.phase == phaseReady {
			m.dispatch(catalogue.SearchFor(m.search.Value()))
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// activate opens the row under the cursor, or copies its chat link on the
// detail screen.
func (m *Model) activate() tea.Cmd {
	switch m.view.Kind {
	case catalogue.ViewCategories:
		if m.cursor < len(m.view.Categories) {
			m.dispatch(catalogue.SelectCategory(m.view.Categories[m.cursor].Name))
		}
	case catalogue.ViewItems, catalogue.ViewSearch:
		if m.cursor < len(m.view.Items) {
			m.dispatch(catalogue.SelectItem(m.view.Items[m.cursor].Code))
		}
	case catalogue.ViewItemDetail:
		return m.copyChatLink()
	}
	return nil
}

func (m *Model) copyChatLink() tea.Cmd {
	link := m.selectedChatLink()
	if link == "" {
		return nil
	}
	return copyToClipboard(link)
}

func (m *Model) selectedChatLink() string {
	if m.view.Kind != catalogue.ViewItemDetail || m.view.Detail == nil {
		return ""
	}
	if m.cursor >= len(m.view.Detail.Variants) {
		return ""
	}
	return m.view.Detail.Variants[m.cursor].ChatLink
}

// dispatch applies ev and re-renders when the state changed.
func (m *Model) dispatch(ev catalogue.Event) {
	before := m.nav.State()
	if err := m.nav.Dispatch(ev); err != nil {
		m.logger.Debug("ignored %s: %v", ev.Kind, err)
		m.setStatus(err.Error(), true)
		return
	}
	after := m.nav.State()
	m.search.SetValue(after.Input)
	m.refresh(!sameScreen(before, after))
}

func sameScreen(a, b catalogue.State) bool {
	return a.Kind == b.Kind && a.Category == b.Category && a.ItemCode == b.ItemCode && a.Query == b.Query
}

// refresh re-renders the current state, optionally resetting the cursor.
func (m *Model) refresh(resetCursor bool) {
	v, err := catalogue.Render(m.nav.Index(), m.nav.State(), m.chat)
	if err != nil {
		m.logger.Error("render %s: %v", m.nav.State().Kind, err)
		m.setStatus(err.Error(), true)
		return
	}
	m.view = v
	if resetCursor {
		m.cursor, m.scroll = 0, 0
		m.status = ""
	}
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.adjustScroll()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) rowCount() int {
	switch m.view.Kind {
	case catalogue.ViewCategories:
		return len(m.view.Categories)
	case catalogue.ViewItems, catalogue.ViewSearch:
		return len(m.view.Items)
	case catalogue.ViewItemDetail:
		if m.view.Detail != nil {
			return len(m.view.Detail.Variants)
		}
	}
	return 0
}

func (m *Model) visibleRows() int {
	if m.view.Kind == catalogue.ViewItemDetail {
		// Header lines sit above the variant table.
		return max(m.layout.ContentHeight-8, 3)
	}
	return m.layout.ContentHeight
}

func (m *Model) adjustScroll() {
	maxVisible := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	} else if m.cursor >= m.scroll+maxVisible {
		m.scroll = m.cursor - maxVisible + 1
	}
}

// State returns the current navigation state, or the zero State before the
// catalogue has loaded.
func (m *Model) State() catalogue.State {
	if m.nav == nil {
		return catalogue.State{}
	}
	return m.nav.State()
}

// LoadErr returns the load failure, if any.
func (m *Model) LoadErr() error {
	return m.loadErr
}
