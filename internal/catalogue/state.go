package catalogue

import "fmt"

// StateKind identifies which screen the navigator is on.
type StateKind string

const (
	KindCategories StateKind = "categories"
	KindItems      StateKind = "items"
	KindItemDetail StateKind = "item_detail"
	KindSearch     StateKind = "search"
)

// SearchHit is one search result: the item code and the category of the
// first row that matched it.
type SearchHit struct {
	Code     string `json:"code" yaml:"code"`
	Category string `json:"category" yaml:"category"`
}

// State is the whole navigation state. It is a plain value: transitions
// return a new State and never mutate their input.
type State struct {
	Kind     StateKind   `json:"kind" yaml:"kind"`
	Category string      `json:"category,omitempty" yaml:"category,omitempty"`
	ItemCode string      `json:"item_code,omitempty" yaml:"item_code,omitempty"`
	Query    string      `json:"query,omitempty" yaml:"query,omitempty"` // normalized
	Results  []SearchHit `json:"results,omitempty" yaml:"results,omitempty"`

	// Input mirrors the search box as typed.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`
}

// Initial is the state shown once loading succeeds.
func Initial() State {
	return State{Kind: KindCategories}
}

// EventKind names a user intent.
type EventKind string

const (
	EventShowCategories EventKind = "show_categories"
	EventSelectCategory EventKind = "select_category"
	EventSelectItem     EventKind = "select_item"
	EventBack           EventKind = "back"
	EventSearch         EventKind = "search"
	EventClear          EventKind = "clear"
)

// Event carries every identifier its transition needs.
type Event struct {
	Kind     EventKind `json:"kind"`
	Category string    `json:"category,omitempty"`
	ItemCode string    `json:"item_code,omitempty"`
	Query    string    `json:"query,omitempty"`
}

func ShowCategories() Event { return Event{Kind: EventShowCategories} }
func SelectCategory(cat string) Event { return Event{Kind: EventSelectCategory, Category: cat} }
func SelectItem(code string) Event { return Event{Kind: EventSelectItem, ItemCode: code} }
func GoBack() Event { return Event{Kind: EventBack} }
func SearchFor(query string) Event { return Event{Kind: EventSearch, Query: query} }
func ClearSearch() Event { return Event{Kind: EventClear} }

// Transition applies ev to s. Events that do not apply to s, or that name a
// category or item unknown to x, return ErrInvalidTransition and s unchanged.
// A blank search leaves s unchanged without error.
func Transition(x *Index, s State, ev Event) (State, error) {
	switch ev.Kind {
	case EventShowCategories:
		return State{Kind: KindCategories, Input: s.Input}, nil

	case EventSelectCategory:
		if s.Kind != KindCategories {
			return s, invalid(ev, "only valid from categories, not %s", s.Kind)
		}
		if !x.HasCategory(ev.Category) {
			return s, invalid(ev, "unknown category %q", ev.Category)
		}
		return State{Kind: KindItems, Category: ev.Category, Input: s.Input}, nil

	case EventSelectItem:
		switch s.Kind {
		case KindItems:
			if !x.HasItem(ev.ItemCode, s.Category) {
				return s, invalid(ev, "item %q not in category %q", ev.ItemCode, s.Category)
			}
			return State{Kind: KindItemDetail, ItemCode: ev.ItemCode, Category: s.Category, Input: s.Input}, nil
		case KindSearch:
			for _, h := range s.Results {
				if h.Code == ev.ItemCode {
					return State{Kind: KindItemDetail, ItemCode: h.Code, Category: h.Category, Input: s.Input}, nil
				}
			}
			return s, invalid(ev, "item %q not in search results", ev.ItemCode)
		}
		return s, invalid(ev, "only valid from items or search, not %s", s.Kind)

	case EventBack:
		switch s.Kind {
		case KindItemDetail:
			return State{Kind: KindItems, Category: s.Category, Input: s.Input}, nil
		case KindItems:
			return State{Kind: KindCategories, Input: s.Input}, nil
		case KindSearch:
			return State{Kind: KindCategories}, nil
		}
		return s, nil

	case EventSearch:
		hits, ok := searchHits(x, ev.Query)
		if !ok {
			return s, nil
		}
		return State{
			Kind:    KindSearch,
			Query:   NormalizeQuery(ev.Query),
			Results: hits,
			Input:   ev.Query,
		}, nil

	case EventClear:
		return State{Kind: KindCategories}, nil
	}
	return s, invalid(ev, "unknown event")
}

func invalid(ev Event, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidTransition, ev.Kind, fmt.Sprintf(format, args...))
}

// Navigator owns the current state for a single event loop. It is not safe
// for concurrent use.
type Navigator struct {
	index *Index
	state State
}

// NewNavigator starts at the categories view of x.
func NewNavigator(x *Index) *Navigator {
	return &Navigator{index: x, state: Initial()}
}

// Index returns the catalogue the navigator walks.
func (n *Navigator) Index() *Index { return n.index }

// State returns the current state.
func (n *Navigator) State() State { return n.state }

// Dispatch applies ev. On error the state is left as it was.
func (n *Navigator) Dispatch(ev Event) error {
	next, err := Transition(n.index, n.state, ev)
	if err != nil {
		return err
	}
	n.state = next
	return nil
}

func (n *Navigator) ShowCategories() error { return n.Dispatch(ShowCategories()) }
func (n *Navigator) SelectCategory(cat string) error { return n.Dispatch(SelectCategory(cat)) }
func (n *Navigator) SelectItem(code string) error { return n.Dispatch(SelectItem(code)) }
func (n *Navigator) Back() error { return n.Dispatch(GoBack()) }
func (n *Navigator) Search(query string) error { return n.Dispatch(SearchFor(query)) }
func (n *Navigator) Clear() error { return n.Dispatch(ClearSearch()) }
