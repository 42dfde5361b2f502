package catalogue

import "fmt"

// ViewKind identifies what a View shows.
type ViewKind string

const (
	ViewCategories ViewKind = "categories"
	ViewItems      ViewKind = "items"
	ViewItemDetail ViewKind = "item_detail"
	ViewSearch     ViewKind = "search"
	ViewFailure    ViewKind = "failure"
)

// Messages shown instead of cards.
const (
	FailureMessage      = "Failed to load data."
	NoResultsMessage    = "No results found."
	NoItemsMessage      = "No items found."
	NoCategoriesMessage = "No categories found."
)

// View is a render-ready snapshot of one screen. Exactly one of
// Categories, Items, Detail or Message is meaningful for a given Kind.
type View struct {
	Kind       ViewKind       `json:"kind"`
	Title      string         `json:"title"`
	Breadcrumb *Breadcrumb    `json:"breadcrumb,omitempty"`
	Categories []CategoryCard `json:"categories,omitempty"`
	Items      []ItemCard     `json:"items,omitempty"`
	Detail     *ItemDetail    `json:"detail,omitempty"`
	Message    string         `json:"message,omitempty"`
}

// FailureView is shown when loading fails. It offers no navigation.
func FailureView() View {
	return View{Kind: ViewFailure, Message: FailureMessage}
}

// Render projects s over x. It is pure: the same index and state always give
// the same view. It only fails with ErrNotFound for a detail state naming an
// item that is not in the index.
func Render(x *Index, s State, chat ChatLinker) (View, error) {
	var v View
	if bc, ok := BreadcrumbFor(s); ok {
		v.Breadcrumb = &bc
	}

	switch s.Kind {
	case KindCategories, "":
		v.Kind = ViewCategories
		v.Title = "Product Categories"
		v.Categories = CategoryCards(x)
		if len(v.Categories) == 0 {
			v.Message = NoCategoriesMessage
		}

	case KindItems:
		v.Kind = ViewItems
		v.Title = s.Category
		v.Items = ItemCards(x, s.Category)
		if len(v.Items) == 0 {
			v.Message = NoItemsMessage
		}

	case KindItemDetail:
		d, err := BuildItemDetail(x, s.ItemCode, s.Category, chat)
		if err != nil {
			return View{}, err
		}
		v.Kind = ViewItemDetail
		v.Title = d.Name
		v.Detail = &d

	case KindSearch:
		v.Kind = ViewSearch
		v.Title = "Search Results for \"" + s.Query + "\""
		v.Items = hitCards(x, s.Results)
		if len(v.Items) == 0 {
			v.Items = nil
			v.Message = NoResultsMessage
		}

	default:
		return View{}, fmt.Errorf("%w: unknown state %q", ErrInvalidTransition, s.Kind)
	}
	return v, nil
}
