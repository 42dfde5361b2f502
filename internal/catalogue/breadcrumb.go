package catalogue

// Breadcrumb is the single back link shown above a view.
type Breadcrumb struct {
	Label string `json:"label"`
	Event Event  `json:"event"`
}

// BreadcrumbFor returns the back link for s. The categories view has none.
func BreadcrumbFor(s State) (Breadcrumb, bool) {
	switch s.Kind {
	case KindItems:
		return Breadcrumb{Label: "Back to Categories", Event: ShowCategories()}, true
	case KindItemDetail:
		return Breadcrumb{Label: "Back to " + s.Category, Event: GoBack()}, true
	case KindSearch:
		return Breadcrumb{Label: "Back to Home", Event: ClearSearch()}, true
	}
	return Breadcrumb{}, false
}
