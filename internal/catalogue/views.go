package catalogue

import (
	"fmt"
	"strings"
)

// CategoryCard is one tile of the categories view.
type CategoryCard struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// ItemCard is one tile of the items or search view. Category is the
// category the card opens into.
type ItemCard struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

// VariantRow is one line of the detail variant table.
type VariantRow struct {
	VariantCode  string `json:"variant_code"`
	Description  string `json:"description"`
	PricePerUnit string `json:"price_per_unit"`
	Unit         string `json:"unit"`
	MOQ          string `json:"moq"`
	ChatLink     string `json:"chat_link"`
}

// ItemDetail is the header and variant table of one item in one category.
type ItemDetail struct {
	Code     string       `json:"code"`
	Category string       `json:"category"`
	Name     string       `json:"name"`
	HSNCode  string       `json:"hsn_code"`
	Specs    string       `json:"specs"`
	ImageURL string       `json:"image_url"`
	Variants []VariantRow `json:"variants"`
}

// CategoryCards returns one card per category, sorted by name.
func CategoryCards(x *Index) []CategoryCard {
	cards := make([]CategoryCard, 0, len(x.categories))
	for _, name := range x.categories {
		cards = append(cards, CategoryCard{Name: name, ImageURL: x.CategoryImage(name)})
	}
	return cards
}

// ItemCards returns one card per distinct item code in category, in the
// order codes first appear. The name comes from the first row of that code
// within the category.
func ItemCards(x *Index, category string) []ItemCard {
	var cards []ItemCard
	seen := make(map[string]bool)
	for _, row := range x.rows {
		if row.Category != category || seen[row.ItemCode] {
			continue
		}
		seen[row.ItemCode] = true
		cards = append(cards, ItemCard{
			Code:     row.ItemCode,
			Name:     row.ItemName,
			Category: category,
			ImageURL: x.ItemImage(row.ItemCode),
		})
	}
	return cards
}

// BuildItemDetail returns the detail of code within category. The header is
// taken from the first matching row; variants are de-duplicated by variant
// code keeping the first. It returns ErrNotFound when nothing matches.
func BuildItemDetail(x *Index, code, category string, chat ChatLinker) (ItemDetail, error) {
	rows := x.RowsFor(code, category)
	if len(rows) == 0 {
		return ItemDetail{}, fmt.Errorf("%w: item %q in category %q", ErrNotFound, code, category)
	}

	head := rows[0]
	detail := ItemDetail{
		Code:     head.ItemCode,
		Category: head.Category,
		Name:     head.ItemName,
		HSNCode:  head.HSNCode,
		Specs:    head.Specs,
		ImageURL: x.ItemImage(head.ItemCode),
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.VariantCode] {
			continue
		}
		seen[row.VariantCode] = true
		detail.Variants = append(detail.Variants, VariantRow{
			VariantCode:  row.VariantCode,
			Description:  row.Description,
			PricePerUnit: row.PricePerUnit,
			Unit:         row.Unit,
			MOQ:          row.MOQ,
			ChatLink:     chat.Link(head.ItemName, row),
		})
	}
	return detail, nil
}

// MustItemDetail is like BuildItemDetail but panics when the item is missing.
func MustItemDetail(x *Index, code, category string, chat ChatLinker) ItemDetail {
	d, err := BuildItemDetail(x, code, category, chat)
	if err != nil {
		panic(err)
	}
	return d
}

// NormalizeQuery trims and lower-cases a search query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Search returns one card per distinct item code with a row whose code,
// name or category contains query, case-insensitively. ok is false for a
// blank query, in which case no search should happen at all.
func Search(x *Index, query string) (cards []ItemCard, ok bool) {
	hits, ok := searchHits(x, query)
	if !ok {
		return nil, false
	}
	return hitCards(x, hits), true
}

// searchHits scans rows in sheet order. The first matching row of a code
// decides the category the hit opens into.
func searchHits(x *Index, query string) ([]SearchHit, bool) {
	q := NormalizeQuery(query)
	if q == "" {
		return nil, false
	}
	var hits []SearchHit
	seen := make(map[string]bool)
	for _, row := range x.rows {
		if seen[row.ItemCode] || !rowMatches(row, q) {
			continue
		}
		seen[row.ItemCode] = true
		hits = append(hits, SearchHit{Code: row.ItemCode, Category: row.Category})
	}
	return hits, true
}

func rowMatches(row Row, q string) bool {
	return strings.Contains(strings.ToLower(row.ItemCode), q) ||
		strings.Contains(strings.ToLower(row.ItemName), q) ||
		strings.Contains(strings.ToLower(row.Category), q)
}

func hitCards(x *Index, hits []SearchHit) []ItemCard {
	cards := make([]ItemCard, 0, len(hits))
	for _, h := range hits {
		name := ""
		if rows := x.RowsFor(h.Code, h.Category); len(rows) > 0 {
			name = rows[0].ItemName
		}
		if name == "" {
			name = h.Code
		}
		cards = append(cards, ItemCard{
			Code:     h.Code,
			Name:     name,
			Category: h.Category,
			ImageURL: x.ItemImage(h.Code),
		})
	}
	return cards
}
