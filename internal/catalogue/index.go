package catalogue

import (
	"sort"
	"strings"

	"github.com/tonylturner/catview/internal/sheet"
)

// Index is the joined, read-only view of the three sheets. It is built once
// by BuildIndex and never mutated afterwards, so it is safe to share.
type Index struct {
	rows            []Row
	itemsByCode     map[string][]Row
	categories      []string
	categorySet     map[string]struct{}
	imageByCode     map[string]string
	imageByCategory map[string]string
	placeholders    Placeholders
}

// Stats summarizes an index for logging.
type Stats struct {
	Rows           int
	Items          int
	Categories     int
	Images         int
	CategoryImages int
}

// BuildIndex joins the parsed sheets. Primary rows without an item code or
// category are dropped. Image rows without a key or URL are skipped and a
// later row for the same key overwrites an earlier one.
func BuildIndex(items, images, categoryImages []sheet.Record, placeholders Placeholders) *Index {
	if placeholders.Item == "" {
		placeholders.Item = DefaultPlaceholders.Item
	}
	if placeholders.Category == "" {
		placeholders.Category = DefaultPlaceholders.Category
	}

	x := &Index{
		itemsByCode:     make(map[string][]Row),
		categorySet:     make(map[string]struct{}),
		imageByCode:     foldImages(images, ColItemCode),
		imageByCategory: foldImages(categoryImages, ColCategory),
		placeholders:    placeholders,
	}

	for _, rec := range items {
		row, ok := RowFromRecord(rec)
		if !ok {
			continue
		}
		x.rows = append(x.rows, row)
		x.itemsByCode[row.ItemCode] = append(x.itemsByCode[row.ItemCode], row)
		if _, seen := x.categorySet[row.Category]; !seen {
			x.categorySet[row.Category] = struct{}{}
			x.categories = append(x.categories, row.Category)
		}
	}
	sort.Strings(x.categories)

	return x
}

func foldImages(records []sheet.Record, keyColumn string) map[string]string {
	out := make(map[string]string, len(records))
	for _, rec := range records {
		key := strings.TrimSpace(rec.Get(keyColumn))
		url := rec.Get(ColImageURL)
		if key == "" || url == "" {
			continue
		}
		out[key] = url
	}
	return out
}

// Rows returns every kept primary row in sheet order. Callers must not
// modify the returned slice.
func (x *Index) Rows() []Row {
	return x.rows
}

// Categories returns the distinct categories in ascending order.
func (x *Index) Categories() []string {
	out := make([]string, len(x.categories))
	copy(out, x.categories)
	return out
}

// HasCategory reports whether any row belongs to category.
func (x *Index) HasCategory(category string) bool {
	_, ok := x.categorySet[category]
	return ok
}

// RowsForCode returns the rows sharing code, in sheet order.
func (x *Index) RowsForCode(code string) []Row {
	return x.itemsByCode[code]
}

// RowsFor returns the rows matching both code and category, in sheet order.
func (x *Index) RowsFor(code, category string) []Row {
	var out []Row
	for _, row := range x.itemsByCode[code] {
		if row.Category == category {
			out = append(out, row)
		}
	}
	return out
}

// HasItem reports whether code has at least one row in category.
func (x *Index) HasItem(code, category string) bool {
	for _, row := range x.itemsByCode[code] {
		if row.Category == category {
			return true
		}
	}
	return false
}

// ItemImage returns the image for code, or the item placeholder.
func (x *Index) ItemImage(code string) string {
	if url, ok := x.imageByCode[strings.TrimSpace(code)]; ok {
		return url
	}
	return x.placeholders.Item
}

// CategoryImage returns the image for category, or the category placeholder.
func (x *Index) CategoryImage(category string) string {
	if url, ok := x.imageByCategory[strings.TrimSpace(category)]; ok {
		return url
	}
	return x.placeholders.Category
}

// Stats returns counts used in load logging.
func (x *Index) Stats() Stats {
	return Stats{
		Rows:           len(x.rows),
		Items:          len(x.itemsByCode),
		Categories:     len(x.categories),
		Images:         len(x.imageByCode),
		CategoryImages: len(x.imageByCategory),
	}
}
