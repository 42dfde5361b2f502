// Package catalogue joins the item, image and category-image sheets into a
// read-only index and projects it into navigable view models.
package catalogue

import (
	"errors"
	"strings"

	"github.com/tonylturner/catview/internal/sheet"
)

// Column names used by the three sheets.
const (
	ColItemCode     = "Item Code"
	ColCategory     = "Category"
	ColItemName     = "Item Name"
	ColHSNCode      = "HSN Code"
	ColSpecs        = "Specs"
	ColVariantCode  = "Variant Code"
	ColDescription  = "Description"
	ColPricePerUnit = "Price/Unit"
	ColUnit         = "Unit"
	ColMOQ          = "MOQ"
	ColImageURL     = "Image URL"
)

var (
	// ErrLoadFailure marks any fetch or parse failure during Load.
	ErrLoadFailure = errors.New("catalogue: load failure")

	// ErrNotFound is returned when a detail view is requested for a
	// (code, category) pair that has no rows.
	ErrNotFound = errors.New("catalogue: not found")

	// ErrInvalidTransition is returned when an event does not apply to the
	// current state or names an unknown category or item.
	ErrInvalidTransition = errors.New("catalogue: invalid transition")
)

// Row is one line of the primary sheet. Variants of the same item share
// ItemCode and Category.
type Row struct {
	ItemCode     string `json:"item_code" yaml:"item_code"`
	Category     string `json:"category" yaml:"category"`
	ItemName     string `json:"item_name" yaml:"item_name"`
	HSNCode      string `json:"hsn_code" yaml:"hsn_code"`
	Specs        string `json:"specs" yaml:"specs"`
	VariantCode  string `json:"variant_code" yaml:"variant_code"`
	Description  string `json:"description" yaml:"description"`
	PricePerUnit string `json:"price_per_unit" yaml:"price_per_unit"`
	Unit         string `json:"unit" yaml:"unit"`
	MOQ          string `json:"moq" yaml:"moq"`
}

// RowFromRecord converts a primary-sheet record. It reports false when the
// item code or category is blank; both are trimmed.
func RowFromRecord(rec sheet.Record) (Row, bool) {
	code := strings.TrimSpace(rec.Get(ColItemCode))
	category := strings.TrimSpace(rec.Get(ColCategory))
	if code == "" || category == "" {
		return Row{}, false
	}
	return Row{
		ItemCode:     code,
		Category:     category,
		ItemName:     rec.Get(ColItemName),
		HSNCode:      rec.Get(ColHSNCode),
		Specs:        rec.Get(ColSpecs),
		VariantCode:  rec.Get(ColVariantCode),
		Description:  rec.Get(ColDescription),
		PricePerUnit: rec.Get(ColPricePerUnit),
		Unit:         rec.Get(ColUnit),
		MOQ:          rec.Get(ColMOQ),
	}, true
}

// Placeholders are the image identifiers used when a sheet has no entry.
type Placeholders struct {
	Item     string
	Category string
}

// DefaultPlaceholders matches the assets shipped with the original page.
var DefaultPlaceholders = Placeholders{
	Item:     "default.jpg",
	Category: "default-category.jpg",
}
