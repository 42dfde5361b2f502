package catalogue

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/tonylturner/catview/internal/sheet"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func itemRec(code, category, name, variant string) sheet.Record {
	return sheet.Record{
		ColItemCode:     code,
		ColCategory:     category,
		ColItemName:     name,
		ColHSNCode:      "8205",
		ColSpecs:        "forged steel",
		ColVariantCode:  variant,
		ColDescription:  "desc " + variant,
		ColPricePerUnit: "100",
		ColUnit:         "pc",
		ColMOQ:          "10",
	}
}

func imageRec(keyCol, key, url string) sheet.Record {
	return sheet.Record{keyCol: key, ColImageURL: url}
}

// sampleIndex has two categories sharing the word "tool" and an item with
// no image entry.
func sampleIndex() *Index {
	items := []sheet.Record{
		itemRec("A1", "Tools", "Hammer", "V1"),
		itemRec("A1", "Tools", "", "V1"),
		itemRec("A1", "Tools", "", "V2"),
		itemRec("B2", " Garden Tools ", "Rake", "R1"),
		itemRec("C3", "Fasteners", "Bolt", "M6"),
		itemRec("C3", "Fasteners", "Bolt", "M8"),
		itemRec("", "Tools", "Orphan", "X"),
		itemRec("D4", "  ", "No category", "X"),
	}
	images := []sheet.Record{
		imageRec(ColItemCode, " A1 ", "a1-old.jpg"),
		imageRec(ColItemCode, "A1", "a1.jpg"),
		imageRec(ColItemCode, "C3", ""),
	}
	categories := []sheet.Record{
		imageRec(ColCategory, "Tools", "tools.jpg"),
		imageRec(ColCategory, "", "orphan.jpg"),
	}
	return BuildIndex(items, images, categories, DefaultPlaceholders)
}
