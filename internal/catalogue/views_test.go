package catalogue

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tonylturner/catview/internal/sheet"
)

func TestCategoryCards(t *testing.T) {
	got := CategoryCards(sampleIndex())
	want := []CategoryCard{
		{Name: "Fasteners", ImageURL: "default-category.jpg"},
		{Name: "Garden Tools", ImageURL: "default-category.jpg"},
		{Name: "Tools", ImageURL: "tools.jpg"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoryCards mismatch (-want +got):\n%s", diff)
	}
}

func TestItemCards_DistinctFirstOccurrence(t *testing.T) {
	x := BuildIndex([]sheet.Record{
		itemRec("Z9", "Tools", "Wrench", "W1"),
		itemRec("A1", "Tools", "Hammer", "V1"),
		itemRec("Z9", "Tools", "Wrench", "W2"),
		itemRec("M5", "Other", "Tape", "T1"),
		itemRec("A1", "Tools", "Hammer", "V2"),
	}, nil, nil, DefaultPlaceholders)

	got := ItemCards(x, "Tools")
	want := []ItemCard{
		{Code: "Z9", Name: "Wrench", Category: "Tools", ImageURL: "default.jpg"},
		{Code: "A1", Name: "Hammer", Category: "Tools", ImageURL: "default.jpg"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ItemCards mismatch (-want +got):\n%s", diff)
	}
}

func TestItemCards_NameScopedToCategory(t *testing.T) {
	x := BuildIndex([]sheet.Record{
		itemRec("A1", "Retail", "Hammer (boxed)", "V1"),
		itemRec("A1", "Tools", "Hammer", "V1"),
	}, nil, nil, DefaultPlaceholders)

	got := ItemCards(x, "Tools")
	if len(got) != 1 || got[0].Name != "Hammer" {
		t.Errorf("ItemCards(Tools) = %+v, want name from the Tools row", got)
	}
}

func TestBuildItemDetail_HammerScenario(t *testing.T) {
	x := sampleIndex()

	cards := ItemCards(x, "Tools")
	if len(cards) != 1 || cards[0].Code != "A1" {
		t.Fatalf("ItemCards(Tools) = %+v, want a single A1 card", cards)
	}

	d, err := BuildItemDetail(x, "A1", "Tools", DefaultChat)
	if err != nil {
		t.Fatalf("BuildItemDetail: %v", err)
	}
	if d.Name != "Hammer" || d.HSNCode != "8205" || d.ImageURL != "a1.jpg" {
		t.Errorf("header = %+v", d)
	}

	var variants []string
	for _, v := range d.Variants {
		variants = append(variants, v.VariantCode)
	}
	if diff := cmp.Diff([]string{"V1", "V2"}, variants); diff != "" {
		t.Errorf("variants mismatch (-want +got):\n%s", diff)
	}
	if d.Variants[0].Description != "desc V1" {
		t.Errorf("first V1 row should win, got %q", d.Variants[0].Description)
	}
}

func TestBuildItemDetail_NotFound(t *testing.T) {
	x := sampleIndex()
	_, err := BuildItemDetail(x, "A1", "Fasteners", DefaultChat)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustItemDetail should panic on a missing item")
		}
	}()
	MustItemDetail(x, "nope", "Tools", DefaultChat)
}

func TestChatLink(t *testing.T) {
	row := Row{VariantCode: "V1", Description: "16 oz & claw", PricePerUnit: "₹250"}
	link := DefaultChat.Link("Hammer", row)

	prefix := "https://wa.me/917986297302?text="
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("link = %q, want prefix %q", link, prefix)
	}
	encoded := strings.TrimPrefix(link, prefix)
	if strings.ContainsAny(encoded, " \n&+") {
		t.Errorf("message not fully encoded: %q", encoded)
	}

	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	want := "Hi, I’m interested in this tool:\nItem: Hammer\nVariant Code: V1\nDescription: 16 oz & claw\nPrice: ₹250"
	if decoded != want {
		t.Errorf("decoded message = %q, want %q", decoded, want)
	}
}

func TestChatLink_Overrides(t *testing.T) {
	c := ChatLinker{BaseURL: "https://chat.example/", Phone: "15550100", Greeting: "Hello"}
	link := c.Link("Rake", Row{VariantCode: "R1"})
	if !strings.HasPrefix(link, "https://chat.example/15550100?text=Hello%0AItem%3A%20Rake") {
		t.Errorf("link = %q", link)
	}
}

func TestSearch(t *testing.T) {
	x := sampleIndex()

	tests := []struct {
		name  string
		query string
		want  []string
		ok    bool
	}{
		{"blank", "   ", nil, false},
		{"category across two categories", "TOOL", []string{"A1", "B2"}, true},
		{"by code", "c3", []string{"C3"}, true},
		{"by name", " rake ", []string{"B2"}, true},
		{"no match", "saw", []string{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, ok := Search(x, tt.query)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			var got []string
			for _, c := range cards {
				got = append(got, c.Code)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearch_NameFallsBackToCode(t *testing.T) {
	x := BuildIndex([]sheet.Record{itemRec("Q7", "Misc", "", "Q")}, nil, nil, DefaultPlaceholders)
	cards, _ := Search(x, "q7")
	want := []ItemCard{{Code: "Q7", Name: "Q7", Category: "Misc", ImageURL: "default.jpg"}}
	if diff := cmp.Diff(want, cards); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
}
