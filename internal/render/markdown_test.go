package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tonylturner/catview/internal/catalogue"
	"github.com/tonylturner/catview/internal/sheet"
)

func testIndex() *catalogue.Index {
	return catalogue.BuildIndex([]sheet.Record{
		{"Item Code": "A1", "Category": "Tools", "Item Name": "Hammer", "HSN Code": "8205", "Specs": "Forged head", "Variant Code": "V1", "Description": "16 | oz", "Price/Unit": "250", "Unit": "pc", "MOQ": "10"},
		{"Item Code": "A1", "Category": "Tools", "Variant Code": "V2", "Description": "24\noz", "Price/Unit": "300"},
	}, nil, nil, catalogue.DefaultPlaceholders)
}

func view(t *testing.T, s catalogue.State) catalogue.View {
	t.Helper()
	v, err := catalogue.Render(testIndex(), s, catalogue.DefaultChat)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return v
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		view  catalogue.View
		want  []string
		avoid []string
	}{
		{
			name:  "categories",
			view:  view(t, catalogue.Initial()),
			want:  []string{"# Product Categories", "- **Tools** (image: default-category.jpg)"},
			avoid: []string{"←"},
		},
		{
			name: "items",
			view: view(t, catalogue.State{Kind: catalogue.KindItems, Category: "Tools"}),
			want: []string{"← Back to Categories", "# Tools", "- **Hammer** Code: A1 (image: default.jpg)"},
		},
		{
			name: "detail",
			view: view(t, catalogue.State{Kind: catalogue.KindItemDetail, ItemCode: "A1", Category: "Tools"}),
			want: []string{
				"← Back to Tools",
				"# Hammer",
				"**HSN Code:** 8205",
				"Forged head",
				`| V1 | 16 \| oz | 250 | pc | 10 | [chat](https://wa.me/917986297302?text=`,
				"| V2 | 24 oz | 300 |",
			},
		},
		{
			name: "search",
			view: view(t, catalogue.State{Kind: catalogue.KindSearch, Query: "a1", Results: []catalogue.SearchHit{{Code: "A1", Category: "Tools"}}}),
			want: []string{"← Back to Home", `# Search Results for "a1"`, "Code: A1 (image: default.jpg) in Tools"},
		},
		{
			name:  "no results",
			view:  view(t, catalogue.State{Kind: catalogue.KindSearch, Query: "saw"}),
			want:  []string{"_No results found._"},
			avoid: []string{"- **"},
		},
		{
			name:  "failure",
			view:  catalogue.FailureView(),
			want:  []string{"_Failed to load data._"},
			avoid: []string{"#", "←"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := Markdown(tt.view)
			for _, w := range tt.want {
				if !strings.Contains(md, w) {
					t.Errorf("markdown missing %q:\n%s", w, md)
				}
			}
			for _, a := range tt.avoid {
				if strings.Contains(md, a) {
					t.Errorf("markdown should not contain %q:\n%s", a, md)
				}
			}
		})
	}
}

func TestWrite_Plain(t *testing.T) {
	var buf bytes.Buffer
	v := view(t, catalogue.Initial())
	if err := Write(&buf, v, true, 0); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != Markdown(v) {
		t.Errorf("plain output should be the raw markdown, got %q", buf.String())
	}
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("# Product Categories\n\n- **Tools**\n", 40)
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}
	if !strings.Contains(out, "Product Categories") || !strings.Contains(out, "Tools") {
		t.Errorf("styled output lost content: %q", out)
	}
}
