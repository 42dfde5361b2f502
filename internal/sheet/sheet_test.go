package sheet

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			name:  "empty payload",
			input: "",
			want:  nil,
		},
		{
			name:  "header only",
			input: "Item Code,Image URL\n",
			want:  nil,
		},
		{
			name:  "simple rows",
			input: "Item Code,Image URL\nA1,https://img/a1.jpg\nB2,https://img/b2.jpg\n",
			want: []Record{
				{"Item Code": "A1", "Image URL": "https://img/a1.jpg"},
				{"Item Code": "B2", "Image URL": "https://img/b2.jpg"},
			},
		},
		{
			name:  "bom and padded header",
			input: "\uFEFF Category , Image URL\nTools,t.jpg\n",
			want: []Record{
				{"Category": "Tools", "Image URL": "t.jpg"},
			},
		},
		{
			name:  "short and long rows",
			input: "a,b,c\n1\n1,2,3,4\n",
			want: []Record{
				{"a": "1", "b": "", "c": ""},
				{"a": "1", "b": "2", "c": "3"},
			},
		},
		{
			name:  "blank lines skipped",
			input: "a,b\n\n1,2\n,\n\r\n",
			want: []Record{
				{"a": "1", "b": "2"},
			},
		},
		{
			name:  "quoted cells keep commas and newlines",
			input: "Item Name,Specs\n\"Hammer, claw\",\"16 oz\nsteel\"\n",
			want: []Record{
				{"Item Name": "Hammer, claw", "Specs": "16 oz\nsteel"},
			},
		},
		{
			name:  "values are not trimmed",
			input: "Category\n  Tools  \n",
			want: []Record{
				{"Category": "  Tools  "},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordGet(t *testing.T) {
	r := Record{"Item Code": "A1"}
	if r.Get("Item Code") != "A1" {
		t.Errorf("Get() = %q", r.Get("Item Code"))
	}
	if r.Get("Missing") != "" {
		t.Errorf("Get(missing) = %q, want empty", r.Get("Missing"))
	}
}
