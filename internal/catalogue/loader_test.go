package catalogue

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/tonylturner/catview/internal/logging"
)

// memSource serves sheets from memory. A sheet listed in fail errors on
// open, one in broken errors on read, and one in block waits for the
// context to be canceled.
type memSource struct {
	sheets map[string]string
	fail   map[string]error
	block  map[string]bool
	broken map[string]bool
}

func (m *memSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if m.block[name] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := m.fail[name]; err != nil {
		return nil, err
	}
	if m.broken[name] {
		return io.NopCloser(iotest.ErrReader(errors.New("read: connection reset"))), nil
	}
	body, ok := m.sheets[name]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", name)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (m *memSource) Describe() string { return "memory" }

const (
	dataCSV = "Item Code,Category,Item Name,HSN Code,Specs,Variant Code,Description,Price/Unit,Unit,MOQ\n" +
		"A1,Tools,Hammer,8205,Steel,V1,16oz,250,pc,10\n" +
		"A1,Tools,,,,V2,24oz,300,pc,10\n" +
		",Tools,Orphan,,,X,,,,\n" +
		"B2, Garden ,Rake,,,R1,,90,pc,5\n"
	imagesCSV     = "Item Code,Image URL\nA1,a1.jpg\n"
	categoriesCSV = "Category,Image URL\nTools,tools.jpg\n"
)

func goodSource() *memSource {
	return &memSource{sheets: map[string]string{
		"Data":       dataCSV,
		"Images":     imagesCSV,
		"Categories": categoriesCSV,
	}}
}

func TestLoader_Load(t *testing.T) {
	var mu sync.Mutex
	var loaded []string

	l := &Loader{
		Source: goodSource(),
		OnSheet: func(name string) {
			mu.Lock()
			loaded = append(loaded, name)
			mu.Unlock()
		},
	}
	x, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := x.Categories(); len(got) != 2 || got[0] != "Garden" || got[1] != "Tools" {
		t.Errorf("Categories() = %v", got)
	}
	if got := len(x.Rows()); got != 3 {
		t.Errorf("len(Rows()) = %d, want 3", got)
	}
	if got := x.ItemImage("A1"); got != "a1.jpg" {
		t.Errorf("ItemImage(A1) = %q", got)
	}
	if got := x.CategoryImage("Tools"); got != "tools.jpg" {
		t.Errorf("CategoryImage(Tools) = %q", got)
	}
	if len(loaded) != 3 {
		t.Errorf("OnSheet called %d times, want 3", len(loaded))
	}
}

func TestLoader_CustomSheetNames(t *testing.T) {
	src := &memSource{sheets: map[string]string{
		"items":  dataCSV,
		"pics":   imagesCSV,
		"groups": categoriesCSV,
	}}
	l := &Loader{Source: src, Sheets: Sheets{Items: "items", Images: "pics", Categories: "groups"}}
	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoader_AnyFailureFailsLoad(t *testing.T) {
	for _, name := range []string{"Data", "Images", "Categories"} {
		t.Run(name, func(t *testing.T) {
			src := goodSource()
			src.fail = map[string]error{name: errors.New("connection refused")}

			x, err := (&Loader{Source: src}).Load(context.Background())
			if !errors.Is(err, ErrLoadFailure) {
				t.Fatalf("err = %v, want ErrLoadFailure", err)
			}
			if x != nil {
				t.Error("a failed load must not return a partial index")
			}
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error should name the failing sheet %q: %v", name, err)
			}
		})
	}
}

func TestLoader_FailureCancelsSiblings(t *testing.T) {
	src := goodSource()
	src.fail = map[string]error{"Data": errors.New("boom")}
	src.block = map[string]bool{"Images": true, "Categories": true}

	_, err := (&Loader{Source: src}).Load(context.Background())
	if !errors.Is(err, ErrLoadFailure) {
		t.Fatalf("err = %v, want ErrLoadFailure", err)
	}
}

func TestLoader_ReadFailure(t *testing.T) {
	src := goodSource()
	src.broken = map[string]bool{"Images": true}

	_, err := (&Loader{Source: src}).Load(context.Background())
	if !errors.Is(err, ErrLoadFailure) {
		t.Fatalf("err = %v, want ErrLoadFailure", err)
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("read error should be preserved: %v", err)
	}
}

func TestLoader_NoSource(t *testing.T) {
	if _, err := (&Loader{}).Load(context.Background()); !errors.Is(err, ErrLoadFailure) {
		t.Fatalf("err = %v, want ErrLoadFailure", err)
	}
}

func TestLoader_Logs(t *testing.T) {
	var buf bytes.Buffer
	l := &Loader{Source: goodSource(), Logger: logging.NewWriterLogger(logging.LogLevelVerbose, &buf)}
	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "sheet loaded") != 3 {
		t.Errorf("expected three sheet lines, got %q", out)
	}
	if !strings.Contains(out, "catalogue loaded") {
		t.Errorf("expected index summary, got %q", out)
	}
}
