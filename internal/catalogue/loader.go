package catalogue

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/tonylturner/catview/internal/errors"
	"github.com/tonylturner/catview/internal/logging"
	"github.com/tonylturner/catview/internal/sheet"
	"github.com/tonylturner/catview/internal/source"
)

// Sheets names the three sheets read by a Loader.
type Sheets struct {
	Items      string
	Images     string
	Categories string
}

// DefaultSheets are the tab names of the published spreadsheet.
var DefaultSheets = Sheets{
	Items:      "Data",
	Images:     "Images",
	Categories: "Categories",
}

// Loader fetches the three sheets concurrently and builds an Index.
type Loader struct {
	Source       source.Source
	Sheets       Sheets
	Placeholders Placeholders
	Logger       *logging.Logger

	// OnSheet, if set, is called once per sheet that finished loading. It
	// may be called from several goroutines at once.
	OnSheet func(sheet string)
}

// Load fetches and parses every sheet, then builds the index. Any failure
// cancels the remaining fetches and yields an error matching ErrLoadFailure;
// no partial index is ever returned.
func (l *Loader) Load(ctx context.Context) (*Index, error) {
	if l.Source == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrLoadFailure)
	}
	sheets := l.Sheets
	if sheets.Items == "" {
		sheets.Items = DefaultSheets.Items
	}
	if sheets.Images == "" {
		sheets.Images = DefaultSheets.Images
	}
	if sheets.Categories == "" {
		sheets.Categories = DefaultSheets.Categories
	}
	logger := l.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	var items, images, categories []sheet.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		items, err = l.fetch(gctx, logger, sheets.Items)
		return err
	})
	g.Go(func() (err error) {
		images, err = l.fetch(gctx, logger, sheets.Images)
		return err
	})
	g.Go(func() (err error) {
		categories, err = l.fetch(gctx, logger, sheets.Categories)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	x := BuildIndex(items, images, categories, l.Placeholders)
	st := x.Stats()
	logger.LogIndex(st.Rows, st.Items, st.Categories, st.Images, st.CategoryImages)
	return x, nil
}

func (l *Loader) fetch(ctx context.Context, logger *logging.Logger, name string) ([]sheet.Record, error) {
	start := time.Now()
	records, err := l.read(ctx, name)
	logger.LogSheet(name, l.Source.Describe(), len(records), time.Since(start), err)
	if err != nil {
		return nil, apperrors.WrapSourceError(err, l.Source.Describe(), name)
	}
	if l.OnSheet != nil {
		l.OnSheet(name)
	}
	return records, nil
}

func (l *Loader) read(ctx context.Context, name string) ([]sheet.Record, error) {
	rc, err := l.Source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return sheet.Parse(rc)
}
