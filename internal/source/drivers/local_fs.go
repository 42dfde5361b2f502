package drivers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalFSSource reads sheets from <dir>/<sheet>.csv, typically an export of
// the spreadsheet tabs.
type LocalFSSource struct {
	BaseDir string
}

func NewLocalFSSource(baseDir string) (*LocalFSSource, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open source dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source dir %s is not a directory", abs)
	}
	return &LocalFSSource{BaseDir: abs}, nil
}

// SheetPath returns the file read for sheet.
func (d *LocalFSSource) SheetPath(sheet string) string {
	return filepath.Join(d.BaseDir, filepath.Base(sheet)+".csv")
}

func (d *LocalFSSource) Open(ctx context.Context, sheet string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(d.SheetPath(sheet))
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	return f, nil
}

func (d *LocalFSSource) Describe() string {
	return "dir " + d.BaseDir
}
