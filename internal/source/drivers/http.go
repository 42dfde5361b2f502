package drivers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// HTTPSource reads sheets from a single web-app endpoint that selects the
// tab with a query parameter, e.g. <base>?sheet=Data.
type HTTPSource struct {
	Client     *http.Client
	BaseURL    *url.URL
	SheetParam string
}

func NewHTTPSource(client *http.Client, baseURL, sheetParam string) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	if sheetParam == "" {
		sheetParam = "sheet"
	}
	return &HTTPSource{Client: client, BaseURL: u, SheetParam: sheetParam}, nil
}

// SheetURL returns the URL requested for sheet.
func (s *HTTPSource) SheetURL(sheet string) string {
	u := *s.BaseURL
	q := u.Query()
	q.Set(s.SheetParam, sheet)
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *HTTPSource) Open(ctx context.Context, sheet string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.SheetURL(sheet), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("fetch sheet: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

func (s *HTTPSource) Describe() string {
	return s.BaseURL.String()
}
