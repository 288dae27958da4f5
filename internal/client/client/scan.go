package client

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
	"github.com/dmitrijs2005/dataguard/internal/netx"
)

// ScanFileField is the multipart field the backend reads the upload from.
const ScanFileField = "file"

func (c *HTTPClient) ScanText(ctx context.Context, req models.TextScanRequest) (*models.ScanResponse, error) {
	return call[models.ScanResponse](ctx, c, &request{method: http.MethodPost, path: "/scan/text", body: req})
}

// ScanFile uploads r as multipart form data. The content type is the
// multipart one with its boundary, never application/json.
func (c *HTTPClient) ScanFile(ctx context.Context, fileName string, r io.Reader) (*models.ScanResponse, error) {
	form, err := netx.NewFileForm(ScanFileField, fileName, r)
	if err != nil {
		return nil, err
	}
	return call[models.ScanResponse](ctx, c, &request{method: http.MethodPost, path: "/scan/file", form: form})
}

func (c *HTTPClient) ScanHistory(ctx context.Context, page models.Page) (*models.ScanHistoryResponse, error) {
	return call[models.ScanHistoryResponse](ctx, c, &request{method: http.MethodGet, path: "/scan/history", query: page.Values()})
}

func (c *HTTPClient) ScanStats(ctx context.Context) (*models.ScanStats, error) {
	return call[models.ScanStats](ctx, c, &request{method: http.MethodGet, path: "/scan/stats"})
}
