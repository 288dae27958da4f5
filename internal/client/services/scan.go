package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dataguard/internal/client/client"
	"github.com/dmitrijs2005/dataguard/internal/client/models"
	"github.com/dmitrijs2005/dataguard/internal/filex"
)

var ErrEmptyContent = errors.New("nothing to scan")

// ScanService submits content for sensitive-data analysis and reads back
// scan history and statistics.
type ScanService interface {
	ScanText(ctx context.Context, content, source string) (*models.ScanResponse, error)
	ScanFile(ctx context.Context, path string) (*models.ScanResponse, error)
	History(ctx context.Context, page models.Page) (*models.ScanHistoryResponse, error)
	Stats(ctx context.Context) (*models.ScanStats, error)
}

type scanService struct {
	client        client.Client
	maxUploadSize int64
}

// NewScanService builds a ScanService; files above maxUploadSize bytes are
// refused before upload (0 disables the check).
func NewScanService(client client.Client, maxUploadSize int64) ScanService {
	return &scanService{client: client, maxUploadSize: maxUploadSize}
}

func (s *scanService) ScanText(ctx context.Context, content, source string) (*models.ScanResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return s.client.ScanText(ctx, models.TextScanRequest{Content: content, Source: source})
}

func (s *scanService) ScanFile(ctx context.Context, path string) (*models.ScanResponse, error) {
	f, name, err := filex.OpenRegular(path, s.maxUploadSize)
	if err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	defer f.Close()

	return s.client.ScanFile(ctx, name, f)
}

func (s *scanService) History(ctx context.Context, page models.Page) (*models.ScanHistoryResponse, error) {
	return s.client.ScanHistory(ctx, page.Normalize())
}

func (s *scanService) Stats(ctx context.Context) (*models.ScanStats, error) {
	return s.client.ScanStats(ctx)
}
