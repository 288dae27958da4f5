package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
	"github.com/dmitrijs2005/dataguard/internal/filex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanText_RejectsBlank(t *testing.T) {
	fc := &fakeClient{}
	svc := NewScanService(fc, 0)

	_, err := svc.ScanText(context.Background(), "  \n\t", "cli")
	require.ErrorIs(t, err, ErrEmptyContent)
	assert.Empty(t, fc.calls)
}

func TestScanText_SendsContentAndSource(t *testing.T) {
	var got models.TextScanRequest
	fc := &fakeClient{scanText: func(req models.TextScanRequest) (*models.ScanResponse, error) {
		got = req
		return &models.ScanResponse{Scan: &models.ScanResult{ID: "s1", RiskLevel: "high"}}, nil
	}}
	svc := NewScanService(fc, 0)

	resp, err := svc.ScanText(context.Background(), "ssn 123-45-6789", "cli")
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.Scan.ID)
	assert.Equal(t, models.TextScanRequest{Content: "ssn 123-45-6789", Source: "cli"}, got)
}

func TestScanFile_UploadsBaseNameAndContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("card 4111111111111111"), 0o600))

	var gotName string
	var gotBody []byte
	fc := &fakeClient{scanFile: func(name string, content []byte) (*models.ScanResponse, error) {
		gotName, gotBody = name, content
		return &models.ScanResponse{Scan: &models.ScanResult{ID: "f1", FileName: name}}, nil
	}}
	svc := NewScanService(fc, 1<<10)

	resp, err := svc.ScanFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "report.txt", resp.Scan.FileName)
	assert.Equal(t, "report.txt", gotName)
	assert.Equal(t, "card 4111111111111111", string(gotBody))
}

func TestScanFile_LocalChecksStopUpload(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(big, make([]byte, 64), 0o600))

	fc := &fakeClient{}
	svc := NewScanService(fc, 16)

	_, err := svc.ScanFile(context.Background(), big)
	require.ErrorIs(t, err, filex.ErrFileTooLarge)

	_, err = svc.ScanFile(context.Background(), dir)
	require.ErrorIs(t, err, filex.ErrNotRegularFile)

	_, err = svc.ScanFile(context.Background(), filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Empty(t, fc.calls)
}

func TestHistory_NormalizesPage(t *testing.T) {
	var got models.Page
	fc := &fakeClient{scanHistory: func(p models.Page) (*models.ScanHistoryResponse, error) {
		got = p
		return &models.ScanHistoryResponse{}, nil
	}}
	svc := NewScanService(fc, 0)

	_, err := svc.History(context.Background(), models.Page{Page: 0, Limit: -3})
	require.NoError(t, err)
	assert.Equal(t, models.Page{Page: 1, Limit: 10}, got)
}

func TestScanStats_PassThrough(t *testing.T) {
	fc := &fakeClient{scanStats: func() (*models.ScanStats, error) {
		return &models.ScanStats{TotalScans: 7, ThreatsFound: 2}, nil
	}}
	svc := NewScanService(fc, 0)

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, st.TotalScans)
	assert.Equal(t, 2, st.ThreatsFound)
}
