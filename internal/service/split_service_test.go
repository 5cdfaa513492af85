package service

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/flatmates/internal/metrics"
	"github.com/mmynk/flatmates/internal/models"
	"github.com/mmynk/flatmates/internal/report"
)

// recordingOpener remembers the paths it was asked to open.
type recordingOpener struct {
	paths []string
	err   error
}

func (r *recordingOpener) Open(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

// setupTestService creates a service writing reports into a temp directory.
func setupTestService(t *testing.T) (*SplitService, *recordingOpener, *metrics.Metrics, *bytes.Buffer, string) {
	t.Helper()

	outputDir := filepath.Join(t.TempDir(), "output")
	pdf, err := report.NewPDFReport(report.PDFOptions{OutputDir: outputDir, Filename: "Report"})
	if err != nil {
		t.Fatalf("failed to create pdf report: %v", err)
	}

	var summary bytes.Buffer
	opener := &recordingOpener{}
	m := metrics.New()
	svc := NewSplitService(pdf, report.NewTerminalReporter(&summary), opener, m)
	return svc, opener, m, &summary, outputDir
}

func validRequest() SplitRequest {
	return SplitRequest{Amount: 100, Period: "May 2024", Name1: "Alice", Days1: 20, Name2: "Bob", Days2: 10}
}

func TestSplit_GeneratesAndOpensReport(t *testing.T) {
	svc, opener, m, summary, outputDir := setupTestService(t)

	result, err := svc.Split(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	wantPath := filepath.Join(outputDir, "Report.pdf")
	if result.ReportPath != wantPath {
		t.Errorf("ReportPath = %s, want %s", result.ReportPath, wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("report not written: %v", err)
	}
	if len(opener.paths) != 1 || opener.paths[0] != wantPath {
		t.Errorf("opened %v, want [%s]", opener.paths, wantPath)
	}

	alice, bob := result.Split.Shares[0], result.Split.Shares[1]
	if math.Abs(alice.Amount-200.0/3) > 1e-9 {
		t.Errorf("Alice amount = %v, want %v", alice.Amount, 200.0/3)
	}
	if math.Abs(bob.Amount-100.0/3) > 1e-9 {
		t.Errorf("Bob amount = %v, want %v", bob.Amount, 100.0/3)
	}

	if got := summary.String(); got != "Period: May 2024\nAlice pays: 66.67\nBob pays: 33.33\n" {
		t.Errorf("unexpected summary: %q", got)
	}
	if got := testutil.ToFloat64(m.ReportsGenerated); got != 1 {
		t.Errorf("reports generated = %v, want 1", got)
	}
}

func TestSplit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *SplitRequest)
		wantErr error
		kind    string
	}{
		{
			name:    "negative amount",
			mutate:  func(r *SplitRequest) { r.Amount = -1 },
			wantErr: models.ErrInvalidInput,
			kind:    metrics.KindInvalidInput,
		},
		{
			name:    "empty period",
			mutate:  func(r *SplitRequest) { r.Period = "" },
			wantErr: models.ErrInvalidInput,
			kind:    metrics.KindInvalidInput,
		},
		{
			name:    "empty first name",
			mutate:  func(r *SplitRequest) { r.Name1 = "" },
			wantErr: models.ErrInvalidInput,
			kind:    metrics.KindInvalidInput,
		},
		{
			name:    "negative days",
			mutate:  func(r *SplitRequest) { r.Days2 = -5 },
			wantErr: models.ErrInvalidInput,
			kind:    metrics.KindInvalidInput,
		},
		{
			name:    "nobody present",
			mutate:  func(r *SplitRequest) { r.Days1, r.Days2 = 0, 0 },
			wantErr: models.ErrInvalidState,
			kind:    metrics.KindInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, opener, m, summary, outputDir := setupTestService(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Split(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Split() error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(outputDir); !os.IsNotExist(statErr) {
				t.Errorf("output directory should not exist after a failed split")
			}
			if len(opener.paths) != 0 {
				t.Errorf("nothing should be opened, got %v", opener.paths)
			}
			if summary.Len() != 0 {
				t.Errorf("nothing should be printed, got %q", summary.String())
			}
			if got := testutil.ToFloat64(m.SplitErrors.WithLabelValues(tt.kind)); got != 1 {
				t.Errorf("%s errors = %v, want 1", tt.kind, got)
			}
		})
	}
}

func TestSplit_OpenFailureIsNotFatal(t *testing.T) {
	svc, opener, _, _, _ := setupTestService(t)
	opener.err = errors.New("no viewer installed")

	result, err := svc.Split(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if result.ReportPath == "" {
		t.Error("expected a report path")
	}
}

type failingWriter struct{}

func (failingWriter) WriteSplit(*models.Split) (string, error) {
	return "", report.ErrReport
}

func TestSplit_ReportFailure(t *testing.T) {
	m := metrics.New()
	svc := NewSplitService(failingWriter{}, nil, nil, m)

	_, err := svc.Split(context.Background(), validRequest())
	if !errors.Is(err, report.ErrReport) {
		t.Fatalf("Split() error = %v, want ErrReport", err)
	}
	if got := testutil.ToFloat64(m.SplitErrors.WithLabelValues(metrics.KindReport)); got != 1 {
		t.Errorf("report errors = %v, want 1", got)
	}
}

func TestSplit_CancelledContext(t *testing.T) {
	svc, _, _, _, outputDir := setupTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Split(ctx, validRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Split() error = %v, want context.Canceled", err)
	}
	if _, statErr := os.Stat(outputDir); !os.IsNotExist(statErr) {
		t.Errorf("output directory should not exist after cancellation")
	}
}
