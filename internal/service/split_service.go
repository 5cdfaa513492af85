// Package service wires validation, calculation, rendering and viewing of a
// bill split into a single call.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/flatmates/internal/calculator"
	"github.com/mmynk/flatmates/internal/metrics"
	"github.com/mmynk/flatmates/internal/models"
	"github.com/mmynk/flatmates/internal/viewer"
)

// SplitWriter writes a computed split somewhere and returns where.
type SplitWriter interface {
	WriteSplit(split *models.Split) (string, error)
}

// SummaryWriter prints a computed split for the user.
type SummaryWriter interface {
	Write(split *models.Split) error
}

// SplitRequest carries the raw values of one bill split.
type SplitRequest struct {
	Amount float64
	Period string
	Name1  string
	Days1  int
	Name2  string
	Days2  int
}

// SplitResult is what a successful split produced.
type SplitResult struct {
	Split      *models.Split
	ReportPath string
}

// Splitter splits a bill. Implemented by SplitService and by the decorators
// in the middleware package.
type Splitter interface {
	Split(ctx context.Context, req SplitRequest) (*SplitResult, error)
}

// SplitterFunc adapts a function to the Splitter interface.
type SplitterFunc func(ctx context.Context, req SplitRequest) (*SplitResult, error)

func (f SplitterFunc) Split(ctx context.Context, req SplitRequest) (*SplitResult, error) {
	return f(ctx, req)
}

// Ensure SplitService implements Splitter
var _ Splitter = (*SplitService)(nil)

// SplitService splits one bill between two flatmates and reports the result.
type SplitService struct {
	report  SplitWriter
	summary SummaryWriter
	opener  viewer.Opener
	metrics *metrics.Metrics
}

// NewSplitService creates a SplitService. A nil summary skips the terminal
// output and a nil opener never opens the report.
func NewSplitService(r SplitWriter, summary SummaryWriter, opener viewer.Opener, m *metrics.Metrics) *SplitService {
	if opener == nil {
		opener = viewer.Noop{}
	}
	if m == nil {
		m = metrics.New()
	}
	return &SplitService{report: r, summary: summary, opener: opener, metrics: m}
}

// Split validates req, computes both shares, writes the report and opens it.
// Validation and calculation errors are returned before anything is written.
func (s *SplitService) Split(ctx context.Context, req SplitRequest) (*SplitResult, error) {
	result, err := s.split(ctx, req)
	if err != nil {
		s.metrics.ObserveError(err)
		return nil, err
	}
	return result, nil
}

func (s *SplitService) split(ctx context.Context, req SplitRequest) (*SplitResult, error) {
	bill, err := models.NewBill(req.Amount, req.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	flatmate1, err := models.NewFlatmate(req.Name1, req.Days1)
	if err != nil {
		return nil, fmt.Errorf("failed to create first flatmate: %w", err)
	}
	flatmate2, err := models.NewFlatmate(req.Name2, req.Days2)
	if err != nil {
		return nil, fmt.Errorf("failed to create second flatmate: %w", err)
	}
	slog.Debug("Validated input", "bill", bill, "flatmate1", flatmate1, "flatmate2", flatmate2)

	split, err := calculator.CalculateSplit(bill, flatmate1, flatmate2)
	if err != nil {
		return nil, err
	}
	for _, share := range split.Shares {
		slog.Debug("Person share",
			"person", share.Name,
			"days_in_house", share.DaysInHouse,
			"amount", share.Amount,
		)
	}
	s.metrics.BillAmount.Observe(bill.Amount())

	if s.summary != nil {
		if err := s.summary.Write(split); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.report.WriteSplit(split)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}
	s.metrics.ReportsGenerated.Inc()
	slog.Info("Report generated", "path", path, "period", bill.Period())

	if err := s.opener.Open(path); err != nil {
		// The report exists; failing to show it is not fatal.
		slog.Warn("Could not open report", "path", path, "error", err)
	}

	return &SplitResult{Split: split, ReportPath: path}, nil
}
