// Package report renders a computed bill split, either as a printable PDF
// document or as a short summary on a terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/mmynk/flatmates/internal/calculator"
	"github.com/mmynk/flatmates/internal/models"
)

// Title is printed at the top of every report.
const Title = "Flatmates Bill"

// Extension is appended to the report base name.
const Extension = ".pdf"

// ErrReport wraps failures while writing a report.
var ErrReport = errors.New("report failed")

// PDFOptions configures a PDFReport.
type PDFOptions struct {
	// OutputDir is created if it does not exist.
	OutputDir string

	// Filename is the base name of the document, without extension.
	Filename string

	// Image is an optional PNG/JPEG drawn above the title.
	Image string
}

// PDFReport writes an A4 PDF showing the period and what each flatmate pays.
type PDFReport struct {
	outputDir string
	filename  string
	image     string

	compress bool
	newID    func() string
}

// NewPDFReport validates opts and returns a PDFReport.
func NewPDFReport(opts PDFOptions) (*PDFReport, error) {
	if strings.TrimSpace(opts.OutputDir) == "" {
		return nil, fmt.Errorf("%w: output directory must not be empty", models.ErrInvalidInput)
	}
	if strings.TrimSpace(opts.Filename) == "" {
		return nil, fmt.Errorf("%w: filename must not be empty", models.ErrInvalidInput)
	}
	if strings.ContainsAny(opts.Filename, `/\`) {
		return nil, fmt.Errorf("%w: filename %q must not contain path separators", models.ErrInvalidInput, opts.Filename)
	}
	return &PDFReport{
		outputDir: opts.OutputDir,
		filename:  opts.Filename,
		image:     opts.Image,
		compress:  true,
		newID:     uuid.NewString,
	}, nil
}

// Path is where Generate writes the document.
func (r *PDFReport) Path() string {
	return filepath.Join(r.outputDir, r.filename+Extension)
}

// Generate computes both shares and writes the report to Path.
// Nothing is written when the split cannot be computed.
func (r *PDFReport) Generate(flatmate1, flatmate2 models.Flatmate, bill models.Bill) (string, error) {
	split, err := calculator.CalculateSplit(bill, flatmate1, flatmate2)
	if err != nil {
		return "", err
	}
	return r.WriteSplit(split)
}

// WriteSplit writes an already computed split to Path.
func (r *PDFReport) WriteSplit(split *models.Split) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create output directory: %v", ErrReport, err)
	}

	path := r.Path()
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create %s: %v", ErrReport, path, err)
	}
	if err := r.Render(f, split); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close %s: %v", ErrReport, path, err)
	}
	return path, nil
}

// Render writes the PDF document for split to w.
func (r *PDFReport) Render(w io.Writer, split *models.Split) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(r.compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(Title, false)
	pdf.SetSubject(fmt.Sprintf("%s (report %s)", split.Bill.Period(), r.newID()), true)
	pdf.SetCreator("flatmates", false)
	pdf.AddPage()

	if r.image != "" {
		pdf.ImageOptions(r.image, -1, 0, 30, 30, true, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 80, Title, "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(100, 40, "Period:", "0", 0, "", false, 0, "")
	pdf.CellFormat(150, 40, tr(split.Bill.Period()), "0", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, share := range split.Shares {
		pdf.CellFormat(100, 40, tr(share.Name), "0", 0, "", false, 0, "")
		pdf.CellFormat(150, 40, FormatShare(share.Amount), "0", 1, "", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: failed to render pdf: %v", ErrReport, err)
	}
	return nil
}
