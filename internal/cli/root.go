// Package cli implements the flatmates command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/flatmates/internal/config"
	"github.com/mmynk/flatmates/internal/metrics"
	"github.com/mmynk/flatmates/internal/middleware"
	"github.com/mmynk/flatmates/internal/models"
	"github.com/mmynk/flatmates/internal/prompt"
	"github.com/mmynk/flatmates/internal/report"
	"github.com/mmynk/flatmates/internal/service"
	"github.com/mmynk/flatmates/internal/viewer"
	"github.com/mmynk/flatmates/pkg/logging"
)

// Options contain the streams the CLI talks to.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type rootCmd struct {
	opts       Options
	configFile string

	amount float64
	period string
	name1  string
	days1  int
	name2  string
	days2  int
}

// NewRootCmd returns the flatmates command. Bill values not passed as flags
// are asked for on Stdin.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	rc := &rootCmd{opts: opts}

	cmd := &cobra.Command{
		Use:   "flatmates",
		Short: "Split a household bill between two flatmates",
		Long: "Split a household bill between two flatmates in proportion to the days\n" +
			"each of them stayed in the house, and write the result as a PDF report.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          rc.run,
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	})
	cmd.SetIn(opts.Stdin)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	d := config.Defaults()
	f := cmd.Flags()
	f.StringVar(&rc.configFile, "config", "", "Path to a YAML config file")
	f.String("output-dir", d.OutputDir, "Directory the report is written to")
	f.String("filename", d.Filename, "Report file name, without extension")
	f.String("image", d.Image, "Optional image drawn above the report title")
	f.Bool("open", d.Open, "Open the report once written")
	f.String("log-level", d.LogLevel, "Log level (debug, info, warn, error); defaults to LOG_LEVEL or info")
	f.String("metrics-file", d.MetricsFile, "Write run metrics to this file in Prometheus text format")

	f.Float64Var(&rc.amount, "amount", 0, "Bill amount")
	f.StringVar(&rc.period, "period", "", "Bill period, e.g. \"May 2024\"")
	f.StringVar(&rc.name1, "name1", "", "Name of the first flatmate")
	f.IntVar(&rc.days1, "days1", 0, "Days the first flatmate stayed in the house")
	f.StringVar(&rc.name2, "name2", "", "Name of the second flatmate")
	f.IntVar(&rc.days2, "days2", 0, "Days the second flatmate stayed in the house")

	return cmd
}

func (rc *rootCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), rc.configFile)
	if err != nil {
		return err
	}
	logging.Setup(rc.opts.Stderr, cfg.LogLevel)

	m := metrics.New()
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := m.WriteTextfile(cfg.MetricsFile); werr != nil {
				slog.Warn("Could not write metrics", "path", cfg.MetricsFile, "error", werr)
			}
		}()
	}

	input, err := prompt.New(rc.opts.Stdin, rc.opts.Stdout).Collect(rc.answers(cmd))
	if err != nil {
		m.ObserveError(err)
		return err
	}

	pdf, err := report.NewPDFReport(report.PDFOptions{
		OutputDir: cfg.OutputDir,
		Filename:  cfg.Filename,
		Image:     cfg.Image,
	})
	if err != nil {
		return err
	}

	var opener viewer.Opener = viewer.Noop{}
	if cfg.Open {
		opener = viewer.Browser{Stdout: rc.opts.Stderr, Stderr: rc.opts.Stderr}
	}

	svc := middleware.Logging(service.NewSplitService(pdf, report.NewTerminalReporter(rc.opts.Stdout), opener, m))
	result, err := svc.Split(cmd.Context(), service.SplitRequest{
		Amount: input.Amount,
		Period: input.Period,
		Name1:  input.Name1,
		Days1:  input.Days1,
		Name2:  input.Name2,
		Days2:  input.Days2,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(rc.opts.Stdout, "Report written to %s\n", result.ReportPath)
	return nil
}

// answers returns the bill values that were given as flags.
func (rc *rootCmd) answers(cmd *cobra.Command) prompt.Answers {
	var a prompt.Answers
	f := cmd.Flags()
	if f.Changed("amount") {
		a.Amount = &rc.amount
	}
	if f.Changed("period") {
		a.Period = &rc.period
	}
	if f.Changed("name1") {
		a.Name1 = &rc.name1
	}
	if f.Changed("days1") {
		a.Days1 = &rc.days1
	}
	if f.Changed("name2") {
		a.Name2 = &rc.name2
	}
	if f.Changed("days2") {
		a.Days2 = &rc.days2
	}
	return a
}

// ExitCode maps an error returned by the command to a process exit code:
// 2 for bad input or an undefined split, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrInvalidState):
		return 2
	default:
		return 1
	}
}
