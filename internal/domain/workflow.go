// Package domain contains the scan, check and report workflows.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/codelimit/internal/adapter"
	"github.com/mouse-blink/codelimit/internal/controller"
	"github.com/mouse-blink/codelimit/internal/languages"
	m "github.com/mouse-blink/codelimit/internal/model"
	"github.com/mouse-blink/codelimit/internal/token"
)

// ReportLength is the number of units a report lists unless the full report is requested.
const ReportLength = 10

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrNoReport is returned when a codebase has not been scanned yet.
	ErrNoReport = errors.New("no report found, run scan first")
	// ErrCheckFailed is returned when a check finds unmaintainable functions.
	ErrCheckFailed = errors.New("check failed")
	// ErrUnknownFormat is returned for report formats other than text and json.
	ErrUnknownFormat = errors.New("unknown format")
)

// ScanArgs holds the arguments of Scan.
type ScanArgs struct {
	Root   m.Path
	Config m.Config
}

// CheckArgs holds the arguments of Check.
type CheckArgs struct {
	Paths  []m.Path
	Config m.Config
	Quiet  bool
}

// ReportArgs holds the arguments of Report.
type ReportArgs struct {
	Root   m.Path
	Config m.Config
	Full   bool
	Totals bool
	Format string
}

// ViewArgs holds the arguments of View.
type ViewArgs struct {
	Root   m.Path
	Config m.Config
}

// Workflow defines the codelimit operations.
type Workflow interface {
	// Scan measures a codebase, stores its report and shows the totals.
	Scan(ctx context.Context, args ScanArgs) error
	// Check measures the given paths without touching the report cache.
	Check(ctx context.Context, args CheckArgs) error
	// Report shows the stored report of a codebase.
	Report(args ReportArgs) error
	// View opens the stored report in the interactive browser.
	View(args ViewArgs) error
	// Languages lists the supported languages.
	Languages() error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	registry    *languages.Registry
	logger      *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// A nil logger discards log output.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	registry *languages.Registry,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		registry:    registry,
		logger:      logger,
	}
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	if _, err := w.fsAdapter.FileInfo(args.Root); err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	previous, err := w.reportStore.LoadReport(args.Root)
	if err != nil {
		w.logger.Warn("ignoring unreadable report", "root", args.Root, "error", err)
		previous = nil
	}

	var cached map[m.Path]m.SourceFileEntry
	if previous != nil && previous.Marker == args.Config.Marker {
		cached = previous.Codebase.Files
	}

	entries, err := w.scanFiles(ctx, []m.Path{args.Root}, args.Config, cached)
	if err != nil {
		return err
	}

	report := &m.Report{
		UUID:     uuid.NewString(),
		Version:  m.ReportVersion,
		Root:     args.Root,
		Marker:   args.Config.Marker,
		Codebase: m.NewCodebase(),
	}

	var previousTotals m.ScanTotals

	if previous != nil {
		if previous.UUID != "" {
			report.UUID = previous.UUID
		}

		previousTotals = previous.Totals(args.Config.Thresholds)
	}

	for _, entry := range entries {
		report.Codebase.Add(entry)
	}

	if err := w.reportStore.SaveReport(args.Root, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.logger.Debug("scan finished", "root", args.Root, "files", len(entries))

	return w.ui.DisplayTotals(m.NewScanTotalsDelta(report.Totals(args.Config.Thresholds), previousTotals))
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	entries, err := w.scanFiles(ctx, args.Paths, args.Config, nil)
	if err != nil {
		return err
	}

	result := m.CheckResult{
		Files:      len(entries),
		Thresholds: args.Config.Thresholds,
		Quiet:      args.Quiet,
	}

	for _, entry := range entries {
		for _, unit := range entry.Units {
			result.Units = append(result.Units, unit)

			if args.Config.Thresholds.Classify(unit.Measurement.Length) == m.Unmaintainable {
				result.Failing = append(result.Failing, unit)
			}
		}
	}

	m.SortByLength(result.Failing)

	if err := w.ui.DisplayCheck(result); err != nil {
		return err
	}

	if !result.Passed() {
		return fmt.Errorf("%w: %d unmaintainable functions", ErrCheckFailed, len(result.Failing))
	}

	return nil
}

func (w *workflow) Report(args ReportArgs) error {
	if args.Format != "" && args.Format != FormatText && args.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, args.Format)
	}

	report, err := w.loadReport(args.Root)
	if err != nil {
		return err
	}

	thresholds := args.Config.Thresholds

	switch {
	case args.Format == FormatJSON:
		return w.ui.DisplayJSON(report)
	case args.Totals:
		return w.ui.DisplayTotals(m.NewScanTotalsDelta(report.Totals(thresholds), nil))
	}

	units := report.UnitsLongerThan(thresholds.HardToMaintain)
	hidden := 0

	if !args.Full && len(units) > ReportLength {
		hidden = len(units) - ReportLength
		units = units[:ReportLength]
	}

	return w.ui.DisplayUnits(units, hidden, thresholds)
}

func (w *workflow) View(args ViewArgs) error {
	report, err := w.loadReport(args.Root)
	if err != nil {
		return err
	}

	units := report.Units()
	m.SortByLength(units)

	load := func(file m.Path) ([]byte, error) {
		return w.fsAdapter.ReadFile(m.Path(filepath.Join(string(args.Root), filepath.FromSlash(string(file)))))
	}

	return w.ui.DisplayReport(units, load, args.Config.Thresholds)
}

func (w *workflow) Languages() error {
	return w.ui.DisplayLanguages(w.registry.Languages())
}

func (w *workflow) loadReport(root m.Path) (*m.Report, error) {
	report, err := w.reportStore.LoadReport(root)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}

	if report == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoReport, root)
	}

	return report, nil
}

// scanFiles measures the supported files below roots on a bounded worker
// pool. Entries in cached whose checksum still matches are reused. Files that
// cannot be read are logged and left out.
func (w *workflow) scanFiles(ctx context.Context, roots []m.Path, cfg m.Config, cached map[m.Path]m.SourceFileEntry) ([]m.SourceFileEntry, error) {
	files, err := w.fsAdapter.Get(roots, cfg.Excludes, w.registry.Supports)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	w.logger.Debug("discovered files", "count", len(files))

	slots := make([]*m.SourceFileEntry, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	for i, file := range files {
		if gctx.Err() != nil {
			break
		}

		i, file := i, file

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			entry, err := w.scanFile(file, cfg.Marker, cached)
			if err != nil && !errors.Is(err, token.ErrTokenize) {
				w.logger.Warn("skipping file", "file", file.Name, "error", err)

				return nil
			}

			if err != nil {
				w.logger.Warn("file could not be tokenized", "file", file.Name, "error", err)
			}

			slots[i] = &entry

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]m.SourceFileEntry, 0, len(files))

	for _, slot := range slots {
		if slot != nil {
			entries = append(entries, *slot)
		}
	}

	return entries, nil
}

func (w *workflow) scanFile(file m.SourceFile, marker string, cached map[m.Path]m.SourceFileEntry) (m.SourceFileEntry, error) {
	language, err := w.registry.ForFile(string(file.Path))
	if err != nil {
		return m.SourceFileEntry{}, err
	}

	checksum, err := w.fsAdapter.HashFile(file.Path)
	if err != nil {
		return m.SourceFileEntry{}, fmt.Errorf("hash %s: %w", file.Path, err)
	}

	if entry, ok := cached[file.Name]; ok && entry.Checksum == checksum && entry.Language == language.Name() {
		w.logger.Debug("reusing cached entry", "file", file.Name)

		return entry, nil
	}

	src, err := w.fsAdapter.ReadFile(file.Path)
	if err != nil {
		return m.SourceFileEntry{}, fmt.Errorf("read %s: %w", file.Path, err)
	}

	entry, err := ScanSource(file.Name, language, src, marker)
	entry.Checksum = checksum

	return entry, err
}
