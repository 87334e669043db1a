// Package engine runs search, copy, move, rename and delete operations over
// the files selected by a match.Criteria and records a styled report of
// every per-file outcome.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/itchyny/timefmt-go"
	"github.com/prettymuchbryce/extops/internal/fs"
	"github.com/prettymuchbryce/extops/internal/match"
	"github.com/prettymuchbryce/extops/internal/report"
)

// Request describes what an engine operates on.
// Destination is only used by copy and move.
type Request struct {
	Criteria    match.Criteria
	Source      string
	Destination string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the renderer used for styled lines. Defaults to plain text.
func WithRenderer(r report.Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithDryRun marks headings and the summary as a dry run. The caller is
// responsible for passing a dry-run filesystem.
func WithDryRun(dryRun bool) Option {
	return func(e *Engine) { e.dryRun = dryRun }
}

// WithDetails adds timestamps to search results.
func WithDetails(details bool) Option {
	return func(e *Engine) { e.details = details }
}

// WithTree adds a tree view of search results.
func WithTree(tree bool) Option {
	return func(e *Engine) { e.tree = tree }
}

// WithClock overrides the time source used by rename templates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine performs one operation per call against a FileSystem.
// It is not safe for concurrent use; create one per run.
type Engine struct {
	req      Request
	fs       fs.FileSystem
	renderer report.Renderer
	log      *report.Log
	styler   *report.Styler
	summary  report.Summary

	dryRun  bool
	details bool
	tree    bool
	now     func() time.Time
}

// New creates an Engine for the request.
func New(req Request, filesystem fs.FileSystem, opts ...Option) *Engine {
	e := &Engine{
		req: Request{
			Criteria:    req.Criteria.Normalize(),
			Source:      req.Source,
			Destination: req.Destination,
		},
		fs:  filesystem,
		log: &report.Log{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.styler = report.NewStyler(e.renderer, e.log)
	return e
}

// Report returns every styled line recorded so far, newline separated.
func (e *Engine) Report() string {
	return e.log.String()
}

// Log returns the engine's report log.
func (e *Engine) Log() *report.Log {
	return e.log
}

// Summary returns the structured result of the last operation.
func (e *Engine) Summary() report.Summary {
	return e.summary
}

// Error records an error message, e.g. for an unknown operation.
func (e *Engine) Error(msg string) {
	e.styler.Failure(report.Text(msg))
	e.summary.Errors = append(e.summary.Errors, msg)
}

// begin resets the summary for a new operation.
func (e *Engine) begin(op string) {
	e.summary = report.Summary{
		Operation: op,
		Source:    e.req.Source,
		Extension: e.req.Criteria.Extension,
		Prefix:    e.req.Criteria.Prefix,
		DryRun:    e.dryRun,
	}
	slog.Info("starting operation",
		"operation", op,
		"source", e.req.Source,
		"destination", e.req.Destination,
		"extension", e.req.Criteria.Extension,
		"prefix", e.req.Criteria.Prefix,
		"dry_run", e.dryRun,
	)
}

// finish logs the tallies of the current operation.
func (e *Engine) finish() {
	slog.Info("finished operation",
		"operation", e.summary.Operation,
		"succeeded", e.summary.Succeeded,
		"failed", e.summary.Failed,
	)
}

// validate checks the source and, if requested, the destination directory.
// Every problem is reported as its own error line. It returns false when the
// operation must stop; err is only set for unexpected failures.
func (e *Engine) validate(needDestination bool) (bool, error) {
	if err := e.req.Criteria.Validate(); err != nil {
		e.Error("Invalid criteria: " + err.Error())
		return false, nil
	}

	ok := true
	check := func(label, dir string) error {
		err := match.CheckDir(e.fs, dir)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, match.ErrDirectoryNotFound):
			e.styler.Failure(report.Text(label+" directory "), report.Dir(dir), report.Text(" does not exist."))
		case errors.Is(err, match.ErrNotDirectory):
			e.styler.Failure(report.Text(label+" "), report.Dir(dir), report.Text(" is not a directory."))
		default:
			return fmt.Errorf("failed to check %s directory %s: %w", label, dir, err)
		}
		e.summary.Errors = append(e.summary.Errors, err.Error())
		ok = false
		return nil
	}

	if err := check("Source", e.req.Source); err != nil {
		return false, err
	}
	if needDestination {
		e.summary.Destination = e.req.Destination
		if err := check("Destination", e.req.Destination); err != nil {
			return false, err
		}
	}
	return ok, nil
}

// files returns the regular files under the source directory that match.
func (e *Engine) files(recursive bool) ([]match.Entry, error) {
	entries, err := match.Match(e.fs, e.req.Source, e.req.Criteria, recursive)
	if err != nil {
		return nil, err
	}
	files := entries[:0]
	for _, entry := range entries {
		if !entry.IsDir {
			files = append(files, entry)
		}
	}
	return files, nil
}

func (e *Engine) heading(text string) {
	if e.dryRun {
		text += " (DRY RUN)"
	}
	e.styler.Heading(report.Text(text))
}

// tally renders "<succeeded> <past>, <failed> skipped." as an info line.
func (e *Engine) tally(action Action) {
	e.styler.Info(
		report.As(report.Success, strconv.Itoa(e.summary.Succeeded)),
		report.Text(" "+action.Past()+", "),
		report.As(report.Error, strconv.Itoa(e.summary.Failed)),
		report.Text(" skipped."),
	)
}

// timestamps formats the details suffix of a search result line.
func (e *Engine) timestamps(path string) string {
	ts, err := e.fs.Times(path)
	if err != nil {
		slog.Debug("failed to read timestamps", "path", path, "error", err)
		return ""
	}
	s := " (modified " + timefmt.Format(ts.Modified, "%Y-%m-%d %H:%M")
	if ts.HasCreated {
		s += ", created " + timefmt.Format(ts.Created, "%Y-%m-%d %H:%M")
	}
	return s + ")"
}
