package engine

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/prettymuchbryce/extops/internal/match"
	"github.com/prettymuchbryce/extops/internal/naming"
	"github.com/prettymuchbryce/extops/internal/report"
	"github.com/spf13/afero"
)

// Find reports every matching file under the source directory, recursively.
// It never modifies the filesystem.
func (e *Engine) Find() error {
	e.begin("search")
	defer e.finish()

	ok, err := e.validate(false)
	if err != nil || !ok {
		return err
	}

	e.styler.Heading(report.Text("FILES LIST:"))

	files, err := e.files(true)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		spans := []report.Span{report.Text("File "), report.File(f.Name), report.Text(" in "), report.Dir(f.Dir)}
		if e.details {
			spans = append(spans, report.Text(e.timestamps(f.Path)))
		}
		e.styler.Success(spans...)
		e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Status: report.StatusFound})
		paths = append(paths, f.Path)
	}

	if e.tree && len(paths) > 0 {
		e.log.Append(e.styler.Tree(e.req.Source, paths))
	}

	e.styler.Info(
		report.Text(fmt.Sprintf("Found %d ", len(files))),
		report.Ext("'."+e.req.Criteria.Extension+"'"),
		report.Text(" files in "),
		report.Dir(e.req.Source),
	)
	return nil
}

// Copy copies every matching file into the destination directory.
func (e *Engine) Copy() error {
	return e.transfer(ActionCopy)
}

// Move moves every matching file into the destination directory.
func (e *Engine) Move() error {
	return e.transfer(ActionMove)
}

// transfer implements copy and move. Files whose name already exists in the
// destination are skipped. The destination is listed again before every
// file so names placed earlier in the same run count as conflicts.
func (e *Engine) transfer(action Action) error {
	e.begin(string(action))
	defer e.finish()

	ok, err := e.validate(true)
	if err != nil || !ok {
		return err
	}

	e.heading(action.Heading())

	files, err := e.files(true)
	if err != nil {
		return err
	}

	for _, f := range files {
		existing, err := match.Names(e.fs, e.req.Destination, e.req.Criteria)
		if err != nil {
			return fmt.Errorf("failed to list destination %s: %w", e.req.Destination, err)
		}

		if _, taken := existing[f.Name]; taken {
			slog.Debug("destination exists, skipping", "file", f.Path)
			e.styler.Failure(report.Text("File "), report.File(f.Name), report.Text(" already exists in destination."))
			e.summary.Record(report.Outcome{
				Name:   f.Name,
				Path:   f.Path,
				Status: report.StatusSkipped,
				Reason: "already exists in destination",
			})
			continue
		}

		target := filepath.Join(e.req.Destination, f.Name)
		var opErr error
		switch action {
		case ActionCopy:
			opErr = e.fs.Copy(f.Path, target)
		case ActionMove:
			opErr = e.fs.Move(f.Path, target)
		default:
			return fmt.Errorf("unsupported transfer action %q", action)
		}

		if opErr != nil {
			slog.Warn("file operation failed", "action", action, "file", f.Path, "error", opErr)
			e.styler.Failure(
				report.Text(fmt.Sprintf("Failed to %s file ", action)),
				report.File(f.Name),
				report.Text(": "+opErr.Error()),
			)
			e.summary.Record(report.Outcome{
				Name:   f.Name,
				Path:   f.Path,
				Target: target,
				Status: report.StatusFailed,
				Reason: opErr.Error(),
			})
			continue
		}

		e.styler.Success(report.Text(action.PastTitle()+" file "), report.File(f.Name))
		e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Target: target, Status: report.StatusSucceeded})
	}

	e.tally(action)
	return nil
}

// Delete removes every matching file under the source directory.
// It does not ask for confirmation.
func (e *Engine) Delete() error {
	e.begin(string(ActionDelete))
	defer e.finish()

	ok, err := e.validate(false)
	if err != nil || !ok {
		return err
	}

	e.heading(ActionDelete.Heading())

	files, err := e.files(true)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := e.fs.Remove(f.Path); err != nil {
			slog.Warn("file operation failed", "action", ActionDelete, "file", f.Path, "error", err)
			e.styler.Failure(report.Text("Failed to delete file "), report.File(f.Name), report.Text(": "+err.Error()))
			e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Status: report.StatusFailed, Reason: err.Error()})
			continue
		}
		e.styler.Success(report.Text("Deleted file "), report.File(f.Name))
		e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Status: report.StatusSucceeded})
	}

	e.styler.Info(
		report.As(report.Success, strconv.Itoa(e.summary.Succeeded)),
		report.Text(" files deleted in "),
		report.Dir(e.req.Source),
	)
	if e.summary.Failed > 0 {
		e.styler.Failure(report.Text(fmt.Sprintf("%d files could not be deleted.", e.summary.Failed)))
	}
	return nil
}

// Rename renames the matching direct children of the source directory using
// the numbers found in their names. Files without a number are skipped.
func (e *Engine) Rename(tmpl naming.Template) error {
	e.begin(string(ActionRename))
	defer e.finish()

	ok, err := e.validate(false)
	if err != nil || !ok {
		return err
	}

	if tmpl == "" {
		tmpl = naming.DefaultTemplate
	}

	e.heading(ActionRename.Heading())

	files, err := e.files(false)
	if err != nil {
		return err
	}

	now := e.now()
	for _, f := range files {
		newName, ok, err := naming.NewName(tmpl, f.Path, now)
		if err != nil {
			e.styler.Failure(report.Text("Failed to rename file "), report.File(f.Name), report.Text(": "+err.Error()))
			e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Status: report.StatusFailed, Reason: err.Error()})
			continue
		}
		if !ok {
			e.styler.Info(report.File(naming.Stem(f.Path)), report.Text(" does not contain a number"))
			e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Status: report.StatusSkipped, Reason: "no number in name"})
			continue
		}

		target := filepath.Join(f.Dir, newName)
		if newName == f.Name {
			e.styler.Info(report.Text("File "), report.File(f.Name), report.Text(" already has the target name"))
			e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Target: target, Status: report.StatusSkipped, Reason: "already named"})
			continue
		}

		exists, err := afero.Exists(e.fs, target)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", target, err)
		}
		if exists {
			e.styler.Failure(report.Text("File "), report.File(newName), report.Text(" already exists in "), report.Dir(f.Dir))
			e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Target: target, Status: report.StatusSkipped, Reason: "target already exists"})
			continue
		}

		if err := e.fs.Rename(f.Path, target); err != nil {
			slog.Warn("file operation failed", "action", ActionRename, "file", f.Path, "error", err)
			e.styler.Failure(report.Text("Failed to rename file "), report.File(f.Name), report.Text(": "+err.Error()))
			e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Target: target, Status: report.StatusFailed, Reason: err.Error()})
			continue
		}

		e.styler.Success(report.Text("Renamed file "), report.File(f.Name), report.Text(" to "), report.File(newName))
		e.summary.Record(report.Outcome{Name: f.Name, Path: f.Path, Target: target, Status: report.StatusSucceeded})
	}

	e.tally(ActionRename)
	return nil
}
