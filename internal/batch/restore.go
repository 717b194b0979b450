package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/FocuswithJustin/webbible/core/errors"
	"github.com/FocuswithJustin/webbible/internal/archive"
	"github.com/FocuswithJustin/webbible/internal/logging"
	"github.com/FocuswithJustin/webbible/internal/transcript"
	"github.com/FocuswithJustin/webbible/internal/validation"
)

// RestoreSummary is the outcome of Restore.
type RestoreSummary struct {
	// Restored lists the snapshot entries written back, in archive order.
	Restored []string

	// Removed lists the renamed pages deleted before restoring.
	Removed []string

	// RecordedFailures is the number of files the undone run failed on.
	RecordedFailures int
}

// Restore writes the pages of a snapshot back into cfg.Dir.
//
// If record is the transcript of the modernize run being undone, the renamed
// pages that run wrote are removed first, so the directory ends up as it was
// before the run. Renamed pages are removed before the restore: on a
// case-insensitive filesystem Job01.htm and JOB01.htm are the same file.
// With cfg.DryRun nothing is changed and the plan is printed.
func Restore(ctx context.Context, cfg Config, snapshot, record string) (*RestoreSummary, error) {
	if err := checkDir(cfg.Dir); err != nil {
		return nil, err
	}
	names, err := archive.List(snapshot)
	if err != nil {
		return nil, err
	}

	s := &RestoreSummary{Restored: names}
	if record != "" {
		s.Removed, s.RecordedFailures, err = renamedOutputs(ctx, record, names)
		if err != nil {
			return nil, err
		}
	}

	out := cfg.out()
	if cfg.DryRun {
		for _, name := range s.Removed {
			fmt.Fprintf(out, "  would remove %s\n", name)
		}
		for _, name := range names {
			fmt.Fprintf(out, "  would restore %s\n", name)
		}
		fmt.Fprintf(out, "Would restore %s files into %s\n", humanize.Comma(int64(len(names))), cfg.Dir)
		return s, nil
	}

	for _, name := range s.Removed {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		if err := os.Remove(filepath.Join(cfg.Dir, name)); err != nil && !os.IsNotExist(err) {
			return s, errors.NewIO("remove", name, err)
		}
		fmt.Fprintf(out, "  removed %s\n", name)
	}

	if _, err := archive.Restore(snapshot, cfg.Dir); err != nil {
		return s, errors.Wrapf(err, "failed to restore %s", snapshot)
	}
	logging.InfoContext(ctx, "snapshot_restored",
		"snapshot", snapshot, "dir", cfg.Dir, "files", len(names), "removed", len(s.Removed))

	fmt.Fprintf(out, "Restored %s files into %s\n", humanize.Comma(int64(len(names))), cfg.Dir)
	if s.RecordedFailures > 0 {
		fmt.Fprintf(out, "%d files had failed in the recorded run and were never modified\n", s.RecordedFailures)
	}
	return s, nil
}

// renamedOutputs returns the files a modernize run wrote under a new name,
// minus any name the snapshot restores itself.
func renamedOutputs(ctx context.Context, record string, restored []string) ([]string, int, error) {
	tr, err := transcript.Load(record)
	if err != nil {
		return nil, 0, err
	}
	if pass := tr.Pass(); pass != PassModernize {
		return nil, 0, errors.NewValidation("transcript",
			fmt.Sprintf("%s records a %q run, not %q", record, pass, PassModernize))
	}
	if !tr.Finished() {
		logging.WarnContext(ctx, "transcript_incomplete", "path", record)
	}

	keep := make(map[string]bool, len(restored))
	for _, name := range restored {
		keep[name] = true
	}

	var names []string
	for _, ev := range tr.Written() {
		if ev.OldName == "" || keep[ev.File] {
			continue
		}
		if err := validation.ValidateFilename(ev.File); err != nil {
			return nil, 0, errors.Wrapf(err, "transcript entry %q", ev.File)
		}
		names = append(names, ev.File)
	}
	return names, len(tr.Failures()), nil
}
