// Package batch runs the modernize and navigate passes over a directory of
// chapter pages.
//
// Every file is handled independently: a file that fails to read, convert or
// write is logged and counted, and the batch moves on. Nothing is written for
// a file until its conversion has succeeded in memory.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/webbible/core/books"
	"github.com/FocuswithJustin/webbible/core/errors"
	"github.com/FocuswithJustin/webbible/core/modernize"
	"github.com/FocuswithJustin/webbible/core/navigation"
	"github.com/FocuswithJustin/webbible/internal/archive"
	"github.com/FocuswithJustin/webbible/internal/fileutil"
	"github.com/FocuswithJustin/webbible/internal/logging"
	"github.com/FocuswithJustin/webbible/internal/transcript"
	"github.com/FocuswithJustin/webbible/internal/validation"
)

// Pass names.
const (
	PassModernize = "modernize"
	PassNavigate  = "navigate"
)

// ProgressEvery is how often the navigate pass reports progress.
const ProgressEvery = 100

// Config configures one pass.
type Config struct {
	// Dir is the directory holding the chapter pages.
	Dir string

	// Skip patterns; nil means DefaultSkip.
	Skip []string

	// DryRun converts everything but writes nothing.
	DryRun bool

	// Snapshot, if set, is a .tar.xz path that receives the candidate files
	// before the modernize pass touches them.
	Snapshot string

	// Transcript, if set, is a JSONL path recording every per-file outcome.
	Transcript string

	// Registry defaults to books.Default().
	Registry *books.Registry

	// Out receives the console report; nil means os.Stdout.
	Out io.Writer
}

func (c *Config) registry() *books.Registry {
	if c.Registry == nil {
		return books.Default()
	}
	return c.Registry
}

func (c *Config) skip() []string {
	if c.Skip == nil {
		return DefaultSkip
	}
	return c.Skip
}

func (c *Config) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Summary is the outcome of a pass.
type Summary struct {
	RunID     string
	Pass      string
	Found     int
	Processed int
	Skipped   int
	Failed    int
	Renamed   int
	Bytes     int64
	Duration  time.Duration
}

func (s *Summary) counts() map[string]int {
	return map[string]int{
		"found":     s.Found,
		"processed": s.Processed,
		"skipped":   s.Skipped,
		"failed":    s.Failed,
		"renamed":   s.Renamed,
	}
}

// run is the state shared by both passes.
type run struct {
	ctx     context.Context
	cfg     *Config
	out     io.Writer
	tr      *transcript.Writer
	summary *Summary
	start   time.Time
}

func checkDir(dir string) error {
	if dir == "" {
		return errors.NewValidation("dir", "directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return errors.NewIO("stat", dir, err)
	}
	if !info.IsDir() {
		return errors.NewValidation("dir", dir+" is not a directory")
	}
	return nil
}

func begin(ctx context.Context, cfg *Config, pass string) (*run, error) {
	if err := checkDir(cfg.Dir); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &run{
		ctx:     logging.WithRunID(ctx, id),
		cfg:     cfg,
		out:     cfg.out(),
		summary: &Summary{RunID: id, Pass: pass},
		start:   time.Now(),
	}, nil
}

// open records the discovered candidates and starts the transcript. Nothing
// is created on disk for a run that fails before this point.
func (r *run) open(found int) error {
	r.summary.Found = found
	if r.cfg.Transcript != "" {
		tr, err := transcript.Create(r.cfg.Transcript, r.summary.RunID)
		if err != nil {
			return err
		}
		r.tr = tr
	}
	logging.BatchStarted(r.ctx, r.summary.Pass, r.cfg.Dir, found, "dry_run", r.cfg.DryRun)
	r.tr.RunStarted(r.summary.Pass, r.cfg.Dir, found)
	return nil
}

func (r *run) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// skip records a file left untouched on purpose.
func (r *run) skip(name string, err error) {
	r.summary.Skipped++
	logging.FileSkipped(r.ctx, name, err)
	r.tr.FileSkipped(name, err)
}

// fail records a per-file failure. The pass continues.
func (r *run) fail(name, operation string, err error) {
	r.summary.Failed++
	var ee *errors.ExtractionError
	if errors.As(err, &ee) {
		logging.ConversionMiss(r.ctx, name, ee.Rule, "error", err.Error())
	} else {
		logging.FileError(r.ctx, name, operation, err)
	}
	r.tr.FileFailed(name, err)
	r.printf("  Error processing %s: %v\n", name, err)
}

// classify routes a conversion error to skip or fail.
func (r *run) classify(name string, err error) {
	if errors.Is(err, errors.ErrSkipped) {
		r.skip(name, err)
		return
	}
	r.fail(name, "convert", err)
}

func (r *run) written(name, oldName string, data []byte) {
	r.summary.Processed++
	r.summary.Bytes += int64(len(data))
	r.tr.FileWritten(name, oldName, data)
}

func (r *run) finish() (*Summary, error) {
	s := r.summary
	s.Duration = time.Since(r.start)
	logging.BatchFinished(r.ctx, s.Pass, s.Processed, s.Skipped, s.Failed, s.Duration,
		"renamed", s.Renamed, "bytes", s.Bytes)
	r.tr.RunFinished(s.counts())

	verb := "written"
	if r.cfg.DryRun {
		verb = "would be written"
	}
	r.printf("Run %s: %d processed, %d skipped, %d failed; %s %s\n",
		s.RunID, s.Processed, s.Skipped, s.Failed, humanize.Bytes(uint64(s.Bytes)), verb)

	if err := r.tr.Close(); err != nil {
		logging.ErrorContext(r.ctx, "transcript_failed", "path", r.cfg.Transcript, "error", err.Error())
		return s, err
	}
	if err := r.ctx.Err(); err != nil {
		logging.WarnContext(r.ctx, "batch_interrupted", "pass", s.Pass, "error", err.Error())
		return s, err
	}
	return s, nil
}

func (r *run) read(name string) (string, bool) {
	path := filepath.Join(r.cfg.Dir, name)
	info, err := os.Stat(path)
	if err == nil {
		err = validation.ValidatePageSize(info.Size())
	}
	if err != nil {
		r.fail(name, "read", errors.NewIO("read", name, err))
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		r.fail(name, "read", errors.NewIO("read", name, err))
		return "", false
	}
	return string(data), true
}

type converted struct {
	res  *modernize.Result
	data []byte
}

// Modernize renames legacy pages to full book names, rewrites their links and
// normalizes their markup. All files are converted in memory before any file
// is removed or written.
func Modernize(ctx context.Context, cfg Config) (*Summary, error) {
	r, err := begin(ctx, &cfg, PassModernize)
	if err != nil {
		return nil, err
	}

	names, err := Discover(cfg.Dir, cfg.skip())
	if err != nil {
		return nil, err
	}
	r.printf("Found %d HTML files\n", len(names))
	if err := r.open(len(names)); err != nil {
		return nil, err
	}

	if cfg.Snapshot != "" && !cfg.DryRun && len(names) > 0 {
		n, err := archive.SnapshotTarXz(cfg.Dir, names, cfg.Snapshot)
		if err != nil {
			r.tr.Close()
			return nil, errors.Wrap(err, "snapshot failed, nothing was modified")
		}
		r.printf("Snapshot of %s written to %s\n", humanize.Bytes(uint64(n)), cfg.Snapshot)
	}

	normalizer := modernize.New(cfg.registry())
	var results []converted
	for _, name := range names {
		if r.ctx.Err() != nil {
			break
		}
		content, ok := r.read(name)
		if !ok {
			continue
		}
		res, err := normalizer.Normalize(name, content)
		if err != nil {
			r.classify(name, err)
			continue
		}
		logging.DebugContext(r.ctx, "converted", "file", name, "new_name", res.NewName,
			"kind", res.Kind.String(), "links", res.Rewritten)
		results = append(results, converted{res: res, data: []byte(res.HTML)})
	}

	r.printf("Processing %d Bible files...\n", len(results))

	for _, c := range results {
		if r.ctx.Err() != nil {
			break
		}
		if !cfg.DryRun {
			oldPath := filepath.Join(cfg.Dir, c.res.OldName)
			newPath := filepath.Join(cfg.Dir, c.res.NewName)
			if err := fileutil.Replace(oldPath, newPath, c.data); err != nil {
				r.fail(c.res.OldName, "write", err)
				continue
			}
		}
		r.written(c.res.NewName, c.res.OldName, c.data)
		if c.res.Renamed() {
			r.summary.Renamed++
			r.printf("  %s -> %s\n", c.res.OldName, c.res.NewName)
		} else {
			r.printf("  Updated: %s\n", c.res.NewName)
		}
	}

	r.printf("\nDone! Processed %d files\n", r.summary.Processed)
	return r.finish()
}

// Navigate adds the sidebar, breadcrumb and chapter controls to every
// numbered chapter page, rewriting each file in place.
func Navigate(ctx context.Context, cfg Config) (*Summary, error) {
	r, err := begin(ctx, &cfg, PassNavigate)
	if err != nil {
		return nil, err
	}

	all, err := Discover(cfg.Dir, cfg.skip())
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range all {
		if books.HasChapterNumber(name) {
			names = append(names, name)
		}
	}
	r.printf("Found %d chapter files\n", len(names))
	if err := r.open(len(names)); err != nil {
		return nil, err
	}

	injector := navigation.New(cfg.registry())
	for _, name := range names {
		if r.ctx.Err() != nil {
			break
		}
		content, ok := r.read(name)
		if !ok {
			continue
		}
		out, err := injector.Inject(name, content)
		if err != nil {
			r.classify(name, err)
			continue
		}
		data := []byte(out)
		if !cfg.DryRun {
			if err := fileutil.WriteFile(filepath.Join(cfg.Dir, name), data); err != nil {
				r.fail(name, "write", err)
				continue
			}
		}
		r.written(name, name, data)
		if r.summary.Processed%ProgressEvery == 0 {
			r.printf("  Processed %d files...\n", r.summary.Processed)
		}
	}

	r.printf("\nUpdated %d files with new navigation\n", r.summary.Processed)
	return r.finish()
}
