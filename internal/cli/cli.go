// Package cli holds the command-line options shared by the batch drivers.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/webbible/internal/batch"
	"github.com/FocuswithJustin/webbible/internal/logging"
)

// Version is reported by --version.
const Version = "1.0.0"

// Options are the flags every driver accepts. All are optional.
type Options struct {
	Dir        string           `name:"dir" short:"d" help:"Directory holding the chapter pages (default: the executable's directory)" type:"path" env:"WEBBIBLE_DIR"`
	LogLevel   string           `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat  string           `name:"log-format" help:"Log format" enum:"text,json" default:"text"`
	DryRun     bool             `name:"dry-run" short:"n" help:"Convert in memory without writing any file"`
	Transcript string           `name:"transcript" help:"Write a JSONL transcript of every file outcome" type:"path"`
	Version    kong.VersionFlag `name:"version" help:"Print version information"`
}

// Vars are the kong interpolation variables for Options.
func Vars() kong.Vars {
	return kong.Vars{"version": Version}
}

// Setup initializes logging and returns the batch configuration.
func (o *Options) Setup(out io.Writer) (batch.Config, error) {
	level, err := logging.ParseLevel(o.LogLevel)
	if err != nil {
		return batch.Config{}, err
	}
	format, err := logging.ParseFormat(o.LogFormat)
	if err != nil {
		return batch.Config{}, err
	}
	logging.InitLogger(level, format)

	dir := o.Dir
	if dir == "" {
		if dir, err = ExecutableDir(); err != nil {
			return batch.Config{}, err
		}
	}

	return batch.Config{
		Dir:        dir,
		DryRun:     o.DryRun,
		Transcript: o.Transcript,
		Out:        out,
	}, nil
}

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// SignalContext is cancelled on interrupt or termination, stopping a batch
// between files.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
