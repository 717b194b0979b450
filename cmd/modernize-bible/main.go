// Command modernize-bible renames legacy World English Bible chapter pages to
// full book names, rewrites their internal links and normalizes their markup.
//
// Usage:
//
//	modernize-bible [--dir DIR] [--dry-run] [--snapshot corpus.tar.xz] [--transcript run.jsonl]
//	modernize-bible --restore corpus.tar.xz [--undo run.jsonl] [--dry-run]
//
// With no arguments it converts the directory containing the executable.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/webbible/internal/batch"
	"github.com/FocuswithJustin/webbible/internal/cli"
)

var CLI struct {
	cli.Options

	Snapshot string `name:"snapshot" help:"Archive the candidate pages to this .tar.xz before converting" type:"path"`
	Restore  string `name:"restore" help:"Restore pages from a snapshot into --dir and exit" type:"existingfile"`
	Undo     string `name:"undo" help:"Transcript of the run being undone; its renamed pages are removed before --restore" type:"existingfile"`
}

func run() error {
	cfg, err := CLI.Setup(os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := cli.SignalContext()
	defer stop()

	if CLI.Undo != "" && CLI.Restore == "" {
		return fmt.Errorf("--undo requires --restore")
	}
	if CLI.Restore != "" {
		_, err := batch.Restore(ctx, cfg, CLI.Restore, CLI.Undo)
		return err
	}

	cfg.Snapshot = CLI.Snapshot

	s, err := batch.Modernize(ctx, cfg)
	if err != nil {
		return err
	}
	if s.Failed > 0 {
		return fmt.Errorf("%d files failed", s.Failed)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("modernize-bible"),
		kong.Description("Rename legacy chapter pages to full book names and normalize their markup"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		cli.Vars(),
	)
	ctx.FatalIfErrorf(run())
}
