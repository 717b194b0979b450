// Command add-navigation adds a book sidebar, breadcrumb, chapter select and
// previous/next links to modernized chapter pages. Pages that already carry
// the sidebar are left alone, so it is safe to run more than once.
//
// Usage:
//
//	add-navigation [--dir DIR] [--dry-run] [--transcript run.jsonl]
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
}

func run() error {
	cfg, err := CLI.Setup(os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := cli.SignalContext()
	defer stop()

	s, err := batch.Navigate(ctx, cfg)
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
		kong.Name("add-navigation"),
		kong.Description("Add sidebar and chapter navigation to modernized chapter pages"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		cli.Vars(),
	)
	ctx.FatalIfErrorf(run())
}
