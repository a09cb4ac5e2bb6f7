package main

import (
	"fmt"

	"github.com/redline-format/redline"
	"github.com/redline-format/redline/docx"
	"github.com/redline-format/redline/encode"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	baseline, err := docx.Read(args[0])
	if err != nil {
		return fmt.Errorf("error reading baseline: %w", err)
	}
	current, err := docx.Read(args[1])
	if err != nil {
		return fmt.Errorf("error reading current: %w", err)
	}
	revised := redline.Revise(baseline.Doc, current.Doc, redline.Options{
		Enabled: !cfg.Plain,
		Author:  cfg.author(cfg.Author),
		Date:    cfg.date(cfg.Date),
	})
	if cfg.Out != "" {
		return current.WriteRevisedFile(revised, cfg.Out)
	}
	if cfg.Xml {
		return encode.Encode(revised, cc.Out)
	}
	return encode.Render(revised, cc.Out, cfg.colors())
}
