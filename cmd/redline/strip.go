package main

import (
	"fmt"

	"github.com/redline-format/redline"
	"github.com/redline-format/redline/docx"
	"github.com/redline-format/redline/encode"

	"github.com/scott-cotton/cli"
)

func strip(cfg *StripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Strip.Parse(cc, args)
	if err != nil {
		cfg.Strip.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: strip requires 1 arg, got %v", cli.ErrUsage, args)
	}
	snap, err := docx.Read(args[0])
	if err != nil {
		return err
	}
	clean := redline.Accept(snap.Doc)
	if cfg.Out != "" {
		return snap.WriteRevisedFile(clean, cfg.Out)
	}
	return encode.Encode(clean, cc.Out)
}
