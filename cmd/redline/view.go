package main

import (
	"fmt"

	"github.com/redline-format/redline/docx"
	"github.com/redline-format/redline/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires at least one file", cli.ErrUsage)
	}
	for i, file := range args {
		snap, err := docx.Read(file)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
		if cfg.Xml {
			if err := encode.Encode(snap.Doc, cc.Out); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			continue
		}
		if err := encode.Render(snap.Doc, cc.Out, cfg.colors()); err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
	}
	return nil
}
