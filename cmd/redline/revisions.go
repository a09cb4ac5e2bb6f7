package main

import (
	"fmt"

	"github.com/redline-format/redline/docx"
	"github.com/redline-format/redline/encode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func revisions(cfg *RevisionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Revisions.Parse(cc, args)
	if err != nil {
		cfg.Revisions.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: revisions requires at least one file", cli.ErrUsage)
	}
	var prog *vm.Program
	if cfg.Filter != "" {
		prog, err = expr.Compile(cfg.Filter,
			expr.Env(encode.RevisionEntry{}),
			expr.AsBool())
		if err != nil {
			return fmt.Errorf("bad filter %q: %w", cfg.Filter, err)
		}
	}
	for _, file := range args {
		snap, err := docx.Read(file)
		if err != nil {
			return err
		}
		for _, e := range encode.ListRevisions(snap.Doc) {
			if prog != nil {
				keep, err := expr.Run(prog, e)
				if err != nil {
					return fmt.Errorf("filter %q: %w", cfg.Filter, err)
				}
				if !keep.(bool) {
					continue
				}
			}
			line := fmt.Sprintf("%d\t%s\t%s", e.ID, e.Kind, e.Author)
			if e.Date != "" {
				line += "\t" + e.Date
			}
			line += "\t" + e.Text
			if _, err := fmt.Fprintln(cc.Out, line); err != nil {
				return err
			}
		}
	}
	return nil
}
