package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{RC: loadRC()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "redline").
		WithSynopsis("redline [opts] command [opts]").
		WithDescription("redline produces and inspects tracked-change wordprocessing documents.").
		WithOpts(opts...).
		WithSubs(
			DiffCommand(cfg),
			ViewCommand(cfg),
			RevisionsCommand(cfg),
			StripCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] <baseline.docx> <current.docx>").
		WithDescription("diff two documents into tracked changes").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view documents with tracked changes in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func RevisionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RevisionsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("revisions").
		WithAliases("r", "rev").
		WithOpts(opts...).
		WithSynopsis("revisions [-filter expr] [files]").
		WithDescription("list tracked changes, optionally filtered").
		WithRun(func(cc *cli.Context, args []string) error {
			return revisions(cfg, cc, args)
		})
	cfg.Revisions = cmd
	return cmd
}

func StripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("strip").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("strip [-o out.docx] <file.docx>").
		WithDescription("accept all tracked changes and emit a clean document").
		WithRun(func(cc *cli.Context, args []string) error {
			return strip(cfg, cc, args)
		})
	cfg.Strip = cmd
	return cmd
}
