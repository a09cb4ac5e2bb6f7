package main

import (
	"os"

	"github.com/redline-format/redline/encode"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// rcFile holds defaults loaded from .redline.yaml in the working
// directory.
type rcFile struct {
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

func loadRC() *rcFile {
	rc := &rcFile{}
	data, err := os.ReadFile(".redline.yaml")
	if err != nil {
		return rc
	}
	// a broken rc file is ignored rather than fatal
	_ = yaml.Unmarshal(data, rc)
	return rc
}

type MainConfig struct {
	Color   bool `cli:"name=color desc='force colorized output'"`
	NoColor bool `cli:"name=nocolor desc='disable colorized output'"`

	RC *rcFile

	Main *cli.Command
}

func (cfg *MainConfig) colors() *encode.Colors {
	if cfg.NoColor {
		return nil
	}
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		return encode.NewColors()
	}
	return nil
}

// author resolves the effective revision author: flag, then rc file.
func (cfg *MainConfig) author(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.RC.Author
}

func (cfg *MainConfig) date(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.RC.Date
}

type DiffConfig struct {
	*MainConfig
	Author string `cli:"name=author desc='revision author'"`
	Date   string `cli:"name=date desc='revision timestamp (ISO-8601)'"`
	Out    string `cli:"name=o desc='output .docx path'"`
	Plain  bool   `cli:"name=plain desc='export without tracked changes'"`
	Xml    bool   `cli:"name=xml desc='print document markup instead of a rendered view'"`

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Xml bool `cli:"name=xml desc='print document markup instead of a rendered view'"`

	View *cli.Command
}

type RevisionsConfig struct {
	*MainConfig
	Filter string `cli:"name=filter desc='expression selecting revisions, e.g. Author == \"alice\" && Kind == \"delete\"'"`

	Revisions *cli.Command
}

type StripConfig struct {
	*MainConfig
	Out string `cli:"name=o desc='output .docx path'"`

	Strip *cli.Command
}
