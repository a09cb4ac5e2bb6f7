package encode

import (
	"io"
	"strings"

	"github.com/redline-format/redline/ir"

	"github.com/fatih/color"
)

// Colors maps revision classes to sprintf-style colorizers for the
// terminal rendering produced by Render.
type Colors struct {
	Ins    func(string, ...any) string
	Del    func(string, ...any) string
	Move   func(string, ...any) string
	Marker func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Ins:    color.GreenString,
		Del:    color.RedString,
		Move:   color.CyanString,
		Marker: color.HiBlackString,
	}
}

// plain is used when no Colors are supplied; revision spans are
// bracketed textually instead.
var plain = &Colors{}

// Render writes a human-readable text view of doc: one line per
// paragraph, table cells joined with separators, revision content
// colorized (or bracketed with {+ +}, {- -}, {< <}, {> >} when colors
// is nil).
func Render(doc *ir.Node, w io.Writer, colors *Colors) error {
	if colors == nil {
		colors = plain
	}
	return renderBlocks(doc.Kids, w, colors, "")
}

func renderBlocks(blocks []*ir.Node, w io.Writer, colors *Colors, indent string) error {
	for _, b := range blocks {
		switch b.Type {
		case ir.ParagraphType:
			line := renderPara(b, colors)
			if _, err := io.WriteString(w, indent+line+"\n"); err != nil {
				return err
			}
		case ir.TableType:
			for _, row := range b.Kids {
				if row.Type != ir.RowType {
					continue
				}
				cells := make([]string, 0, len(row.Kids))
				for _, cell := range row.Kids {
					if cell.Type != ir.CellType {
						continue
					}
					var cb strings.Builder
					if err := renderBlocks(cell.Kids, &cb, colors, ""); err != nil {
						return err
					}
					cells = append(cells, strings.TrimRight(cb.String(), "\n"))
				}
				line := indent + "| " + strings.Join(cells, " | ") + " |"
				if _, err := io.WriteString(w, line+"\n"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func renderPara(p *ir.Node, colors *Colors) string {
	var b strings.Builder
	for _, kid := range p.Kids {
		switch kid.Type {
		case ir.RunType:
			b.WriteString(leafText(kid))
		case ir.InsType:
			b.WriteString(colorize(colors.Ins, "{+", "+}", leafText(kid)))
		case ir.DelType:
			b.WriteString(colorize(colors.Del, "{-", "-}", leafText(kid)))
		case ir.MoveFromType:
			b.WriteString(colorize(colors.Move, "{<", "<}", leafText(kid)))
		case ir.MoveToType:
			b.WriteString(colorize(colors.Move, "{>", ">}", leafText(kid)))
		}
	}
	return b.String()
}

func colorize(f func(string, ...any) string, open, close, text string) string {
	if f == nil {
		return open + text + close
	}
	return f("%s", text)
}
