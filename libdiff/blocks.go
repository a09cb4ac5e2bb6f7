package libdiff

import (
	"github.com/redline-format/redline/ir"
)

// DiffBlocks produces the revision-tagged block sequence for a
// baseline/current pair of block lists. Equal blocks come back as
// clones of the current side, inserted and deleted blocks wrapped in
// revision nodes, and moved paragraphs as moveFrom/moveTo pairs
// bracketed by range markers. Revision ids, authors and dates are left
// unset; the caller stamps them.
//
// Move pairing keys are carried provisionally in the range markers'
// Marker.ID and are unique across the whole call, including moves
// found in recursive table cell diffs.
func DiffBlocks(base, cur []*ir.Node) []*ir.Node {
	d := &differ{}
	return d.diffBlocks(base, cur)
}

// differ threads the pairing-key sequence through nested block diffs.
type differ struct {
	pairs int
}

func (d *differ) diffBlocks(base, cur []*ir.Node) []*ir.Node {
	ops := Align(base, cur)
	d.renumber(ops)
	var out []*ir.Node
	for i := 0; i < len(ops); i++ {
		op := &ops[i]
		switch op.Kind {
		case OpEqual:
			out = append(out, cur[op.Cur].Clone())
		case OpDelete:
			// A delete directly followed by an insert of the same
			// block type is a content change; diff it fine-grained.
			if i+1 < len(ops) && ops[i+1].Kind == OpInsert {
				b, c := base[op.Base], cur[ops[i+1].Cur]
				if b.Type == ir.ParagraphType && c.Type == ir.ParagraphType {
					out = append(out, DiffPara(b, c))
					i++
					continue
				}
				if b.Type == ir.TableType && c.Type == ir.TableType {
					if tbl, ok := d.diffTable(b, c); ok {
						out = append(out, tbl)
						i++
						continue
					}
					// shape mismatch degrades to whole-block
					// delete+insert below
				}
			}
			out = append(out, wrapBlock(base[op.Base], ir.DelType))
		case OpInsert:
			out = append(out, wrapBlock(cur[op.Cur], ir.InsType))
		case OpMoveFrom:
			out = append(out, moveSide(base[op.Base], ir.MoveFromType, op.Pair))
		case OpMoveTo:
			out = append(out, moveSide(cur[op.Cur], ir.MoveToType, op.Pair))
		}
	}
	return out
}

// renumber remaps the alignment-local pairing keys onto the differ's
// global sequence so nested diffs never reuse a key.
func (d *differ) renumber(ops []Op) {
	m := map[int]int{}
	for i := range ops {
		if ops[i].Pair == 0 {
			continue
		}
		g, ok := m[ops[i].Pair]
		if !ok {
			d.pairs++
			g = d.pairs
			m[ops[i].Pair] = g
		}
		ops[i].Pair = g
	}
}

// wrapBlock marks a whole block as inserted or deleted. Paragraph
// content is wrapped directly; tables keep their structural markup
// untouched and wrap every cell's content instead.
func wrapBlock(b *ir.Node, wrap ir.Type) *ir.Node {
	switch b.Type {
	case ir.ParagraphType:
		return wrapParagraph(b, wrap)
	case ir.TableType, ir.RowType, ir.CellType:
		res := &ir.Node{Type: b.Type, Props: b.Props}
		for _, kid := range b.Kids {
			res.Kids = append(res.Kids, wrapBlock(kid, wrap))
		}
		return res
	default:
		return b.Clone()
	}
}

// moveSide builds the paragraph for one side of a move: the content
// wrapped in a moveFrom or moveTo node, bracketed by range markers
// sharing the provisional pairing key.
func moveSide(p *ir.Node, wrap ir.Type, pair int) *ir.Node {
	start, end := ir.MoveFromRangeStartType, ir.MoveFromRangeEndType
	if wrap == ir.MoveToType {
		start, end = ir.MoveToRangeStartType, ir.MoveToRangeEndType
	}
	kids := []*ir.Node{ir.RangeMarker(start, &ir.Marker{ID: pair})}
	kids = append(kids, WrapContent(p, wrap)...)
	kids = append(kids, ir.RangeMarker(end, &ir.Marker{ID: pair}))
	return &ir.Node{Type: ir.ParagraphType, Props: p.Props, Kids: kids}
}
