package redline

import "github.com/redline-format/redline/ir"

// Accept folds every tracked change in doc into clean content:
// insertions and move destinations are unwrapped, deletions and move
// sources dropped, range markers removed. A paragraph whose entire
// content was deleted or moved away disappears with it. The input is
// not mutated.
//
// Accepting the result of a Revise call yields the current snapshot's
// content, which makes Accept the re-baseline primitive: a fresh
// baseline taken from an accepted tree diffs to zero on the next
// export.
func Accept(n *ir.Node) *ir.Node {
	switch n.Type {
	case ir.DocumentType, ir.TableType, ir.RowType, ir.CellType:
		res := shell(n)
		for _, kid := range n.Kids {
			if a := Accept(kid); a != nil {
				res.Kids = append(res.Kids, a)
			}
		}
		return res
	case ir.ParagraphType:
		return acceptParagraph(n)
	default:
		return n.Clone()
	}
}

func acceptParagraph(p *ir.Node) *ir.Node {
	res := shell(p)
	removed, kept := false, false
	for _, kid := range p.Kids {
		switch kid.Type {
		case ir.InsType, ir.MoveToType:
			for _, k := range kid.Kids {
				res.Kids = append(res.Kids, k.Clone())
			}
			kept = true
		case ir.DelType, ir.MoveFromType:
			removed = true
		case ir.MoveFromRangeStartType, ir.MoveFromRangeEndType,
			ir.MoveToRangeStartType, ir.MoveToRangeEndType:
			// markers carry no content
		case ir.RunType:
			res.Kids = append(res.Kids, kid.Clone())
			kept = true
		default:
			res.Kids = append(res.Kids, kid.Clone())
		}
	}
	if removed && !kept {
		// the paragraph held only removed content
		return nil
	}
	return res
}

func shell(n *ir.Node) *ir.Node {
	return &ir.Node{
		Type:  n.Type,
		Text:  n.Text,
		Props: n.Props,
		Raw:   n.Raw,
	}
}
