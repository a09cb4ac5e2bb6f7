package libdiff

import (
	"strings"

	"github.com/redline-format/redline/ir"
)

// diffTable diffs two tables positionally: row i against row i, cell j
// against cell j, recursing into each aligned cell's block content. A
// cell present on only one side at an aligned position becomes a
// wholesale insertion or deletion of its content. Reports false when
// the shapes cannot be aligned positionally (a spanning change), in
// which case the caller degrades to whole-block delete+insert.
func (d *differ) diffTable(base, cur *ir.Node) (*ir.Node, bool) {
	baseRows := kidsOfType(base, ir.RowType)
	curRows := kidsOfType(cur, ir.RowType)
	n := min(len(baseRows), len(curRows))
	for i := 0; i < n; i++ {
		if spanMismatch(baseRows[i], curRows[i]) {
			return nil, false
		}
	}
	res := &ir.Node{Type: ir.TableType, Props: cur.Props}
	// non-row table markup (tblGrid) passes through from current
	for _, kid := range cur.Kids {
		if kid.Type != ir.RowType {
			res.Kids = append(res.Kids, kid.Clone())
		}
	}
	for i := 0; i < n; i++ {
		res.Kids = append(res.Kids, d.diffRow(baseRows[i], curRows[i]))
	}
	for _, r := range baseRows[n:] {
		res.Kids = append(res.Kids, wrapBlock(r, ir.DelType))
	}
	for _, r := range curRows[n:] {
		res.Kids = append(res.Kids, wrapBlock(r, ir.InsType))
	}
	return res, true
}

func (d *differ) diffRow(base, cur *ir.Node) *ir.Node {
	baseCells := kidsOfType(base, ir.CellType)
	curCells := kidsOfType(cur, ir.CellType)
	n := min(len(baseCells), len(curCells))
	res := &ir.Node{Type: ir.RowType, Props: cur.Props}
	for i := 0; i < n; i++ {
		res.Kids = append(res.Kids, &ir.Node{
			Type:  ir.CellType,
			Props: curCells[i].Props,
			Kids:  d.diffBlocks(baseCells[i].Kids, curCells[i].Kids),
		})
	}
	for _, c := range baseCells[n:] {
		res.Kids = append(res.Kids, wrapBlock(c, ir.DelType))
	}
	for _, c := range curCells[n:] {
		res.Kids = append(res.Kids, wrapBlock(c, ir.InsType))
	}
	return res
}

// spanMismatch reports whether two positionally aligned rows differ in
// cell spanning markup. Cell counts may differ (extra cells become
// wholesale insertions or deletions), but a gridSpan or vMerge change
// at an aligned position shifts the column structure under the
// remaining cells and cannot be diffed positionally.
func spanMismatch(baseRow, curRow *ir.Node) bool {
	baseCells := kidsOfType(baseRow, ir.CellType)
	curCells := kidsOfType(curRow, ir.CellType)
	n := min(len(baseCells), len(curCells))
	for i := 0; i < n; i++ {
		bp, cp := baseCells[i].Props, curCells[i].Props
		if bp == cp {
			continue
		}
		if strings.Contains(bp, "gridSpan") || strings.Contains(cp, "gridSpan") ||
			strings.Contains(bp, "vMerge") || strings.Contains(cp, "vMerge") {
			return true
		}
	}
	return false
}

func kidsOfType(n *ir.Node, t ir.Type) []*ir.Node {
	var out []*ir.Node
	for _, kid := range n.Kids {
		if kid.Type == t {
			out = append(out, kid)
		}
	}
	return out
}
