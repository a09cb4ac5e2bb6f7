package libdiff

import (
	"github.com/redline-format/redline/debug"
	"github.com/redline-format/redline/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Align matches the baseline and current block sequences.
//
// Each block is summarized by its fingerprint, fingerprints are mapped
// to runes, and the two rune sequences are run through diffmatchpatch,
// which yields a longest-common-subsequence style alignment. Equal
// steps cover both sequences in order, so replaying equal+insert over
// current reproduces current and equal+delete over baseline reproduces
// baseline.
//
// A post pass reclassifies delete/insert pairs with equal fingerprints
// as moves; see detectMoves.
func Align(base, cur []*ir.Node) []Op {
	m := map[uint64]rune{}
	fromRunes := mapRunes(m, base)
	toRunes := mapRunes(m, cur)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	ops := make([]Op, 0, len(base)+len(cur))
	bi, ci := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range diff.Text {
				ops = append(ops, Op{Kind: OpEqual, Base: bi, Cur: ci})
				bi++
				ci++
			}
		case diffpatch.DiffDelete:
			for range diff.Text {
				ops = append(ops, Op{Kind: OpDelete, Base: bi, Cur: -1})
				bi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				ops = append(ops, Op{Kind: OpInsert, Base: -1, Cur: ci})
				ci++
			}
		}
	}
	detectMoves(ops, base, cur)
	if debug.Diff() {
		for i := range ops {
			debug.Logf("align op %d: %s base=%d cur=%d pair=%d",
				i, ops[i].Kind, ops[i].Base, ops[i].Cur, ops[i].Pair)
		}
	}
	return ops
}

func mapRunes(m map[uint64]rune, blocks []*ir.Node) []rune {
	rs := make([]rune, len(blocks))
	for i, b := range blocks {
		fp := b.Fingerprint()
		r, ok := m[fp]
		if !ok {
			r = rune(len(m))
			m[fp] = r
		}
		rs[i] = r
	}
	return rs
}

// detectMoves pairs unmatched deletes with unmatched inserts that
// carry the same fingerprint, rewriting both to moveFrom/moveTo with a
// shared pairing key. Only paragraphs with nonempty rendered text are
// candidates; a table relocation stays an independent delete+insert.
//
// Deletes are visited in baseline order. Each picks the nearest
// unclaimed insert by original index, ties going to the earlier
// insert, so repeated runs over identical input produce identical
// pairings.
func detectMoves(ops []Op, base, cur []*ir.Node) {
	type cand struct {
		op *Op
		fp uint64
	}
	var dels, inss []cand
	for i := range ops {
		op := &ops[i]
		switch op.Kind {
		case OpDelete:
			b := base[op.Base]
			if b.Type == ir.ParagraphType && ir.RenderText(b) != "" {
				dels = append(dels, cand{op, b.Fingerprint()})
			}
		case OpInsert:
			c := cur[op.Cur]
			if c.Type == ir.ParagraphType && ir.RenderText(c) != "" {
				inss = append(inss, cand{op, c.Fingerprint()})
			}
		}
	}
	pair := 0
	for _, d := range dels {
		best := -1
		bestDist := -1
		for i, in := range inss {
			if in.op == nil || in.fp != d.fp {
				continue
			}
			dist := in.op.Cur - d.op.Base
			if dist < 0 {
				dist = -dist
			}
			if best == -1 || dist < bestDist {
				best = i
				bestDist = dist
			}
		}
		if best == -1 {
			continue
		}
		pair++
		to := inss[best].op
		inss[best].op = nil
		d.op.Kind = OpMoveFrom
		d.op.Pair = pair
		to.Kind = OpMoveTo
		to.Pair = pair
		if debug.Moves() {
			debug.Logf("move pair %d: base=%d cur=%d", pair, d.op.Base, to.Cur)
		}
	}
}
