package libdiff

import (
	"github.com/redline-format/redline/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// segment is a fragment of paragraph content with a single formatting
// set: one text leaf's worth of characters carrying its run's
// properties, or a zero-width raw passthrough item.
type segment struct {
	props string
	instr bool
	inRun bool
	text  string
	raw   string
}

// DiffPara diffs the inline content of a paragraph pair. Inserted
// spans come back wrapped in ins nodes, deleted spans in del nodes
// with delText leaves, unchanged spans as plain runs taking the
// current side's formatting. A nil base means wholesale insertion of
// cur's content; a nil cur means wholesale deletion of base's.
//
// The character diff is mapped back onto run boundaries: a run is
// split at each hunk edge so every emitted span carries exactly one
// classification and one formatting set. Identical text under
// different formatting produces no tracked change.
func DiffPara(base, cur *ir.Node) *ir.Node {
	switch {
	case base == nil && cur == nil:
		return nil
	case base == nil:
		return wrapParagraph(cur, ir.InsType)
	case cur == nil:
		return wrapParagraph(base, ir.DelType)
	}
	baseSegs := segments(base, false)
	curSegs := segments(cur, true)
	baseText := segsText(baseSegs)
	curText := segsText(curSegs)
	if baseText == curText {
		return cur.Clone()
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(baseText, curText, false)

	res := &ir.Node{Type: ir.ParagraphType, Props: cur.Props}
	bc := &segCursor{segs: baseSegs}
	cc := &segCursor{segs: curSegs}
	for i := range diffs {
		diff := &diffs[i]
		n := len(diff.Text)
		switch diff.Type {
		case diffpatch.DiffEqual:
			bc.take(n)
			res.Kids = append(res.Kids, emitRuns(cc.take(n), false)...)
		case diffpatch.DiffDelete:
			kids := emitRuns(bc.take(n), true)
			if len(kids) > 0 {
				res.Kids = append(res.Kids, ir.Del(nil, kids...))
			}
		case diffpatch.DiffInsert:
			kids := emitRuns(cc.take(n), false)
			if len(kids) > 0 {
				res.Kids = append(res.Kids, ir.Ins(nil, kids...))
			}
		}
	}
	// trailing raw passthrough items sit after the last text segment
	res.Kids = append(res.Kids, emitRuns(cc.take(0), false)...)
	return res
}

// wrapParagraph rebuilds p with all of its run content inside a single
// revision wrapper per contiguous stretch, raw markup passing through
// bare.
func wrapParagraph(p *ir.Node, wrap ir.Type) *ir.Node {
	return &ir.Node{
		Type:  ir.ParagraphType,
		Props: p.Props,
		Kids:  WrapContent(p, wrap),
	}
}

// WrapContent clones p's inline content wrapped in revision nodes of
// the given type. Deletion-flavored wrappers (del, moveFrom) get their
// text leaves rewritten to delText semantics. Raw markup stays outside
// the wrappers, splitting them where it occurs.
func WrapContent(p *ir.Node, wrap ir.Type) []*ir.Node {
	deleted := wrap == ir.DelType || wrap == ir.MoveFromType
	var out, batch []*ir.Node
	flush := func() {
		if len(batch) == 0 {
			return
		}
		out = append(out, &ir.Node{Type: wrap, Kids: batch})
		batch = nil
	}
	for _, kid := range p.Kids {
		switch kid.Type {
		case ir.RawType:
			flush()
			out = append(out, kid.Clone())
		default:
			c := kid.Clone()
			if deleted {
				convertDeleted(c)
			}
			batch = append(batch, c)
		}
	}
	flush()
	return out
}

// convertDeleted rewrites live text leaves under n to their deleted
// counterparts in place.
func convertDeleted(n *ir.Node) {
	switch n.Type {
	case ir.TextType:
		n.Type = ir.DelTextType
	case ir.InstrTextType:
		n.Type = ir.DelInstrTextType
	default:
		for _, kid := range n.Kids {
			convertDeleted(kid)
		}
	}
}

func segments(p *ir.Node, withRaw bool) []segment {
	var segs []segment
	for _, kid := range p.Kids {
		switch kid.Type {
		case ir.RunType:
			for _, leaf := range kid.Kids {
				switch leaf.Type {
				case ir.TextType:
					segs = append(segs, segment{props: kid.Props, text: leaf.Text})
				case ir.InstrTextType:
					segs = append(segs, segment{props: kid.Props, instr: true, text: leaf.Text})
				case ir.DelTextType, ir.DelInstrTextType:
					// already-deleted content has no live text
				case ir.RawType:
					if withRaw {
						segs = append(segs, segment{props: kid.Props, inRun: true, raw: leaf.Raw})
					}
				}
			}
		case ir.RawType:
			if withRaw {
				segs = append(segs, segment{raw: kid.Raw})
			}
		}
	}
	return segs
}

func segsText(segs []segment) string {
	n := 0
	for i := range segs {
		n += len(segs[i].text)
	}
	b := make([]byte, 0, n)
	for i := range segs {
		b = append(b, segs[i].text...)
	}
	return string(b)
}

type segCursor struct {
	segs []segment
	i    int
	off  int
}

// take consumes n bytes of text from the cursor, returning the covered
// segments split at the requested boundary. Zero-width raw segments at
// the cursor position are flushed along the way; take(0) flushes them
// alone.
func (c *segCursor) take(n int) []segment {
	var out []segment
	for {
		for c.i < len(c.segs) && c.segs[c.i].raw != "" {
			out = append(out, c.segs[c.i])
			c.i++
			c.off = 0
		}
		if n == 0 || c.i >= len(c.segs) {
			return out
		}
		s := c.segs[c.i]
		avail := len(s.text) - c.off
		if avail == 0 {
			c.i++
			c.off = 0
			continue
		}
		t := min(n, avail)
		out = append(out, segment{
			props: s.props,
			instr: s.instr,
			text:  s.text[c.off : c.off+t],
		})
		c.off += t
		n -= t
		if c.off == len(s.text) {
			c.i++
			c.off = 0
		}
		if n == 0 {
			return out
		}
	}
}

func emitRuns(segs []segment, deleted bool) []*ir.Node {
	var out []*ir.Node
	for i := range segs {
		s := &segs[i]
		if s.raw != "" {
			if s.inRun {
				out = append(out, &ir.Node{
					Type:  ir.RunType,
					Props: s.props,
					Kids:  []*ir.Node{ir.Raw(s.raw)},
				})
			} else {
				out = append(out, ir.Raw(s.raw))
			}
			continue
		}
		var leaf *ir.Node
		switch {
		case deleted && s.instr:
			leaf = ir.DelInstrText(s.text)
		case deleted:
			leaf = ir.DelText(s.text)
		case s.instr:
			leaf = ir.InstrText(s.text)
		default:
			leaf = ir.Text(s.text)
		}
		out = append(out, &ir.Node{
			Type:  ir.RunType,
			Props: s.props,
			Kids:  []*ir.Node{leaf},
		})
	}
	return out
}
