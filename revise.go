package redline

import (
	"fmt"

	"github.com/redline-format/redline/ir"
	"github.com/redline-format/redline/libdiff"
)

// Options control tracked-change generation for one export call.
type Options struct {
	// Enabled turns tracked-change generation on. When false the
	// current content is exported unmarked.
	Enabled bool
	// Author is stamped on every generated revision; blank values
	// become "Unknown".
	Author string
	// Date is an ISO-8601 timestamp stamped on insertions and
	// deletions, normalized to UTC Z form. Blank means no date
	// attribute.
	Date string
}

// Revise diffs a baseline document against the current one and
// returns a fresh tree with tracked-change wrappers spliced in. The
// inputs are never mutated. With tracking disabled or no baseline
// available, the result is a clean clone of current: a missing
// baseline is a recovered condition, not an error.
//
// Every generated revision and range-marker id is unique within the
// call and strictly greater than any id already present in either
// input tree.
func Revise(baseline, current *ir.Node, opts Options) *ir.Node {
	if current == nil {
		return nil
	}
	if !opts.Enabled || baseline == nil {
		return current.Clone()
	}
	doc := &ir.Node{Type: ir.DocumentType, Props: current.Props}
	doc.Kids = libdiff.DiffBlocks(baseline.Kids, current.Kids)
	alloc := NewAllocator(baseline, current)
	stamp(doc, alloc, NormalizeAuthor(opts.Author), NormalizeDate(opts.Date))
	return doc
}

// stamp walks a diff result in document order assigning real ids to
// revision wrappers and range markers. The differencer leaves a
// provisional pairing key in each marker's ID; all four markers of one
// move share it and are mapped to a single allocated id, keeping the
// moveFrom and moveTo brackets linked.
func stamp(doc *ir.Node, alloc *Allocator, author, date string) {
	markerIDs := map[int]int{}
	doc.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch {
		case n.Type.IsRevision():
			rev := &ir.Revision{ID: alloc.Next(), Author: author}
			if n.Type == ir.InsType || n.Type == ir.DelType {
				rev.Date = date
			}
			n.Rev = rev
		case n.Type.IsRangeMarker():
			if n.Marker == nil {
				n.Marker = &ir.Marker{}
			}
			id, ok := markerIDs[n.Marker.ID]
			if !ok {
				id = alloc.Next()
				markerIDs[n.Marker.ID] = id
			}
			n.Marker.ID = id
			switch n.Type {
			case ir.MoveFromRangeStartType, ir.MoveToRangeStartType:
				n.Marker.Name = fmt.Sprintf("move%d", id)
			default:
				n.Marker.Name = ""
			}
		}
		return true, nil
	})
}
