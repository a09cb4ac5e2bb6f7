package redline

import (
	"github.com/redline-format/redline/debug"
	"github.com/redline-format/redline/ir"
)

// Allocator hands out revision and range-marker ids for one export
// call. It is seeded above every id already present in the input
// trees, so ids embedded by a prior export never collide with newly
// generated ones. Successive Next calls yield strictly increasing
// integers; 0 is never produced, it is the unset/invalid sentinel.
type Allocator struct {
	next int
}

// NewAllocator scans the given trees for revision and marker ids and
// returns an allocator starting just above the maximum found, or at 1
// when none exist. Nil trees are skipped.
func NewAllocator(trees ...*ir.Node) *Allocator {
	maxID := 0
	for _, t := range trees {
		if t == nil {
			continue
		}
		t.Visit(func(n *ir.Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			if n.Rev != nil && n.Rev.ID > maxID {
				maxID = n.Rev.ID
			}
			if n.Marker != nil && n.Marker.ID > maxID {
				maxID = n.Marker.ID
			}
			return true, nil
		})
	}
	if debug.Alloc() {
		debug.Logf("allocator seeded at %d", maxID+1)
	}
	return &Allocator{next: maxID + 1}
}

func (a *Allocator) Next() int {
	id := a.next
	a.next++
	return id
}
