package encode

import (
	"strings"

	"github.com/redline-format/redline/ir"
)

// RevisionEntry is one tracked change flattened for listing and
// filtering.
type RevisionEntry struct {
	Kind   string `json:"kind"`
	ID     int    `json:"id"`
	Author string `json:"author"`
	Date   string `json:"date,omitempty"`
	Text   string `json:"text"`
}

// ListRevisions collects every revision wrapper under doc in document
// order.
func ListRevisions(doc *ir.Node) []RevisionEntry {
	var out []RevisionEntry
	doc.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || !n.Type.IsRevision() {
			return true, nil
		}
		e := RevisionEntry{Kind: revisionKind(n.Type), Text: leafText(n)}
		if n.Rev != nil {
			e.ID = n.Rev.ID
			e.Author = n.Rev.Author
			e.Date = n.Rev.Date
		}
		out = append(out, e)
		return false, nil
	})
	return out
}

func revisionKind(t ir.Type) string {
	switch t {
	case ir.InsType:
		return "insert"
	case ir.DelType:
		return "delete"
	case ir.MoveFromType:
		return "moveFrom"
	case ir.MoveToType:
		return "moveTo"
	}
	return ""
}

// leafText concatenates every textual leaf under n, live or deleted.
func leafText(n *ir.Node) string {
	var b strings.Builder
	n.Visit(func(k *ir.Node, isPost bool) (bool, error) {
		if !isPost && k.Type.IsText() {
			b.WriteString(k.Text)
		}
		return true, nil
	})
	return b.String()
}
