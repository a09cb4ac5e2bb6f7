package ir

import "strings"

// RenderText returns the visible text of n in its current state:
// plain and instruction text, insertion and moveTo content. Deleted
// and moveFrom content is excluded, as are range markers, properties
// and raw passthrough markup. Block boundaries contribute nothing; a
// caller rendering a sequence joins per-block results itself.
func RenderText(n *Node) string {
	var b strings.Builder
	renderText(n, &b)
	return b.String()
}

func renderText(n *Node, b *strings.Builder) {
	switch n.Type {
	case TextType, InstrTextType:
		b.WriteString(n.Text)
	case DelTextType, DelInstrTextType:
	case DelType, MoveFromType:
	case MoveFromRangeStartType, MoveFromRangeEndType,
		MoveToRangeStartType, MoveToRangeEndType:
	case RawType:
	default:
		for _, kid := range n.Kids {
			renderText(kid, b)
		}
	}
}

// RemovedText returns the text attributed to deletions and moveFrom
// wrappers under n.
func RemovedText(n *Node) string {
	var b strings.Builder
	removedText(n, false, &b)
	return b.String()
}

func removedText(n *Node, inDel bool, b *strings.Builder) {
	switch n.Type {
	case TextType, InstrTextType, DelTextType, DelInstrTextType:
		if inDel {
			b.WriteString(n.Text)
		}
	case DelType, MoveFromType:
		for _, kid := range n.Kids {
			removedText(kid, true, b)
		}
	case RawType:
	default:
		for _, kid := range n.Kids {
			removedText(kid, inDel, b)
		}
	}
}
