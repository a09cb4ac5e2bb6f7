package ir

// WordmlNS is the main wordprocessing namespace, bound to the w:
// prefix in serialized markup.
const WordmlNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Node is one element of a wordprocessing document tree. A single
// struct with a closed Type enum keeps recursion sites exhaustive:
// every consumer switches on Type and the zero fields of unrelated
// variants stay empty.
//
// Kids holds child content for non-leaf types. Text is populated for
// the four textual leaf types. Props carries the raw property markup
// of paragraphs, runs, tables, rows and cells (w:pPr, w:rPr, ...)
// verbatim; it never participates in fingerprinting. Raw preserves
// markup this engine does not model.
type Node struct {
	Type Type
	Kids []*Node

	Text  string
	Props string
	Raw   string

	Rev    *Revision
	Marker *Marker
}

// Revision is the {id, author, date} triple attached to ins, del,
// moveFrom and moveTo wrappers. Date is an ISO-8601 UTC string or
// empty, in which case no date attribute is written.
type Revision struct {
	ID     int
	Author string
	Date   string
}

// Marker identifies one side of a move range bracket. The same ID is
// shared by the start and end tag of one bracket and by the bracket on
// the opposite side of the move. Name is only written on start tags.
type Marker struct {
	ID   int
	Name string
}

func (r *Revision) Clone() *Revision {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func (m *Marker) Clone() *Marker {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Text = n.Text
	dst.Props = n.Props
	dst.Raw = n.Raw
	dst.Rev = n.Rev.Clone()
	dst.Marker = n.Marker.Clone()
	if n.Kids != nil {
		dst.Kids = make([]*Node, len(n.Kids))
		for i, kid := range n.Kids {
			dst.Kids[i] = kid.Clone()
		}
	}
	return dst
}

func (n *Node) WithProps(props string) *Node {
	n.Props = props
	return n
}

func (n *Node) WithRev(rev *Revision) *Node {
	n.Rev = rev
	return n
}

func (n *Node) Append(kids ...*Node) *Node {
	n.Kids = append(n.Kids, kids...)
	return n
}

func Document(blocks ...*Node) *Node {
	return &Node{Type: DocumentType, Kids: blocks}
}

func Paragraph(kids ...*Node) *Node {
	return &Node{Type: ParagraphType, Kids: kids}
}

func Table(rows ...*Node) *Node {
	return &Node{Type: TableType, Kids: rows}
}

func Row(cells ...*Node) *Node {
	return &Node{Type: RowType, Kids: cells}
}

func Cell(blocks ...*Node) *Node {
	return &Node{Type: CellType, Kids: blocks}
}

// Run builds a run with a single plain text leaf.
func Run(text string) *Node {
	return &Node{Type: RunType, Kids: []*Node{Text(text)}}
}

func Text(s string) *Node {
	return &Node{Type: TextType, Text: s}
}

func InstrText(s string) *Node {
	return &Node{Type: InstrTextType, Text: s}
}

func DelText(s string) *Node {
	return &Node{Type: DelTextType, Text: s}
}

func DelInstrText(s string) *Node {
	return &Node{Type: DelInstrTextType, Text: s}
}

func Ins(rev *Revision, kids ...*Node) *Node {
	return &Node{Type: InsType, Rev: rev, Kids: kids}
}

func Del(rev *Revision, kids ...*Node) *Node {
	return &Node{Type: DelType, Rev: rev, Kids: kids}
}

func MoveFrom(rev *Revision, kids ...*Node) *Node {
	return &Node{Type: MoveFromType, Rev: rev, Kids: kids}
}

func MoveTo(rev *Revision, kids ...*Node) *Node {
	return &Node{Type: MoveToType, Rev: rev, Kids: kids}
}

func RangeMarker(t Type, m *Marker) *Node {
	return &Node{Type: t, Marker: m}
}

func Raw(markup string) *Node {
	return &Node{Type: RawType, Raw: markup}
}

// Visit walks n depth first. f is called before and after each node's
// children; returning false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, kid := range n.Kids {
			if err := kid.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
