package encode

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/redline-format/redline/ir"
)

type EncState struct {
	fragment bool
	deleted  bool
}

type EncodeOption func(*EncState)

// EncodeFragment suppresses the w:document/w:body envelope around a
// document node, emitting the block sequence alone.
func EncodeFragment(v bool) EncodeOption {
	return func(es *EncState) {
		es.fragment = v
	}
}

// Encode serializes a document tree to WordML markup.
//
// Deleted text separation is enforced here, independent of how the
// diff stage built the tree: any text leaf inside a w:del or
// w:moveFrom wrapper is written as w:delText/w:delInstrText, and plain
// w:t/w:instrText never appear inside one.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.DocumentType:
		if !es.fragment {
			if err := writeString(w, `<w:document xmlns:w="`+ir.WordmlNS+`"><w:body>`); err != nil {
				return err
			}
		}
		if err := encodeKids(n, w, es); err != nil {
			return err
		}
		if !es.fragment {
			return writeString(w, "</w:body></w:document>")
		}
		return nil
	case ir.ParagraphType:
		return encodeContainer(n, "w:p", w, es)
	case ir.TableType:
		return encodeContainer(n, "w:tbl", w, es)
	case ir.RowType:
		return encodeContainer(n, "w:tr", w, es)
	case ir.CellType:
		return encodeContainer(n, "w:tc", w, es)
	case ir.RunType:
		return encodeContainer(n, "w:r", w, es)
	case ir.TextType:
		if es.deleted {
			return encodeText(w, "w:delText", n.Text)
		}
		return encodeText(w, "w:t", n.Text)
	case ir.InstrTextType:
		if es.deleted {
			return encodeText(w, "w:delInstrText", n.Text)
		}
		return encodeText(w, "w:instrText", n.Text)
	case ir.DelTextType:
		return encodeText(w, "w:delText", n.Text)
	case ir.DelInstrTextType:
		return encodeText(w, "w:delInstrText", n.Text)
	case ir.InsType:
		return encodeRevision(n, "w:ins", true, false, w, es)
	case ir.DelType:
		return encodeRevision(n, "w:del", true, true, w, es)
	case ir.MoveFromType:
		return encodeRevision(n, "w:moveFrom", false, true, w, es)
	case ir.MoveToType:
		return encodeRevision(n, "w:moveTo", false, false, w, es)
	case ir.MoveFromRangeStartType:
		return encodeMarker(n, "w:moveFromRangeStart", w)
	case ir.MoveFromRangeEndType:
		return encodeMarker(n, "w:moveFromRangeEnd", w)
	case ir.MoveToRangeStartType:
		return encodeMarker(n, "w:moveToRangeStart", w)
	case ir.MoveToRangeEndType:
		return encodeMarker(n, "w:moveToRangeEnd", w)
	case ir.RawType:
		return writeString(w, n.Raw)
	}
	return nil
}

func encodeKids(n *ir.Node, w io.Writer, es *EncState) error {
	for _, kid := range n.Kids {
		if err := encode(kid, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeContainer(n *ir.Node, tag string, w io.Writer, es *EncState) error {
	if err := writeString(w, "<"+tag+">"); err != nil {
		return err
	}
	if n.Props != "" {
		if err := writeString(w, n.Props); err != nil {
			return err
		}
	}
	if err := encodeKids(n, w, es); err != nil {
		return err
	}
	return writeString(w, "</"+tag+">")
}

// encodeRevision writes a revision wrapper. withDate distinguishes
// ins/del (which carry w:date when set) from the move wrappers (which
// carry only id and author). deleted puts the subtree in delText
// semantics.
func encodeRevision(n *ir.Node, tag string, withDate, deleted bool, w io.Writer, es *EncState) error {
	id, author, date := 0, "", ""
	if n.Rev != nil {
		id, author, date = n.Rev.ID, n.Rev.Author, n.Rev.Date
	}
	if id < 0 {
		id = 0
	}
	if strings.TrimSpace(author) == "" {
		author = "Unknown"
	}
	if err := writeString(w, "<"+tag+` w:id="`+strconv.Itoa(id)+`" w:author="`); err != nil {
		return err
	}
	if err := escape(w, author); err != nil {
		return err
	}
	if err := writeString(w, `"`); err != nil {
		return err
	}
	if withDate && strings.TrimSpace(date) != "" {
		if err := writeString(w, ` w:date="`); err != nil {
			return err
		}
		if err := escape(w, date); err != nil {
			return err
		}
		if err := writeString(w, `"`); err != nil {
			return err
		}
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}
	inner := *es
	inner.deleted = deleted
	if err := encodeKids(n, w, &inner); err != nil {
		return err
	}
	return writeString(w, "</"+tag+">")
}

func encodeMarker(n *ir.Node, tag string, w io.Writer) error {
	id, name := 0, ""
	if n.Marker != nil {
		id, name = n.Marker.ID, n.Marker.Name
	}
	if id < 0 {
		id = 0
	}
	if err := writeString(w, "<"+tag+` w:id="`+strconv.Itoa(id)+`"`); err != nil {
		return err
	}
	if name != "" {
		if err := writeString(w, ` w:name="`); err != nil {
			return err
		}
		if err := escape(w, name); err != nil {
			return err
		}
		if err := writeString(w, `"`); err != nil {
			return err
		}
	}
	return writeString(w, "/>")
}

func encodeText(w io.Writer, tag, text string) error {
	open := "<" + tag + ">"
	if text != strings.TrimSpace(text) {
		open = "<" + tag + ` xml:space="preserve">`
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	if err := escape(w, text); err != nil {
		return err
	}
	return writeString(w, "</"+tag+">")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func escape(w io.Writer, s string) error {
	return xml.EscapeText(w, []byte(s))
}
