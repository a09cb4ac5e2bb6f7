package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/redline-format/redline/ir"
)

// Parse decodes WordML markup into a document tree. The input may be
// a full w:document, a bare w:body, or a block sequence fragment.
//
// Each paragraph child is classified once by tag name into a closed
// set of kinds (run, insertion, deletion, moveFrom, moveTo, the four
// range markers) and parsed into the corresponding node type; markup
// outside that set is preserved verbatim as raw passthrough nodes.
// Parsing is a linear per-paragraph scan: range-marker pairing is the
// caller's concern, resolved by matching ids across the paragraph
// sequence.
//
// Metadata is normalized on the way in: a non-numeric or negative id
// becomes 0, an absent or blank author becomes "Unknown".
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	cfg := &ParseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = cfg.strict
	p := &parser{dec: dec}

	doc := &ir.Node{Type: ir.DocumentType}
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		t, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch t.Name.Local {
		case "document", "body":
			// descend; their end tags fall out of the token loop
		default:
			block, err := p.parseBlock(t)
			if err != nil {
				return nil, err
			}
			doc.Kids = append(doc.Kids, block)
		}
	}
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	dec *xml.Decoder
}

// childKind is the closed classification of paragraph children,
// resolved once at parse time so tag strings are never re-inspected
// downstream.
type childKind int

const (
	kindRaw childKind = iota
	kindProps
	kindRun
	kindInsertion
	kindDeletion
	kindMoveFrom
	kindMoveTo
	kindMoveFromRangeStart
	kindMoveFromRangeEnd
	kindMoveToRangeStart
	kindMoveToRangeEnd
)

func classifyChild(local string) childKind {
	switch local {
	case "pPr":
		return kindProps
	case "r":
		return kindRun
	case "ins":
		return kindInsertion
	case "del":
		return kindDeletion
	case "moveFrom":
		return kindMoveFrom
	case "moveTo":
		return kindMoveTo
	case "moveFromRangeStart":
		return kindMoveFromRangeStart
	case "moveFromRangeEnd":
		return kindMoveFromRangeEnd
	case "moveToRangeStart":
		return kindMoveToRangeStart
	case "moveToRangeEnd":
		return kindMoveToRangeEnd
	default:
		return kindRaw
	}
}

func (p *parser) parseBlock(start xml.StartElement) (*ir.Node, error) {
	switch start.Name.Local {
	case "p":
		return p.parseParagraph(start)
	case "tbl":
		return p.parseTable(start)
	default:
		raw, err := p.captureRaw(start)
		if err != nil {
			return nil, err
		}
		return ir.Raw(raw), nil
	}
}

func (p *parser) parseParagraph(start xml.StartElement) (*ir.Node, error) {
	para := &ir.Node{Type: ir.ParagraphType}
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: in paragraph: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if classifyChild(t.Name.Local) == kindProps {
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				para.Props = raw
				continue
			}
			kid, err := p.parseInline(t)
			if err != nil {
				return nil, err
			}
			para.Kids = append(para.Kids, kid)
		case xml.EndElement:
			if t.Name.Local == "p" {
				return para, nil
			}
		}
	}
}

func (p *parser) parseInline(start xml.StartElement) (*ir.Node, error) {
	switch classifyChild(start.Name.Local) {
	case kindRun:
		return p.parseRun(start)
	case kindInsertion:
		return p.parseWrapper(start, ir.InsType)
	case kindDeletion:
		return p.parseWrapper(start, ir.DelType)
	case kindMoveFrom:
		return p.parseWrapper(start, ir.MoveFromType)
	case kindMoveTo:
		return p.parseWrapper(start, ir.MoveToType)
	case kindMoveFromRangeStart:
		return p.parseMarker(start, ir.MoveFromRangeStartType)
	case kindMoveFromRangeEnd:
		return p.parseMarker(start, ir.MoveFromRangeEndType)
	case kindMoveToRangeStart:
		return p.parseMarker(start, ir.MoveToRangeStartType)
	case kindMoveToRangeEnd:
		return p.parseMarker(start, ir.MoveToRangeEndType)
	default:
		raw, err := p.captureRaw(start)
		if err != nil {
			return nil, err
		}
		return ir.Raw(raw), nil
	}
}

func (p *parser) parseRun(start xml.StartElement) (*ir.Node, error) {
	run := &ir.Node{Type: ir.RunType}
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: in run: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				run.Props = raw
			case "t":
				text, err := p.readText(t)
				if err != nil {
					return nil, err
				}
				run.Kids = append(run.Kids, ir.Text(text))
			case "instrText":
				text, err := p.readText(t)
				if err != nil {
					return nil, err
				}
				run.Kids = append(run.Kids, ir.InstrText(text))
			case "delText":
				text, err := p.readText(t)
				if err != nil {
					return nil, err
				}
				run.Kids = append(run.Kids, ir.DelText(text))
			case "delInstrText":
				text, err := p.readText(t)
				if err != nil {
					return nil, err
				}
				run.Kids = append(run.Kids, ir.DelInstrText(text))
			default:
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				run.Kids = append(run.Kids, ir.Raw(raw))
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return run, nil
			}
		}
	}
}

func (p *parser) parseWrapper(start xml.StartElement, typ ir.Type) (*ir.Node, error) {
	node := &ir.Node{Type: typ, Rev: revisionFromAttrs(start.Attr)}
	endName := start.Name.Local
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: in %s: %v", ErrParse, endName, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			kid, err := p.parseInline(t)
			if err != nil {
				return nil, err
			}
			node.Kids = append(node.Kids, kid)
		case xml.EndElement:
			if t.Name.Local == endName {
				return node, nil
			}
		}
	}
}

func (p *parser) parseMarker(start xml.StartElement, typ ir.Type) (*ir.Node, error) {
	m := &ir.Marker{ID: intAttr(start.Attr, "id")}
	if name, ok := strAttr(start.Attr, "name"); ok {
		m.Name = name
	}
	if err := p.dec.Skip(); err != nil {
		return nil, fmt.Errorf("%w: in marker: %v", ErrParse, err)
	}
	return ir.RangeMarker(typ, m), nil
}

func (p *parser) parseTable(start xml.StartElement) (*ir.Node, error) {
	tbl := &ir.Node{Type: ir.TableType}
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: in table: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tblPr":
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				tbl.Props = raw
			case "tr":
				row, err := p.parseRow(t)
				if err != nil {
					return nil, err
				}
				tbl.Kids = append(tbl.Kids, row)
			default:
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				tbl.Kids = append(tbl.Kids, ir.Raw(raw))
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return tbl, nil
			}
		}
	}
}

func (p *parser) parseRow(start xml.StartElement) (*ir.Node, error) {
	row := &ir.Node{Type: ir.RowType}
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: in row: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "trPr":
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				row.Props = raw
			case "tc":
				cell, err := p.parseCell(t)
				if err != nil {
					return nil, err
				}
				row.Kids = append(row.Kids, cell)
			default:
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				row.Kids = append(row.Kids, ir.Raw(raw))
			}
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

func (p *parser) parseCell(start xml.StartElement) (*ir.Node, error) {
	cell := &ir.Node{Type: ir.CellType}
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: in cell: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tcPr" {
				raw, err := p.captureRaw(t)
				if err != nil {
					return nil, err
				}
				cell.Props = raw
				continue
			}
			block, err := p.parseBlock(t)
			if err != nil {
				return nil, err
			}
			cell.Kids = append(cell.Kids, block)
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return cell, nil
			}
		}
	}
}

// readText accumulates the character data of a text element,
// tolerating and discarding nested markup.
func (p *parser) readText(start xml.StartElement) (string, error) {
	var b strings.Builder
	depth := 1
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return "", fmt.Errorf("%w: in %s: %v", ErrParse, start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				return b.String(), nil
			}
		}
	}
}

// captureRaw re-renders an element and its content verbatim so
// unmodeled markup survives a parse/encode round trip. Namespace
// prefixes are reconstructed for the wordprocessing and xml
// namespaces; foreign prefixes collapse to local names.
func (p *parser) captureRaw(start xml.StartElement) (string, error) {
	var b strings.Builder
	writeStart(&b, start)
	depth := 1
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return "", fmt.Errorf("%w: in %s: %v", ErrParse, start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			writeStart(&b, t)
			depth++
		case xml.EndElement:
			depth--
			b.WriteString("</" + qname(t.Name) + ">")
			if depth == 0 {
				return b.String(), nil
			}
		case xml.CharData:
			xml.EscapeText(&b, t)
		}
	}
}

func writeStart(b *strings.Builder, t xml.StartElement) {
	b.WriteString("<" + qname(t.Name))
	for _, a := range t.Attr {
		b.WriteString(" " + attrName(a.Name) + `="`)
		xml.EscapeText(b, []byte(a.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
}

func qname(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "w", ir.WordmlNS:
		return "w:" + n.Local
	case "xml", "http://www.w3.org/XML/1998/namespace":
		return "xml:" + n.Local
	default:
		return n.Local
	}
}

func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return qname(n)
}

// revisionFromAttrs builds revision metadata with read-side
// normalization: id 0 on parse failure or negative input, author
// "Unknown" when absent or blank, date carried as written.
func revisionFromAttrs(attrs []xml.Attr) *ir.Revision {
	rev := &ir.Revision{Author: "Unknown"}
	if author, ok := strAttr(attrs, "author"); ok && strings.TrimSpace(author) != "" {
		rev.Author = author
	}
	rev.ID = intAttr(attrs, "id")
	if date, ok := strAttr(attrs, "date"); ok {
		rev.Date = date
	}
	return rev
}

func strAttr(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func intAttr(attrs []xml.Attr, local string) int {
	s, ok := strAttr(attrs, local)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
