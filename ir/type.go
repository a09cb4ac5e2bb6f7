package ir

import "fmt"

type Type int

const (
	DocumentType Type = iota
	ParagraphType
	TableType
	RowType
	CellType
	RunType
	TextType
	InstrTextType
	DelTextType
	DelInstrTextType
	InsType
	DelType
	MoveFromType
	MoveToType
	MoveFromRangeStartType
	MoveFromRangeEndType
	MoveToRangeStartType
	MoveToRangeEndType
	RawType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		DocumentType:           "Document",
		ParagraphType:          "Paragraph",
		TableType:              "Table",
		RowType:                "Row",
		CellType:               "Cell",
		RunType:                "Run",
		TextType:               "Text",
		InstrTextType:          "InstrText",
		DelTextType:            "DelText",
		DelInstrTextType:       "DelInstrText",
		InsType:                "Ins",
		DelType:                "Del",
		MoveFromType:           "MoveFrom",
		MoveToType:             "MoveTo",
		MoveFromRangeStartType: "MoveFromRangeStart",
		MoveFromRangeEndType:   "MoveFromRangeEnd",
		MoveToRangeStartType:   "MoveToRangeStart",
		MoveToRangeEndType:     "MoveToRangeEnd",
		RawType:                "Raw",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Document":           DocumentType,
		"Paragraph":          ParagraphType,
		"Table":              TableType,
		"Row":                RowType,
		"Cell":               CellType,
		"Run":                RunType,
		"Text":               TextType,
		"InstrText":          InstrTextType,
		"DelText":            DelTextType,
		"DelInstrText":       DelInstrTextType,
		"Ins":                InsType,
		"Del":                DelType,
		"MoveFrom":           MoveFromType,
		"MoveTo":             MoveToType,
		"MoveFromRangeStart": MoveFromRangeStartType,
		"MoveFromRangeEnd":   MoveFromRangeEndType,
		"MoveToRangeStart":   MoveToRangeStartType,
		"MoveToRangeEnd":     MoveToRangeEndType,
		"Raw":                RawType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		DocumentType,
		ParagraphType,
		TableType,
		RowType,
		CellType,
		RunType,
		TextType,
		InstrTextType,
		DelTextType,
		DelInstrTextType,
		InsType,
		DelType,
		MoveFromType,
		MoveToType,
		MoveFromRangeStartType,
		MoveFromRangeEndType,
		MoveToRangeStartType,
		MoveToRangeEndType,
		RawType,
	}
}

// IsBlock reports whether nodes of type t live in a block sequence
// (document body or table cell content).
func (t Type) IsBlock() bool {
	switch t {
	case ParagraphType, TableType:
		return true
	default:
		return false
	}
}

// IsRevision reports whether t wraps content attributed to a tracked
// change.
func (t Type) IsRevision() bool {
	switch t {
	case InsType, DelType, MoveFromType, MoveToType:
		return true
	default:
		return false
	}
}

// IsRangeMarker reports whether t is one of the four paired move range
// marker types.
func (t Type) IsRangeMarker() bool {
	switch t {
	case MoveFromRangeStartType, MoveFromRangeEndType,
		MoveToRangeStartType, MoveToRangeEndType:
		return true
	default:
		return false
	}
}

// IsText reports whether t is a textual leaf inside a run.
func (t Type) IsText() bool {
	switch t {
	case TextType, InstrTextType, DelTextType, DelInstrTextType:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether nodes of type t never carry children.
func (t Type) IsLeaf() bool {
	switch t {
	case DocumentType, ParagraphType, TableType, RowType, CellType,
		RunType, InsType, DelType, MoveFromType, MoveToType:
		return false
	default:
		return true
	}
}
