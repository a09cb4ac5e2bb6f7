package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCloneIsDeep(t *testing.T) {
	orig := Paragraph(
		Ins(&Revision{ID: 1, Author: "A", Date: "2024-03-01T10:00:00Z"}, Run("x")),
		RangeMarker(MoveToRangeStartType, &Marker{ID: 2, Name: "move2"}),
	).WithProps(`<w:pPr/>`)
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs:\n%s", diff)
	}

	c.Kids[0].Rev.Author = "B"
	c.Kids[1].Marker.ID = 99
	c.Kids[0].Kids[0].Kids[0].Text = "changed"
	if orig.Kids[0].Rev.Author != "A" {
		t.Errorf("revision shared between clone and original")
	}
	if orig.Kids[1].Marker.ID != 2 {
		t.Errorf("marker shared between clone and original")
	}
	if orig.Kids[0].Kids[0].Kids[0].Text != "x" {
		t.Errorf("text leaf shared between clone and original")
	}
}

func TestVisitOrderAndSkip(t *testing.T) {
	d := Document(
		Paragraph(Run("a")),
		Paragraph(Ins(&Revision{ID: 1, Author: "A"}, Run("b"))),
	)
	var pre []Type
	d.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		pre = append(pre, n.Type)
		// skip insertion subtrees
		return n.Type != InsType, nil
	})
	want := []Type{
		DocumentType,
		ParagraphType, RunType, TextType,
		ParagraphType, InsType,
	}
	if diff := cmp.Diff(want, pre); diff != "" {
		t.Errorf("preorder (-want +got):\n%s", diff)
	}
}

func TestTypeRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		var got Type
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("%s: marshal: %v", typ, err)
		}
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("%s: unmarshal: %v", typ, err)
		}
		if got != typ {
			t.Errorf("round trip: %s became %s", typ, got)
		}
	}
}

func TestTypePredicates(t *testing.T) {
	for _, tc := range []struct {
		typ      Type
		revision bool
		marker   bool
		text     bool
	}{
		{InsType, true, false, false},
		{DelType, true, false, false},
		{MoveFromType, true, false, false},
		{MoveToType, true, false, false},
		{MoveFromRangeStartType, false, true, false},
		{MoveToRangeEndType, false, true, false},
		{TextType, false, false, true},
		{DelInstrTextType, false, false, true},
		{ParagraphType, false, false, false},
		{RawType, false, false, false},
	} {
		if got := tc.typ.IsRevision(); got != tc.revision {
			t.Errorf("%s.IsRevision() = %v", tc.typ, got)
		}
		if got := tc.typ.IsRangeMarker(); got != tc.marker {
			t.Errorf("%s.IsRangeMarker() = %v", tc.typ, got)
		}
		if got := tc.typ.IsText(); got != tc.text {
			t.Errorf("%s.IsText() = %v", tc.typ, got)
		}
	}
}
