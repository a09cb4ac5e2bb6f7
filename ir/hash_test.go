package ir

import "testing"

func TestFingerprintIgnoresProps(t *testing.T) {
	a := Paragraph(Run("same")).WithProps(`<w:pPr><w:jc w:val="left"/></w:pPr>`)
	b := Paragraph(Run("same").WithProps(`<w:rPr><w:b/></w:rPr>`))
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("attribute-only difference changed the fingerprint")
	}
}

func TestFingerprintSeesText(t *testing.T) {
	a := Paragraph(Run("one"))
	b := Paragraph(Run("two"))
	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("different text hashed equal")
	}
}

func TestFingerprintSeesType(t *testing.T) {
	p := Paragraph(Run("x"))
	tbl := Table(Row(Cell(Paragraph(Run("x")))))
	if p.Fingerprint() == tbl.Fingerprint() {
		t.Errorf("paragraph and table hashed equal")
	}
}

func TestFingerprintTableRowOrder(t *testing.T) {
	a := Table(
		Row(Cell(Paragraph(Run("1")))),
		Row(Cell(Paragraph(Run("2")))),
	)
	b := Table(
		Row(Cell(Paragraph(Run("2")))),
		Row(Cell(Paragraph(Run("1")))),
	)
	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("row order not reflected")
	}
}

func TestFingerprintStable(t *testing.T) {
	p := Paragraph(Run("steady"))
	first := p.Fingerprint()
	for i := 0; i < 5; i++ {
		if p.Fingerprint() != first {
			t.Fatalf("fingerprint changed between calls")
		}
	}
}

func TestFingerprintRevisionStateVisible(t *testing.T) {
	// insertion content renders, so it participates; deleted content
	// does not
	plain := Paragraph(Run("text"))
	withIns := Paragraph(Ins(&Revision{ID: 1, Author: "A"}, Run("text")))
	if plain.Fingerprint() != withIns.Fingerprint() {
		t.Errorf("insertion wrapper changed rendered-content fingerprint")
	}
	withDel := Paragraph(
		Run("text"),
		Del(&Revision{ID: 2, Author: "A"},
			&Node{Type: RunType, Kids: []*Node{DelText("gone")}}),
	)
	if plain.Fingerprint() != withDel.Fingerprint() {
		t.Errorf("deleted content leaked into fingerprint")
	}
}
