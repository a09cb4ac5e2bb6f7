package redline

import (
	"testing"

	"github.com/redline-format/redline/encode"
	"github.com/redline-format/redline/ir"
	"github.com/redline-format/redline/parse"

	"github.com/google/go-cmp/cmp"
)

func doc(texts ...string) *ir.Node {
	d := ir.Document()
	for _, t := range texts {
		d.Append(ir.Paragraph(ir.Run(t)))
	}
	return d
}

type revInfo struct {
	Type   ir.Type
	ID     int
	Author string
	Date   string
}

func collectRevs(n *ir.Node) []revInfo {
	var out []revInfo
	n.Visit(func(k *ir.Node, isPost bool) (bool, error) {
		if !isPost && k.Rev != nil {
			out = append(out, revInfo{k.Type, k.Rev.ID, k.Rev.Author, k.Rev.Date})
		}
		return true, nil
	})
	return out
}

func collectMarkers(n *ir.Node) []*ir.Node {
	var out []*ir.Node
	n.Visit(func(k *ir.Node, isPost bool) (bool, error) {
		if !isPost && k.Type.IsRangeMarker() {
			out = append(out, k)
		}
		return true, nil
	})
	return out
}

var opts = Options{Enabled: true, Author: "Reviewer", Date: "2024-03-01T10:00:00Z"}

func TestReviseInsertedParagraph(t *testing.T) {
	base := doc("first")
	cur := doc("first", "second")
	res := Revise(base, cur, opts)

	revs := collectRevs(res)
	if len(revs) != 1 {
		t.Fatalf("got revisions %v, want one insertion", revs)
	}
	r := revs[0]
	if r.Type != ir.InsType {
		t.Errorf("type: got %s, want Ins", r.Type)
	}
	if r.ID < 1 {
		t.Errorf("id: got %d, want >= 1", r.ID)
	}
	if r.Author != "Reviewer" {
		t.Errorf("author: got %q", r.Author)
	}
	if r.Date != "2024-03-01T10:00:00Z" {
		t.Errorf("date: got %q", r.Date)
	}
	if got := ir.RenderText(res); got != "firstsecond" {
		t.Errorf("visible text: %q", got)
	}
}

func TestReviseDeletedText(t *testing.T) {
	base := doc("Baseline text")
	cur := doc("aseline text")
	res := Revise(base, cur, opts)

	revs := collectRevs(res)
	if len(revs) != 1 || revs[0].Type != ir.DelType {
		t.Fatalf("got revisions %v, want one deletion", revs)
	}
	if revs[0].Date == "" {
		t.Errorf("deletion missing date")
	}
	if got := ir.RemovedText(res); got != "B" {
		t.Errorf("removed text: %q, want \"B\"", got)
	}
	if got := ir.RenderText(res); got != "aseline text" {
		t.Errorf("visible text: %q", got)
	}
}

func TestReviseMove(t *testing.T) {
	base := doc("Alpha", "Beta", "Gamma")
	cur := doc("Beta", "Gamma", "Alpha")
	res := Revise(base, cur, opts)

	var from, to revInfo
	for _, r := range collectRevs(res) {
		switch r.Type {
		case ir.MoveFromType:
			from = r
		case ir.MoveToType:
			to = r
		case ir.InsType, ir.DelType:
			t.Errorf("relocation produced %s", r.Type)
		}
	}
	if from.ID == 0 || to.ID == 0 {
		t.Fatalf("missing move pair: %v", collectRevs(res))
	}
	// move wrappers carry author but never a date
	if from.Date != "" || to.Date != "" {
		t.Errorf("move wrappers have dates: %q %q", from.Date, to.Date)
	}
	if from.Author != "Reviewer" || to.Author != "Reviewer" {
		t.Errorf("authors: %q %q", from.Author, to.Author)
	}

	markers := collectMarkers(res)
	if len(markers) != 4 {
		t.Fatalf("got %d range markers, want 4", len(markers))
	}
	id := markers[0].Marker.ID
	for _, m := range markers {
		if m.Marker.ID != id {
			t.Errorf("marker ids disagree: %d vs %d", m.Marker.ID, id)
		}
		isStart := m.Type == ir.MoveFromRangeStartType || m.Type == ir.MoveToRangeStartType
		if isStart && m.Marker.Name == "" {
			t.Errorf("%s missing name", m.Type)
		}
		if !isStart && m.Marker.Name != "" {
			t.Errorf("%s has name %q, want none", m.Type, m.Marker.Name)
		}
	}
	if got := ir.RenderText(res); got != "BetaGammaAlpha" {
		t.Errorf("visible text: %q", got)
	}
}

func TestReviseIdentical(t *testing.T) {
	d := doc("one", "two")
	res := Revise(d, doc("one", "two"), opts)
	if revs := collectRevs(res); len(revs) != 0 {
		t.Errorf("identical snapshots produced revisions: %v", revs)
	}
}

func TestReviseDisabledAndMissingBaseline(t *testing.T) {
	cur := doc("content")

	res := Revise(doc("other"), cur, Options{Enabled: false})
	if diff := cmp.Diff(cur, res); diff != "" {
		t.Errorf("disabled tracking (-cur +got):\n%s", diff)
	}

	res = Revise(nil, cur, opts)
	if diff := cmp.Diff(cur, res); diff != "" {
		t.Errorf("nil baseline (-cur +got):\n%s", diff)
	}

	if Revise(doc("x"), nil, opts) != nil {
		t.Errorf("nil current should yield nil")
	}
}

func TestReviseIDsAboveExisting(t *testing.T) {
	base := doc("kept", "gone")
	// baseline already carries a revision from a prior export
	base.Kids[0].Kids[0] = ir.Ins(&ir.Revision{ID: 40, Author: "Earlier"}, base.Kids[0].Kids[0])
	cur := doc("kept", "added")
	res := Revise(base, cur, opts)

	seen := map[int]bool{}
	for _, r := range collectRevs(res) {
		if r.Author == "Earlier" {
			continue
		}
		if r.ID <= 40 {
			t.Errorf("id %d not above baseline max 40", r.ID)
		}
		if seen[r.ID] {
			t.Errorf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
	for _, m := range collectMarkers(res) {
		if m.Marker.ID <= 40 {
			t.Errorf("marker id %d not above baseline max 40", m.Marker.ID)
		}
	}
}

func TestReviseDoesNotMutateInputs(t *testing.T) {
	base := doc("shared", "removed")
	cur := doc("shared", "added")
	baseCopy := base.Clone()
	curCopy := cur.Clone()

	Revise(base, cur, opts)

	if diff := cmp.Diff(baseCopy, base); diff != "" {
		t.Errorf("baseline mutated:\n%s", diff)
	}
	if diff := cmp.Diff(curCopy, cur); diff != "" {
		t.Errorf("current mutated:\n%s", diff)
	}
}

func TestReviseNormalizesMetadata(t *testing.T) {
	base := doc("a")
	cur := doc("a", "b")
	res := Revise(base, cur, Options{Enabled: true, Author: "  ", Date: "2024-03-01T10:00:00+02:00"})

	revs := collectRevs(res)
	if len(revs) != 1 {
		t.Fatalf("got %v", revs)
	}
	if revs[0].Author != UnknownAuthor {
		t.Errorf("author: got %q, want %q", revs[0].Author, UnknownAuthor)
	}
	if revs[0].Date != "2024-03-01T08:00:00Z" {
		t.Errorf("date not normalized to UTC Z: %q", revs[0].Date)
	}
}

func TestReviseSerializeParseStable(t *testing.T) {
	// classification survives a serialize/parse cycle
	base := doc("one", "two", "three")
	cur := doc("three", "one", "changed two")
	res := Revise(base, cur, opts)

	markup := encode.MustString(res)
	back, err := parse.ParseString(markup)
	if err != nil {
		t.Fatal(err)
	}

	want := encode.ListRevisions(res)
	got := encode.ListRevisions(back)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("revision listing drifted (-want +got):\n%s", diff)
	}

	// marker pairing survives too
	orig := collectMarkers(res)
	reparsed := collectMarkers(back)
	if len(orig) != len(reparsed) {
		t.Fatalf("marker count: got %d, want %d", len(reparsed), len(orig))
	}
	for i := range orig {
		if orig[i].Type != reparsed[i].Type || orig[i].Marker.ID != reparsed[i].Marker.ID {
			t.Errorf("marker %d: got %s id=%d, want %s id=%d",
				i, reparsed[i].Type, reparsed[i].Marker.ID, orig[i].Type, orig[i].Marker.ID)
		}
	}
}

func TestAcceptUndoesRevise(t *testing.T) {
	base := doc("one", "two", "three")
	cur := doc("three", "two changed", "four")
	res := Revise(base, cur, opts)

	accepted := Accept(res)
	if got, want := ir.RenderText(accepted), ir.RenderText(cur); got != want {
		t.Errorf("accepted text %q, want %q", got, want)
	}
	if revs := collectRevs(accepted); len(revs) != 0 {
		t.Errorf("accepted tree still carries revisions: %v", revs)
	}
	if markers := collectMarkers(accepted); len(markers) != 0 {
		t.Errorf("accepted tree still carries markers")
	}

	// re-baselining on the accepted tree diffs to zero
	again := Revise(accepted, cur, opts)
	if revs := collectRevs(again); len(revs) != 0 {
		t.Errorf("re-export after accept produced revisions: %v", revs)
	}
}

func TestAcceptDropsEmptiedParagraph(t *testing.T) {
	base := doc("kept", "doomed")
	cur := doc("kept")
	res := Revise(base, cur, opts)

	accepted := Accept(res)
	if got := len(accepted.Kids); got != 1 {
		t.Fatalf("got %d paragraphs, want 1", got)
	}
	if got := ir.RenderText(accepted); got != "kept" {
		t.Errorf("accepted text: %q", got)
	}
}
