package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/redline-format/redline"
	"github.com/redline-format/redline/ir"
)

func makeArchive(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(w, body); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const minimalDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + ir.WordmlNS + `"><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`

func TestReadBytes(t *testing.T) {
	data := makeArchive(t, map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml":   minimalDoc,
		"word/styles.xml":     `<w:styles/>`,
	})
	snap, err := ReadBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.RenderText(snap.Doc); got != "hello" {
		t.Errorf("document text: %q", got)
	}
	if !bytes.Equal(snap.Original, data) {
		t.Errorf("original bytes not retained")
	}
}

func TestReadBytesMissingPart(t *testing.T) {
	data := makeArchive(t, map[string]string{
		"[Content_Types].xml": `<Types/>`,
	})
	if _, err := ReadBytes(data); !errors.Is(err, ErrNoDocumentPart) {
		t.Errorf("got %v, want ErrNoDocumentPart", err)
	}
}

func TestReadBytesNotAZip(t *testing.T) {
	if _, err := ReadBytes([]byte("plain text")); err == nil {
		t.Errorf("garbage accepted as archive")
	}
}

func TestWriteRevisedRoundTrip(t *testing.T) {
	data := makeArchive(t, map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml":   minimalDoc,
		"word/styles.xml":     `<w:styles custom="yes"/>`,
	})
	snap, err := ReadBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	current := ir.Document(
		ir.Paragraph(ir.Run("hello")),
		ir.Paragraph(ir.Run("appended")),
	)
	revised := redline.Revise(snap.Doc, current, redline.Options{
		Enabled: true,
		Author:  "Reviewer",
		Date:    "2024-03-01T10:00:00Z",
	})

	var out bytes.Buffer
	if err := snap.WriteRevised(revised, &out); err != nil {
		t.Fatal(err)
	}

	again, err := ReadBytes(out.Bytes())
	if err != nil {
		t.Fatalf("rewritten archive unreadable: %v", err)
	}
	if got := ir.RenderText(again.Doc); got != "helloappended" {
		t.Errorf("revised text: %q", got)
	}
	insertions := 0
	again.Doc.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if !isPost && n.Type == ir.InsType {
			insertions++
		}
		return true, nil
	})
	if insertions != 1 {
		t.Errorf("got %d insertions after round trip, want 1", insertions)
	}

	// untouched parts pass through byte for byte
	zr, err := zip.NewReader(bytes.NewReader(out.Bytes()), int64(out.Len()))
	if err != nil {
		t.Fatal(err)
	}
	found := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		found[f.Name] = string(body)
	}
	if found["word/styles.xml"] != `<w:styles custom="yes"/>` {
		t.Errorf("styles part altered: %q", found["word/styles.xml"])
	}
	if !strings.HasPrefix(found["word/document.xml"], `<?xml version="1.0"`) {
		t.Errorf("document part missing xml declaration: %q", found["word/document.xml"][:40])
	}
}

func TestRebase(t *testing.T) {
	data := makeArchive(t, map[string]string{
		"word/document.xml": minimalDoc,
	})
	snap, err := ReadBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	current := ir.Document(ir.Paragraph(ir.Run("edited")))
	fresh := snap.Rebase(current)

	res := redline.Revise(fresh.Doc, current, redline.Options{Enabled: true, Author: "A"})
	res.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if !isPost && n.Type.IsRevision() {
			t.Errorf("rebased baseline still diffs: %s", n.Type)
		}
		return true, nil
	})
	// the rebased tree is a clone, not an alias
	current.Kids[0].Kids[0].Kids[0].Text = "mutated"
	if ir.RenderText(fresh.Doc) != "edited" {
		t.Errorf("rebase aliased the current tree")
	}
}
