package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/redline-format/redline/encode"
	"github.com/redline-format/redline/ir"
	"github.com/redline-format/redline/parse"
)

const documentPart = "word/document.xml"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

var ErrNoDocumentPart = errors.New("word/document.xml not found in archive")

// Snapshot is a point-in-time document state: the parsed main
// document tree plus the original archive bytes it came from. A
// baseline Snapshot is created once per editing session and never
// mutated; exports diff fresh content against it.
type Snapshot struct {
	Doc      *ir.Node
	Original []byte
}

func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func ReadBytes(data []byte) (*Snapshot, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, ErrNoDocumentPart
	}
	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", documentPart, err)
	}
	defer rc.Close()
	xmlData, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", documentPart, err)
	}
	doc, err := parse.Parse(xmlData)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Doc: doc, Original: data}, nil
}

// Rebase returns a fresh baseline carrying the given content;
// diffing identical content against it produces zero revisions.
func (s *Snapshot) Rebase(current *ir.Node) *Snapshot {
	return &Snapshot{Doc: current.Clone(), Original: s.Original}
}

// WriteRevised repackages the snapshot's archive with doc as the main
// document part. Every other part is copied through unchanged.
func (s *Snapshot) WriteRevised(doc *ir.Node, w io.Writer) error {
	zr, err := zip.NewReader(bytes.NewReader(s.Original), int64(len(s.Original)))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	zw := zip.NewWriter(w)
	replaced := false
	for _, f := range zr.File {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return fmt.Errorf("create %s: %w", f.Name, err)
		}
		if f.Name == documentPart {
			if _, err := io.WriteString(fw, xmlHeader); err != nil {
				return err
			}
			if err := encode.Encode(doc, fw); err != nil {
				return fmt.Errorf("encode %s: %w", documentPart, err)
			}
			replaced = true
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open %s: %w", f.Name, err)
		}
		if _, err := io.Copy(fw, rc); err != nil {
			rc.Close()
			return fmt.Errorf("copy %s: %w", f.Name, err)
		}
		rc.Close()
	}
	if !replaced {
		return ErrNoDocumentPart
	}
	return zw.Close()
}

// WriteRevisedFile is WriteRevised to a file path.
func (s *Snapshot) WriteRevisedFile(doc *ir.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.WriteRevised(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
