package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// One process-wide seed so fingerprints of distinct nodes are
// comparable to each other.
var fingerprintSeed = maphash.MakeSeed()

// Fingerprint returns a content key for block matching: a 64-bit hash
// of the node's structural shape and rendered text. Properties and raw
// passthrough markup are excluded, so attribute-only differences
// produce equal fingerprints. It panics if n is nil.
func (n *Node) Fingerprint() uint64 {
	if n == nil {
		panic("ir: Fingerprint called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(fingerprintSeed)
	fingerprint(n, &h)
	return h.Sum64()
}

func fingerprint(n *Node, h *maphash.Hash) {
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case ParagraphType:
		h.WriteString(RenderText(n))
	case TableType, RowType, CellType, DocumentType:
		var b [8]byte
		for _, kid := range n.Kids {
			// Combine child fingerprints order-dependently.
			binary.LittleEndian.PutUint64(b[:], kid.Fingerprint())
			h.Write(b[:])
		}
	default:
		h.WriteString(RenderText(n))
	}
}
