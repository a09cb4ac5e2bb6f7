// Package ir provides the intermediate representation (IR) for
// wordprocessing document content handled by the revision engine.
//
// # Overview
//
// A document is a tree of Node values: a document holds blocks
// (paragraphs and tables), a table holds rows, a row holds cells, and
// a cell recursively holds blocks. Paragraph content is a flat
// sequence of inline items: runs, revision wrappers (ins, del,
// moveFrom, moveTo), move range markers, and raw passthrough markup.
//
// The IR works as a recursive tagged union structure: a single Node
// struct with a closed Type enum, where values are placed in fields
// depending on the node type. Consumers switch exhaustively on Type at
// every recursion site.
//
// # Node Types
//
//   - DocumentType: block sequence root
//   - ParagraphType, TableType, RowType, CellType: block structure
//   - RunType: formatted inline text container
//   - TextType, InstrTextType: live text leaves
//   - DelTextType, DelInstrTextType: deleted text leaves
//   - InsType, DelType, MoveFromType, MoveToType: revision wrappers,
//     carrying a *Revision
//   - MoveFromRangeStartType .. MoveToRangeEndType: paired move range
//     markers, carrying a *Marker
//   - RawType: unmodeled markup preserved verbatim
//
// # Fingerprints
//
// Fingerprint produces a content key from rendered text and structural
// shape. Two blocks with equal fingerprints are considered the same
// content for diffing purposes even if their property markup differs.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes before sharing them
// across goroutines.
//
// # Related Packages
//
//   - github.com/redline-format/redline/parse - parses WordML into IR nodes
//   - github.com/redline-format/redline/encode - encodes IR nodes to WordML
//   - github.com/redline-format/redline/libdiff - block and run differencers
package ir
