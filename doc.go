// Package redline is a track-changes revision engine for
// wordprocessing documents: it diffs two full snapshots of a document
// tree and produces the minimal set of tracked insertions, deletions
// and moves, stamped with collision-free revision ids and author
// metadata, ready for WordML serialization.
//
// The typical flow:
//
//	baseline, _ := docx.Read("old.docx")
//	current, _ := docx.Read("new.docx")
//	revised := redline.Revise(baseline.Doc, current.Doc, redline.Options{
//	    Enabled: true,
//	    Author:  "Reviewer",
//	    Date:    "2026-01-02T10:04:05+02:00",
//	})
//	baseline.WriteRevisedFile(revised, "tracked.docx")
//
// Revise is purely computational: no I/O, no clock reads, no shared
// state. Each call seeds its own id allocator from the input trees, so
// concurrent exports of independent documents are safe.
package redline
