// Package docx handles the .docx container around the revision
// engine: reading the main document part out of the archive into a
// Snapshot and repackaging a revised tree back into a copy of it. The
// engine itself never touches archive I/O.
package docx
