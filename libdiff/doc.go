// Package libdiff implements the block and run differencers: sequence
// alignment of blocks keyed on content fingerprints, move detection
// over the unmatched remainder, character-level run diffing mapped
// back onto run boundaries, and positional table recursion.
//
// The entry point for callers is DiffBlocks; Align and DiffPara are
// exported for direct use and testing. Revision metadata on the
// produced wrappers is left unset for the caller to stamp.
package libdiff
