// Package encode serializes IR nodes to WordML markup and provides
// terminal-oriented renderings of revision-tagged trees.
//
// # Related Packages
//
//   - github.com/redline-format/redline/ir - IR representation
//   - github.com/redline-format/redline/parse - parse WordML into IR
package encode
