// Package parse parses WordML markup into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// fragments work too
//	node, err := parse.ParseString(`<w:p><w:r><w:t>hi</w:t></w:r></w:p>`)
//
// # Related Packages
//
//   - github.com/redline-format/redline/ir - IR representation
//   - github.com/redline-format/redline/encode - encode IR to WordML
package parse
