// Package parse parses YAML text into [tree.Node] documents.
//
// # Usage
//
//	docs, err := parse.Parse(data, parse.ParseFilename("player.yaml"))
//	if err != nil {
//	    return err
//	}
//
// Each document of a stream becomes one node. Anchored values are copied
// into the places that alias them, unless [ParseKeepAliases] is given.
// Comments are not kept in the tree; see package comments.
//
// # Related Packages
//
//   - github.com/Totox00/multiarchi-tools/tree - the document tree
//   - github.com/Totox00/multiarchi-tools/encode - tree to text
//   - github.com/Totox00/multiarchi-tools/comments - comment round trips
package parse
