// Package encode writes [tree.Node] documents as block style YAML.
//
// # Usage
//
//	node := tree.FromPairs("name", "alice", "game", "Ocarina of Time")
//	err := encode.Encode(node, os.Stdout)
//
//	// several documents, each preceded by "---"
//	err = encode.EncodeDocuments(docs, w, encode.EncodeIndent(2))
//
// Mappings and sequences are written in block style, empty ones as {} and
// []. Strings that span lines are written as literal blocks. Composite
// mapping keys use the explicit "? " form with the key in flow style.
//
// # Related Packages
//
//   - github.com/Totox00/multiarchi-tools/tree - the document tree
//   - github.com/Totox00/multiarchi-tools/parse - text to tree
package encode
