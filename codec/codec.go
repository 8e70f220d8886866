// Package codec defines the seam between configuration documents as bytes
// and documents as node trees.
//
// A Codec instance belongs to a single document: formatting-preserving
// implementations carry per-document state (such as comments captured
// during Decode) from one call to the next. See codec/yaml for the default
// implementation.
package codec

import "github.com/0xalexb/hjarta-conf/node"

// Codec converts configuration documents between their serialized form and
// an in-memory node tree.
type Codec interface {
	// Decode parses serialized document bytes into a node tree. Empty
	// input decodes to an empty document, not an error.
	Decode(data []byte) (*node.Node, error)

	// Encode serializes a node tree back to document bytes.
	Encode(root *node.Node) ([]byte, error)
}
