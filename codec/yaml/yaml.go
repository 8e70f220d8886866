package yaml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-conf/node"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when a document's top level is not a mapping.
var ErrNotMapping = errors.New("document root must be a mapping")

// Codec implements codec.Codec for YAML documents using goccy/go-yaml.
// It captures comments during Decode and replays them on Encode. One
// instance serves one document.
type Codec struct {
	comments yaml.CommentMap
}

// New creates a YAML codec for a single document.
func New() *Codec {
	return &Codec{comments: yaml.CommentMap{}}
}

// Decode parses YAML bytes into a node tree. Empty and whitespace-only
// input decodes to an empty document.
func (c *Codec) Decode(data []byte) (*node.Node, error) {
	if strings.TrimSpace(string(data)) == "" {
		return node.NewRoot(), nil
	}

	var value any

	err := yaml.UnmarshalWithOptions(data, &value, yaml.CommentToMap(c.comments))
	if err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if value == nil {
		return node.NewRoot(), nil
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, value)
	}

	return node.FromMap(mapping), nil
}

// Encode serializes a node tree to YAML bytes, replaying any comments
// captured by a previous Decode. An empty document encodes to empty bytes
// rather than an explicit empty mapping.
func (c *Codec) Encode(root *node.Node) ([]byte, error) {
	mapping := root.Map()
	if mapping == nil {
		return nil, ErrNotMapping
	}

	if len(mapping) == 0 {
		return []byte{}, nil
	}

	if len(c.comments) > 0 {
		data, err := yaml.MarshalWithOptions(mapping, yaml.WithComment(c.comments))
		if err == nil {
			return data, nil
		}
		// A comment whose anchor key was removed from the document must
		// not fail the save; drop comments and encode the values.
	}

	data, err := yaml.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return data, nil
}
