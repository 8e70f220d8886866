package node

import (
	"errors"
	"fmt"
	"sort"
)

// ErrRootNotMapping is returned when setting a root node to a non-mapping value.
var ErrRootNotMapping = errors.New("root value must be a mapping")

// ErrNotMapping is returned when writing through a node whose value is not a mapping.
var ErrNotMapping = errors.New("value is not a mapping")

// ErrListBounds is returned when writing to a list index that does not exist.
var ErrListBounds = errors.New("list index out of range")

// ErrKeyType is returned when navigating or writing with an unsupported key type.
var ErrKeyType = errors.New("key must be a string or an int")

// Node is a handle to a position within a configuration document.
//
// A Node either holds a value or is virtual: navigating past a key that was
// never set yields a virtual node rather than an error. Reads on a virtual
// node return zero values; a Set on a virtual node materializes its path
// inside the document.
//
// Nodes reference the document they were navigated from, so mutations made
// through one handle are visible to reads through another. A Node is not
// safe for concurrent use.
type Node struct {
	value  any
	exists bool
	parent *Node
	key    any
}

// NewRoot creates an empty document root.
func NewRoot() *Node {
	return &Node{value: map[string]any{}, exists: true}
}

// FromMap creates a document root over an existing mapping.
// A nil mapping yields an empty document.
func FromMap(m map[string]any) *Node {
	if m == nil {
		m = map[string]any{}
	}

	return &Node{value: m, exists: true}
}

// Get navigates the document by the given keys: string keys index mappings,
// int keys index lists. Navigation never fails; any step that does not
// resolve to a set value yields a virtual node.
func (n *Node) Get(keys ...any) *Node {
	current := n
	for _, key := range keys {
		current = current.child(key)
	}

	return current
}

func (n *Node) child(key any) *Node {
	child := &Node{parent: n, key: key}

	if !n.exists {
		return child
	}

	switch k := key.(type) {
	case string:
		mapping, ok := n.value.(map[string]any)
		if !ok {
			return child
		}

		value, ok := mapping[k]
		if !ok {
			return child
		}

		child.value = value
		child.exists = true
	case int:
		list, ok := n.value.([]any)
		if !ok || k < 0 || k >= len(list) {
			return child
		}

		child.value = list[k]
		child.exists = true
	}

	return child
}

// Exists reports whether the node holds a set value.
func (n *Node) Exists() bool {
	return n.exists
}

// IsVirtual reports whether the node represents an unset position.
func (n *Node) IsVirtual() bool {
	return !n.exists
}

// Set writes a value at the node's position. Virtual intermediate mappings
// along the path are created as needed. Setting through a list requires the
// index to already exist; lists are never grown implicitly.
func (n *Node) Set(value any) error {
	if n.parent == nil {
		mapping, ok := value.(map[string]any)
		if !ok {
			return ErrRootNotMapping
		}

		n.value = mapping

		return nil
	}

	container, err := n.parent.materialize()
	if err != nil {
		return err
	}

	switch k := n.key.(type) {
	case string:
		mapping, ok := container.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: key %q", ErrNotMapping, k)
		}

		mapping[k] = value
	case int:
		list, ok := container.([]any)
		if !ok || k < 0 || k >= len(list) {
			return fmt.Errorf("%w: index %d", ErrListBounds, k)
		}

		list[k] = value
	default:
		return fmt.Errorf("%w: %T", ErrKeyType, n.key)
	}

	n.value = value
	n.exists = true

	return nil
}

// materialize returns the node's value, creating it (and any virtual
// ancestors) as empty mappings when unset.
func (n *Node) materialize() (any, error) {
	if n.exists {
		return n.value, nil
	}

	key, ok := n.key.(string)
	if !ok {
		return nil, fmt.Errorf("%w: cannot create list element implicitly", ErrListBounds)
	}

	container, err := n.parent.materialize()
	if err != nil {
		return nil, err
	}

	mapping, ok := container.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrNotMapping, key)
	}

	created := map[string]any{}
	mapping[key] = created

	n.value = created
	n.exists = true

	return created, nil
}

// Delete removes a key from a mapping node. Deleting from a virtual or
// non-mapping node is a no-op.
func (n *Node) Delete(key string) {
	mapping, ok := n.value.(map[string]any)
	if !ok {
		return
	}

	delete(mapping, key)
}

// Raw returns the node's underlying value, or nil for a virtual node.
func (n *Node) Raw() any {
	if !n.exists {
		return nil
	}

	return n.value
}

// Map returns the node's underlying mapping, or nil when the node is
// virtual or does not hold a mapping.
func (n *Node) Map() map[string]any {
	mapping, _ := n.value.(map[string]any)
	if !n.exists {
		return nil
	}

	return mapping
}

// Keys returns the sorted keys of a mapping node, or nil for anything else.
func (n *Node) Keys() []string {
	mapping := n.Map()
	if mapping == nil {
		return nil
	}

	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Len returns the length of a list node, or 0 for anything else.
func (n *Node) Len() int {
	list, _ := n.value.([]any)

	return len(list)
}

// String returns the node's value as a string, or "" when the node is
// virtual or holds a non-string value.
func (n *Node) String() string {
	return n.StringOr("")
}

// StringOr returns the node's value as a string, or fallback when the node
// is virtual or holds a non-string value.
func (n *Node) StringOr(fallback string) string {
	value, ok := n.value.(string)
	if !n.exists || !ok {
		return fallback
	}

	return value
}

// Int returns the node's value as an int, or 0 when the node is virtual or
// holds a non-numeric value.
func (n *Node) Int() int {
	return n.IntOr(0)
}

// IntOr returns the node's value as an int, or fallback when the node is
// virtual or holds a non-numeric value. YAML decoders produce a mix of
// machine integer widths for the same document, so all of them coerce.
func (n *Node) IntOr(fallback int) int {
	if !n.exists {
		return fallback
	}

	switch value := n.value.(type) {
	case int:
		return value
	case int64:
		return int(value)
	case uint64:
		return int(value)
	case float64:
		return int(value)
	default:
		return fallback
	}
}

// Float returns the node's value as a float64, or 0 when the node is
// virtual or holds a non-numeric value.
func (n *Node) Float() float64 {
	if !n.exists {
		return 0
	}

	switch value := n.value.(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case uint64:
		return float64(value)
	default:
		return 0
	}
}

// Bool returns the node's value as a bool, or false when the node is
// virtual or holds a non-boolean value.
func (n *Node) Bool() bool {
	return n.BoolOr(false)
}

// BoolOr returns the node's value as a bool, or fallback when the node is
// virtual or holds a non-boolean value.
func (n *Node) BoolOr(fallback bool) bool {
	value, ok := n.value.(bool)
	if !n.exists || !ok {
		return fallback
	}

	return value
}

// StringSlice returns the node's value as a []string. List elements that
// are not strings are skipped. Returns nil when the node is virtual or does
// not hold a list.
func (n *Node) StringSlice() []string {
	if !n.exists {
		return nil
	}

	list, ok := n.value.([]any)
	if !ok {
		return nil
	}

	result := make([]string, 0, len(list))

	for _, element := range list {
		str, ok := element.(string)
		if ok {
			result = append(result, str)
		}
	}

	return result
}
