package conf

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// DefaultExtension is appended to the final path segment of an identity
// when that segment contains no extension.
const DefaultExtension = "conf"

// ErrEmptyOwner is returned when the owner namespace is empty.
var ErrEmptyOwner = errors.New("owner namespace must not be empty")

// ErrNoPathSegments is returned when an identity has no path segments.
var ErrNoPathSegments = errors.New("identity must include at least one path segment")

// ErrEmptySegment is returned when any path segment is empty.
var ErrEmptySegment = errors.New("path segments must not be empty")

// Identity names a logical configuration: an owner namespace (such as a
// plugin identifier) plus the path segments locating the document below
// the owner's configuration directory.
//
// Identities are normalized exactly once, at construction: when the final
// segment contains no ".", DefaultExtension is appended to it. An Identity
// is immutable after construction.
type Identity struct {
	owner    string
	segments []string
}

// NewIdentity validates and normalizes an identity.
func NewIdentity(owner string, segments ...string) (Identity, error) {
	if owner == "" {
		return Identity{}, ErrEmptyOwner
	}

	if len(segments) == 0 {
		return Identity{}, ErrNoPathSegments
	}

	normalized := make([]string, len(segments))
	copy(normalized, segments)

	for i, segment := range normalized {
		if segment == "" {
			return Identity{}, fmt.Errorf("%w: segment %d", ErrEmptySegment, i)
		}
	}

	last := len(normalized) - 1
	if !strings.Contains(normalized[last], ".") {
		normalized[last] += "." + DefaultExtension
	}

	return Identity{owner: owner, segments: normalized}, nil
}

// Owner returns the owner namespace.
func (id Identity) Owner() string {
	return id.owner
}

// Segments returns a copy of the normalized path segments.
func (id Identity) Segments() []string {
	segments := make([]string, len(id.segments))
	copy(segments, id.segments)

	return segments
}

// String renders the identity as "owner:seg1/seg2".
func (id Identity) String() string {
	return id.owner + ":" + strings.Join(id.segments, "/")
}

// resourcePath is the identity's location inside a bundled-defaults
// namespace: "<owner>/<seg1>/.../<segN>".
func (id Identity) resourcePath() string {
	return path.Join(append([]string{id.owner}, id.segments...)...)
}
