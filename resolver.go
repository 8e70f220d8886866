// Package conf loads layered configuration documents for plugin-style
// programs: a mutable document on disk, optionally backfilled from a
// read-only bundled default shipped with the host, persisted back to disk.
package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-conf/codec"
	"github.com/0xalexb/hjarta-conf/node"
)

// ErrIO wraps every filesystem and codec failure encountered while
// loading, merging, or saving a configuration. Check with
// errors.Is(err, conf.ErrIO).
var ErrIO = errors.New("configuration i/o failed")

// ErrNilBaseDir is returned when no base directory provider was configured.
var ErrNilBaseDir = errors.New("a base directory provider is required")

// Resolver owns one configuration document, resolved from an Identity.
//
// Construction loads the document from disk (creating the file and its
// parent directories when missing), merges in any values missing relative
// to the identity's bundled default, and writes the merged result back.
// After construction the in-memory document is live: mutations made
// through Root or Node are visible to subsequent Save calls.
//
// A Resolver is not safe for concurrent use, and two resolvers pointed at
// the same file are unsynchronized against each other.
type Resolver struct {
	identity Identity
	path     string
	codec    codec.Codec
	root     *node.Node
	options  Options
}

// Provide constructs a Resolver for the given identity.
//
// It fails with ErrNoPathSegments for a zero-value identity, ErrNilBaseDir
// when no base directory provider is configured, and an error wrapping
// ErrIO for any filesystem or codec failure. No Resolver is returned on
// failure.
func Provide(identity Identity, opts ...Option) (*Resolver, error) {
	if len(identity.segments) == 0 {
		return nil, ErrNoPathSegments
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	options.setDefaults()

	if options.BaseDir == nil {
		return nil, ErrNilBaseDir
	}

	resolver := &Resolver{
		identity: identity,
		codec:    options.NewCodec(),
		options:  options,
	}

	options.Logger.Debug("initializing configuration", "config", identity.String())

	base, err := options.BaseDir.ConfigDir(identity.Owner())
	if err != nil {
		return nil, fmt.Errorf("%w: resolving base directory for %q: %w", ErrIO, identity.Owner(), err)
	}

	resolver.path = filepath.Join(append([]string{base}, identity.segments...)...)

	err = resolver.loadDisk()
	if err != nil {
		return nil, err
	}

	err = resolver.mergeDefaults()
	if err != nil {
		return nil, err
	}

	err = resolver.Save()
	if err != nil {
		return nil, err
	}

	return resolver, nil
}

// Root returns the live in-memory document, not a copy.
func (r *Resolver) Root() *node.Node {
	return r.root
}

// Node navigates the in-memory document by the given keys. Navigating to a
// value that was never set yields a virtual node, not an error.
func (r *Resolver) Node(keys ...any) *node.Node {
	return r.root.Get(keys...)
}

// Path returns the resolved on-disk location of the document.
func (r *Resolver) Path() string {
	return r.path
}

// Identity returns the normalized identity the resolver was built for.
func (r *Resolver) Identity() Identity {
	return r.identity
}

// Save serializes the current in-memory document to its resolved location.
// Failures wrap ErrIO. With no intervening mutation, repeated saves
// produce the same bytes.
func (r *Resolver) Save() error {
	logger := r.options.Logger
	logger.Debug("save requested", "config", r.identity.String(), "path", r.path)

	data, err := r.codec.Encode(r.root)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrIO, r.identity.String(), err)
	}

	err = os.WriteFile(r.path, data, r.options.FileMode)
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrIO, r.path, err)
	}

	logger.Debug("saved configuration", "config", r.identity.String(), "path", r.path)

	return nil
}

func (r *Resolver) loadDisk() error {
	logger := r.options.Logger

	_, err := os.Stat(r.path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("configuration file does not exist, creating", "config", r.identity.String(), "path", r.path)

		mkdirErr := os.MkdirAll(filepath.Dir(r.path), DefaultDirMode)
		if mkdirErr != nil {
			return fmt.Errorf("%w: creating parent directories for %q: %w", ErrIO, r.path, mkdirErr)
		}

		writeErr := os.WriteFile(r.path, nil, r.options.FileMode)
		if writeErr != nil {
			return fmt.Errorf("%w: creating %q: %w", ErrIO, r.path, writeErr)
		}
	case err != nil:
		return fmt.Errorf("%w: stat %q: %w", ErrIO, r.path, err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("%w: reading %q: %w", ErrIO, r.path, err)
	}

	root, err := r.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: decoding %q: %w", ErrIO, r.path, err)
	}

	r.root = root

	logger.Debug("finished loading configuration from disk", "config", r.identity.String())

	return nil
}

func (r *Resolver) mergeDefaults() error {
	logger := r.options.Logger

	if r.options.Defaults == nil {
		logger.Debug("no defaults namespace configured, skipping merge", "config", r.identity.String())

		return nil
	}

	resource := r.identity.resourcePath()

	data, err := fs.ReadFile(r.options.Defaults, resource)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no bundled default found", "config", r.identity.String(), "resource", resource)

		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: reading bundled default %q: %w", ErrIO, resource, err)
	}

	logger.Debug("loaded bundled default", "config", r.identity.String(), "resource", resource)

	// Defaults get their own codec: codec state such as captured
	// comments belongs to the disk document alone.
	defaults, err := r.options.NewCodec().Decode(data)
	if err != nil {
		return fmt.Errorf("%w: decoding bundled default %q: %w", ErrIO, resource, err)
	}

	node.MergeMissing(r.root, defaults)

	logger.Debug("merged bundled defaults", "config", r.identity.String())

	return nil
}
