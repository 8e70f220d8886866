package conf

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-conf/basedir"
	"github.com/0xalexb/hjarta-conf/codec"
	yamlcodec "github.com/0xalexb/hjarta-conf/codec/yaml"
	"github.com/0xalexb/hjarta-conf/logging"
)

// DefaultFileMode is the permission mode for configuration files created
// by the resolver.
const DefaultFileMode fs.FileMode = 0o644

// DefaultDirMode is the permission mode for parent directories created by
// the resolver.
const DefaultDirMode fs.FileMode = 0o755

// Options holds construction settings for a Resolver.
type Options struct {
	BaseDir  basedir.Provider
	Defaults fs.FS
	NewCodec func() codec.Codec
	Logger   *slog.Logger
	FileMode fs.FileMode
}

// Option defines a function type for applying resolver options.
type Option func(*Options)

func (o *Options) setDefaults() {
	if o.NewCodec == nil {
		o.NewCodec = func() codec.Codec { return yamlcodec.New() }
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	if o.FileMode == 0 {
		o.FileMode = DefaultFileMode
	}
}

// WithBaseDir sets the provider resolving the owner's configuration base
// directory. A base directory provider is required.
func WithBaseDir(provider basedir.Provider) Option {
	return func(opts *Options) {
		opts.BaseDir = provider
	}
}

// WithDefaults sets the read-only filesystem holding bundled default
// documents, looked up at "<owner>/<seg1>/.../<segN>". Typically an
// embed.FS shipped with the host program. When unset, no defaults are
// merged.
func WithDefaults(defaults fs.FS) Option {
	return func(opts *Options) {
		opts.Defaults = defaults
	}
}

// WithCodec sets the constructor for document codecs. The resolver creates
// one codec per document, so formatting-preserving codecs can carry
// per-document state. Defaults to the comment-preserving YAML codec.
func WithCodec(newCodec func() codec.Codec) Option {
	return func(opts *Options) {
		opts.NewCodec = newCodec
	}
}

// WithLogger sets the logger used for phase-transition debug lines.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel is a convenience over WithLogger: it installs a JSON logger
// writing to stderr at the given level. Valid levels are "debug", "info",
// "warn", "error"; invalid or empty defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.Logger = logging.New(level, os.Stderr)
	}
}

// WithFileMode sets the permission mode for configuration files created or
// written by the resolver. Defaults to DefaultFileMode.
func WithFileMode(mode fs.FileMode) Option {
	return func(opts *Options) {
		opts.FileMode = mode
	}
}
