// Package yaml implements the codec.Codec interface using goccy/go-yaml.
//
// The codec is comment preserving: comments found while decoding a
// document are captured and replayed when the same codec instance encodes
// it again, so a load-then-save cycle keeps what the user wrote. Because of
// that captured state, one codec instance serves exactly one document.
package yaml
