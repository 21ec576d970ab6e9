package nodefmt

import (
	"github.com/nodefmt/nodefmt/internal/emit"
	"github.com/nodefmt/nodefmt/internal/parser"
	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

const version = "0.1.0"

// Version returns the library version.
func Version() string { return version }

// Parse reads exactly one value from src. The cursor is left just
// past the parsed value; trailing input is neither consumed nor
// rejected, so callers needing end-of-input validation must check
// src.More afterwards.
func Parse(src stream.Source, opts ...Option) (node.Node, error) {
	o := options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return parser.Parse(src, o.maxDepth)
}

// ParseBytes parses a single value from data.
func ParseBytes(data []byte, opts ...Option) (node.Node, error) {
	return Parse(stream.NewReader(data), opts...)
}

// ParseString parses a single value from s.
func ParseString(s string, opts ...Option) (node.Node, error) {
	return Parse(stream.NewReaderString(s), opts...)
}

// Stringify writes the compact JSON rendering of n to dst. Object
// member order is unspecified.
func Stringify(n node.Node, dst stream.Destination) {
	emit.JSON(n, dst)
}

// String returns the compact JSON rendering of n.
func String(n node.Node) string {
	var buf stream.Buffer
	emit.JSON(n, &buf)
	return buf.String()
}

// StringifyBencode writes the bencode rendering of n to dst.
// Dictionary keys are sorted bytewise; null maps to the empty string
// and floats round to the nearest integer, both intentionally lossy.
func StringifyBencode(n node.Node, dst stream.Destination) {
	emit.Bencode(n, dst)
}

// StringifyXML writes the XML rendering of n to dst.
func StringifyXML(n node.Node, dst stream.Destination) error {
	return emit.XML(n, dst)
}

// StringifyYAML writes the block-style YAML rendering of n to dst.
func StringifyYAML(n node.Node, dst stream.Destination) error {
	return emit.YAML(n, dst)
}

// StringifyTOML writes the TOML rendering of n to dst. It fails if n
// is not an object or if an inline array mixes element types; on
// failure nothing is written to dst.
func StringifyTOML(n node.Node, dst stream.Destination) error {
	// Staging buffer so a failed serialization leaves dst untouched.
	var buf stream.Buffer
	if err := emit.TOML(n, &buf); err != nil {
		return err
	}
	dst.WriteString(buf.String())
	return nil
}

// PrettyPrint writes an indented JSON rendering of n to dst, indent
// spaces per nesting level. Empty arrays and objects render inline as
// [] and {}.
func PrettyPrint(n node.Node, dst stream.Destination, indent int) {
	emit.Pretty(n, dst, indent)
}
