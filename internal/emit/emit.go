// Package emit contains the serialization backends. Each is a pure
// recursive walk over a node tree writing format-specific framing to
// a stream.Destination.
package emit

import (
	"fmt"
	"unicode"

	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

// JSON writes the compact JSON rendering of n. Object members are
// emitted in map iteration order, which is unspecified.
func JSON(n node.Node, dst stream.Destination) {
	switch v := n.(type) {
	case node.Null:
		dst.WriteString("null")
	case node.Bool:
		if v {
			dst.WriteString("true")
		} else {
			dst.WriteString("false")
		}
	case node.Numeric:
		dst.WriteString(v.Text())
	case node.Str:
		writeQuoted(string(v), dst)
	case node.Array:
		dst.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				dst.WriteByte(',')
			}
			JSON(item, dst)
		}
		dst.WriteByte(']')
	case node.Object:
		dst.WriteByte('{')
		first := true
		for key, value := range v {
			if !first {
				dst.WriteByte(',')
			}
			first = false
			writeQuoted(key, dst)
			dst.WriteByte(':')
			JSON(value, dst)
		}
		dst.WriteByte('}')
	}
}

// writeQuoted writes s as a double-quoted JSON string, escaping the
// quote, the backslash, and control characters.
func writeQuoted(s string, dst stream.Destination) {
	dst.WriteByte('"')
	for _, c := range s {
		switch {
		case c == '"':
			dst.WriteString(`\"`)
		case c == '\\':
			dst.WriteString(`\\`)
		case c == '\n':
			dst.WriteString(`\n`)
		case c == '\r':
			dst.WriteString(`\r`)
		case c == '\t':
			dst.WriteString(`\t`)
		case unicode.IsControl(c):
			dst.WriteString(fmt.Sprintf(`\u%04x`, c))
		default:
			dst.WriteString(string(c))
		}
	}
	dst.WriteByte('"')
}
