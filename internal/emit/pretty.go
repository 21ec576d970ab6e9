package emit

import (
	"strings"

	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

// Pretty writes an indented JSON rendering of n. Objects and arrays
// always expand to one child per line regardless of child count;
// empty collections are the exception and render inline as [] and {}.
// Strings are escaped exactly like the compact serializer, so the
// output reparses to the same tree.
func Pretty(n node.Node, dst stream.Destination, indent int) {
	prettyIndent(n, dst, indent, 0)
}

func prettyIndent(n node.Node, dst stream.Destination, indent, cur int) {
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
		if len(v) == 0 {
			dst.WriteString("[]")
			return
		}
		dst.WriteString("[\n")
		for i, item := range v {
			dst.WriteString(strings.Repeat(" ", cur+indent))
			prettyIndent(item, dst, indent, cur+indent)
			if i < len(v)-1 {
				dst.WriteByte(',')
			}
			dst.WriteByte('\n')
		}
		dst.WriteString(strings.Repeat(" ", cur))
		dst.WriteByte(']')
	case node.Object:
		if len(v) == 0 {
			dst.WriteString("{}")
			return
		}
		dst.WriteString("{\n")
		i := 0
		for key, value := range v {
			dst.WriteString(strings.Repeat(" ", cur+indent))
			writeQuoted(key, dst)
			dst.WriteString(": ")
			prettyIndent(value, dst, indent, cur+indent)
			if i < len(v)-1 {
				dst.WriteByte(',')
			}
			dst.WriteByte('\n')
			i++
		}
		dst.WriteString(strings.Repeat(" ", cur))
		dst.WriteByte('}')
	}
}
