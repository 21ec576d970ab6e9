package emit

import (
	"strings"

	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

// YAML writes a block-style YAML rendering of n. Arrays become block
// sequences, objects become block mappings (map iteration order),
// empty collections render inline as [] and {}, and strings containing
// newlines or double quotes switch to literal block (|) form. The
// error return is part of the shared serializer contract; this walk
// cannot fail.
func YAML(n node.Node, dst stream.Destination) error {
	yamlIndent(n, dst, 0)
	return nil
}

func yamlIndent(n node.Node, dst stream.Destination, indent int) {
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
		s := string(v)
		if strings.ContainsAny(s, "\n\"") {
			dst.WriteString("|\n")
			for line := range strings.Lines(s) {
				dst.WriteString(strings.Repeat(" ", indent+2))
				dst.WriteString(strings.TrimSuffix(line, "\n"))
				dst.WriteByte('\n')
			}
		} else {
			dst.WriteString(s)
		}
	case node.Array:
		if len(v) == 0 {
			dst.WriteString("[]")
			return
		}
		dst.WriteByte('\n')
		for _, item := range v {
			dst.WriteString(strings.Repeat(" ", indent))
			dst.WriteString("- ")
			yamlIndent(item, dst, indent+2)
			dst.WriteByte('\n')
		}
	case node.Object:
		if len(v) == 0 {
			dst.WriteString("{}")
			return
		}
		dst.WriteByte('\n')
		for key, value := range v {
			dst.WriteString(strings.Repeat(" ", indent))
			dst.WriteString(key)
			dst.WriteString(": ")
			yamlIndent(value, dst, indent+2)
			dst.WriteByte('\n')
		}
	}
}
