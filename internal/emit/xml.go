package emit

import (
	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

// XML writes an element-per-variant XML rendering of n: <null/>,
// <boolean>, <number>, <string>, <array> with <item> wrappers, and
// <object> with <entry><key>/<value> pairs. Object members follow map
// iteration order. The error return is part of the shared serializer
// contract; XML itself cannot fail.
func XML(n node.Node, dst stream.Destination) error {
	switch v := n.(type) {
	case node.Null:
		dst.WriteString("<null/>")
	case node.Bool:
		dst.WriteString("<boolean>")
		if v {
			dst.WriteString("true")
		} else {
			dst.WriteString("false")
		}
		dst.WriteString("</boolean>")
	case node.Numeric:
		dst.WriteString("<number>")
		dst.WriteString(v.Text())
		dst.WriteString("</number>")
	case node.Str:
		dst.WriteString("<string>")
		writeXMLEscaped(string(v), dst)
		dst.WriteString("</string>")
	case node.Array:
		dst.WriteString("<array>")
		for _, item := range v {
			dst.WriteString("<item>")
			if err := XML(item, dst); err != nil {
				return err
			}
			dst.WriteString("</item>")
		}
		dst.WriteString("</array>")
	case node.Object:
		dst.WriteString("<object>")
		for key, value := range v {
			dst.WriteString("<entry><key>")
			writeXMLEscaped(key, dst)
			dst.WriteString("</key><value>")
			if err := XML(value, dst); err != nil {
				return err
			}
			dst.WriteString("</value></entry>")
		}
		dst.WriteString("</object>")
	}
	return nil
}

func writeXMLEscaped(s string, dst stream.Destination) {
	for _, c := range s {
		switch c {
		case '<':
			dst.WriteString("&lt;")
		case '>':
			dst.WriteString("&gt;")
		case '&':
			dst.WriteString("&amp;")
		case '"':
			dst.WriteString("&quot;")
		case '\'':
			dst.WriteString("&apos;")
		default:
			dst.WriteString(string(c))
		}
	}
}
