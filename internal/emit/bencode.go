package emit

import (
	"math"
	"maps"
	"slices"
	"strconv"

	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

// Bencode writes the bencode rendering of n. Dictionary keys are
// always emitted in byte order, so output is deterministic regardless
// of construction order.
//
// Two mappings are intentionally lossy, kept for compatibility with
// the format's conventional use here: null becomes the empty string,
// and floats are rounded to the nearest integer.
func Bencode(n node.Node, dst stream.Destination) {
	switch v := n.(type) {
	case node.Null:
		// Intentionally nothing.
	case node.Bool:
		if v {
			dst.WriteString("i1e")
		} else {
			dst.WriteString("i0e")
		}
	case node.Float:
		dst.WriteByte('i')
		dst.WriteString(strconv.FormatInt(int64(math.Round(float64(v))), 10))
		dst.WriteByte('e')
	case node.Numeric:
		dst.WriteByte('i')
		dst.WriteString(v.Text())
		dst.WriteByte('e')
	case node.Str:
		writeBencodeString(string(v), dst)
	case node.Array:
		dst.WriteByte('l')
		for _, item := range v {
			Bencode(item, dst)
		}
		dst.WriteByte('e')
	case node.Object:
		dst.WriteByte('d')
		for _, key := range slices.Sorted(maps.Keys(v)) {
			writeBencodeString(key, dst)
			Bencode(v[key], dst)
		}
		dst.WriteByte('e')
	}
}

// Strings are length-prefixed by byte length, with no escaping.
func writeBencodeString(s string, dst stream.Destination) {
	dst.WriteString(strconv.Itoa(len(s)))
	dst.WriteByte(':')
	dst.WriteString(s)
}
