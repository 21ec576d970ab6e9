package emit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodefmt/nodefmt/internal/emit"
	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

func xmlString(t *testing.T, n node.Node) string {
	t.Helper()
	var buf stream.Buffer
	require.NoError(t, emit.XML(n, &buf))
	return buf.String()
}

func TestXML(t *testing.T) {
	tests := []struct {
		name string
		n    node.Node
		want string
	}{
		{"null", node.Null{}, "<null/>"},
		{"true", node.Bool(true), "<boolean>true</boolean>"},
		{"false", node.Bool(false), "<boolean>false</boolean>"},
		{"int", node.Int(-42), "<number>-42</number>"},
		{"float", node.Float(0.5), "<number>0.5</number>"},
		{"string", node.Str("hi"), "<string>hi</string>"},
		{"empty array", node.Array{}, "<array></array>"},
		{
			"array", node.Array{node.Int(1), node.Str("x")},
			"<array><item><number>1</number></item><item><string>x</string></item></array>",
		},
		{"empty object", node.Object{}, "<object></object>"},
		{
			"object", node.Object{"k": node.Bool(true)},
			"<object><entry><key>k</key><value><boolean>true</boolean></value></entry></object>",
		},
		{
			"nested object",
			node.Object{"outer": node.Object{"inner": node.Null{}}},
			"<object><entry><key>outer</key><value><object><entry><key>inner</key><value><null/></value></entry></object></value></entry></object>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, xmlString(t, tt.n))
		})
	}
}

func TestXMLEscaping(t *testing.T) {
	require.Equal(t,
		"<string>&lt;a&gt; &amp; &quot;b&quot; &apos;c&apos;</string>",
		xmlString(t, node.Str(`<a> & "b" 'c'`)),
	)
	require.Equal(t,
		"<object><entry><key>a&amp;b</key><value><null/></value></entry></object>",
		xmlString(t, node.Object{"a&b": node.Null{}}),
	)
}
