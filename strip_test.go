package nodefmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodefmt/nodefmt"
	"github.com/nodefmt/nodefmt/stream"
)

func strip(s string) string {
	var buf stream.Buffer
	nodefmt.StripWhitespace(stream.NewReaderString(s), &buf)
	return buf.String()
}

func TestStripWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\r\n ", ""},
		{"scalar", "  42  ", "42"},
		{
			"object",
			"{ \"a\" : 1 ,\n  \"b\" : [ true , null ] }",
			`{"a":1,"b":[true,null]}`,
		},
		{
			"string content preserved",
			`{ "msg" : "hello  world\t!" }`,
			`{"msg":"hello  world\t!"}`,
		},
		{
			"escaped quote does not end the literal",
			`[ "a \" b" , 1 ]`,
			`["a \" b",1]`,
		},
		{
			"multi-byte runes preserved",
			`[ "héllo" , "世 界" ]`,
			`["héllo","世 界"]`,
		},
		{"unterminated string", `"abc `, `"abc `},
		{"already compact", `{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, strip(tt.input))
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"{ \"a\" : [ 1 , 2 ] }",
		"[ \" spaced string \" ]",
		"  null  ",
	}
	for _, input := range inputs {
		once := strip(input)
		require.Equal(t, once, strip(once))
	}
}

func TestStripPreservesMeaning(t *testing.T) {
	input := "{\n  \"name\": \"a b\",\n  \"xs\": [1, 2.5, \"x\\ny\"]\n}"

	before, err := nodefmt.ParseString(input)
	require.NoError(t, err)

	after, err := nodefmt.ParseString(strip(input))
	require.NoError(t, err)
	require.Equal(t, before, after)
}
