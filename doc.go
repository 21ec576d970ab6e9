/*
Package nodefmt provides a small, self-contained toolkit for
representing semi-structured data in memory and converting between
that representation and several textual encodings.

Everything revolves around a single value model, the tagged union in
the node package. A tree is produced either by the parser or by
explicit construction:

	n, err := nodefmt.ParseString(`{"k": "v"}`)
	if err != nil {
		// handle error
	}

	m := node.Make(map[string]any{"answer": 42})

and consumed by one of five serializers, each with its own syntactic
contract:

	var buf stream.Buffer
	nodefmt.Stringify(n, &buf)            // compact JSON
	nodefmt.StringifyBencode(n, &buf)     // sorted-key bencode
	_ = nodefmt.StringifyXML(n, &buf)     // element-wrapped XML
	_ = nodefmt.StringifyYAML(n, &buf)    // block-style YAML
	_ = nodefmt.StringifyTOML(n, &buf)    // table-flattened TOML

Parsing and serialization run against the stream.Source and
stream.Destination capability set, with in-memory backends in the
stream package and BOM-aware file backends in the fileio package.

Two transforms sit alongside the serializers: PrettyPrint, an
indent-parameterized walk over the tree, and StripWhitespace, a
string-literal-aware whitespace filter that operates directly on the
character stream without building a tree.

The library holds no process-wide mutable state; independent parse and
stringify calls may run concurrently without synchronization.
*/
package nodefmt
