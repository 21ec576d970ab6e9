// Package node defines the value model shared by the parser and every
// serializer: a closed tagged union able to represent any JSON-like
// document fragment.
//
// A tree is acyclic and single-owner: the parser and the construction
// helpers always build fresh subtrees, and no consumer mutates a tree
// after it has been built.
package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is the tagged union over all value variants. It is a sealed
// interface: the only implementations are the types in this package,
// so a type switch over them can be exhaustive.
type Node interface {
	Kind() Kind
	isNode()
}

// Kind discriminates the variants of Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Numeric is the sub-union of numeric widths nested inside the number
// variant. Parsing only ever produces Int or Float; the remaining
// widths are reachable through programmatic construction.
type Numeric interface {
	Node
	// Text returns the canonical decimal rendering used by every
	// serializer.
	Text() string
}

// Null is the explicit null/absent value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Str is a string value (a sequence of Unicode scalar values).
type Str string

// Array is an ordered sequence of nodes. Order is significant and
// preserved by every serializer.
type Array []Node

// Object maps string keys to nodes. Keys are unique; iteration order
// is NOT the insertion order, and only serializers that explicitly
// sort (bencode, TOML) emit deterministically.
type Object map[string]Node

// The numeric widths.
type (
	Int    int64
	Uint   uint64
	Float  float64
	Byte   uint8
	Int8   int8
	Int16  int16
	Int32  int32
	Uint16 uint16
	Uint32 uint32
)

func (Null) isNode()   {}
func (Bool) isNode()   {}
func (Str) isNode()    {}
func (Array) isNode()  {}
func (Object) isNode() {}
func (Int) isNode()    {}
func (Uint) isNode()   {}
func (Float) isNode()  {}
func (Byte) isNode()   {}
func (Int8) isNode()   {}
func (Int16) isNode()  {}
func (Int32) isNode()  {}
func (Uint16) isNode() {}
func (Uint32) isNode() {}

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Str) Kind() Kind    { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }
func (Int) Kind() Kind    { return KindNumber }
func (Uint) Kind() Kind   { return KindNumber }
func (Float) Kind() Kind  { return KindNumber }
func (Byte) Kind() Kind   { return KindNumber }
func (Int8) Kind() Kind   { return KindNumber }
func (Int16) Kind() Kind  { return KindNumber }
func (Int32) Kind() Kind  { return KindNumber }
func (Uint16) Kind() Kind { return KindNumber }
func (Uint32) Kind() Kind { return KindNumber }

func (n Int) Text() string  { return strconv.FormatInt(int64(n), 10) }
func (n Uint) Text() string { return strconv.FormatUint(uint64(n), 10) }

// Text renders a float in its shortest form, forcing a ".0" suffix
// when neither a decimal point nor an exponent appears so that the
// rendering parses back as a float rather than an integer.
func (n Float) Text() string {
	s := strconv.FormatFloat(float64(n), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (n Byte) Text() string   { return strconv.FormatUint(uint64(n), 10) }
func (n Int8) Text() string   { return strconv.FormatInt(int64(n), 10) }
func (n Int16) Text() string  { return strconv.FormatInt(int64(n), 10) }
func (n Int32) Text() string  { return strconv.FormatInt(int64(n), 10) }
func (n Uint16) Text() string { return strconv.FormatUint(uint64(n), 10) }
func (n Uint32) Text() string { return strconv.FormatUint(uint64(n), 10) }

// Get returns the value for key, or nil if the key is absent.
func (o Object) Get(key string) Node {
	return o[key]
}

// Make converts a plain Go value into a Node. It covers the primitive
// types, []any, map[string]any, and values that already are Nodes.
// Unsupported types panic: Make is a construction helper for
// programmer-supplied values, and a bad argument is API misuse, not
// malformed data.
func Make(v any) Node {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Node:
		return x
	case bool:
		return Bool(x)
	case string:
		return Str(x)
	case int:
		return Int(x)
	case int64:
		return Int(x)
	case uint64:
		return Uint(x)
	case float64:
		return Float(x)
	case float32:
		return Float(x)
	case uint8:
		return Byte(x)
	case int8:
		return Int8(x)
	case int16:
		return Int16(x)
	case int32:
		return Int32(x)
	case uint16:
		return Uint16(x)
	case uint32:
		return Uint32(x)
	case []any:
		arr := make(Array, len(x))
		for i, e := range x {
			arr[i] = Make(e)
		}
		return arr
	case []Node:
		return Array(x)
	case map[string]any:
		obj := make(Object, len(x))
		for k, e := range x {
			obj[k] = Make(e)
		}
		return obj
	case map[string]Node:
		return Object(x)
	}
	panic(fmt.Sprintf("node: cannot make a Node from %T", v))
}

// Plain converts a Node back into plain Go values (bool, float64,
// int64, string, []any, map[string]any, nil). It is the inverse of
// Make up to numeric width: every numeric variant except Float
// flattens to int64 or uint64.
func Plain(n Node) any {
	switch x := n.(type) {
	case Null:
		return nil
	case Bool:
		return bool(x)
	case Str:
		return string(x)
	case Int:
		return int64(x)
	case Uint:
		return uint64(x)
	case Float:
		return float64(x)
	case Byte:
		return int64(x)
	case Int8:
		return int64(x)
	case Int16:
		return int64(x)
	case Int32:
		return int64(x)
	case Uint16:
		return int64(x)
	case Uint32:
		return int64(x)
	case Array:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Plain(e)
		}
		return out
	case Object:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Plain(e)
		}
		return out
	}
	panic(fmt.Sprintf("node: unknown node type %T", n))
}
