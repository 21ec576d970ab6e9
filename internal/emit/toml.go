package emit

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/nodefmt/nodefmt/node"
	"github.com/nodefmt/nodefmt/stream"
)

// TOML writes a TOML rendering of n. The root must be an object;
// every table's keys are sorted before emission, so output is
// deterministic.
//
// Each table is flattened in three phases: scalar and inline-array
// pairs are written under the current header, nested objects are
// promoted to [prefix.key] child tables, and arrays whose elements
// are all objects are promoted to [[prefix.key]] array-of-tables.
// A table header is only ever emitted for a non-root, non-empty
// table, immediately before its first scalar pair.
//
// Inline arrays must be type-homogeneous; a mixed array aborts the
// whole serialization.
func TOML(n node.Node, dst stream.Destination) error {
	obj, ok := n.(node.Object)
	if !ok {
		return errors.New("toml: document root must be an object")
	}
	return tomlTable(obj, "", dst)
}

// isTableArray reports whether arr takes the array-of-tables path.
// The test is vacuously true for an empty array, which therefore
// emits nothing.
func isTableArray(arr node.Array) bool {
	for _, item := range arr {
		if _, ok := item.(node.Object); !ok {
			return false
		}
	}
	return true
}

func tomlTable(obj node.Object, prefix string, dst stream.Destination) error {
	if len(obj) == 0 {
		return nil
	}

	keys := slices.Sorted(maps.Keys(obj))
	var tables, tableArrays []string
	first := true

	for _, key := range keys {
		switch v := obj[key].(type) {
		case node.Object:
			tables = append(tables, key)
			continue
		case node.Array:
			if isTableArray(v) {
				tableArrays = append(tableArrays, key)
				continue
			}
		}
		if err := tomlPair(prefix, &first, key, obj[key], dst); err != nil {
			return err
		}
	}

	for _, key := range tables {
		if err := tomlTable(obj[key].(node.Object), joinPrefix(prefix, key), dst); err != nil {
			return err
		}
	}

	for _, key := range tableArrays {
		header := joinPrefix(prefix, key)
		for _, item := range obj[key].(node.Array) {
			dst.WriteString("[[")
			dst.WriteString(header)
			dst.WriteString("]]\n")
			if err := tomlTableArrayElement(item.(node.Object), header, dst); err != nil {
				return err
			}
		}
	}
	return nil
}

// tomlTableArrayElement flattens one element of an array-of-tables:
// scalar pairs first (headerless, the [[...]] header was just
// written), then nested objects as [prefix.key] child tables. An
// array-of-tables nested directly inside the element re-flattens
// each of its elements under a single-bracket [prefix.key] header.
func tomlTableArrayElement(obj node.Object, prefix string, dst stream.Destination) error {
	keys := slices.Sorted(maps.Keys(obj))

	for _, key := range keys {
		switch v := obj[key].(type) {
		case node.Object:
			continue
		case node.Array:
			if isTableArray(v) {
				continue
			}
		}
		first := true
		if err := tomlPair("", &first, key, obj[key], dst); err != nil {
			return err
		}
	}

	for _, key := range keys {
		switch v := obj[key].(type) {
		case node.Object:
			if err := tomlTable(v, prefix+"."+key, dst); err != nil {
				return err
			}
		case node.Array:
			if !isTableArray(v) {
				continue
			}
			for _, item := range v {
				if err := tomlTable(item.(node.Object), prefix+"."+key, dst); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func tomlPair(prefix string, first *bool, key string, value node.Node, dst stream.Destination) error {
	if prefix != "" && *first {
		dst.WriteByte('[')
		dst.WriteString(prefix)
		dst.WriteString("]\n")
		*first = false
	}
	dst.WriteString(key)
	dst.WriteString(" = ")
	if err := tomlValue(value, dst); err != nil {
		return err
	}
	dst.WriteByte('\n')
	return nil
}

func tomlValue(value node.Node, dst stream.Destination) error {
	switch v := value.(type) {
	case node.Str:
		// Double-quoted, no internal escaping performed.
		dst.WriteByte('"')
		dst.WriteString(string(v))
		dst.WriteByte('"')
	case node.Bool:
		if v {
			dst.WriteString("true")
		} else {
			dst.WriteString("false")
		}
	case node.Numeric:
		dst.WriteString(v.Text())
	case node.Array:
		return tomlArray(v, dst)
	case node.Null:
		// Placeholder: TOML has no null.
		dst.WriteString("null")
	case node.Object:
		// Handled by the table phases, never reached as a value.
	}
	return nil
}

func tomlArray(items node.Array, dst stream.Destination) error {
	if len(items) == 0 {
		dst.WriteString("[]")
		return nil
	}

	first := items[0].Kind()
	for _, item := range items {
		if item.Kind() != first {
			return fmt.Errorf("toml: arrays must contain elements of the same type, got %s and %s", first, item.Kind())
		}
	}

	dst.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			dst.WriteString(", ")
		}
		if err := tomlValue(item, dst); err != nil {
			return err
		}
	}
	dst.WriteByte(']')
	return nil
}

func joinPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
