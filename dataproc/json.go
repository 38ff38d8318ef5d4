package dataproc

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// FlattenSeparator joins the keys of nested objects.
const FlattenSeparator = "."

// JSONParseReport is the result of parsing JSON data.
type JSONParseReport struct {
	Type string `json:"type"`
	Size int    `json:"size"`
	Data any    `json:"data"`
}

// JSONFilterReport is the result of dropping null values.
type JSONFilterReport struct {
	OriginalSize int `json:"original_size"`
	FilteredSize int `json:"filtered_size"`
	Data         any `json:"data"`
}

// JSONTransformReport is the result of flattening nested objects.
type JSONTransformReport struct {
	Keys []string `json:"keys"`
	Data Object   `json:"data"`
}

func processJSON(data, operation string) (any, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}

	switch operation {
	case OpParse:
		return &JSONParseReport{Type: TypeName(v), Size: Size(v), Data: v}, nil
	case OpFilter:
		filtered := DropNulls(v)
		return &JSONFilterReport{
			OriginalSize: Size(v),
			FilteredSize: Size(filtered),
			Data:         filtered,
		}, nil
	case OpTransform:
		flat := Flatten(v)
		return &JSONTransformReport{Keys: flat.Keys(), Data: flat}, nil
	}
	return nil, unknownOperation(operation)
}

// TypeName names the kind of a decoded value: dict, list, str, int,
// float, bool or NoneType.
func TypeName(v any) string {
	switch v := v.(type) {
	case Object:
		return "dict"
	case []any:
		return "list"
	case string:
		return "str"
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return "float"
		}
		return "int"
	case bool:
		return "bool"
	}
	return "NoneType"
}

// Size is the length of objects, arrays and strings, and 1 for scalars.
func Size(v any) int {
	switch v := v.(type) {
	case Object:
		return len(v)
	case []any:
		return len(v)
	case string:
		return utf8.RuneCountInString(v)
	}
	return 1
}

// DropNulls removes null members of a top-level object or null elements
// of a top-level array. Other values are returned unchanged.
func DropNulls(v any) any {
	switch v := v.(type) {
	case Object:
		out := Object{}
		for _, m := range v {
			if m.Value != nil {
				out = append(out, m)
			}
		}
		return out
	case []any:
		out := []any{}
		for _, item := range v {
			if item != nil {
				out = append(out, item)
			}
		}
		return out
	}
	return v
}

// Flatten joins the keys of nested objects with FlattenSeparator. Arrays
// are kept as values. A value that is not an object flattens to a single
// member with an empty key.
func Flatten(v any) Object {
	b := newBuilder()
	flatten(b, v, "")
	return b.obj
}

func flatten(b *builder, v any, prefix string) {
	obj, ok := v.(Object)
	if !ok {
		b.set(prefix, v)
		return
	}
	for _, m := range obj {
		key := m.Key
		if prefix != "" {
			key = prefix + FlattenSeparator + m.Key
		}
		if nested, ok := m.Value.(Object); ok {
			flatten(b, nested, key)
			continue
		}
		b.set(key, m.Value)
	}
}
