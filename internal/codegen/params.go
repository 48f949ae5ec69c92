package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

// obj is an insertion-ordered JSON object. encoding/json sorts map keys,
// which would scramble the request bodies relative to how providers document
// them, so the canonical parameter object keeps its own order.
type obj struct {
	entries []field
}

type field struct {
	key   string
	value any
}

func newObj() *obj {
	return &obj{}
}

// set appends a field. Callers only call set for values that are present, so
// the rendered key set is exactly the set of supplied fields.
func (o *obj) set(key string, value any) *obj {
	o.entries = append(o.entries, field{key: key, value: value})
	return o
}

func (o *obj) len() int {
	return len(o.entries)
}

// indentedJSON renders the object like JSON.stringify(v, null, 2).
func (o *obj) indentedJSON() string {
	return renderValue(o, 0, true)
}

// compactJSON renders the object on a single line.
func (o *obj) compactJSON() string {
	return renderValue(o, 0, false)
}

// pythonKwargs renders the fields as keyword arguments for a client call,
// one per line with a four-space indent.
func (o *obj) pythonKwargs() string {
	lines := make([]string, 0, len(o.entries))
	for _, f := range o.entries {
		lines = append(lines, fmt.Sprintf("    %s=%s", f.key, renderValue(f.value, 0, false)))
	}
	return strings.Join(lines, ",\n")
}

func renderValue(v any, depth int, indent bool) string {
	switch val := v.(type) {
	case *obj:
		return renderObj(val, depth, indent)
	case []any:
		return renderArray(val, depth, indent)
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return renderArray(items, depth, indent)
	case string:
		return strconv.Quote(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func renderObj(o *obj, depth int, indent bool) string {
	if len(o.entries) == 0 {
		return "{}"
	}
	if !indent {
		parts := make([]string, 0, len(o.entries))
		for _, f := range o.entries {
			parts = append(parts, fmt.Sprintf("%q:%s", f.key, renderValue(f.value, depth, false)))
		}
		return "{" + strings.Join(parts, ",") + "}"
	}

	inner := pad(depth + 1)
	parts := make([]string, 0, len(o.entries))
	for _, f := range o.entries {
		parts = append(parts, fmt.Sprintf("%s%q: %s", inner, f.key, renderValue(f.value, depth+1, true)))
	}
	return "{\n" + strings.Join(parts, ",\n") + "\n" + pad(depth) + "}"
}

func renderArray(items []any, depth int, indent bool) string {
	if len(items) == 0 {
		return "[]"
	}
	if !indent {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, renderValue(item, depth, false))
		}
		return "[" + strings.Join(parts, ",") + "]"
	}

	inner := pad(depth + 1)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, inner+renderValue(item, depth+1, true))
	}
	return "[\n" + strings.Join(parts, ",\n") + "\n" + pad(depth) + "]"
}

func pad(depth int) string {
	return strings.Repeat("  ", depth)
}
