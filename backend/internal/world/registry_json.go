package world

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// MarshalJSON renders the registry as a JSON array in canonical
// insertion order (spec.md §6: "Iteration order in emitted JSON is the
// canonical insertion order of the registry — required for byte-stable
// snapshots"). A JSON object keyed by id would not satisfy this, since
// encoding/json always emits Go map keys in sorted order.
func (r *Registry[T]) MarshalJSON() ([]byte, error) {
	items := make([]T, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return json.Marshal(items)
}

// UnmarshalJSON rebuilds the registry from a JSON array produced by
// MarshalJSON, re-deriving each entry's id from its exported "ID" field
// via reflection (every entity in internal/model carries one).
func (r *Registry[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	r.order = nil
	r.items = make(map[string]T, len(items))
	for _, item := range items {
		r.Put(idOf(item), item)
	}
	return nil
}

// idOf extracts the "ID" field of a struct or pointer-to-struct value via
// reflection. Every registry element type in internal/model declares an
// exported ID string field except model.HexTile, which has no identity
// of its own beyond its coordinate — that falls back to a "q,r" key
// derived from its embedded Coord field instead.
func idOf(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ""
	}
	if f := rv.FieldByName("ID"); f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	if c := rv.FieldByName("Coord"); c.IsValid() && c.Kind() == reflect.Struct {
		q := c.FieldByName("Q")
		r := c.FieldByName("R")
		if q.IsValid() && r.IsValid() {
			return fmt.Sprintf("%d,%d", q.Int(), r.Int())
		}
	}
	return ""
}
