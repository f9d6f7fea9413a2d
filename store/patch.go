// File: store/patch.go
package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Patch is a partial update: top-level JSON fields replace the stored ones,
// absent fields are left alone.
type Patch map[string]json.RawMessage

// immutableFields can never be changed through a patch.
var immutableFields = []string{"id", "createdAt", "updatedAt"}

func isImmutable(field string) bool {
	for _, f := range immutableFields {
		if strings.EqualFold(f, field) {
			return true
		}
	}
	return false
}

// Without returns a copy of p minus the named fields.
func (p Patch) Without(fields ...string) Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, f := range fields {
		for k := range out {
			if strings.EqualFold(k, f) {
				delete(out, k)
			}
		}
	}
	return out
}

// String returns the string value of field, if the patch sets it to one.
func (p Patch) String(field string) (string, bool) {
	for k, v := range p {
		if strings.EqualFold(k, field) {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return "", false
			}
			return s, true
		}
	}
	return "", false
}

// Snapshot returns a patch that sets every field named in patch back to its
// value in rec. Fields rec omits when empty are restored to the zero value of
// the patched JSON kind.
func Snapshot[T any](rec T, patch Patch) (Patch, error) {
	fields, err := toFields(rec)
	if err != nil {
		return nil, err
	}
	out := Patch{}
	for k, v := range patch {
		if isImmutable(k) {
			continue
		}
		if current, ok := lookupField(fields, k); ok {
			out[k] = current
			continue
		}
		if zero := zeroJSON(v); zero != nil {
			out[k] = zero
		}
	}
	return out, nil
}

func lookupField(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	if v, ok := fields[key]; ok {
		return v, true
	}
	for k, v := range fields {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// zeroJSON returns the empty value of the same JSON kind as v, or nil for null.
func zeroJSON(v json.RawMessage) json.RawMessage {
	trimmed := strings.TrimSpace(string(v))
	if trimmed == "" {
		return nil
	}
	switch trimmed[0] {
	case '"':
		return json.RawMessage(`""`)
	case '[':
		return json.RawMessage(`[]`)
	case '{':
		return json.RawMessage(`{}`)
	case 't', 'f':
		return json.RawMessage(`false`)
	case 'n':
		return nil
	default:
		return json.RawMessage(`0`)
	}
}

// toFields encodes v as a top-level field map.
func toFields(v any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// merge applies patch on top of rec and returns the result; rec is untouched.
func merge[T any](rec T, patch Patch) (T, error) {
	var out T
	base, err := toFields(rec)
	if err != nil {
		return out, err
	}
	for k, v := range patch {
		if isImmutable(k) {
			continue
		}
		for existing := range base {
			if existing != k && strings.EqualFold(existing, k) {
				delete(base, existing)
			}
		}
		base[k] = v
	}
	data, err := json.Marshal(base)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return out, nil
}

// decodePatch checks that patch decodes into T without touching any record.
func decodePatch[T any](patch Patch) (T, error) {
	var zero T
	return merge(zero, patch)
}

// clone returns a deep copy so callers never share slices or maps with a store.
func clone[T any](rec T) T {
	data, err := json.Marshal(rec)
	if err != nil {
		return rec
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return rec
	}
	return out
}
