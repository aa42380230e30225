package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Reserved record keys. Every exported record carries all four.
const (
	KeyID        = "id"
	KeyCreatedAt = "created_at"
	KeyUpdatedAt = "updated_at"
	KeyClass     = "__class__"
)

// IsReserved reports whether name is one of the reserved record keys.
func IsReserved(name string) bool {
	switch name {
	case KeyID, KeyCreatedAt, KeyUpdatedAt, KeyClass:
		return true
	}
	return false
}

// ordered is a string-keyed map that remembers insertion order.
// Overwriting a key keeps its original position.
type ordered struct {
	keys   []string
	values map[string]any
}

// Get returns the value stored under key.
func (o *ordered) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set stores value under key, appending key if it is new.
func (o *ordered) Set(key string, value any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key. Idempotent.
func (o *ordered) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *ordered) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of entries.
func (o *ordered) Len() int {
	return len(o.keys)
}

// Map returns a copy of the entries as a plain map. Nested lists and maps
// are copied as well.
func (o *ordered) Map() map[string]any {
	out := make(map[string]any, len(o.values))
	for k, v := range o.values {
		out[k] = copyValue(v)
	}
	return out
}

func (o *ordered) clone() ordered {
	c := ordered{
		keys:   make([]string, len(o.keys)),
		values: make(map[string]any, len(o.values)),
	}
	copy(c.keys, o.keys)
	for k, v := range o.values {
		c.values[k] = copyValue(v)
	}
	return c
}

// Fields is the ordered extension map holding an entity's dynamic fields.
type Fields struct {
	ordered
}

// Clone returns a deep copy of f.
func (f *Fields) Clone() *Fields {
	if f == nil {
		return &Fields{}
	}
	return &Fields{ordered: f.clone()}
}

// Record is the serialized form of one entity: an ordered, string-keyed,
// JSON-compatible mapping. JSON encoding and decoding preserve key order.
type Record struct {
	ordered
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{}
}

// RecordFromMap builds a record from m. Keys are added in sorted order since
// Go maps carry none. Values are normalized to the JSON-compatible set.
func RecordFromMap(m map[string]any) (*Record, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := NewRecord()
	for _, k := range keys {
		v, err := normalizeValue(m[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		r.Set(k, v)
	}
	return r, nil
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return NewRecord()
	}
	return &Record{ordered: r.clone()}
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(jsonValue(r.values[k]))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into r, replacing its contents and
// keeping the document's key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fresh ordered
	err := WalkObject(data, func(key string, raw json.RawMessage) error {
		v, err := decodeValue(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		fresh.Set(key, v)
		return nil
	})
	if err != nil {
		return err
	}
	r.ordered = fresh
	return nil
}

// WalkObject decodes the JSON object in data and calls fn for every member
// in document order. Anything other than a single object is an error.
func WalkObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("expected a JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("member %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("trailing data after JSON object")
	}
	return nil
}

// decodeValue decodes one JSON value, keeping integers distinct from floats.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeValue(v)
}

// normalizeValue maps v onto the value set entities store: string, int64,
// float64, bool, nil, []any and map[string]any.
func normalizeValue(v any) (any, error) {
	switch x := v.(type) {
	case nil, string, bool, int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case float32:
		return normalizeValue(float64(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: non-finite number", ErrInvalidField)
		}
		return x, nil
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n, nil
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", ErrInvalidField, s)
		}
		return normalizeValue(f)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			n, err := normalizeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			n, err := normalizeValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidField, v)
	}
}

// jsonValue prepares v for encoding/json. Whole floats are written with a
// fractional part so they decode back as floats.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		return json.Number(formatFloat(x))
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = jsonValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = jsonValue(e)
		}
		return out
	default:
		return v
	}
}

func copyValue(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = copyValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
