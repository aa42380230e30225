package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce converts text to the runtime type of the named field. The instance
// value decides the type; the schema default is used when the instance has
// no value yet. A field that is neither set nor declared stays text.
//
// Conversion failures are not softened: updating an integer field with
// "abc" returns ErrInvalidField rather than storing text.
func (b *BaseModel) Coerce(name, text string) (any, error) {
	if name == "" {
		return nil, ErrMissingField
	}
	if IsReserved(name) {
		return nil, fmt.Errorf("%w: %s", ErrReservedField, name)
	}
	current, ok := b.fields.Get(name)
	if !ok {
		if current, ok = b.schema.Default(name); !ok {
			return text, nil
		}
	}
	return coerceTo(current, text)
}

// coerceTo converts text to the Go type of current.
func coerceTo(current any, text string) (any, error) {
	switch current.(type) {
	case nil, string:
		return text, nil
	case int64:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidField, text)
		}
		return n, nil
	case float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidField, text)
		}
		return f, nil
	case bool:
		v, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidField, text)
		}
		return v, nil
	case []any:
		v, err := decodeValue([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a JSON list", ErrInvalidField, text)
		}
		if _, ok := v.([]any); !ok {
			return nil, fmt.Errorf("%w: %q is not a JSON list", ErrInvalidField, text)
		}
		return v, nil
	case map[string]any:
		v, err := decodeValue([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a JSON object", ErrInvalidField, text)
		}
		if _, ok := v.(map[string]any); !ok {
			return nil, fmt.Errorf("%w: %q is not a JSON object", ErrInvalidField, text)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: cannot coerce into %T", ErrInvalidField, current)
	}
}
