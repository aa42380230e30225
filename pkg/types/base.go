package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the ISO-8601 layout used for created_at and updated_at in
// records: UTC, microsecond precision, no zone suffix.
const TimeFormat = "2006-01-02T15:04:05.000000"

// parseLayouts are the timestamp forms accepted when reconstructing.
var parseLayouts = []string{
	TimeFormat,
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// clock holds the time source so tests can pin it.
var clock = struct {
	now func() time.Time
}{
	now: time.Now,
}

func now() time.Time {
	return clock.now().UTC().Truncate(time.Microsecond)
}

// Entity is the contract every persisted type satisfies.
type Entity interface {
	// TypeName returns the catalog name of the concrete type.
	TypeName() string
	// ID returns the entity's UUID.
	ID() string
	CreatedAt() time.Time
	UpdatedAt() time.Time

	// Touch refreshes updated_at. It is the only mutation of the timestamps.
	Touch()

	// Export returns a fresh record holding every field plus the type tag.
	Export() *Record

	// Render returns the one-line display form "[Type] (id) {fields}".
	Render() string

	// Get returns a dynamic field value.
	Get(name string) (any, bool)

	// Set stores a dynamic field. Reserved names are rejected.
	Set(name string, value any) error

	// Coerce converts text to the runtime type of the named field, or keeps
	// it as text when the field does not exist yet.
	Coerce(name, text string) (any, error)

	// Fields returns a copy of the dynamic fields.
	Fields() *Fields

	// Schema returns the attributes the concrete type declares.
	Schema() Schema
}

// BaseModel carries identity, timestamps, and the dynamic fields shared by
// every concrete type. Concrete types embed it.
type BaseModel struct {
	typeName  string
	id        string
	createdAt time.Time
	updatedAt time.Time
	fields    Fields
	schema    Schema
}

var _ Entity = (*BaseModel)(nil)

// NewBaseModel constructs a BaseModel. A nil or empty record yields a fresh
// entity with a new id; otherwise every field is taken from rec.
func NewBaseModel(rec *Record) (*BaseModel, error) {
	return newBase(TypeBaseModel, nil, rec)
}

func newBase(typeName string, schema Schema, rec *Record) (*BaseModel, error) {
	b := &BaseModel{typeName: typeName, schema: schema}
	if rec == nil || rec.Len() == 0 {
		t := now()
		b.id = uuid.NewString()
		b.createdAt = t
		b.updatedAt = t
		return b, nil
	}
	if err := b.load(rec); err != nil {
		return nil, err
	}
	return b, nil
}

// load adopts every field of rec verbatim.
func (b *BaseModel) load(rec *Record) error {
	var haveID, haveCreated, haveUpdated bool
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		switch k {
		case KeyID:
			s, ok := v.(string)
			if !ok || s == "" {
				return fmt.Errorf("%w: id must be a non-empty string", ErrInvalidField)
			}
			b.id, haveID = s, true
		case KeyCreatedAt:
			t, err := ParseTimestamp(v)
			if err != nil {
				return fmt.Errorf("created_at: %w", err)
			}
			b.createdAt, haveCreated = t, true
		case KeyUpdatedAt:
			t, err := ParseTimestamp(v)
			if err != nil {
				return fmt.Errorf("updated_at: %w", err)
			}
			b.updatedAt, haveUpdated = t, true
		case KeyClass:
			if s, ok := v.(string); !ok || s != b.typeName {
				return fmt.Errorf("%w: type tag %v does not match %s", ErrMalformedData, v, b.typeName)
			}
		default:
			nv, err := normalizeValue(v)
			if err != nil {
				return fmt.Errorf("field %q: %w", k, err)
			}
			b.fields.Set(k, nv)
		}
	}
	switch {
	case !haveID:
		return fmt.Errorf("%w: record has no %s", ErrMalformedData, KeyID)
	case !haveCreated:
		return fmt.Errorf("%w: record has no %s", ErrMalformedData, KeyCreatedAt)
	case !haveUpdated:
		return fmt.Errorf("%w: record has no %s", ErrMalformedData, KeyUpdatedAt)
	}
	if b.updatedAt.Before(b.createdAt) {
		return fmt.Errorf("%w: updated_at precedes created_at", ErrInvalidField)
	}
	return nil
}

// ParseTimestamp parses a serialized timestamp. Values without a zone are
// taken as UTC.
func ParseTimestamp(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: timestamp must be a string, got %T", ErrInvalidField, v)
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Microsecond), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", ErrInvalidField, s)
}

// FormatTimestamp renders t in TimeFormat.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

func (b *BaseModel) TypeName() string     { return b.typeName }
func (b *BaseModel) ID() string           { return b.id }
func (b *BaseModel) CreatedAt() time.Time { return b.createdAt }
func (b *BaseModel) UpdatedAt() time.Time { return b.updatedAt }

// Touch sets updated_at to now. The new value is always strictly later than
// the previous one, even when the clock has not advanced.
func (b *BaseModel) Touch() {
	t := now()
	if !t.After(b.updatedAt) {
		t = b.updatedAt.Add(time.Microsecond)
	}
	b.updatedAt = t
}

// Export returns a fresh record: reserved fields first, then dynamic fields
// in insertion order, then the type tag.
func (b *BaseModel) Export() *Record {
	rec := NewRecord()
	rec.Set(KeyID, b.id)
	rec.Set(KeyCreatedAt, FormatTimestamp(b.createdAt))
	rec.Set(KeyUpdatedAt, FormatTimestamp(b.updatedAt))
	for _, k := range b.fields.keys {
		rec.Set(k, copyValue(b.fields.values[k]))
	}
	rec.Set(KeyClass, b.typeName)
	return rec
}

// Get returns a dynamic field value.
func (b *BaseModel) Get(name string) (any, bool) {
	return b.fields.Get(name)
}

// Set stores a dynamic field. It does not touch updated_at.
func (b *BaseModel) Set(name string, value any) error {
	if name == "" {
		return ErrMissingField
	}
	if IsReserved(name) {
		return fmt.Errorf("%w: %s", ErrReservedField, name)
	}
	v, err := normalizeValue(value)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	b.fields.Set(name, v)
	return nil
}

// Fields returns a copy of the dynamic fields.
func (b *BaseModel) Fields() *Fields {
	return b.fields.Clone()
}

// Schema returns a copy of the declared attributes.
func (b *BaseModel) Schema() Schema {
	return append(Schema(nil), b.schema...)
}

// stringField returns the named field as a string, falling back to the
// schema default.
func (b *BaseModel) stringField(name string) string {
	v, ok := b.fields.Get(name)
	if !ok {
		v, _ = b.schema.Default(name)
	}
	s, _ := v.(string)
	return s
}

func (b *BaseModel) intField(name string) int64 {
	v, ok := b.fields.Get(name)
	if !ok {
		v, _ = b.schema.Default(name)
	}
	n, _ := v.(int64)
	return n
}

func (b *BaseModel) floatField(name string) float64 {
	v, ok := b.fields.Get(name)
	if !ok {
		v, _ = b.schema.Default(name)
	}
	f, _ := v.(float64)
	return f
}

func (b *BaseModel) listField(name string) []string {
	v, ok := b.fields.Get(name)
	if !ok {
		v, _ = b.schema.Default(name)
	}
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
