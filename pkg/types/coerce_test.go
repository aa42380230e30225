package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *BaseModel)
		field   string
		text    string
		want    any
		wantErr error
	}{
		{
			name:  "new field stays text",
			field: "name",
			text:  "Betty",
			want:  "Betty",
		},
		{
			name:  "new numeric-looking field stays text",
			field: "age",
			text:  "42",
			want:  "42",
		},
		{
			name:  "existing string",
			setup: func(b *BaseModel) { b.Set("name", "Old") },
			field: "name",
			text:  "89",
			want:  "89",
		},
		{
			name:  "existing integer",
			setup: func(b *BaseModel) { b.Set("age", 1) },
			field: "age",
			text:  " 42 ",
			want:  int64(42),
		},
		{
			name:    "existing integer rejects text",
			setup:   func(b *BaseModel) { b.Set("age", 1) },
			field:   "age",
			text:    "old",
			wantErr: ErrInvalidField,
		},
		{
			name:    "existing integer rejects float text",
			setup:   func(b *BaseModel) { b.Set("age", 1) },
			field:   "age",
			text:    "3.5",
			wantErr: ErrInvalidField,
		},
		{
			name:  "existing float",
			setup: func(b *BaseModel) { b.Set("ratio", 1.0) },
			field: "ratio",
			text:  "7",
			want:  7.0,
		},
		{
			name:    "existing float rejects nan",
			setup:   func(b *BaseModel) { b.Set("ratio", 1.0) },
			field:   "ratio",
			text:    "nan",
			wantErr: ErrInvalidField,
		},
		{
			name:  "existing bool",
			setup: func(b *BaseModel) { b.Set("ok", false) },
			field: "ok",
			text:  "true",
			want:  true,
		},
		{
			name:  "existing list",
			setup: func(b *BaseModel) { b.Set("tags", []any{}) },
			field: "tags",
			text:  `["a", 2]`,
			want:  []any{"a", int64(2)},
		},
		{
			name:    "existing list rejects object",
			setup:   func(b *BaseModel) { b.Set("tags", []any{}) },
			field:   "tags",
			text:    `{"a": 1}`,
			wantErr: ErrInvalidField,
		},
		{
			name:  "existing null takes text",
			setup: func(b *BaseModel) { b.Set("x", nil) },
			field: "x",
			text:  "v",
			want:  "v",
		},
		{
			name:    "reserved field",
			field:   KeyCreatedAt,
			text:    "2020-01-01T00:00:00",
			wantErr: ErrReservedField,
		},
		{
			name:    "empty field name",
			field:   "",
			text:    "v",
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBaseModel(nil)
			require.NoError(t, err)
			if tt.setup != nil {
				tt.setup(b)
			}
			got, err := b.Coerce(tt.field, tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceUsesSchemaDefaults(t *testing.T) {
	p, err := NewPlace(nil)
	require.NoError(t, err)

	v, err := p.Coerce("number_rooms", "4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	v, err = p.Coerce("latitude", "37.5")
	require.NoError(t, err)
	assert.Equal(t, 37.5, v)

	_, err = p.Coerce("max_guest", "many")
	assert.ErrorIs(t, err, ErrInvalidField)

	v, err = p.Coerce("name", "Loft")
	require.NoError(t, err)
	assert.Equal(t, "Loft", v)

	// Declared attributes are not instance fields until set.
	assert.NotContains(t, p.Export().Keys(), "number_rooms")
	assert.Equal(t, int64(0), p.NumberRooms())
}
