package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKeepsInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("zeta", int64(1))
	r.Set("alpha", int64(2))
	r.Set("mid", int64(3))
	r.Set("zeta", int64(4))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys())
	v, _ := r.Get("zeta")
	assert.Equal(t, int64(4), v)

	r.Delete("alpha")
	r.Delete("absent")
	assert.Equal(t, []string{"zeta", "mid"}, r.Keys())
	assert.Equal(t, 2, r.Len())
}

func TestRecordJSON(t *testing.T) {
	r := NewRecord()
	r.Set("name", "Betty")
	r.Set("age", int64(30))
	r.Set("ratio", 2.0)
	r.Set("tags", []any{"x", 1.5})
	r.Set("meta", map[string]any{"k": true})
	r.Set("nothing", nil)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"Betty","age":30,"ratio":2.0,"tags":["x",1.5],"meta":{"k":true},"nothing":null}`,
		string(data))

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r.Keys(), got.Keys())
	assert.Equal(t, r.Map(), got.Map())

	ratio, _ := got.Get("ratio")
	assert.IsType(t, float64(0), ratio, "whole floats stay floats")
	age, _ := got.Get("age")
	assert.IsType(t, int64(0), age)
}

func TestRecordUnmarshalRejectsNonObjects(t *testing.T) {
	for _, in := range []string{`[]`, `"x"`, `{"a":1} {}`, `{"a":`, ``} {
		t.Run(in, func(t *testing.T) {
			var r Record
			assert.Error(t, json.Unmarshal([]byte(in), &r))
		})
	}
}

func TestWalkObjectOrder(t *testing.T) {
	var keys []string
	err := WalkObject([]byte(`{"b":1,"a":{"nested":[1,2]},"c":"x"}`), func(key string, raw json.RawMessage) error {
		keys = append(keys, key)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, keys)
}

func TestRecordFromMap(t *testing.T) {
	r, err := RecordFromMap(map[string]any{"b": 1, "a": "x", "c": []string{"p"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
	v, _ := r.Get("b")
	assert.Equal(t, int64(1), v)
	v, _ = r.Get("c")
	assert.Equal(t, []any{"p"}, v)
}

func TestRecordClone(t *testing.T) {
	r := NewRecord()
	r.Set("list", []any{"a"})
	c := r.Clone()
	c.Set("extra", int64(1))
	l, _ := c.Get("list")
	l.([]any)[0] = "changed"

	assert.Equal(t, 1, r.Len())
	orig, _ := r.Get("list")
	assert.Equal(t, []any{"a"}, orig)
}
