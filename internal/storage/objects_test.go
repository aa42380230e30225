package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key      string
		wantType string
		wantID   string
		wantErr  bool
	}{
		{key: "BaseModel.1234", wantType: "BaseModel", wantID: "1234"},
		{key: "User.56d43177-cc5f-4d6c-a0c1-e167f8c27337", wantType: "User", wantID: "56d43177-cc5f-4d6c-a0c1-e167f8c27337"},
		{key: "BaseModel", wantErr: true},
		{key: "a.b.c", wantErr: true},
		{key: ".id", wantErr: true},
		{key: "Type.", wantErr: true},
		{key: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			typeName, id, err := SplitKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrMalformedData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, typeName)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestObjectsOrder(t *testing.T) {
	o := newObjects()
	a, _ := types.NewBaseModel(nil)
	b, _ := types.NewBaseModel(nil)
	c, _ := types.NewBaseModel(nil)

	o.Set("k3", c)
	o.Set("k1", a)
	o.Set("k2", b)
	o.Set("k3", a)

	assert.Equal(t, []string{"k3", "k1", "k2"}, o.Keys())
	got, _ := o.Get("k3")
	assert.Same(t, a, got)

	assert.True(t, o.Delete("k1"))
	assert.False(t, o.Delete("k1"))
	assert.Equal(t, []string{"k3", "k2"}, o.Keys())

	var seen []string
	for k := range o.All() {
		seen = append(seen, k)
		o.Delete(k)
	}
	assert.Equal(t, []string{"k3", "k2"}, seen, "deleting while ranging is safe")
	assert.Equal(t, 0, o.Len())
}
