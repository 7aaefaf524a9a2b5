package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  Field[string] `json:"name"`
	Count Field[int]    `json:"count"`
}

func TestUnmarshalAbsent(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Name.Present)
	assert.False(t, p.Count.Present)
}

func TestUnmarshalValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"fix typo","count":3}`), &p))
	assert.True(t, p.Name.Present)
	assert.True(t, p.Name.Valid)
	assert.Equal(t, "fix typo", p.Name.Value)
	assert.True(t, p.Count.Valid)
	assert.Equal(t, 3, p.Count.Value)
}

func TestUnmarshalExplicitNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &p))
	assert.True(t, p.Name.Present)
	assert.False(t, p.Name.Valid)
	assert.Zero(t, p.Name.Value)
	assert.False(t, p.Count.Present)
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"count":"three"}`), &p))
}

func TestConstructors(t *testing.T) {
	f := Of("x")
	assert.True(t, f.Present)
	assert.True(t, f.Valid)
	assert.Equal(t, "x", f.Value)

	n := Null[string]()
	assert.True(t, n.Present)
	assert.False(t, n.Valid)
}

func TestMarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(payload{Name: Of("a"), Count: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","count":null}`, string(b))
}
