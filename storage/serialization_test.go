package storage

import (
	"testing"

	"github.com/jeredhiggins/keyintent/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorRoundTrip(t *testing.T) {
	vector := []float32{0.25, -1.5, 0, 3.14159}

	data := MarshalVector(vector)
	got, err := UnmarshalVector(data)
	require.NoError(t, err)
	assert.Equal(t, vector, got)
}

func TestVectorRoundTrip_Empty(t *testing.T) {
	data := MarshalVector([]float32{})
	got, err := UnmarshalVector(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalVector_Truncated(t *testing.T) {
	data := MarshalVector([]float32{1, 2, 3})
	_, err := UnmarshalVector(data[:len(data)-2])
	assert.Error(t, err)
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDFromContent("embeddinggemma\x00/Arts & Entertainment")

	got, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVectorCacheKey_ModelScoped(t *testing.T) {
	a := VectorCacheKey("model-a", "/Sports")
	b := VectorCacheKey("model-b", "/Sports")
	assert.NotEqual(t, a, b)

	// Same inputs must produce the same key.
	assert.Equal(t, a, VectorCacheKey("model-a", "/Sports"))
}
