package badger

import (
	"bytes"
	"testing"

	"github.com/jeredhiggins/keyintent/core"
	"github.com/jeredhiggins/keyintent/storage"
	"github.com/stretchr/testify/assert"
)

func TestMakeVectorKey(t *testing.T) {
	id := storage.VectorCacheKey("embeddinggemma", "/Sports")
	key := makeVectorKey(id)

	// Keys carry the prefix followed by the storage codec's ID encoding.
	assert.True(t, bytes.HasPrefix(key, []byte(vectorPrefix+":")))
	assert.Equal(t, storage.MarshalID(id), key[len(vectorPrefix)+1:])

	other := makeVectorKey(core.IDFromContent("something else"))
	assert.NotEqual(t, key, other)
}
