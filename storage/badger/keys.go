package badger

import (
	"github.com/jeredhiggins/keyintent/core"
	"github.com/jeredhiggins/keyintent/storage"
)

// Key prefix for cached embedding vectors
const vectorPrefix = "embvec"

// makeVectorKey generates the key for a cached vector by ID.
// Format: prefix:id, the ID serialized with the storage codec.
func makeVectorKey(id core.ID) []byte {
	return append([]byte(vectorPrefix+":"), storage.MarshalID(id)...)
}
