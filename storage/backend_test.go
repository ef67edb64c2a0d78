package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetKey(t *testing.T) {
	id := uuid.New()

	key := GetKey(id, MeansRecordType)

	assert.Equal(t, 17, len(key))
	assert.Equal(t, id, GetExperimentIDFromKey(key))
	assert.Equal(t, MeansRecordType, GetRecordTypeFromKey(key))
}

func TestInMemoryBackend(t *testing.T) {
	backend := NewInMemoryBackend()
	id := uuid.New()

	buf := []byte{0, 1, 2, 3, 4, 5}
	assert.NoError(t, backend.Put(id, ExperimentRecordType, buf))

	got, err := backend.Get(id, ExperimentRecordType)
	assert.NoError(t, err)
	assert.Equal(t, buf, got)

	// The other record type is a different key.
	_, err = backend.Get(id, MeansRecordType)
	assert.Equal(t, ErrNotFound, err)

	assert.NoError(t, backend.Delete(id, ExperimentRecordType))
	_, err = backend.Get(id, ExperimentRecordType)
	assert.Equal(t, ErrNotFound, err)
}

func TestInMemoryBackend_IterateExperiments(t *testing.T) {
	backend := NewInMemoryBackend()

	first := uuid.New()
	second := uuid.New()
	assert.NoError(t, backend.Put(first, ExperimentRecordType, []byte{1}))
	assert.NoError(t, backend.Put(second, ExperimentRecordType, []byte{2}))
	assert.NoError(t, backend.Put(second, MeansRecordType, []byte{3}))

	seen := make(map[uuid.UUID]bool)
	err := backend.IterateExperiments(func(id uuid.UUID) error {
		seen[id] = true
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(seen))
	assert.True(t, seen[first])
	assert.True(t, seen[second])
}

func TestInMemoryBackend_DeleteExperiment(t *testing.T) {
	backend := NewInMemoryBackend()
	id := uuid.New()

	assert.NoError(t, backend.Put(id, ExperimentRecordType, []byte{1}))
	assert.NoError(t, backend.Put(id, MeansRecordType, []byte{2}))
	assert.NoError(t, backend.DeleteExperiment(id))

	_, err := backend.Get(id, ExperimentRecordType)
	assert.Equal(t, ErrNotFound, err)
	_, err = backend.Get(id, MeansRecordType)
	assert.Equal(t, ErrNotFound, err)
}
