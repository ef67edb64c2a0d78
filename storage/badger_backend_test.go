package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBadgerBackend(t *testing.T) {
	backend := NewBadgerBackend(TestBadgerDB())
	defer backend.Close()

	id := uuid.New()
	buf := []byte{0, 1, 2, 3, 4, 5}

	assert.NoError(t, backend.Put(id, MeansRecordType, buf))

	got, err := backend.Get(id, MeansRecordType)
	assert.NoError(t, err)
	assert.Equal(t, buf, got)

	_, err = backend.Get(uuid.New(), MeansRecordType)
	assert.Equal(t, ErrNotFound, err)
}

func TestBadgerBackend_DeleteExperiment(t *testing.T) {
	backend := NewBadgerBackend(TestBadgerDB())
	defer backend.Close()

	id := uuid.New()
	assert.NoError(t, backend.Put(id, ExperimentRecordType, []byte{1}))
	assert.NoError(t, backend.Put(id, MeansRecordType, []byte{2}))

	assert.NoError(t, backend.DeleteExperiment(id))

	_, err := backend.Get(id, ExperimentRecordType)
	assert.Equal(t, ErrNotFound, err)
	_, err = backend.Get(id, MeansRecordType)
	assert.Equal(t, ErrNotFound, err)
}

func TestBadgerBackend_IterateExperiments(t *testing.T) {
	backend := NewBadgerBackend(TestBadgerDB())
	defer backend.Close()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		assert.NoError(t, backend.Put(id, ExperimentRecordType, []byte{1}))
		assert.NoError(t, backend.Put(id, MeansRecordType, []byte{2}))
	}

	seen := make(map[uuid.UUID]bool)
	err := backend.IterateExperiments(func(id uuid.UUID) error {
		seen[id] = true
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, len(ids), len(seen))
	for _, id := range ids {
		assert.True(t, seen[id])
	}
}
