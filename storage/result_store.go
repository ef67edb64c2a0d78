package storage

import (
	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

// ResultStore sits on top of a Backend and keeps recently touched
// records in a ristretto cache. The cache is best effort: a miss always
// falls through to the backend.
type ResultStore struct {
	backend      Backend
	cacheEnabled bool
	cache        *ristretto.Cache
}

func NewResultStore(backend Backend, cacheEnabled bool) *ResultStore {
	cache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})

	return &ResultStore{
		backend:      backend,
		cacheEnabled: cacheEnabled,
		cache:        cache,
	}
}

func (store *ResultStore) PutExperiment(id uuid.UUID, record *ExperimentRecord) error {
	buf, err := ExperimentRecordToBytes(record)
	if err != nil {
		return err
	}
	if store.cacheEnabled {
		store.cache.Set(GetKey(id, ExperimentRecordType), record, 1)
	}
	return store.backend.Put(id, ExperimentRecordType, buf)
}

func (store *ResultStore) GetExperiment(id uuid.UUID) (*ExperimentRecord, error) {
	if store.cacheEnabled {
		record, found := store.cache.Get(GetKey(id, ExperimentRecordType))
		if found {
			return record.(*ExperimentRecord), nil
		}
	}
	buf, err := store.backend.Get(id, ExperimentRecordType)
	if err != nil {
		return nil, err
	}
	return BytesToExperimentRecord(buf)
}

func (store *ResultStore) PutMeans(id uuid.UUID, means []float64) error {
	buf, err := MeansRecordToBytes(&MeansRecord{Means: means})
	if err != nil {
		return err
	}
	return store.backend.Put(id, MeansRecordType, buf)
}

func (store *ResultStore) GetMeans(id uuid.UUID) ([]float64, error) {
	buf, err := store.backend.Get(id, MeansRecordType)
	if err != nil {
		return nil, err
	}
	record, err := BytesToMeansRecord(buf)
	if err != nil {
		return nil, err
	}
	return record.Means, nil
}

func (store *ResultStore) ListExperiments() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	err := store.backend.IterateExperiments(func(id uuid.UUID) error {
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (store *ResultStore) DeleteExperiment(id uuid.UUID) error {
	if store.cacheEnabled {
		store.cache.Del(GetKey(id, ExperimentRecordType))
	}
	return store.backend.DeleteExperiment(id)
}

func (store *ResultStore) Close() error {
	store.cache.Close()
	return store.backend.Close()
}
