// Package storage persists finished experiments: the parameters and
// summary in one record, the raw accumulator in another. Both records
// live under a 17-byte key built from the experiment UUID and a
// record-type byte, against either an in-memory map or badger.
package storage

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

type RecordType byte

const (
	ExperimentRecordType RecordType = iota
	MeansRecordType
)

// GetKey packs an experiment id and record type into a byte key.
//
// <16 bytes UUID> <1 byte record type>
func GetKey(id uuid.UUID, recordType RecordType) []byte {
	buf := make([]byte, 17)
	copy(buf[:16], id[:])
	buf[16] = byte(recordType)
	return buf
}

func GetExperimentIDFromKey(buf []byte) uuid.UUID {
	var id uuid.UUID
	copy(id[:], buf[:16])
	return id
}

func GetRecordTypeFromKey(buf []byte) RecordType {
	return RecordType(buf[16])
}

type Backend interface {
	Get(id uuid.UUID, recordType RecordType) ([]byte, error)
	Put(id uuid.UUID, recordType RecordType, buf []byte) error
	Delete(id uuid.UUID, recordType RecordType) error

	// DeleteExperiment removes every record of the experiment in one
	// operation.
	DeleteExperiment(id uuid.UUID) error

	// IterateExperiments calls lambda once per stored experiment.
	IterateExperiments(lambda func(uuid.UUID) error) error

	Close() error
}

type InMemoryBackend struct {
	records map[string][]byte
	mutex   sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		records: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(id uuid.UUID, recordType RecordType) ([]byte, error) {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	buf, ok := backend.records[string(GetKey(id, recordType))]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(id uuid.UUID, recordType RecordType, buf []byte) error {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	backend.records[string(GetKey(id, recordType))] = buf
	return nil
}

func (backend *InMemoryBackend) Delete(id uuid.UUID, recordType RecordType) error {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	delete(backend.records, string(GetKey(id, recordType)))
	return nil
}

func (backend *InMemoryBackend) DeleteExperiment(id uuid.UUID) error {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	delete(backend.records, string(GetKey(id, ExperimentRecordType)))
	delete(backend.records, string(GetKey(id, MeansRecordType)))
	return nil
}

func (backend *InMemoryBackend) IterateExperiments(lambda func(uuid.UUID) error) error {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	for k := range backend.records {
		buf := []byte(k)
		if GetRecordTypeFromKey(buf) != ExperimentRecordType {
			continue
		}
		if err := lambda(GetExperimentIDFromKey(buf)); err != nil {
			return err
		}
	}
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	backend.records = nil
	return nil
}
