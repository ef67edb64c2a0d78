package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v2"
	"github.com/google/uuid"
)

// TestBadgerDB opens a throwaway in-memory badger instance.
func TestBadgerDB() *badger.DB {
	option := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(option)
	if err != nil {
		panic(err)
	}
	return db
}

// OpenBadgerDB opens (or creates) the on-disk store at path.
func OpenBadgerDB(path string) (*badger.DB, error) {
	option := badger.DefaultOptions(path).WithTruncate(true).WithLogger(nil)
	return badger.Open(option)
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) txnGet(key []byte) ([]byte, error) {
	var buf []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return buf, err
}

func (backend *BadgerBackend) txnPut(key, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf)
	})
}

func (backend *BadgerBackend) txnDelete(key []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (backend *BadgerBackend) Get(id uuid.UUID, recordType RecordType) ([]byte, error) {
	return backend.txnGet(GetKey(id, recordType))
}

func (backend *BadgerBackend) Put(id uuid.UUID, recordType RecordType, buf []byte) error {
	return backend.txnPut(GetKey(id, recordType), buf)
}

func (backend *BadgerBackend) Delete(id uuid.UUID, recordType RecordType) error {
	return backend.txnDelete(GetKey(id, recordType))
}

// DeleteExperiment drops both records of the experiment in a single
// transaction.
func (backend *BadgerBackend) DeleteExperiment(id uuid.UUID) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(GetKey(id, ExperimentRecordType)); err != nil {
			return err
		}
		return txn.Delete(GetKey(id, MeansRecordType))
	})
}

func (backend *BadgerBackend) IterateExperiments(lambda func(uuid.UUID) error) error {
	iterOpts := badger.IteratorOptions{}
	return backend.db.View(func(txn *badger.Txn) error {
		iter := txn.NewIterator(iterOpts)
		defer iter.Close()

		for iter.Seek(nil); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) != 17 || GetRecordTypeFromKey(key) != ExperimentRecordType {
				continue
			}
			if err := lambda(GetExperimentIDFromKey(key)); err != nil {
				return err
			}
		}
		return nil
	})
}
