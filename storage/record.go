package storage

import (
	"github.com/kelindar/binary"
)

// ExperimentRecord is the persisted form of an experiment: the inputs
// that produced it plus the headline summary. The raw accumulator is
// stored separately as a MeansRecord so listings stay cheap.
type ExperimentRecord struct {
	Name       string
	Population []float64
	SampleSize int32
	Trials     int32
	Seed       uint64
	CreatedAt  int64 // unix seconds

	Mean   float64
	StdDev float64
	Q05    float64
	Q95    float64
}

type MeansRecord struct {
	Means []float64
}

func ExperimentRecordToBytes(record *ExperimentRecord) ([]byte, error) {
	return binary.Marshal(record)
}

func BytesToExperimentRecord(buf []byte) (*ExperimentRecord, error) {
	record := &ExperimentRecord{}
	if err := binary.Unmarshal(buf, record); err != nil {
		return nil, err
	}
	return record, nil
}

func MeansRecordToBytes(record *MeansRecord) ([]byte, error) {
	return binary.Marshal(record)
}

func BytesToMeansRecord(buf []byte) (*MeansRecord, error) {
	record := &MeansRecord{}
	if err := binary.Unmarshal(buf, record); err != nil {
		return nil, err
	}
	return record, nil
}
