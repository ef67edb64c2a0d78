package vector

// Record is one row of a RecordTable: an identifier paired with a
// numeric attribute.
type Record struct {
	ID    string
	Value float64
}

// RecordTable is an ordered collection of records. Rows keep their
// insertion order; UpdateEach visits them in that order.
type RecordTable struct {
	records []Record
}

func NewRecordTable() *RecordTable {
	return &RecordTable{
		records: make([]Record, 0),
	}
}

func (table *RecordTable) Append(id string, value float64) {
	table.records = append(table.records, Record{ID: id, Value: value})
}

func (table *RecordTable) Len() int {
	return len(table.records)
}

func (table *RecordTable) Get(i int) Record {
	return table.records[i]
}

// UpdateEach applies fn to every row in place.
func (table *RecordTable) UpdateEach(fn func(record *Record)) {
	for i := range table.records {
		fn(&table.records[i])
	}
}

// Values returns the numeric column as a fresh sequence.
func (table *RecordTable) Values() []float64 {
	values := make([]float64, len(table.records))
	for i, record := range table.records {
		values[i] = record.Value
	}
	return values
}
