package cartolib

import (
	"bytes"
	"encoding/json"
)

// Entry is a pair of a prefix key and a record. A key is kept as it
// was given by a source.
type Entry struct {
	Prefix string
	Record Record
}

// AddResult describes what Dataset.Add has done.
type AddResult uint8

const (
	AddResultInserted AddResult = iota
	AddResultMerged
	AddResultUnchanged
	AddResultConflict
)

// Dataset is an ordered collection of entries. Keys are unique if
// dataset is populated with Add but a document loaded from disk may
// contain duplicates: they are kept as is, consolidation takes care of
// them.
type Dataset struct {
	entries []Entry
	index   map[string]int
}

// Len returns a number of entries.
func (d *Dataset) Len() int {
	return len(d.entries)
}

// Entries returns a copy of dataset entries in their order.
func (d *Dataset) Entries() []Entry {
	rv := make([]Entry, len(d.entries))
	copy(rv, d.entries)

	return rv
}

// Get returns a record of the first entry with a given key.
func (d *Dataset) Get(prefix string) (Record, bool) {
	idx, ok := d.index[prefix]
	if !ok {
		return Record{}, false
	}

	return d.entries[idx].Record, true
}

// Add inserts a new entry or merges a record into the existing one
// with the same key. On conflict an existing record is kept and
// MergeConflictError is returned.
func (d *Dataset) Add(prefix string, record Record) (AddResult, error) {
	idx, ok := d.index[prefix]
	if !ok {
		d.append(Entry{Prefix: prefix, Record: record.Clone()})

		return AddResultInserted, nil
	}

	existing := d.entries[idx].Record

	merged, err := Merge(existing, record)
	if err != nil {
		return AddResultConflict, err
	}

	if merged.Equal(existing) {
		return AddResultUnchanged, nil
	}

	d.entries[idx].Record = merged

	return AddResultMerged, nil
}

func (d *Dataset) append(entry Entry) {
	if _, ok := d.index[entry.Prefix]; !ok {
		d.index[entry.Prefix] = len(d.entries)
	}

	d.entries = append(d.entries, entry)
}

// MarshalJSON is to conform json.Marshaler interface. Dataset is
// serialized as JSON object which keeps an order of entries.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte('{')

	for idx, v := range d.entries {
		if idx > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(v.Prefix)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(v.Record)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// NewDataset returns a new empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		entries: []Entry{},
		index:   map[string]int{},
	}
}
