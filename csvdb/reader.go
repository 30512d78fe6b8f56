package csvdb

import (
	"encoding/csv"
	"io"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

// RecordMaker is a type which converts parsed CSV row to the list of
// entries.
type RecordMaker func([]string) ([]cartolib.Entry, error)

// InvalidRowCallback is called for each row which cannot be parsed.
type InvalidRowCallback func(row []string, err error)

// CSVReader is a wrapper over csv.Reader to convert each row into
// entries.
type CSVReader struct {
	reader     *csv.Reader
	makeRecord RecordMaker
	onInvalid  InvalidRowCallback
}

// Read returns entries of the next row. If row cannot be parsed,
// callback is executed and nil is returned. io.EOF means that there
// are no rows anymore.
func (cr *CSVReader) Read() ([]cartolib.Entry, error) {
	data, err := cr.next()

	var parseErr *csv.ParseError

	switch {
	case err == io.EOF:
		return nil, io.EOF
	case errors.As(err, &parseErr):
		cr.onInvalid(data, err)

		return nil, nil
	case err != nil:
		return nil, errors.Annotate(err, "cannot read new record")
	}

	entries, err := cr.makeRecord(data)
	if err != nil {
		cr.onInvalid(data, err)

		return nil, nil
	}

	return entries, nil
}

// ReadAll reads all entries until the end of the stream.
func (cr *CSVReader) ReadAll() ([]cartolib.Entry, error) {
	rv := []cartolib.Entry{}

	for {
		entries, err := cr.Read()

		switch {
		case err == io.EOF:
			return rv, nil
		case err != nil:
			return nil, err
		}

		rv = append(rv, entries...)
	}
}

func (cr *CSVReader) next() (data []string, err error) {
	for err == nil && len(data) == 0 {
		data, err = cr.reader.Read()
	}

	return
}

// NewCSVReader converts given io.Reader instance into CSVReader.
func NewCSVReader(filefp io.Reader, makeRecord RecordMaker, onInvalid InvalidRowCallback) *CSVReader {
	reader := csv.NewReader(filefp)
	reader.ReuseRecord = true
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if onInvalid == nil {
		onInvalid = func([]string, error) {}
	}

	return &CSVReader{
		reader:     reader,
		makeRecord: makeRecord,
		onInvalid:  onInvalid,
	}
}
