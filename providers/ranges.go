package providers

import (
	"context"
	"io"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/csvdb"
	"github.com/juju/errors"
)

// rangesProvider reads CSV files where each row is a range of
// addresses: start,finish,country,region,city,postal_code. Each range
// is split into a minimal list of prefixes.
type rangesProvider struct{}

func (r rangesProvider) Name() string {
	return NameRanges
}

func (r rangesProvider) Collect(ctx context.Context, reader io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	csvReader := csvdb.NewCSVReader(reader, func(row []string) ([]cartolib.Entry, error) {
		if isDone(ctx) {
			return nil, nil
		}

		return r.makeEntries(row)
	}, func(row []string, err error) {
		logger.SourceSkipped(NameRanges, strings.Join(row, ","), err.Error())
	})

	entries, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Annotate(err, "cannot read ranges")
	}

	if isDone(ctx) {
		return nil, cartolib.ErrContextIsClosed
	}

	return entries, nil
}

func (r rangesProvider) makeEntries(row []string) ([]cartolib.Entry, error) {
	if len(row) < 3 {
		return nil, errors.New("row is incomplete")
	}

	fields := make([]string, 6)

	for idx := range fields {
		if idx < len(row) {
			fields[idx] = strings.TrimSpace(row[idx])
		}
	}

	record, err := csvdb.NewRecord(cartolib.Record{
		CountryCode: normalizeCountry(fields[2]),
		Subdivision: strings.ToUpper(fields[3]),
		City:        fields[4],
		PostalCode:  fields[5],
	}, fields[0], fields[1])
	if err != nil {
		return nil, err
	}

	return record.Entries()
}

func NewRanges() cartolib.Source {
	return rangesProvider{}
}
