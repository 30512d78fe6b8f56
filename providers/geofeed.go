package providers

import (
	"context"
	"io"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/csvdb"
	"github.com/juju/errors"
)

// geofeedProvider reads RFC 8805 geofeeds:
// prefix,country,region,city,postal_code.
type geofeedProvider struct{}

func (g geofeedProvider) Name() string {
	return NameGeofeed
}

func (g geofeedProvider) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	reader := csvdb.NewCSVReader(r, func(row []string) ([]cartolib.Entry, error) {
		if isDone(ctx) {
			return nil, nil
		}

		return g.makeEntry(row)
	}, func(row []string, err error) {
		logger.SourceSkipped(NameGeofeed, strings.Join(row, ","), err.Error())
	})

	entries, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Annotate(err, "cannot read geofeed")
	}

	if isDone(ctx) {
		return nil, cartolib.ErrContextIsClosed
	}

	return entries, nil
}

func (g geofeedProvider) makeEntry(row []string) ([]cartolib.Entry, error) {
	if len(row) < 2 {
		return nil, errors.New("row is incomplete")
	}

	fields := make([]string, 5)

	for idx := range fields {
		if idx < len(row) {
			fields[idx] = strings.TrimSpace(row[idx])
		}
	}

	if fields[0] == "" {
		return nil, errors.New("prefix is empty")
	}

	return []cartolib.Entry{{
		Prefix: fields[0],
		Record: cartolib.Record{
			CountryCode: normalizeCountry(fields[1]),
			Subdivision: strings.ToUpper(fields[2]),
			City:        fields[3],
			PostalCode:  fields[4],
		},
	}}, nil
}

func NewGeofeed() cartolib.Source {
	return geofeedProvider{}
}
