package providers

import (
	"context"
	"encoding/json"
	"io"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

type statusCakeNode struct {
	IP         string `json:"ip"`
	IPv6       string `json:"ipv6"`
	CountryISO string `json:"countryiso"`
}

// statusCakeProvider reads StatusCake locations
// https://app.statuscake.com/Workfloor/Locations.php?format=json. It is
// an object of nodes keyed by their names.
type statusCakeProvider struct{}

func (s statusCakeProvider) Name() string {
	return NameStatusCake
}

func (s statusCakeProvider) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	nodes := map[string]json.RawMessage{}

	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, errors.Annotate(err, "cannot parse statuscake locations")
	}

	entries := []cartolib.Entry{}

	for _, name := range sortedKeys(nodes) {
		if isDone(ctx) {
			return nil, cartolib.ErrContextIsClosed
		}

		node := statusCakeNode{}

		if err := json.Unmarshal(nodes[name], &node); err != nil {
			logger.SourceSkipped(NameStatusCake, name, err.Error())

			continue
		}

		record := cartolib.Record{CountryCode: normalizeCountry(node.CountryISO)}

		for _, address := range []string{node.IP, node.IPv6} {
			if entry, ok := hostEntry(address, record); ok {
				entries = append(entries, entry)
			}
		}
	}

	return entries, nil
}

func NewStatusCake() cartolib.Source {
	return statusCakeProvider{}
}
