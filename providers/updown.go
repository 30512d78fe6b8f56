package providers

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

type updownNode struct {
	IP          string          `json:"ip"`
	IP6         string          `json:"ip6"`
	City        string          `json:"city"`
	CountryCode string          `json:"country_code"`
	Lat         json.RawMessage `json:"lat"`
	Lng         json.RawMessage `json:"lng"`
}

// updownProvider reads updown.io nodes https://updown.io/api/nodes.
// Nodes have coordinates which can be numbers or strings.
type updownProvider struct{}

func (u updownProvider) Name() string {
	return NameUpdown
}

func (u updownProvider) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	nodes := map[string]json.RawMessage{}

	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, errors.Annotate(err, "cannot parse updown nodes")
	}

	entries := []cartolib.Entry{}

	for _, name := range sortedKeys(nodes) {
		if isDone(ctx) {
			return nil, cartolib.ErrContextIsClosed
		}

		record, node, err := u.parseNode(nodes[name])
		if err != nil {
			logger.SourceSkipped(NameUpdown, name, err.Error())

			continue
		}

		for _, address := range []string{node.IP, node.IP6} {
			if entry, ok := hostEntry(address, record); ok {
				entries = append(entries, entry)
			}
		}
	}

	return entries, nil
}

func (u updownProvider) parseNode(raw json.RawMessage) (cartolib.Record, updownNode, error) {
	node := updownNode{}

	if err := json.Unmarshal(raw, &node); err != nil {
		return cartolib.Record{}, node, err
	}

	lat, err := cartolib.ParseCoordinate(node.Lat)
	if err != nil {
		return cartolib.Record{}, node, errors.Annotate(err, "incorrect lat")
	}

	lng, err := cartolib.ParseCoordinate(node.Lng)
	if err != nil {
		return cartolib.Record{}, node, errors.Annotate(err, "incorrect lng")
	}

	return cartolib.Record{
		CountryCode: normalizeCountry(node.CountryCode),
		City:        strings.TrimSpace(node.City),
		Lat:         lat,
		Lng:         lng,
	}, node, nil
}

func NewUpdown() cartolib.Source {
	return updownProvider{}
}
