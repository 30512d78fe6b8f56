package providers

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
)

// hostEntry makes an entry for a single IP address. Empty addresses
// and NULL placeholders produce nothing.
func hostEntry(address string, record cartolib.Record) (cartolib.Entry, bool) {
	address = strings.TrimSpace(address)

	if address == "" || strings.EqualFold(address, "null") {
		return cartolib.Entry{}, false
	}

	return cartolib.Entry{
		Prefix: address,
		Record: record,
	}, true
}

func isDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// sortedKeys returns keys of JSON object in stable order. Some feeds
// are objects of nodes and map iteration order is random.
func sortedKeys(data map[string]json.RawMessage) []string {
	rv := make([]string, 0, len(data))

	for k := range data {
		rv = append(rv, k)
	}

	sort.Strings(rv)

	return rv
}

func normalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
