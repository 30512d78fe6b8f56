package providers

import (
	"sort"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

var registry = map[string]func() cartolib.Source{
	NameGeofeed:    NewGeofeed,
	NameRanges:     NewRanges,
	NameAWS:        NewAWS,
	NameOracle:     NewOracle,
	NamePingdom:    NewPingdom,
	NameStatusCake: NewStatusCake,
	NameUpdown:     NewUpdown,
	NameHetrix:     NewHetrix,
}

// New returns a source by its name.
func New(name string) (cartolib.Source, error) {
	maker, ok := registry[name]
	if !ok {
		return nil, errors.Annotatef(ErrUnknownProvider, "provider %s", name)
	}

	return maker(), nil
}

// IsKnown checks if there is a provider with such name.
func IsKnown(name string) bool {
	_, ok := registry[name]

	return ok
}

// Names returns sorted names of all providers.
func Names() []string {
	rv := make([]string, 0, len(registry))

	for k := range registry {
		rv = append(rv, k)
	}

	sort.Strings(rv)

	return rv
}
