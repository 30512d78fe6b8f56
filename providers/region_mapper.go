package providers

import (
	"strings"

	"github.com/9seconds/cartographer/cartolib"
)

// regionMapper converts cloud regions into locations. Each unknown
// region is reported once.
type regionMapper struct {
	source   string
	regions  map[string]cartolib.Record
	logger   cartolib.Logger
	reported map[string]bool
}

func (r *regionMapper) Entry(prefix, region string) (cartolib.Entry, bool) {
	prefix = strings.TrimSpace(prefix)

	if prefix == "" {
		return cartolib.Entry{}, false
	}

	record, ok := r.regions[region]

	switch {
	case ok:
		return cartolib.Entry{Prefix: prefix, Record: record}, true
	case region == awsGlobalRegion:
		return cartolib.Entry{}, false
	case !r.reported[region]:
		r.reported[region] = true
		r.logger.SourceSkipped(r.source, region, "region is not mapped")
	}

	return cartolib.Entry{}, false
}

func newRegionMapper(source string, regions map[string]cartolib.Record, logger cartolib.Logger) *regionMapper {
	return &regionMapper{
		source:   source,
		regions:  regions,
		logger:   logger,
		reported: map[string]bool{},
	}
}
