package providers

import (
	"context"
	"encoding/json"
	"io"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

const awsGlobalRegion = "GLOBAL"

type awsIPRanges struct {
	Prefixes []struct {
		IPPrefix string `json:"ip_prefix"`
		Region   string `json:"region"`
	} `json:"prefixes"`
	IPv6Prefixes []struct {
		IPv6Prefix string `json:"ipv6_prefix"`
		Region     string `json:"region"`
	} `json:"ipv6_prefixes"`
}

// awsProvider reads https://ip-ranges.amazonaws.com/ip-ranges.json.
// A location of the prefix is taken from its region.
type awsProvider struct{}

func (a awsProvider) Name() string {
	return NameAWS
}

func (a awsProvider) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	ranges := awsIPRanges{}

	if err := json.NewDecoder(r).Decode(&ranges); err != nil {
		return nil, errors.Annotate(err, "cannot parse aws ip ranges")
	}

	if len(ranges.Prefixes)+len(ranges.IPv6Prefixes) == 0 {
		return nil, ErrNoData
	}

	mapper := newRegionMapper(NameAWS, awsRegions, logger)
	entries := make([]cartolib.Entry, 0, len(ranges.Prefixes)+len(ranges.IPv6Prefixes))

	for _, v := range ranges.Prefixes {
		if entry, ok := mapper.Entry(v.IPPrefix, v.Region); ok {
			entries = append(entries, entry)
		}
	}

	for _, v := range ranges.IPv6Prefixes {
		if entry, ok := mapper.Entry(v.IPv6Prefix, v.Region); ok {
			entries = append(entries, entry)
		}
	}

	if isDone(ctx) {
		return nil, cartolib.ErrContextIsClosed
	}

	return entries, nil
}

func NewAWS() cartolib.Source {
	return awsProvider{}
}
