package providers

import (
	"context"
	"encoding/json"
	"io"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/juju/errors"
)

type oracleIPRanges struct {
	Regions []struct {
		Region string `json:"region"`
		CIDRs  []struct {
			CIDR string `json:"cidr"`
		} `json:"cidrs"`
	} `json:"regions"`
}

// oracleProvider reads
// https://docs.oracle.com/en-us/iaas/tools/public_ip_ranges.json.
type oracleProvider struct{}

func (o oracleProvider) Name() string {
	return NameOracle
}

func (o oracleProvider) Collect(ctx context.Context, r io.Reader, logger cartolib.Logger) ([]cartolib.Entry, error) {
	ranges := oracleIPRanges{}

	if err := json.NewDecoder(r).Decode(&ranges); err != nil {
		return nil, errors.Annotate(err, "cannot parse oracle ip ranges")
	}

	if len(ranges.Regions) == 0 {
		return nil, ErrNoData
	}

	mapper := newRegionMapper(NameOracle, oracleRegions, logger)
	entries := []cartolib.Entry{}

	for _, region := range ranges.Regions {
		for _, v := range region.CIDRs {
			if entry, ok := mapper.Entry(v.CIDR, region.Region); ok {
				entries = append(entries, entry)
			}
		}
	}

	if isDone(ctx) {
		return nil, cartolib.ErrContextIsClosed
	}

	return entries, nil
}

func NewOracle() cartolib.Source {
	return oracleProvider{}
}
