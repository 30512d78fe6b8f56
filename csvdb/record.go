package csvdb

import (
	"net/netip"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
	cidrman "github.com/EvilSuperstars/go-cidrman"
	"github.com/juju/errors"
	"go4.org/netipx"
)

// Record presents an extracted data from CSV row which describes a
// range of IP addresses.
type Record struct {
	Location cartolib.Record
	StartIP  string
	FinishIP string
}

// GetSubnets returns non-overlapping subnets of the given Record.
func (r *Record) GetSubnets() (subnets []string, err error) {
	start := netip.MustParseAddr(r.StartIP)

	if start.Is6() {
		finish := netip.MustParseAddr(r.FinishIP)

		for _, v := range netipx.IPRangeFrom(start, finish).Prefixes() {
			subnets = append(subnets, v.String())
		}

		return subnets, nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			switch x := rec.(type) {
			case string:
				err = errors.Annotate(errors.New(x), "incorrect subnets")
			case error:
				err = errors.Annotate(x, "incorrect subnets")
			}
		}
	}()

	subnets, err = cidrman.IPRangeToCIDRs(r.StartIP, r.FinishIP)

	return
}

// Entries returns entries for each subnet of the range.
func (r *Record) Entries() ([]cartolib.Entry, error) {
	subnets, err := r.GetSubnets()
	if err != nil {
		return nil, err
	}

	rv := make([]cartolib.Entry, 0, len(subnets))

	for _, v := range subnets {
		rv = append(rv, cartolib.Entry{
			Prefix: v,
			Record: r.Location,
		})
	}

	return rv, nil
}

// NewRecord creates new CSV record. Both IPs have to be of the same
// family and start should not be greater than finish.
func NewRecord(location cartolib.Record, startIP, finishIP string) (*Record, error) {
	startIP = strings.TrimSpace(startIP)
	finishIP = strings.TrimSpace(finishIP)

	start, err := parseIP(startIP)
	if err != nil {
		return nil, errors.Annotate(err, "start IP is not correct")
	}

	finish, err := parseIP(finishIP)
	if err != nil {
		return nil, errors.Annotate(err, "finish IP is not correct")
	}

	if start.Is4() != finish.Is4() {
		return nil, errors.New("IPs are of different families")
	}

	if finish.Less(start) {
		return nil, errors.New("start IP is greater than finish one")
	}

	return &Record{
		Location: location,
		StartIP:  start.String(),
		FinishIP: finish.String(),
	}, nil
}

func parseIP(value string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return netip.Addr{}, err
	}

	return addr.Unmap().WithZone(""), nil
}
