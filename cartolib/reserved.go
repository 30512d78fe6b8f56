package cartolib

import (
	"net/netip"

	"github.com/juju/errors"
)

// DefaultReservedPrefixes is a list of special-purpose address blocks
// which are never routed in public internet: private networks,
// loopback, link-local, documentation, benchmarking, multicast etc.
var DefaultReservedPrefixes = []string{
	"0.0.0.0/8",
	"10.0.0.0/8",
	"100.64.0.0/10",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.0.0.0/24",
	"192.0.2.0/24",
	"192.168.0.0/16",
	"198.18.0.0/15",
	"198.51.100.0/24",
	"203.0.113.0/24",
	"224.0.0.0/4",
	"240.0.0.0/4",
	"::/128",
	"::1/128",
	"64:ff9b:1::/48",
	"100::/64",
	"2001::/32",
	"2001:2::/48",
	"2001:10::/28",
	"2001:db8::/32",
	"2002::/16",
	"3fff::/20",
	"fc00::/7",
	"fe80::/10",
	"fec0::/10",
	"ff00::/8",
}

// ReservedSet is a set of prefixes which should not get into a
// consolidated dataset.
type ReservedSet struct {
	index *prefixIndex
}

// Contains tells if a prefix is fully within reserved space.
func (r *ReservedSet) Contains(prefix netip.Prefix) bool {
	_, ok := r.index.Containing(prefix.Addr(), prefix.Bits())

	return ok
}

// NewReservedSet builds a set from default reserved prefixes and a
// list of extra ones.
func NewReservedSet(extra ...string) (*ReservedSet, error) {
	set := &ReservedSet{
		index: newPrefixIndex(),
	}

	for _, v := range append(append([]string{}, DefaultReservedPrefixes...), extra...) {
		prefix, err := ParsePrefix(v)
		if err != nil {
			return nil, errors.Annotate(err, "incorrect reserved prefix")
		}

		if set.Contains(prefix) {
			continue
		}

		if err := set.index.Insert(prefix, Record{}); err != nil {
			return nil, errors.Annotate(err, "cannot add reserved prefix")
		}
	}

	return set, nil
}
