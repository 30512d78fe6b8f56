package cartolib

import (
	"net"
	"net/netip"

	"github.com/juju/errors"
	"github.com/yl2chen/cidranger"
	"go4.org/netipx"
)

type indexEntry struct {
	prefix  netip.Prefix
	network net.IPNet
	record  Record
}

func (i *indexEntry) Network() net.IPNet {
	return i.network
}

// prefixIndex is a prefix trie which answers 2 questions: what is the
// most specific indexed prefix which contains an address and which
// indexed prefixes are inside of the given network.
type prefixIndex struct {
	ranger cidranger.Ranger
}

func (p *prefixIndex) Insert(prefix netip.Prefix, record Record) error {
	entry := &indexEntry{
		prefix:  prefix,
		network: *netipx.PrefixIPNet(prefix),
		record:  record,
	}

	if err := p.ranger.Insert(entry); err != nil {
		return errors.Annotatef(err, "cannot index %s", prefix)
	}

	return nil
}

// Containing returns the most specific prefix with length not greater
// than maxBits which contains a given address.
func (p *prefixIndex) Containing(addr netip.Addr, maxBits int) (*indexEntry, bool) {
	entries, err := p.ranger.ContainingNetworks(net.IP(addr.AsSlice()))
	if err != nil {
		return nil, false
	}

	var found *indexEntry

	for _, v := range entries {
		entry := v.(*indexEntry)

		if entry.prefix.Bits() > maxBits || entry.prefix.Addr().Is4() != addr.Is4() {
			continue
		}

		if found == nil || entry.prefix.Bits() > found.prefix.Bits() {
			found = entry
		}
	}

	return found, found != nil
}

// Covered returns indexed prefixes which are inside of the given one.
func (p *prefixIndex) Covered(prefix netip.Prefix) []*indexEntry {
	entries, err := p.ranger.CoveredNetworks(*netipx.PrefixIPNet(prefix))
	if err != nil {
		return nil
	}

	rv := make([]*indexEntry, 0, len(entries))

	for _, v := range entries {
		rv = append(rv, v.(*indexEntry))
	}

	return rv
}

func newPrefixIndex() *prefixIndex {
	return &prefixIndex{
		ranger: cidranger.NewPCTrieRanger(),
	}
}
