package cartolib

import (
	"math/big"
	"net/netip"
	"strings"

	"github.com/juju/errors"
)

// ParsePrefix parses a network prefix in a non-strict way: host bits
// are masked out. A bare IP address is a host prefix (/32 or /128).
// IPv4-mapped IPv6 prefixes are converted to IPv4 ones.
func ParsePrefix(value string) (netip.Prefix, error) {
	value = strings.TrimSpace(value)

	var prefix netip.Prefix

	if strings.Contains(value, "/") {
		parsed, err := netip.ParsePrefix(value)
		if err != nil {
			return netip.Prefix{}, errors.Annotatef(err, "cannot parse prefix %q", value)
		}

		prefix = parsed
	} else {
		addr, err := netip.ParseAddr(value)
		if err != nil {
			return netip.Prefix{}, errors.Annotatef(err, "cannot parse address %q", value)
		}

		addr = addr.WithZone("")
		prefix = netip.PrefixFrom(addr, addr.BitLen())
	}

	if addr := prefix.Addr(); addr.Is4In6() && prefix.Bits() >= 96 {
		prefix = netip.PrefixFrom(addr.Unmap(), prefix.Bits()-96)
	}

	return prefix.Masked(), nil
}

func hostBits(prefix netip.Prefix) int {
	return prefix.Addr().BitLen() - prefix.Bits()
}

// PrefixSize returns a number of addresses in the prefix.
func PrefixSize(prefix netip.Prefix) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(hostBits(prefix)))
}

// ComparePrefixes defines a canonical order of prefixes: larger
// networks go first, networks of the same size are ordered by their
// addresses. IPv4 addresses go before IPv6 ones.
func ComparePrefixes(one, another netip.Prefix) int {
	oneBits := hostBits(one)
	anotherBits := hostBits(another)

	switch {
	case oneBits > anotherBits:
		return -1
	case oneBits < anotherBits:
		return 1
	}

	if cmp := one.Addr().Compare(another.Addr()); cmp != 0 {
		return cmp
	}

	switch {
	case one.Bits() < another.Bits():
		return -1
	case one.Bits() > another.Bits():
		return 1
	}

	return 0
}
