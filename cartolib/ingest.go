package cartolib

import (
	"net/netip"
	"strings"
)

// Family is a filter of address families.
type Family uint8

const (
	FamilyAll Family = iota
	FamilyIPv4
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	}

	return "all"
}

// Matches tells if a prefix belongs to the family.
func (f Family) Matches(prefix netip.Prefix) bool {
	switch f {
	case FamilyIPv4:
		return prefix.Addr().Is4()
	case FamilyIPv6:
		return prefix.Addr().Is6()
	}

	return true
}

// ParseFamily parses a name of the family. An empty string means all
// families.
func ParseFamily(value string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return FamilyAll, nil
	case "ipv4", "ip4", "ip", "v4":
		return FamilyIPv4, nil
	case "ipv6", "ip6", "v6":
		return FamilyIPv6, nil
	}

	return FamilyAll, ErrUnknownFamily
}

// IngestStats is a summary of applying a single source to a dataset.
type IngestStats struct {
	Source    string
	Collected int
	Inserted  int
	Merged    int
	Unchanged int
	Conflicts int
	Skipped   int
}

// Ingest adds entries of the source into the dataset. Entries are
// keyed by canonical prefix strings. Prefixes which cannot be parsed
// or do not match a family are skipped.
func Ingest(dataset *Dataset, source string, entries []Entry, family Family, logger Logger) IngestStats {
	stats := IngestStats{
		Source:    source,
		Collected: len(entries),
	}

	for _, entry := range entries {
		prefix, err := ParsePrefix(entry.Prefix)
		if err != nil {
			logger.EntryInvalid(entry.Prefix, err)

			stats.Skipped++

			continue
		}

		if !family.Matches(prefix) {
			logger.EntryDropped(entry.Prefix, DropReasonFamily)

			stats.Skipped++

			continue
		}

		key := prefix.String()

		result, err := dataset.Add(key, entry.Record)

		switch result {
		case AddResultInserted:
			stats.Inserted++
		case AddResultMerged:
			stats.Merged++
		case AddResultUnchanged:
			stats.Unchanged++
		case AddResultConflict:
			if conflict, ok := err.(*MergeConflictError); ok {
				logger.MergeConflict(key, conflict.Existing, conflict.Incoming)
			}

			stats.Conflicts++
		}
	}

	return stats
}
