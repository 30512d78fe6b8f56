package cartolib

import (
	"math/big"
	"net/netip"
	"sort"
	"time"
)

type candidate struct {
	key    string
	prefix netip.Prefix
	record Record
}

// Consolidator turns accumulated dataset into a canonical one.
type Consolidator struct {
	logger   Logger
	reserved *ReservedSet
}

// Consolidate builds a new dataset from the given one:
//
//  1. 3-letter country codes are converted to 2-letter ones.
//  2. Entries with empty records are dropped.
//  3. Prefixes within reserved address space are dropped.
//  4. Duplicated prefixes are collapsed with Merge.
//  5. Prefixes are sorted: larger networks first.
//  6. A subnet which has the same record as its most specific accepted
//     supernet is dropped. A prefix which overlaps already accepted
//     ones without being their subnet is dropped as well.
//
// The result is in the same order as in step 5. Input dataset is not
// modified.
func (c *Consolidator) Consolidate(dataset *Dataset) (*Dataset, Stats) {
	startTime := time.Now()
	stats := Stats{TotalIPs: new(big.Int)}
	candidates := c.collect(dataset, &stats)

	sort.Slice(candidates, func(i, j int) bool {
		return ComparePrefixes(candidates[i].prefix, candidates[j].prefix) < 0
	})

	index := newPrefixIndex()
	result := NewDataset()

	for _, cand := range candidates {
		parent, hasParent := index.Containing(cand.prefix.Addr(), cand.prefix.Bits()-1)

		switch {
		case hasParent && parent.record.Equal(cand.record):
			c.logger.EntryOverlaps(cand.key, parent.prefix.String(), DropReasonRedundantSubnet)

			stats.OverlappedCIDRs++

			continue
		case !hasParent:
			if covered := index.Covered(cand.prefix); len(covered) > 0 {
				c.logger.EntryOverlaps(cand.key, covered[0].prefix.String(), DropReasonOverlap)

				stats.OverlappedCIDRs++

				continue
			}
		}

		if err := index.Insert(cand.prefix, cand.record); err != nil {
			c.logger.EntryInvalid(cand.key, err)

			stats.InvalidCIDRs++

			continue
		}

		if !hasParent {
			stats.TotalIPs.Add(stats.TotalIPs, PrefixSize(cand.prefix))
		}

		result.append(Entry{
			Prefix: cand.prefix.String(),
			Record: cand.record,
		})
	}

	stats.Accepted = result.Len()
	stats.Elapsed = time.Since(startTime)

	return result, stats
}

func (c *Consolidator) collect(dataset *Dataset, stats *Stats) []candidate {
	candidates := make([]candidate, 0, dataset.Len())
	seen := map[netip.Prefix]int{}

	for _, entry := range dataset.entries {
		prefix, err := ParsePrefix(entry.Prefix)
		if err != nil {
			c.logger.EntryInvalid(entry.Prefix, err)

			stats.InvalidCIDRs++

			continue
		}

		record := entry.Record.Clone()

		if code, ok := NormalizeCountryCode(record.CountryCode); ok {
			record.CountryCode = code
		} else {
			c.logger.CountryUnresolved(entry.Prefix, record.CountryCode)

			record.CountryCode = code
			stats.UnresolvedCountryCodes++
		}

		if record.Empty() {
			c.logger.EntryDropped(entry.Prefix, DropReasonEmpty)

			stats.EmptyRecords++

			continue
		}

		if c.reserved.Contains(prefix) {
			c.logger.EntryDropped(entry.Prefix, DropReasonReserved)

			stats.IgnoredPrivateCIDRs++

			continue
		}

		if idx, ok := seen[prefix]; ok {
			merged, err := Merge(candidates[idx].record, record)
			if err != nil {
				c.logger.MergeConflict(prefix.String(), candidates[idx].record, record)
			}

			c.logger.EntryDropped(entry.Prefix, DropReasonDuplicate)

			candidates[idx].record = merged
			stats.DuplicatedCIDRs++

			continue
		}

		seen[prefix] = len(candidates)
		candidates = append(candidates, candidate{
			key:    entry.Prefix,
			prefix: prefix,
			record: record,
		})
	}

	return candidates
}

// NewConsolidator returns a new consolidator. If reserved is nil, a
// default set of reserved prefixes is used.
func NewConsolidator(logger Logger, reserved *ReservedSet) *Consolidator {
	if reserved == nil {
		reserved, _ = NewReservedSet()
	}

	return &Consolidator{
		logger:   logger,
		reserved: reserved,
	}
}
