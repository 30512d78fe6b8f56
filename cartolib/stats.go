package cartolib

import (
	"encoding/json"
	"math/big"
	"time"
)

// DropReason explains why an entry did not get into a result.
type DropReason string

const (
	DropReasonEmpty           DropReason = "empty record"
	DropReasonReserved        DropReason = "reserved address space"
	DropReasonDuplicate       DropReason = "duplicated prefix"
	DropReasonRedundantSubnet DropReason = "subnet repeats its supernet"
	DropReasonOverlap         DropReason = "overlaps accepted prefix"
	DropReasonFamily          DropReason = "address family is filtered out"
)

// Stats is a summary of a consolidation run.
type Stats struct {
	Accepted               int
	TotalIPs               *big.Int
	OverlappedCIDRs        int
	IgnoredPrivateCIDRs    int
	DuplicatedCIDRs        int
	InvalidCIDRs           int
	EmptyRecords           int
	UnresolvedCountryCodes int
	Elapsed                time.Duration
}

// MarshalJSON is to conform json.Marshaler interface.
func (s Stats) MarshalJSON() ([]byte, error) {
	totalIPs := "0"

	if s.TotalIPs != nil {
		totalIPs = s.TotalIPs.String()
	}

	rawStruct := struct {
		Accepted               int    `json:"accepted"`
		TotalIPs               string `json:"total_ips"`
		OverlappedCIDRs        int    `json:"overlapped_cidrs"`
		IgnoredPrivateCIDRs    int    `json:"ignored_private_cidrs"`
		DuplicatedCIDRs        int    `json:"duplicated_cidrs"`
		InvalidCIDRs           int    `json:"invalid_cidrs"`
		EmptyRecords           int    `json:"empty_records"`
		UnresolvedCountryCodes int    `json:"unresolved_country_codes"`
		Elapsed                string `json:"elapsed"`
	}{
		Accepted:               s.Accepted,
		TotalIPs:               totalIPs,
		OverlappedCIDRs:        s.OverlappedCIDRs,
		IgnoredPrivateCIDRs:    s.IgnoredPrivateCIDRs,
		DuplicatedCIDRs:        s.DuplicatedCIDRs,
		InvalidCIDRs:           s.InvalidCIDRs,
		EmptyRecords:           s.EmptyRecords,
		UnresolvedCountryCodes: s.UnresolvedCountryCodes,
		Elapsed:                s.Elapsed.String(),
	}

	return json.Marshal(&rawStruct)
}
