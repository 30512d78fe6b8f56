package main

import (
	"io"
	"math/big"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func printIngestReport(w io.Writer, sources []cartolib.IngestStats) {
	if len(sources) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Source", "Collected", "Inserted", "Merged", "Unchanged", "Conflicts", "Skipped"})

	for _, v := range sources {
		table.Append([]string{
			v.Source,
			humanize.Comma(int64(v.Collected)),
			humanize.Comma(int64(v.Inserted)),
			humanize.Comma(int64(v.Merged)),
			humanize.Comma(int64(v.Unchanged)),
			humanize.Comma(int64(v.Conflicts)),
			humanize.Comma(int64(v.Skipped)),
		})
	}

	table.Render()
}

func printStats(w io.Writer, stats cartolib.Stats) {
	totalIPs := stats.TotalIPs
	if totalIPs == nil {
		totalIPs = new(big.Int)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk([][]string{
		{"Accepted CIDRs", humanize.Comma(int64(stats.Accepted))},
		{"Total IPs", humanize.BigComma(totalIPs)},
		{"Overlapped CIDRs", humanize.Comma(int64(stats.OverlappedCIDRs))},
		{"Ignored private CIDRs", humanize.Comma(int64(stats.IgnoredPrivateCIDRs))},
		{"Duplicated CIDRs", humanize.Comma(int64(stats.DuplicatedCIDRs))},
		{"Invalid CIDRs", humanize.Comma(int64(stats.InvalidCIDRs))},
		{"Empty records", humanize.Comma(int64(stats.EmptyRecords))},
		{"Unresolved country codes", humanize.Comma(int64(stats.UnresolvedCountryCodes))},
		{"Elapsed", stats.Elapsed.String()},
	})
	table.Render()
}
