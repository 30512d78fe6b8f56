package main

import (
	"io"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/rs/zerolog"
)

type logger struct {
	log zerolog.Logger
}

func (l *logger) MergeConflict(prefix string, existing, incoming cartolib.Record) {
	l.log.Warn().
		Str("prefix", prefix).
		Stringer("existing", existing).
		Stringer("incoming", incoming).
		Msg("Conflicting records, first seen is kept")
}

func (l *logger) EntryInvalid(prefix string, err error) {
	l.log.Warn().Str("prefix", prefix).Err(err).Msg("Invalid entry")
}

func (l *logger) EntryDropped(prefix string, reason cartolib.DropReason) {
	l.log.Debug().Str("prefix", prefix).Str("reason", string(reason)).Msg("Entry is dropped")
}

func (l *logger) EntryOverlaps(prefix, accepted string, reason cartolib.DropReason) {
	l.log.Debug().
		Str("prefix", prefix).
		Str("accepted", accepted).
		Str("reason", string(reason)).
		Msg("Entry is dropped")
}

func (l *logger) CountryUnresolved(prefix, code string) {
	l.log.Warn().Str("prefix", prefix).Str("country_code", code).Msg("Unknown country code")
}

func (l *logger) SourceSkipped(source, item, reason string) {
	l.log.Info().Str("source", source).Str("item", item).Str("reason", reason).Msg("Item is skipped")
}

func (l *logger) IngestReport(stats cartolib.IngestStats) {
	l.log.Info().
		Str("source", stats.Source).
		Int("collected", stats.Collected).
		Int("inserted", stats.Inserted).
		Int("merged", stats.Merged).
		Int("unchanged", stats.Unchanged).
		Int("conflicts", stats.Conflicts).
		Int("skipped", stats.Skipped).
		Msg("Source is ingested")
}

func (l *logger) ConsolidateReport(stats cartolib.Stats) {
	l.log.Info().Interface("stats", stats).Msg("Dataset is consolidated")
}

func (l *logger) ExportReport(path string, entries int) {
	l.log.Info().Str("path", path).Int("entries", entries).Msg("MMDB is written")
}

func newLogger(w io.Writer, eventName string) *logger {
	return &logger{
		log: zerolog.New(w).With().Timestamp().Stack().Str("event_name", eventName).Logger(),
	}
}
