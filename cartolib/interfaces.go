package cartolib

import (
	"context"
	"io"
	"net/http"
)

// Source is a feed adapter. It reads raw feed data and converts it
// into a list of entries. Keys of these entries are prefixes or bare
// IP addresses.
type Source interface {
	Name() string
	Collect(ctx context.Context, r io.Reader, logger Logger) ([]Entry, error)
}

// Logger receives all non-fatal conditions which happen during
// ingestion, consolidation and export.
type Logger interface {
	MergeConflict(prefix string, existing, incoming Record)
	EntryInvalid(prefix string, err error)
	EntryDropped(prefix string, reason DropReason)
	EntryOverlaps(prefix, accepted string, reason DropReason)
	CountryUnresolved(prefix, code string)
	SourceSkipped(source, item, reason string)
}

// HTTPClient is an interface for HTTP client which should be used to
// fetch remote sources.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}
