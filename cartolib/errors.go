package cartolib

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrContextIsClosed  = errors.New("context is closed")
	ErrUnknownFamily    = errors.New("unknown address family")
	ErrUnknownStructure = errors.New("unknown dataset structure")
)

// MergeConflictError is returned by Merge if records disagree on some
// field which is set in both of them.
type MergeConflictError struct {
	Existing Record
	Incoming Record
}

func (m *MergeConflictError) Error() string {
	return fmt.Sprintf("conflicting records: existing=%s, incoming=%s",
		m.Existing, m.Incoming)
}

// HTTPStatusError is returned by HTTP client if netloc has responded
// with 4xx or 5xx.
type HTTPStatusError struct {
	StatusCode int
	Status     string
}

func (h *HTTPStatusError) Error() string {
	return "netloc has responded with " + h.Status
}

// Temporary tells if it makes sense to repeat a request.
func (h *HTTPStatusError) Temporary() bool {
	return h.StatusCode >= http.StatusInternalServerError ||
		h.StatusCode == http.StatusTooManyRequests
}
