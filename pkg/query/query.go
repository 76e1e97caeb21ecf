// Package query fetches raw graph data from an external query service.
// Everything network-related lives here: the engine only ever sees the
// decoded raw records.
package query

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/kgview/kgview/pkg/common"
)

// Result is one raw query result, possibly the concatenation of several
// scoped queries. Overlapping records are expected; deduplication is the
// normalizer's job.
type Result struct {
	Nodes         []common.RawNode         `json:"nodes"`
	Relationships []common.RawRelationship `json:"relationships"`
}

// Client defines the interface for fetching the raw graph of one graph id.
type Client interface {
	FetchGraph(ctx context.Context, graphID string) (Result, error)
}

// FetchError wraps a failed fetch and records whether it was cut off by
// the deadline, so callers can tell "cancelled due to timeout" apart from
// other failures.
type FetchError struct {
	Timeout bool
	Err     error
}

func (e *FetchError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("graph fetch timed out: %v", e.Err)
	}
	return fmt.Sprintf("graph fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err represents a deadline-exceeded fetch.
func IsTimeout(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Timeout {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func wrapFetchError(err error) error {
	if err == nil {
		return nil
	}
	timeout := errors.Is(err, context.DeadlineExceeded)
	var netErr net.Error
	if !timeout && errors.As(err, &netErr) && netErr.Timeout() {
		timeout = true
	}
	return &FetchError{Timeout: timeout, Err: err}
}
