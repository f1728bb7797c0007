package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FailureKind categorizes gateway failures for logs and metrics.
type FailureKind string

const (
	FailureTimeout FailureKind = "timeout" // context deadline or client timeout
	FailureNetwork FailureKind = "network" // dial, reset, canceled
	FailureDecode  FailureKind = "decode"  // response body is not JSON
	FailureEncode  FailureKind = "encode"  // payload could not be marshaled
)

// CallError wraps a failed call with its classification.
type CallError struct {
	Kind     FailureKind
	Endpoint string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Endpoint, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// KindOf returns the classification of err, or FailureNetwork for unclassified errors.
func KindOf(err error) FailureKind {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return classify(err)
}

func classify(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return FailureTimeout
	}
	return FailureNetwork
}
