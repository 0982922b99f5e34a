package munge

import "errors"

var ErrEntryNotFound = errors.New("entry not found")
var ErrReadOnly = errors.New("modifications are not allowed")
var ErrAnalyzerUnavailable = errors.New("analyzer unavailable")

// ErrTieBreakDrift means a tie-breaker rule matched the pool but its winner
// was not found in it. That is a logic bug, not bad data, and the batch must
// abort instead of silently degrading.
var ErrTieBreakDrift = errors.New("tie-breaker table out of sync with filtering")
