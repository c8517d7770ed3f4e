package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidSubnet returned when a subnet override cannot be turned into a /24 prefix
var ErrInvalidSubnet = errors.New("invalid subnet")

// ErrPersist returned when scan results could not be written
var ErrPersist = errors.New("failed to persist scan results")

// ErrHistoryDisabled returned when scan history is requested but not enabled
var ErrHistoryDisabled = errors.New("scan history is disabled")
