package domain

import "errors"

// Domain errors (no external dependencies).
//
// Structural errors abort a conversion outright: a partially valid voucher
// document is unsafe to import into the accounting system. Per-cell numeric
// parse failures are not errors at all; they default to zero during
// normalization.
var (
	ErrMissingColumn     = errors.New("required column missing")
	ErrEmptyDataset      = errors.New("no invoice rows to process")
	ErrUnparsableDate    = errors.New("invoice date is not a calendar date")
	ErrInconsistentGroup = errors.New("invoice rows disagree on voucher type, party or date")
	ErrInvalidInput      = errors.New("invalid input")
)
