package domain

import "errors"

var (
	// ErrNoValidData is returned when no row survives normalization
	ErrNoValidData = errors.New("no valid data")

	// ErrMissingColumn is returned when the source header lacks a required column
	ErrMissingColumn = errors.New("required column missing")

	// Row-level defects. These never abort a run.
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNegativeAmount   = errors.New("negative amount")
	ErrEmptyDescription = errors.New("empty description")
)
