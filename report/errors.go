package report

import "errors"

var (
	// ErrNilWriter rejects a nil destination.
	ErrNilWriter = errors.New("report: nil writer")

	// ErrNilFiberSet rejects a nil fiber set.
	ErrNilFiberSet = errors.New("report: nil fiber set")

	// ErrRadiusRange rejects a non-positive or non-finite fiber radius.
	ErrRadiusRange = errors.New("report: fiber radius must be positive and finite")

	// ErrNilSummary rejects rendering a nil summary.
	ErrNilSummary = errors.New("report: nil summary")
)
