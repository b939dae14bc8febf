package raster

import "errors"

var (
	// ErrNilClassifier rejects rendering without a classifier.
	ErrNilClassifier = errors.New("raster: nil classifier")

	// ErrImageSize rejects non-positive pixel dimensions.
	ErrImageSize = errors.New("raster: image dimensions must be positive")

	// ErrWorkerCount rejects a negative worker bound.
	ErrWorkerCount = errors.New("raster: worker count must not be negative")

	// ErrNilImage rejects a nil source image.
	ErrNilImage = errors.New("raster: nil image")

	// ErrNilWriter rejects a nil destination.
	ErrNilWriter = errors.New("raster: nil writer")
)
