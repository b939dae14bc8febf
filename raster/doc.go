// Package raster renders two-tone cross-sections of packed cells.
//
// Render classifies every pixel center through a phase.Classifier and
// paints fiber and matrix in flat tones; Downsample produces a smaller
// Catmull-Rom preview; WritePNG encodes either. The image orientation
// follows plotting convention, y up.
//
// Rendering splits rows across goroutines (the classifier is read-only),
// but the output never depends on the split: the same cell renders to
// identical bytes at any worker count.
//
// Errors: ErrNilClassifier, ErrImageSize, ErrWorkerCount, ErrNilImage,
// ErrNilWriter; encoder failures are wrapped with the "raster:" prefix.
package raster
