package raster_test

import (
	"testing"

	"github.com/fibrelab/rvegen/packing"
	"github.com/fibrelab/rvegen/periodic"
	"github.com/fibrelab/rvegen/phase"
	"github.com/fibrelab/rvegen/raster"
)

func benchClassifier(b *testing.B) *phase.Classifier {
	b.Helper()
	cfg := packing.Config{
		Domain:        periodic.Domain{W: 1, H: 1, D: 0.01},
		Radius:        0.05,
		TargetVf:      0.30,
		MinDistFactor: 0.025,
	}
	opts := packing.DefaultOptions()
	opts.Seed = 42
	fs, err := packing.Generate(cfg, opts)
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	c, err := phase.NewClassifier(fs)
	if err != nil {
		b.Fatalf("classifier: %v", err)
	}
	return c
}

func BenchmarkRender(b *testing.B) {
	c := benchClassifier(b)
	opts := raster.Options{Width: 256, Height: 256}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := raster.Render(c, opts); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}

func BenchmarkDownsample(b *testing.B) {
	c := benchClassifier(b)
	img, err := raster.Render(c, raster.Options{Width: 512, Height: 512})
	if err != nil {
		b.Fatalf("render: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := raster.Downsample(img, 128); err != nil {
			b.Fatalf("downsample: %v", err)
		}
	}
}
