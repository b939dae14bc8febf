package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/fibrelab/rvegen"
	"github.com/fibrelab/rvegen/periodic"
	"github.com/fibrelab/rvegen/phase"
)

// Default two-tone palette: fibers in plot blue on a white matrix.
var (
	DefaultFiberColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	DefaultMatrixColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Options controls the section rendering.
type Options struct {
	// Width is the rendered width in pixels.
	Width int

	// Height is the rendered height in pixels. Zero derives it from the
	// cell aspect ratio, so square cells stay square.
	Height int

	// FiberColor and MatrixColor are the two tones. Nil falls back to the
	// package defaults.
	FiberColor  color.Color
	MatrixColor color.Color

	// Workers bounds the row-rendering goroutines. Zero means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{
		Width:       1024,
		FiberColor:  DefaultFiberColor,
		MatrixColor: DefaultMatrixColor,
	}
}

// Render rasterizes the cross-section of the cell behind c by classifying
// every pixel center. Row 0 is the top of the image and maps to y near H,
// so the section reads like a plot.
//
// Rows are classified concurrently in disjoint bands; the pixel values do
// not depend on the band split, so the same classifier and options
// reproduce the image bit for bit regardless of Workers.
func Render(c *phase.Classifier, opts Options) (*image.RGBA, error) {
	if c == nil {
		return nil, ErrNilClassifier
	}
	if opts.Width < 1 || opts.Height < 0 {
		return nil, ErrImageSize
	}
	if opts.Workers < 0 {
		return nil, ErrWorkerCount
	}

	dom := c.Domain()
	nx := opts.Width
	ny := opts.Height
	if ny == 0 {
		ny = int(math.Round(float64(nx) * dom.H / dom.W))
		if ny < 1 {
			ny = 1
		}
	}

	fiber := toRGBA(opts.FiberColor, DefaultFiberColor)
	matrix := toRGBA(opts.MatrixColor, DefaultMatrixColor)

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > ny {
		workers = ny
	}

	img := image.NewRGBA(image.Rect(0, 0, nx, ny))
	perWorker := (ny + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start, end := w*perWorker, (w+1)*perWorker
		if end > ny {
			end = ny
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			renderRows(img, c, dom, fiber, matrix, start, end)
		}(start, end)
	}
	wg.Wait()

	rvegen.Logger().Debug("raster: section rendered",
		"width", nx, "height", ny, "workers", workers)
	return img, nil
}

// renderRows classifies the pixel centers of rows [start, end). Bands are
// disjoint, so the writes need no locking.
func renderRows(img *image.RGBA, c *phase.Classifier, dom periodic.Domain,
	fiber, matrix color.RGBA, start, end int) {
	b := img.Bounds()
	nx, ny := b.Dx(), b.Dy()
	for j := start; j < end; j++ {
		y := dom.H * (float64(ny-j) - 0.5) / float64(ny)
		for i := 0; i < nx; i++ {
			x := dom.W * (float64(i) + 0.5) / float64(nx)
			if c.Classify(periodic.Point{X: x, Y: y}) == phase.Fiber {
				img.SetRGBA(i, j, fiber)
			} else {
				img.SetRGBA(i, j, matrix)
			}
		}
	}
}

func toRGBA(c color.Color, fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Downsample resamples src to the given width with a Catmull-Rom kernel,
// keeping the aspect ratio. Intended for previews of full-resolution
// sections; any target width works, including upsampling.
func Downsample(src image.Image, width int) (*image.RGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if width < 1 {
		return nil, ErrImageSize
	}
	sb := src.Bounds()
	if sb.Dx() < 1 || sb.Dy() < 1 {
		return nil, ErrImageSize
	}

	height := int(math.Round(float64(width) * float64(sb.Dy()) / float64(sb.Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst, nil
}

// WritePNG encodes img to w with the standard PNG encoder.
func WritePNG(w io.Writer, img image.Image) error {
	if w == nil {
		return ErrNilWriter
	}
	if img == nil {
		return ErrNilImage
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
