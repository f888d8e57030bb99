// Package raster renders recolored SVG documents to square PNG files. The
// renderer is a thin wrapper over oksvg/rasterx and is treated as an
// optional capability: callers must degrade to SVG-only output when it is
// absent.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// DefaultSize is the output edge length in pixels when callers pass zero.
const DefaultSize = 200

// Renderer turns SVG markup into a square image of the given size.
type Renderer func(svg string, sizePx int) (image.Image, error)

// renderer is the active backend. Tests and stripped-down builds may set it
// to nil to exercise the degraded path.
var renderer Renderer = renderSVG

// Available reports whether a rendering backend is present.
func Available() bool {
	return renderer != nil
}

// ToPNG renders svg to a sizePx x sizePx PNG at outPath. Fails with a
// CapabilityError when no rendering backend is available.
func ToPNG(svg, outPath string, sizePx int) error {
	if sizePx <= 0 {
		sizePx = DefaultSize
	}
	if renderer == nil {
		return tinterrors.NewCapabilityError("raster", "no SVG rendering backend present")
	}

	img, err := renderer(svg, sizePx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// renderSVG parses the document, scales it to fit the square target while
// preserving aspect ratio, and rasterizes it centered on a transparent
// canvas.
func renderSVG(svg string, sizePx int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(sizePx), float64(sizePx)
	}

	scale := float64(sizePx) / w
	if h > w {
		scale = float64(sizePx) / h
	}
	outW := int(w * scale)
	outH := int(h * scale)
	offsetX := (sizePx - outW) / 2
	offsetY := (sizePx - outH) / 2

	icon.SetTarget(float64(offsetX), float64(offsetY), float64(outW), float64(outH))

	img := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	scanner := rasterx.NewScannerGV(sizePx, sizePx, img, img.Bounds())
	dasher := rasterx.NewDasher(sizePx, sizePx, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}
