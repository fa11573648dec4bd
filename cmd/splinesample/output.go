package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/vector"
	"honnef.co/go/spline"
)

const markerRadius = 5

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func writeJSON(w io.Writer, curve []spline.Point) error {
	out := make([]jsonPoint, len(curve))
	for i, pt := range curve {
		out[i] = jsonPoint{pt.X, pt.Y}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeSVG writes an SVG document showing the curve and its control points.
// The view box encloses both, with room for the markers.
func writeSVG(w io.Writer, curve, controls []spline.Point) error {
	bbox := spline.Polyline(curve).BoundingBox().
		Union(spline.Polyline(controls).BoundingBox()).
		Inflate(2*markerRadius, 2*markerRadius)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg viewBox="%g %g %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n",
		bbox.X0, bbox.Y0, bbox.Width(), bbox.Height())
	sb.WriteString(`<polyline fill="none" stroke="black" stroke-width="2" points="`)
	for i, pt := range curve {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g,%g", pt.X, pt.Y)
	}
	sb.WriteString("\" />\n")
	for _, pt := range controls {
		fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="%d" fill="blue" />`+"\n", pt.X, pt.Y, markerRadius)
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// viewport maps curve coordinates into an image, preserving aspect ratio.
type viewport struct {
	bbox   spline.Rect
	scale  float64
	offset spline.Vec2
}

func newViewport(bbox spline.Rect, width, height, pad int) viewport {
	avail := spline.Vec(float64(width-2*pad), float64(height-2*pad))
	scale := 1.0
	if bw, bh := bbox.Width(), bbox.Height(); bw > 0 || bh > 0 {
		scale = math.Inf(1)
		if bw > 0 {
			scale = avail.X / bw
		}
		if bh > 0 {
			scale = min(scale, avail.Y/bh)
		}
	}
	// Center the content.
	used := spline.Vec(bbox.Width()*scale, bbox.Height()*scale)
	offset := spline.Vec(float64(pad), float64(pad)).Add(avail.Sub(used).Mul(0.5))
	return viewport{bbox: bbox, scale: scale, offset: offset}
}

func (vp viewport) apply(pt spline.Point) (float32, float32) {
	p := pt.Sub(vp.bbox.Origin()).Mul(vp.scale).Add(vp.offset)
	return float32(p.X), float32(p.Y)
}

// strokePolyline adds one quadrilateral per segment to z, approximating a
// stroke of the given width.
func strokePolyline(z *vector.Rasterizer, vp viewport, pts []spline.Point, width float64) {
	hw := float32(width / 2)
	for seg := range spline.Polyline(pts).Segments() {
		x0, y0 := vp.apply(seg.P0)
		x1, y1 := vp.apply(seg.P1)
		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	}
}

// fillMarker adds a polygonal disk centered on pt to z.
func fillMarker(z *vector.Rasterizer, vp viewport, pt spline.Point, r float64) {
	const sides = 16
	cx, cy := vp.apply(pt)
	for i := 0; i < sides; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / sides)
		x, y := cx+float32(r*c), cy+float32(r*s)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// renderPNG rasterizes the curve and its control points into an image of the
// given size.
func renderPNG(curve, controls []spline.Point, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	bbox := spline.Polyline(curve).BoundingBox().Union(spline.Polyline(controls).BoundingBox())
	vp := newViewport(bbox, width, height, 2*markerRadius)

	z := vector.NewRasterizer(width, height)
	strokePolyline(z, vp, curve, 2)
	z.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})

	z.Reset(width, height)
	for _, pt := range controls {
		fillMarker(z, vp, pt, markerRadius)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 255, 255}), image.Point{})
	return img
}

func writePNG(w io.Writer, curve, controls []spline.Point, width, height int) error {
	return png.Encode(w, renderPNG(curve, controls, width, height))
}
