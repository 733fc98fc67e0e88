// Package uvmap rasterizes a mesh's texture coordinates into an image, one
// filled and outlined triangle per face, for checking UV layouts.
package uvmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/Faultbox/shapegen/pkg/math"
	"github.com/Faultbox/shapegen/pkg/vertexdata"
)

// ErrNoUVs is returned for meshes without texture coordinates.
var ErrNoUVs = errors.New("mesh has no uvs")

// Style controls the colors and stroke width.
type Style struct {
	Background color.Color
	Fill       color.Color
	Edge       color.Color
	EdgeWidth  float32 // pixels
}

// DefaultStyle is a dark background with translucent faces and light edges.
var DefaultStyle = Style{
	Background: colornames.Midnightblue,
	Fill:       color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0x40},
	Edge:       colornames.Gold,
	EdgeWidth:  1,
}

// Render draws the UV triangles of m into a size x size image. u grows to the
// right and v grows upward; the unit square fills the image and coordinates
// outside it are clamped to the border.
func Render(m *vertexdata.Mesh, size int, style Style) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid image size %d", size)
	}
	if len(m.UVs) == 0 {
		return nil, ErrNoUVs
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(size, size)
	r.DrawOp = draw.Over
	fill := image.NewUniform(style.Fill)
	edge := image.NewUniform(style.Edge)

	toPixel := func(uv [2]float32) math.Vec2 {
		s := float32(size)
		return math.Vec2{
			X: clamp(uv[0]*s, 0, s),
			Y: clamp((1-uv[1])*s, 0, s),
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := toPixel(m.UVs[m.Indices[i]])
		b := toPixel(m.UVs[m.Indices[i+1]])
		c := toPixel(m.UVs[m.Indices[i+2]])

		r.Reset(size, size)
		r.MoveTo(a.X, a.Y)
		r.LineTo(b.X, b.Y)
		r.LineTo(c.X, c.Y)
		r.ClosePath()
		r.Draw(dst, dst.Bounds(), fill, image.Point{})

		if style.EdgeWidth > 0 {
			r.Reset(size, size)
			for _, e := range [3][2]math.Vec2{{a, b}, {b, c}, {c, a}} {
				strokeSegment(r, e[0], e[1], style.EdgeWidth, float32(size))
			}
			r.Draw(dst, dst.Bounds(), edge, image.Point{})
		}
	}
	return dst, nil
}

// strokeSegment adds a quad of the given width centered on p0-p1. Zero-length
// segments add nothing.
func strokeSegment(r *vector.Rasterizer, p0, p1 math.Vec2, width, limit float32) {
	d := p1.Sub(p0)
	l := d.Length()
	if l == 0 {
		return
	}
	n := math.Vec2{X: -d.Y / l, Y: d.X / l}.Scale(width / 2)

	corners := [4]math.Vec2{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}
	for i, p := range corners {
		x, y := clamp(p.X, 0, limit), clamp(p.Y, 0, limit)
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
