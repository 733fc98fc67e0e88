// Package texture generates the procedural images the viewer samples. Nothing
// is read from disk.
package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/Faultbox/shapegen/pkg/math"
)

// Checker returns a size x size image of tiles x tiles alternating squares.
// The top-left tile uses a.
func Checker(size, tiles int, a, b color.RGBA) (*image.RGBA, error) {
	if err := checkLayout(size, tiles); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	tile := size / tiles
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/tile+y/tile)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// TileNormalMap returns a tangent-space normal map of tiles x tiles raised
// tiles whose edges slope over bevel (a fraction of the tile, 0 < bevel < 0.5).
// Normals are encoded as rgb = n*0.5+0.5 with +Z out of the surface, +X
// along u and +Y along v. Row 0 is v = 0, matching a GL upload.
func TileNormalMap(size, tiles int, bevel float32) (*image.RGBA, error) {
	if err := checkLayout(size, tiles); err != nil {
		return nil, err
	}
	if !(bevel > 0 && bevel < 0.5) {
		return nil, fmt.Errorf("bevel %v out of range (0, 0.5)", bevel)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	tile := float32(size) / float32(tiles)
	const slope = 0.7

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Position inside the tile in [0,1).
			fx := math32.Mod(float32(x)+0.5, tile) / tile
			fy := math32.Mod(float32(y)+0.5, tile) / tile

			var n math.Vec3
			switch {
			case fx < bevel:
				n.X = -slope
			case fx > 1-bevel:
				n.X = slope
			}
			switch {
			case fy < bevel:
				n.Y = -slope
			case fy > 1-bevel:
				n.Y = slope
			}
			n.Z = 1
			img.SetRGBA(x, y, EncodeNormal(n.Normalize()))
		}
	}
	return img, nil
}

// EncodeNormal maps a unit vector to an 8-bit color.
func EncodeNormal(n math.Vec3) color.RGBA {
	enc := func(f float32) uint8 {
		return uint8(math32.Round(clamp01(f*0.5+0.5) * 255))
	}
	return color.RGBA{R: enc(n.X), G: enc(n.Y), B: enc(n.Z), A: 255}
}

// DecodeNormal is the inverse of EncodeNormal, up to quantization.
func DecodeNormal(c color.RGBA) math.Vec3 {
	dec := func(u uint8) float32 { return float32(u)/255*2 - 1 }
	return math.Vec3{X: dec(c.R), Y: dec(c.G), Z: dec(c.B)}
}

func checkLayout(size, tiles int) error {
	if size <= 0 || tiles <= 0 {
		return fmt.Errorf("invalid texture layout %dx%d tiles", size, tiles)
	}
	if size%tiles != 0 {
		return fmt.Errorf("size %d is not a multiple of %d tiles", size, tiles)
	}
	return nil
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
