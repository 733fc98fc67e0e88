// Package renderer uploads generated meshes to OpenGL and draws them lit,
// textured and with an optional wireframe overlay.
package renderer

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapegen/internal/engine/shader"
	"github.com/Faultbox/shapegen/internal/engine/texture"
	"github.com/Faultbox/shapegen/internal/logger"
	"github.com/Faultbox/shapegen/pkg/math"
)

const (
	textureSize  = 512
	textureTiles = 8
)

// Frame holds per-frame draw state.
type Frame struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	LightDir   math.Vec3

	Wireframe bool
	NormalMap bool
	Gamma     bool
}

// Renderer owns the GL programs and textures.
type Renderer struct {
	surface *shader.Program
	lines   *shader.Program

	albedo    uint32
	normalMap uint32

	width, height int
	log           *zap.Logger
}

// New initializes GL and builds programs and textures. It must be called
// after the GL context exists.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{log: logger.Named("renderer")}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	if r.surface, err = shader.New(shader.SurfaceVertex, shader.SurfaceFragment); err != nil {
		return nil, fmt.Errorf("surface program: %w", err)
	}
	if r.lines, err = shader.New(shader.LineVertex, shader.LineFragment); err != nil {
		r.surface.Delete()
		return nil, fmt.Errorf("line program: %w", err)
	}

	if err := r.createTextures(); err != nil {
		r.Close()
		return nil, err
	}

	r.Resize(width, height)
	return r, nil
}

func (r *Renderer) createTextures() error {
	checker, err := texture.Checker(textureSize, textureTiles,
		color.RGBA{R: 225, G: 215, B: 195, A: 255},
		color.RGBA{R: 60, G: 90, B: 130, A: 255})
	if err != nil {
		return fmt.Errorf("albedo texture: %w", err)
	}
	r.albedo = uploadTexture(checker)

	normals, err := texture.TileNormalMap(textureSize, textureTiles, 0.08)
	if err != nil {
		return fmt.Errorf("normal map: %w", err)
	}
	r.normalMap = uploadTexture(normals)

	r.log.Debug("textures created",
		zap.Uint32("albedo", r.albedo),
		zap.Uint32("normal_map", r.normalMap))
	return nil
}

// Close releases programs and textures.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.surface != nil {
		r.surface.Delete()
	}
	if r.lines != nil {
		r.lines.Delete()
	}
	for _, tex := range []uint32{r.albedo, r.normalMap} {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
}

// Resize sets the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns width/height of the viewport.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders m with the given frame state.
func (r *Renderer) Draw(m *Mesh, f Frame) {
	gl.BindVertexArray(m.vao)

	if m.triangleCount > 0 {
		r.surface.Use()
		r.surface.SetMat4("uModel", f.Model)
		r.surface.SetMat4("uView", f.View)
		r.surface.SetMat4("uProjection", f.Projection)
		r.surface.SetMat4("uNormalMatrix", f.Model.NormalMatrix())
		r.surface.SetVec3("uEye", f.Eye)
		r.surface.SetVec3("uLightDir", f.LightDir.Normalize())
		r.surface.SetVec3("uBaseColor", math.Vec3{X: 0.75, Y: 0.72, Z: 0.65})
		r.surface.SetBool("uHasSurface", m.hasSurface)
		r.surface.SetBool("uUseNormalMap", f.NormalMap)
		r.surface.SetBool("uGamma", f.Gamma)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.albedo)
		r.surface.SetInt("uAlbedo", 0)
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, r.normalMap)
		r.surface.SetInt("uNormalMap", 1)

		if f.Wireframe {
			// Push the fill back so the overlay lines win the depth test.
			gl.Enable(gl.POLYGON_OFFSET_FILL)
			gl.PolygonOffset(1, 1)
		}
		gl.DrawElements(gl.TRIANGLES, m.triangleCount, gl.UNSIGNED_SHORT, nil)
		gl.Disable(gl.POLYGON_OFFSET_FILL)
	}

	if f.Wireframe && m.lineCount > 0 {
		r.lines.Use()
		r.lines.SetMat4("uMVP", f.Projection.Mul(f.View).Mul(f.Model))
		r.lines.SetVec3("uColor", math.Vec3{X: 0.05, Y: 0.05, Z: 0.05})
		gl.DrawElements(gl.LINES, m.lineCount, gl.UNSIGNED_SHORT, gl.PtrOffset(m.lineOffset))
	}

	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	pixels := make([]byte, r.width*r.height*4)
	if len(pixels) == 0 {
		return pixels, r.width, r.height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, r.width, r.height
}
