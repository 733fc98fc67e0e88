package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapegen/internal/config"
	"github.com/Faultbox/shapegen/internal/engine/camera"
	"github.com/Faultbox/shapegen/internal/engine/input"
	"github.com/Faultbox/shapegen/internal/engine/renderer"
	"github.com/Faultbox/shapegen/internal/engine/screenshot"
	"github.com/Faultbox/shapegen/internal/engine/window"
	"github.com/Faultbox/shapegen/internal/logger"
	"github.com/Faultbox/shapegen/internal/shapes"
	"github.com/Faultbox/shapegen/internal/viewer"
)

var keyActions = map[sdl.Scancode]viewer.Action{
	sdl.SCANCODE_ESCAPE: viewer.ActionQuit,
	sdl.SCANCODE_F:      viewer.ActionToggleWireframe,
	sdl.SCANCODE_SPACE:  viewer.ActionNextShape,
	sdl.SCANCODE_P:      viewer.ActionToggleAnimation,
	sdl.SCANCODE_N:      viewer.ActionToggleNormalMap,
	sdl.SCANCODE_G:      viewer.ActionToggleGamma,
	sdl.SCANCODE_R:      viewer.ActionResetUV,
	sdl.SCANCODE_E:      viewer.ActionFaster,
	sdl.SCANCODE_D:      viewer.ActionSlower,
	sdl.SCANCODE_LEFT:   viewer.ActionSunLeft,
	sdl.SCANCODE_RIGHT:  viewer.ActionSunRight,
	sdl.SCANCODE_F12:    viewer.ActionScreenshot,
	sdl.SCANCODE_S:      viewer.ActionSaveConfig,
}

// keyAction maps a key press to a viewer action. U and V grow the UV scale,
// with shift they shrink it.
func keyAction(e input.Event) viewer.Action {
	switch e.Key {
	case sdl.SCANCODE_U:
		if e.Shift {
			return viewer.ActionShrinkU
		}
		return viewer.ActionGrowU
	case sdl.SCANCODE_V:
		if e.Shift {
			return viewer.ActionShrinkV
		}
		return viewer.ActionGrowV
	}
	return keyActions[e.Key]
}

type app struct {
	cfg    *config.Config
	win    *window.Window
	render *renderer.Renderer
	input  *input.Input
	camera *camera.OrbitCamera
	state  *viewer.State

	model *shapes.Model
	mesh  *renderer.Mesh

	shots   *screenshot.Capture
	capture bool

	dragging bool
	log      *zap.Logger
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{
		cfg:    cfg,
		input:  input.New(),
		camera: camera.NewOrbitCamera(cfg.View.CameraDistance),
		state:  viewer.NewState(cfg),
		shots:  screenshot.New(cfg.View.ScreenshotDir, "shapegen"),
		log:    logger.Named("viewer"),
	}

	var err error
	if a.win, err = window.New(a.state.Title(), cfg.Graphics); err != nil {
		return nil, err
	}
	w, h := a.win.DrawableSize()
	if a.render, err = renderer.New(w, h); err != nil {
		a.win.Close()
		return nil, err
	}
	if err := a.loadShape(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// loadShape rebuilds the current shape and replaces the GPU mesh.
func (a *app) loadShape() error {
	model, err := shapes.Build(a.state.Shape)
	if err != nil {
		return fmt.Errorf("building %s: %w", a.state.Shape.Kind, err)
	}
	mesh, err := a.render.Upload(a.vertices(model), model.Mesh.Indices, model.Mesh.WireframeIndices, model.HasSurface())
	if err != nil {
		return fmt.Errorf("uploading %s: %w", model.Name, err)
	}

	if a.mesh != nil {
		a.mesh.Delete()
	}
	a.model, a.mesh = model, mesh
	a.camera.FitToBounds(model.Mesh.Bounds())

	a.log.Info("shape loaded",
		zap.String("kind", model.Name),
		zap.Int("vertices", model.Mesh.VertexCount()),
		zap.Int("triangles", model.Mesh.TriangleCount()))
	return nil
}

func (a *app) vertices(m *shapes.Model) []float32 {
	return m.Vertices(a.state.UVScale[0], a.state.UVScale[1])
}

// Run drives the frame loop until the window closes.
func (a *app) Run() error {
	last := time.Now()
	for !a.state.Quit {
		if a.input.Update() {
			a.state.Apply(viewer.ActionQuit)
		}
		if err := a.handleEvents(); err != nil {
			return err
		}

		now := time.Now()
		a.state.Advance(now.Sub(last))
		last = now

		a.draw()
		if a.capture {
			a.capture = false
			a.saveScreenshot()
		}
		a.win.SwapBuffers()
	}
	return nil
}

func (a *app) handleEvents() error {
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			a.render.Resize(a.win.DrawableSize())

		case input.EventKeyDown:
			if err := a.apply(keyAction(e)); err != nil {
				return err
			}

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				a.dragging = true
			}
		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}
		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
			}
		case input.EventMouseWheel:
			a.camera.HandleZoom(float32(e.DeltaY))
		}
	}
	return nil
}

func (a *app) apply(action viewer.Action) error {
	switch a.state.Apply(action) {
	case viewer.ChangeGeometry:
		if err := a.loadShape(); err != nil {
			return err
		}
	case viewer.ChangeUV:
		if err := a.mesh.UpdateVertices(a.vertices(a.model)); err != nil {
			return err
		}
		a.log.Debug("uv scale", zap.Float32("u", a.state.UVScale[0]), zap.Float32("v", a.state.UVScale[1]))
	case viewer.ChangeCapture:
		a.capture = true
		return nil
	case viewer.ChangeConfig:
		a.saveConfig()
		return nil
	case viewer.ChangeNone:
		return nil
	}
	a.win.SetTitle(a.state.Title())
	return nil
}

func (a *app) draw() {
	a.render.Begin()
	a.render.Draw(a.mesh, renderer.Frame{
		Model:      a.state.ModelMatrix(),
		View:       a.camera.ViewMatrix(),
		Projection: a.camera.ProjectionMatrix(a.render.Aspect()),
		Eye:        a.camera.Position(),
		LightDir:   a.state.Sun.Direction(),
		Wireframe:  a.state.Wireframe,
		NormalMap:  a.state.NormalMap,
		Gamma:      a.state.Gamma,
	})
}

func (a *app) saveScreenshot() {
	pixels, w, h := a.render.ReadPixels()
	path, err := a.shots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// saveConfig writes the current settings to the user config file.
func (a *app) saveConfig() {
	a.state.Store(a.cfg)
	if err := a.cfg.Save(); err != nil {
		a.log.Warn("saving config failed", zap.Error(err))
		return
	}
	a.log.Info("config saved", zap.String("dir", config.ConfigDir()))
}

// Close releases GPU resources and the window.
func (a *app) Close() {
	if a.mesh != nil {
		a.mesh.Delete()
	}
	if a.render != nil {
		a.render.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}
