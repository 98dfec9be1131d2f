// Package game implements the viewer main loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glade/internal/assets"
	"github.com/Faultbox/glade/internal/config"
	"github.com/Faultbox/glade/internal/engine/camera"
	"github.com/Faultbox/glade/internal/engine/capture"
	"github.com/Faultbox/glade/internal/engine/input"
	"github.com/Faultbox/glade/internal/engine/renderer"
	"github.com/Faultbox/glade/internal/engine/scatter"
	"github.com/Faultbox/glade/internal/engine/scene"
	"github.com/Faultbox/glade/internal/engine/scene/shaders"
	"github.com/Faultbox/glade/internal/engine/window"
	"github.com/Faultbox/glade/internal/logger"
	"github.com/Faultbox/glade/pkg/math"
)

// Title is the window title.
const Title = "Glade"

// Game is the viewer instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	scene    *scene.Scene
	camera   *camera.OrbitCamera
	controls *controls
	capture  *capture.Capturer
	log      *zap.Logger
}

// New creates the window and GL context, then loads the scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("resources", cfg.Data.ResourceDir),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created.
	fbW, fbH := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      fbW,
		Height:     fbH,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.assets = assets.NewManager()
	g.assets.AddFS("embedded", shaders.FS)
	if err := g.assets.AddDir(cfg.Data.ResourceDir); err != nil {
		g.Close()
		return nil, fmt.Errorf("resource directory: %w", err)
	}

	sceneCfg := sceneConfig(cfg)
	content, err := scene.Load(sceneCfg, g.assets, scatter.NewRand(cfg.Scene.Seed))
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	g.scene = scene.New(sceneCfg, g.renderer, content)

	g.camera = camera.NewOrbitCamera(cfg.Camera.Camera())
	g.input = input.New()
	g.controls = newControls(g.camera, g.scene, g.window, g.renderer, g.log)
	g.capture = capture.New(cfg.Data.ScreenshotDir, "glade")

	g.log.Info("viewer initialized", zap.Int("trees", len(g.scene.Trees())))
	return g, nil
}

// Run executes the main loop until quit or Escape.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		g.input.Update()
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(g.window.DrawableSize())
				continue
			}
			g.controls.handle(event)
		}
		if g.controls.quit {
			g.running = false
			break
		}

		g.render()
		if g.input.IsKeyPressed(sdl.SCANCODE_F12) {
			g.saveScreenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// render draws one frame at the current drawable size.
func (g *Game) render() {
	g.camera.Update()
	g.renderer.Begin()
	w, h := g.window.DrawableSize()
	g.scene.Render(g.camera, w, h)
	g.renderer.End()
}

// saveScreenshot writes the frame just rendered. Failures are logged only.
func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.capture.SavePixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", name))
}

// Close releases everything New created, in reverse order.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	if g.scene != nil {
		g.scene.Close()
	}
	if g.assets != nil {
		hits, misses := g.assets.Cache().Stats()
		g.log.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
		g.assets.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// sceneConfig maps the file configuration onto the scene layout.
func sceneConfig(cfg *config.Config) scene.Config {
	s := scene.DefaultConfig()
	s.FOVDegrees = cfg.Graphics.FOVDegrees
	s.Near = cfg.Graphics.Near
	s.Far = cfg.Graphics.Far

	sc := cfg.Scene
	s.SkyScale = sc.SkyScale
	s.GroundYOffset = sc.GroundYOffset
	s.TreeCount = sc.TreeCount
	s.ScatterCenter = math.Vec2{X: sc.ScatterCenter[0], Y: sc.ScatterCenter[1]}
	s.Exclusion = sc.Exclusion.Rect()
	s.Outer = sc.Outer.Rect()
	s.TreeScale = sc.TreeScale
	s.TreeYOffset = sc.TreeYOffset
	s.StructureScale = sc.StructureScale
	s.TerrainTile = sc.TerrainTile
	s.LightPos = math.Vec3{X: sc.LightPos[0], Y: sc.LightPos[1], Z: sc.LightPos[2]}
	s.Material = sc.Material
	return s
}
