// Package scene composes and draws one frame of the glade: a sky box, the
// textured ground with scattered trees and a shack, and the lit totem and
// multi-part figure.
//
// All per-session state lives in Scene; nothing is global. Nested placements
// go through one transform stack whose scopes are released with defer, so the
// stack is back at its base frame after every pass.
package scene

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/glade/internal/engine/matstack"
	"github.com/Faultbox/glade/internal/engine/model"
	"github.com/Faultbox/glade/internal/engine/terrain"
	"github.com/Faultbox/glade/internal/logger"
	"github.com/Faultbox/glade/pkg/math"
)

// Config contains scene layout and projection settings.
type Config struct {
	FOVDegrees float32
	Near       float32
	Far        float32

	SkyScale       float32
	GroundYOffset  float32
	TreeCount      int
	ScatterCenter  math.Vec2
	Exclusion      math.Rect
	Outer          math.Rect
	TreeScale      float32
	TreeYOffset    float32
	StructureScale float32
	TotemPos       math.Vec2
	FigurePos      math.Vec3
	TerrainTile    float32
	LightPos       math.Vec3
	Material       int
}

// DefaultConfig returns the default scene layout.
func DefaultConfig() Config {
	return Config{
		FOVDegrees:     45,
		Near:           0.01,
		Far:            10000,
		SkyScale:       110,
		GroundYOffset:  -3,
		TreeCount:      1000,
		Exclusion:      math.Rect{Min: math.Vec2{X: -6, Y: -6}, Max: math.Vec2{X: 6, Y: 6}},
		Outer:          math.Rect{Min: math.Vec2{X: -80, Y: -80}, Max: math.Vec2{X: 80, Y: 80}},
		TreeScale:      0.6,
		TreeYOffset:    -3.5,
		StructureScale: 0.03,
		TotemPos:       math.Vec2{X: -5, Y: -5},
		FigurePos:      math.Vec3{Z: -5},
		TerrainTile:    8,
		LightPos:       math.Vec3{X: 1, Y: 1, Z: 1},
		Material:       1,
	}
}

// Programs are the three shading programs, one per pass.
type Programs struct {
	Sky      Program
	Textured Program
	Lit      Program
}

// Meshes are the drawable objects. A nil mesh is skipped.
type Meshes struct {
	Sky       Mesh
	Ground    Mesh
	Tree      Mesh
	Structure Mesh
	Totem     Mesh
	Figure    []Mesh
}

// Textures are the per-object textures. A nil texture leaves the unit unbound.
type Textures struct {
	Sky       Texture
	Ground    Texture
	Tree      Texture
	Structure Texture
}

// Content is everything a Scene draws. Heights, Trees and Normalization are
// computed once at load time and never change afterwards.
type Content struct {
	Programs      Programs
	Meshes        Meshes
	Textures      Textures
	Heights       *terrain.HeightField
	Trees         []math.Vec2
	Normalization model.Normalization
}

// Scene is the render context of a session.
type Scene struct {
	cfg      Config
	backend  Backend
	content  Content
	stack    *matstack.Stack
	material int
	log      *zap.Logger
}

// New creates a scene over loaded content.
func New(cfg Config, backend Backend, content Content) *Scene {
	if content.Heights == nil {
		content.Heights = terrain.NewHeightField()
	}
	if content.Normalization.Scale == 0 {
		content.Normalization.Scale = 1
	}
	return &Scene{
		cfg:      cfg,
		backend:  backend,
		content:  content,
		stack:    matstack.New(),
		material: materialIndex(cfg.Material),
		log:      logger.Named("scene"),
	}
}

// Render draws one frame for a framebuffer of the given size.
func (s *Scene) Render(view View, width, height int) {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}

	f := frame{
		projection: math.Perspective(s.cfg.FOVDegrees*gomath.Pi/180, aspect, s.cfg.Near, s.cfg.Far),
		view:       view.ViewMatrix(),
		eye:        view.Eye(),
	}

	s.skyPass(f)
	s.texturedPass(f)
	s.litPass(f)

	if d := s.stack.Depth(); d != 1 {
		s.log.Error("transform stack unbalanced after frame", zap.Int("depth", d))
	}
}

// CycleMaterial advances the lit pass material and returns the new index.
func (s *Scene) CycleMaterial() int {
	s.material = materialIndex(s.material + 1)
	s.log.Debug("material changed", zap.Int("index", s.material), zap.String("name", Palette[s.material].Name))
	return s.material
}

// Material returns the active palette index.
func (s *Scene) Material() int {
	return s.material
}

// Stack exposes the transform stack, for inspection.
func (s *Scene) Stack() *matstack.Stack {
	return s.stack
}

// Trees returns the scattered tree positions.
func (s *Scene) Trees() []math.Vec2 {
	return s.content.Trees
}

// GroundHeight returns the terrain height sample at (x, z).
func (s *Scene) GroundHeight(x, z float32) float32 {
	return s.content.Heights.Sample(x, z)
}

// Close releases every GPU object the content owns.
func (s *Scene) Close() {
	c := &s.content
	release := []any{
		c.Programs.Sky, c.Programs.Textured, c.Programs.Lit,
		c.Meshes.Sky, c.Meshes.Ground, c.Meshes.Tree, c.Meshes.Structure, c.Meshes.Totem,
		c.Textures.Sky, c.Textures.Ground, c.Textures.Tree, c.Textures.Structure,
	}
	for _, m := range c.Meshes.Figure {
		release = append(release, m)
	}
	for _, r := range release {
		if d, ok := r.(deleter); ok {
			d.Delete()
		}
	}
	s.content = Content{Heights: c.Heights}
}
