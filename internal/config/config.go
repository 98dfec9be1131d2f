// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/glade/internal/engine/camera"
	"github.com/Faultbox/glade/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Data     DataConfig     `yaml:"data" toml:"data"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width" toml:"width"`
	Height     int        `yaml:"height" toml:"height"`
	Fullscreen bool       `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool       `yaml:"vsync" toml:"vsync"`
	FOVDegrees float32    `yaml:"fov_degrees" toml:"fov_degrees"`
	Near       float32    `yaml:"near" toml:"near"`
	Far        float32    `yaml:"far" toml:"far"`
	ClearColor [4]float32 `yaml:"clear_color" toml:"clear_color"`
}

// DataConfig holds resource locations.
type DataConfig struct {
	ResourceDir   string `yaml:"resource_dir" toml:"resource_dir"` // shaders, textures and meshes
	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// RectConfig is an axis-aligned ground rectangle (x, z).
type RectConfig struct {
	Min [2]float32 `yaml:"min" toml:"min"`
	Max [2]float32 `yaml:"max" toml:"max"`
}

// Rect converts to a math.Rect.
func (r RectConfig) Rect() math.Rect {
	return math.RectFromCorners(
		math.Vec2{X: r.Min[0], Y: r.Min[1]},
		math.Vec2{X: r.Max[0], Y: r.Max[1]},
	)
}

// SceneConfig holds scene layout settings.
type SceneConfig struct {
	TreeCount      int        `yaml:"tree_count" toml:"tree_count"`
	Seed           uint64     `yaml:"seed" toml:"seed"` // 0 picks a time-based seed
	ScatterCenter  [2]float32 `yaml:"scatter_center" toml:"scatter_center"`
	Exclusion      RectConfig `yaml:"exclusion" toml:"exclusion"`
	Outer          RectConfig `yaml:"outer" toml:"outer"`
	TreeScale      float32    `yaml:"tree_scale" toml:"tree_scale"`
	TreeYOffset    float32    `yaml:"tree_y_offset" toml:"tree_y_offset"`
	GroundYOffset  float32    `yaml:"ground_y_offset" toml:"ground_y_offset"`
	StructureScale float32    `yaml:"structure_scale" toml:"structure_scale"`
	SkyScale       float32    `yaml:"sky_scale" toml:"sky_scale"`
	TerrainTile    float32    `yaml:"terrain_tile" toml:"terrain_tile"`
	Material       int        `yaml:"material" toml:"material"`
	LightPos       [3]float32 `yaml:"light_pos" toml:"light_pos"`
}

// CameraConfig holds free-fly camera settings.
type CameraConfig struct {
	Eye             [3]float32 `yaml:"eye" toml:"eye"`
	Radius          float32    `yaml:"radius" toml:"radius"`
	MoveSpeed       float32    `yaml:"move_speed" toml:"move_speed"`
	DragSensitivity float32    `yaml:"drag_sensitivity" toml:"drag_sensitivity"`
	PitchLimit      float32    `yaml:"pitch_limit" toml:"pitch_limit"`
}

// Camera converts to a camera.Config.
func (c CameraConfig) Camera() camera.Config {
	return camera.Config{
		Eye:             math.Vec3{X: c.Eye[0], Y: c.Eye[1], Z: c.Eye[2]},
		Radius:          c.Radius,
		MoveSpeed:       c.MoveSpeed,
		DragSensitivity: c.DragSensitivity,
		PitchLimit:      c.PitchLimit,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	Format  string `yaml:"format" toml:"format"` // file sink: console or json
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := camera.DefaultConfig()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      640,
			Height:     480,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
			Near:       0.01,
			Far:        10000,
			ClearColor: [4]float32{0, 0, 0.8, 0.25},
		},
		Data: DataConfig{
			ResourceDir:   "../resources",
			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			TreeCount:      1000,
			Seed:           0,
			ScatterCenter:  [2]float32{0, 0},
			Exclusion:      RectConfig{Min: [2]float32{-6, -6}, Max: [2]float32{6, 6}},
			Outer:          RectConfig{Min: [2]float32{-80, -80}, Max: [2]float32{80, 80}},
			TreeScale:      0.6,
			TreeYOffset:    -3.5,
			GroundYOffset:  -3,
			StructureScale: 0.03,
			SkyScale:       110,
			TerrainTile:    8,
			Material:       1,
			LightPos:       [3]float32{1, 1, 1},
		},
		Camera: CameraConfig{
			Eye:             cam.Eye.Array(),
			Radius:          cam.Radius,
			MoveSpeed:       cam.MoveSpeed,
			DragSensitivity: cam.DragSensitivity,
			PitchLimit:      cam.PitchLimit,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Format:  "console",
			LogFile: "",
		},
	}
}
