package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagResources  = flag.String("resources", "", "Resource directory")
	flagSeed       = flag.Uint64("seed", 0, "Scatter seed (0 = time based)")
)

// resourceArg returns the optional positional resource directory.
var resourceArg = func() string { return flag.Arg(0) }

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
// A positional resource directory wins over -resources.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagResources != "" {
		cfg.Data.ResourceDir = *flagResources
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if dir := resourceArg(); dir != "" {
		cfg.Data.ResourceDir = dir
	}
}
