package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSeed        = flag.Int64("seed", 0, "Behavior RNG seed (0 seeds from the clock)")
	flagDisplay     = flag.Int("display", -1, "Display index to roam on")
	flagWriteConfig = flag.Bool("writeconfig", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether --writeconfig was given.
func WriteConfigRequested() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Seed = *flagSeed
	}
	if *flagDisplay >= 0 {
		cfg.Window.Display = *flagDisplay
	}
}
