package config

import "flag"

// Breakpoint flags are unset while negative.
var (
	flagConfig = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagDawn   = flag.Float64("dawn", -1, "Day fraction where dawn starts")
	flagDay    = flag.Float64("day", -1, "Day fraction where day starts")
	flagDusk   = flag.Float64("dusk", -1, "Day fraction where dusk starts")
	flagNight  = flag.Float64("night", -1, "Day fraction where night starts")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDawn >= 0 {
		cfg.Cycle.DawnStart = *flagDawn
	}
	if *flagDay >= 0 {
		cfg.Cycle.DayStart = *flagDay
	}
	if *flagDusk >= 0 {
		cfg.Cycle.DuskStart = *flagDusk
	}
	if *flagNight >= 0 {
		cfg.Cycle.NightStart = *flagNight
	}
}
