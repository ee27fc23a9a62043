// Package config handles zonetool configuration loading and management.
package config

// Config holds all zonetool settings.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuildConfig holds zone build settings.
type BuildConfig struct {
	WeldTolerance float32 `yaml:"weld_tolerance"` // Vertex merge distance
}

// OutputConfig holds zone output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "json" or "msgpack"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			WeldTolerance: 1e-4,
		},
		Output: OutputConfig{
			Format: "json",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Overrides carries command-line values that take priority over file values.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	Debug     bool
	Tolerance float32
	Format    string
}

// Apply applies command-line overrides on top of the loaded config.
func (c *Config) Apply(o Overrides) {
	if o.Debug {
		c.Logging.Level = "debug"
	}
	if o.Tolerance > 0 {
		c.Build.WeldTolerance = o.Tolerance
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
}
