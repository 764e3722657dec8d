package utils

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

const (
	// DefaultConfigFile is read when -config is not given
	DefaultConfigFile = "config.json"

	// MinTickRate and MaxTickRate bound the generations per second a front-end may request
	MinTickRate = 1
	MaxTickRate = 60

	// DefaultTickRate is restored whenever the simulation is reset
	DefaultTickRate = 10
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int     `json:"width"`
	Height              int     `json:"height"`
	CellSize            int     `json:"cell_size"`
	TickRate            int     `json:"tick_rate"`
	Pattern             string  `json:"pattern"`
	RandomDensity       float64 `json:"random_density"`
	Seed                int64   `json:"seed"`
	MaxGenerations      int     `json:"max_generations"`
	StagnationThreshold int     `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               50,
		Height:              30,
		CellSize:            20,
		TickRate:            DefaultTickRate,
		RandomDensity:       0.15,
		Seed:                42,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// whatever was loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixels per cell (window only)")
	fs.IntVar(&c.TickRate, "tick-rate", c.TickRate, "generations per second")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern placed at the centre on start")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "live cell density for rand")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for rand")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = never)")
}

// Validate reports the first field that cannot be used to start a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell size must be positive, got %d", c.CellSize)
	case c.TickRate < MinTickRate || c.TickRate > MaxTickRate:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick rate must be in [%d,%d], got %d", MinTickRate, MaxTickRate, c.TickRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be in [0,1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}

// ParseConfig loads the JSON file named by -config, falling back to defaults
// when it does not exist, then applies the remaining flags on top of it and
// validates the result.
func ParseConfig(name string, args []string, logger *log.Logger) (Config, error) {
	var path string

	scan := flag.NewFlagSet(name, flag.ContinueOnError)
	scan.SetOutput(io.Discard)
	scratch := DefaultConfig()
	scratch.Bind(scan)
	scan.StringVar(&path, "config", DefaultConfigFile, "JSON configuration file")
	_ = scan.Parse(args) // errors are reported by the second pass

	config, err := LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		logger.Printf("Using default configuration (%s not found)", path)
		config = DefaultConfig()
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	config.Bind(fs)
	fs.StringVar(&path, "config", path, "JSON configuration file")
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseConfig] failed to parse flags")
	}

	return config, config.Validate()
}
