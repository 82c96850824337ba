package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldplot/internal/ode"
)

const (
	DefaultField   = "cbrt"
	DefaultCount   = 10
	DefaultStep    = 0.001
	DefaultYSpread = 10.0
	DefaultStartX  = 0.0
	DefaultMaxX    = 150.0
	DefaultMaxAbsY = 150.0
	DefaultWidth   = 1280
	DefaultHeight  = 960
	DefaultOutput  = "output.png"
)

// Config holds everything one plotting run needs. MaxX and MaxAbsY are
// optional bounds: a nil pointer (absent yaml key) means unbounded on that
// axis.
type Config struct {
	Field    string   `yaml:"field"`
	Count    int      `yaml:"count"`
	Step     float64  `yaml:"step"`
	YSpread  float64  `yaml:"y_spread"`
	StartX   float64  `yaml:"start_x"`
	MaxX     *float64 `yaml:"max_x"`
	MaxAbsY  *float64 `yaml:"max_abs_y"`
	MaxSteps int      `yaml:"max_steps"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Output   string   `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Field:    DefaultField,
		Count:    DefaultCount,
		Step:     DefaultStep,
		YSpread:  DefaultYSpread,
		StartX:   DefaultStartX,
		MaxX:     ode.Bound(DefaultMaxX),
		MaxAbsY:  ode.Bound(DefaultMaxAbsY),
		MaxSteps: ode.DefaultMaxSteps,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Output:   DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations that cannot run. A zero MaxSteps is
// defaulted rather than rejected so config files may omit it.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %g", c.Step)
	}
	if c.MaxX != nil && math.IsNaN(*c.MaxX) {
		return fmt.Errorf("max_x must not be NaN")
	}
	if c.MaxAbsY != nil && math.IsNaN(*c.MaxAbsY) {
		return fmt.Errorf("max_abs_y must not be NaN")
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.MaxSteps == 0 {
		c.MaxSteps = ode.DefaultMaxSteps
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}

// EndCondition builds the per-trace stopping rule from the config.
func (c *Config) EndCondition() ode.EndCondition {
	return ode.EndCondition{
		MaxX:     c.MaxX,
		MaxAbsY:  c.MaxAbsY,
		MaxSteps: c.MaxSteps,
	}
}

// Batch builds the trace batch for the given derivative field.
func (c *Config) Batch(f ode.Derivative) ode.Batch {
	return ode.Batch{
		Count:   c.Count,
		StartX:  c.StartX,
		YSpread: c.YSpread,
		Step:    c.Step,
		End:     c.EndCondition(),
		Field:   f,
	}
}
