package config

import "github.com/san-kum/fieldplot/internal/ode"

// Presets are complete named configurations per derivative field.
var Presets = map[string]map[string]*Config{
	"cbrt": {
		"reference": {
			Field: "cbrt", Count: 10, Step: 0.001, YSpread: 10.0,
			MaxX: ode.Bound(150), MaxAbsY: ode.Bound(150),
		},
		"coarse": {
			Field: "cbrt", Count: 10, Step: 0.01, YSpread: 10.0,
			MaxX: ode.Bound(150), MaxAbsY: ode.Bound(150),
		},
		"dense": {
			Field: "cbrt", Count: 25, Step: 0.001, YSpread: 4.0,
			MaxX: ode.Bound(150), MaxAbsY: ode.Bound(150),
		},
	},
	"linear": {
		"fan": {
			Field: "linear", Count: 12, Step: 0.005, YSpread: 2.0,
			MaxX: ode.Bound(10), MaxAbsY: ode.Bound(50),
		},
	},
	"logistic": {
		"carrying": {
			Field: "logistic", Count: 8, Step: 0.01, YSpread: 25.0,
			MaxX: ode.Bound(12), MaxAbsY: ode.Bound(400),
		},
	},
	"decay": {
		"halflife": {
			Field: "decay", Count: 6, Step: 0.01, YSpread: 15.0,
			MaxX: ode.Bound(10),
		},
	},
	"sine": {
		"ripple": {
			Field: "sine", Count: 9, Step: 0.002, YSpread: 3.0,
			MaxX: ode.Bound(20), MaxAbsY: ode.Bound(100),
		},
	},
}

// GetPreset returns the named preset for a field, filled in with the
// standard canvas/output defaults, or nil if not found.
func GetPreset(field, name string) *Config {
	group, ok := Presets[field]
	if !ok {
		return nil
	}
	p, ok := group[name]
	if !ok {
		return nil
	}

	cfg := *p
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = ode.DefaultMaxSteps
	}
	return &cfg
}

// ListPresets returns the preset names for a field, or nil if the field has
// none.
func ListPresets(field string) []string {
	group, ok := Presets[field]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
