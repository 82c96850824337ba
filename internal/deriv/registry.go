// Package deriv registers the named derivative fields selectable from the
// CLI and config files. Each field is a scalar dy/dx = f(x, y).
package deriv

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/fieldplot/internal/ode"
)

// DefaultField is used when no field is named.
const DefaultField = "cbrt"

// Field pairs a derivative with a printable formula.
type Field struct {
	Fn      ode.Derivative
	Formula string
}

var fields = map[string]Field{
	"cbrt": {
		Fn:      func(x, y float64) float64 { return math.Cbrt(y) + x },
		Formula: "y' = cbrt(y) + x",
	},
	"linear": {
		Fn:      func(x, y float64) float64 { return x - y },
		Formula: "y' = x - y",
	},
	"sine": {
		Fn:      func(x, y float64) float64 { return math.Sin(x) + y/2 },
		Formula: "y' = sin(x) + y/2",
	},
	"logistic": {
		Fn:      func(x, y float64) float64 { return y * (1 - y/100) },
		Formula: "y' = y(1 - y/100)",
	},
	"decay": {
		Fn:      func(x, y float64) float64 { return -y / 2 },
		Formula: "y' = -y/2",
	},
}

// Get returns the derivative registered under name.
func Get(name string) (ode.Derivative, error) {
	f, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s (available: %v)", name, List())
	}
	return f.Fn, nil
}

// Lookup returns the full field entry.
func Lookup(name string) (Field, bool) {
	f, ok := fields[name]
	return f, ok
}

// List returns the registered field names, sorted.
func List() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
