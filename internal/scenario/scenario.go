// Package scenario provides the reference values, colours and markers used to draw
// each growth and warming scenario. Metadata is read once and never modified.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/sekarsister/gdpgrowth/internal/table"
)

//go:embed scenarios.yaml
var defaultYAML []byte

// Marker names accepted in the metadata file.
const (
	MarkerCircle   = "circle"
	MarkerSquare   = "square"
	MarkerTriangle = "triangle"
	MarkerDiamond  = "diamond"
)

// ErrInvalid indicates metadata that does not match the table axes.
var ErrInvalid = errors.New("invalid scenario metadata")

// Growth is one socioeconomic pathway.
type Growth struct {
	Name  string  `yaml:"name"`
	Rate  float64 `yaml:"rate"` // baseline growth, %/yr
	Color string  `yaml:"color"`
}

// Warming is one forcing pathway.
type Warming struct {
	Forcing string  `yaml:"forcing"`
	Name    string  `yaml:"name"`
	Level   float64 `yaml:"level"` // global mean warming, °C
	Marker  string  `yaml:"marker"`
}

// Central names the reference scenario pair.
type Central struct {
	Growth  string `yaml:"growth"`
	Warming string `yaml:"warming"`
}

type document struct {
	Growth  []Growth  `yaml:"growth"`
	Warming []Warming `yaml:"warming"`
	Central Central   `yaml:"central"`
}

// Number of plotted scenarios on each axis; the no-growth and no-warming
// entries of the table have no metadata.
const (
	NumGrowth  = table.NumGrowth - 1
	NumWarming = table.NumWarming - 1
)

// Metadata is the validated, immutable scenario description.
type Metadata struct {
	growth  [NumGrowth]Growth
	warming [NumWarming]Warming
	colors  [NumGrowth]color.Color
	central [2]int
}

// Default returns the metadata embedded in the binary.
func Default() (*Metadata, error) {
	return Parse(defaultYAML)
}

// Load reads metadata from a YAML file.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario metadata: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a YAML metadata document.
func Parse(data []byte) (*Metadata, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scenario metadata: %w", err)
	}

	if len(doc.Growth) != NumGrowth {
		return nil, fmt.Errorf("%w: want %d growth scenarios, got %d", ErrInvalid, NumGrowth, len(doc.Growth))
	}
	if len(doc.Warming) != NumWarming {
		return nil, fmt.Errorf("%w: want %d warming scenarios, got %d", ErrInvalid, NumWarming, len(doc.Warming))
	}

	m := &Metadata{central: [2]int{-1, -1}}
	for i, g := range doc.Growth {
		if want := table.GrowthLabels[i+1]; g.Name != want {
			return nil, fmt.Errorf("%w: growth scenario %d is %q, want %q", ErrInvalid, i+1, g.Name, want)
		}
		c, err := colorful.Hex(g.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %s colour: %v", ErrInvalid, g.Name, err)
		}
		m.growth[i] = g
		m.colors[i] = c
		if g.Name == doc.Central.Growth {
			m.central[0] = i
		}
	}
	for i, w := range doc.Warming {
		if want := table.WarmingLabels[i+1]; w.Forcing != want {
			return nil, fmt.Errorf("%w: warming scenario %d is %q, want %q", ErrInvalid, i+1, w.Forcing, want)
		}
		switch w.Marker {
		case MarkerCircle, MarkerSquare, MarkerTriangle, MarkerDiamond:
		default:
			return nil, fmt.Errorf("%w: %s: unknown marker %q", ErrInvalid, w.Forcing, w.Marker)
		}
		m.warming[i] = w
		if w.Forcing == doc.Central.Warming {
			m.central[1] = i
		}
	}
	if m.central[0] < 0 || m.central[1] < 0 {
		return nil, fmt.Errorf("%w: central scenario %s / %s not found", ErrInvalid, doc.Central.Growth, doc.Central.Warming)
	}
	return m, nil
}

// Growth returns growth scenario i, counting from SSP1 = 0.
func (m *Metadata) Growth(i int) Growth { return m.growth[i] }

// Warming returns warming scenario k, counting from the lowest forcing = 0.
func (m *Metadata) Warming(k int) Warming { return m.warming[k] }

// Color returns the drawing colour of growth scenario i.
func (m *Metadata) Color(i int) color.Color { return m.colors[i] }

// GrowthRates returns the baseline growth rates of SSP1-5 in %/yr.
func (m *Metadata) GrowthRates() []float64 {
	out := make([]float64, NumGrowth)
	for i, g := range m.growth {
		out[i] = g.Rate
	}
	return out
}

// WarmingLevels returns the warming of each forcing pathway in °C.
func (m *Metadata) WarmingLevels() []float64 {
	out := make([]float64, NumWarming)
	for i, w := range m.warming {
		out[i] = w.Level
	}
	return out
}

// Central returns the indices of the reference growth and warming scenarios.
func (m *Metadata) Central() (growth, warming int) {
	return m.central[0], m.central[1]
}
