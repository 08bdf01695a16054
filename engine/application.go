package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/geodesic/engine/core"
	"github.com/spaghettifunk/geodesic/engine/emitter"
	"github.com/spaghettifunk/geodesic/engine/math"
	"github.com/spaghettifunk/geodesic/engine/solids"
)

// Shape names the generator that produces the output.
type Shape string

const (
	// Subdivided icosahedron, emitted as edges or as its vertex pool
	ShapeIcosphere Shape = "icosphere"
	// The twelve raw, un-normalized base vertices, always in points mode
	ShapeIcosahedron Shape = "icosahedron"
	// A planar random point cloud, always in points mode
	ShapeRandom Shape = "random"
)

// Format names the output encoding.
type Format string

const (
	// The points/lines record protocol
	FormatText Format = "text"
	// Indexed v/vt/vn/f mesh
	FormatOBJ Format = "obj"
)

// MaxSubdivisions bounds the subdivision depth at 20·4^7 faces.
const MaxSubdivisions = 7

const maxRandomCount = 1 << 20

type RandomConfig struct {
	// Number of points generated.
	Count int `toml:"count"`
	// Seed of the generator. Equal seeds give equal clouds.
	Seed uint64 `toml:"seed"`
}

type ApplicationConfig struct {
	// The application name used as the log prefix of generation jobs.
	Name     string        `toml:"name"`
	LogLevel core.LogLevel `toml:"log_level"`
	Shape    Shape         `toml:"shape"`
	// Record mode for the text format: "lines" or "points".
	Mode   string `toml:"mode"`
	Format Format `toml:"format"`
	// Number of geodesic subdivision levels applied to the base solid.
	Subdivisions int `toml:"subdivisions"`
	// Face adjacency cutoff. Zero selects the analytic unit-sphere value.
	Threshold float64 `toml:"threshold"`
	// Output file. Empty or "-" writes to standard output.
	Output string       `toml:"output"`
	Random RandomConfig `toml:"random"`
}

// DefaultConfig reproduces the reference output: the icosphere after two
// subdivisions, emitted as lines.
func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:         "geodesic",
		LogLevel:     core.LogLevelInfo,
		Shape:        ShapeIcosphere,
		Mode:         string(emitter.ModeLines),
		Format:       FormatText,
		Subdivisions: 2,
		Threshold:    solids.DefaultAdjacencyThreshold,
		Random: RandomConfig{
			Count: 100,
			Seed:  1,
		},
	}
}

// ConfigOverride edits a configuration after it is read from a file and
// before it is validated. Command-line flags are applied this way.
type ConfigOverride func(*ApplicationConfig)

// LoadConfig reads a TOML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (*ApplicationConfig, error) {
	return LoadConfigWith(path, nil)
}

// LoadConfigWith reads a TOML file over the defaults and applies override, if
// any, before validating the result.
func LoadConfigWith(path string, override ConfigOverride) (*ApplicationConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrInvalidConfig, path, err)
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown names and clamps numeric fields into range.
func (c *ApplicationConfig) Validate() error {
	switch c.Shape {
	case ShapeIcosphere, ShapeIcosahedron, ShapeRandom:
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownShape, c.Shape)
	}
	switch c.Format {
	case FormatText, FormatOBJ:
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownFormat, c.Format)
	}
	if _, err := emitter.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Format == FormatOBJ && c.Shape != ShapeIcosphere {
		return fmt.Errorf("%w: format %q requires shape %q", core.ErrInvalidConfig, FormatOBJ, ShapeIcosphere)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be >= 0, got %v", core.ErrInvalidConfig, c.Threshold)
	}

	if s := math.Clamp(c.Subdivisions, 0, MaxSubdivisions); s != c.Subdivisions {
		core.LogWarn("subdivisions %d out of range [0, %d]. Clamping to %d.", c.Subdivisions, MaxSubdivisions, s)
		c.Subdivisions = s
	}
	if n := math.Clamp(c.Random.Count, 0, maxRandomCount); n != c.Random.Count {
		core.LogWarn("random.count %d out of range [0, %d]. Clamping to %d.", c.Random.Count, maxRandomCount, n)
		c.Random.Count = n
	}
	if c.LogLevel == "" {
		c.LogLevel = core.LogLevelInfo
	}
	return nil
}

// AdjacencyThreshold resolves the configured face adjacency cutoff.
func (c *ApplicationConfig) AdjacencyThreshold() float64 {
	if c.Threshold == 0 {
		return solids.IcosahedronAdjacencyThreshold()
	}
	return c.Threshold
}
