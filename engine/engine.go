package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/geodesic/engine/core"
	"github.com/spaghettifunk/geodesic/engine/emitter"
	"github.com/spaghettifunk/geodesic/engine/math"
	"github.com/spaghettifunk/geodesic/engine/solids"
)

// Engine runs the generation pipeline described by an ApplicationConfig.
// Each call to Generate is a single synchronous pass.
type Engine struct {
	mu       sync.RWMutex
	config   *ApplicationConfig
	override ConfigOverride
	clock    *core.Clock
	metrics  *core.Metrics
	jobID    uuid.UUID
}

func New(config *ApplicationConfig) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	if err := core.SetLogLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", core.ErrInvalidConfig, err)
	}

	return &Engine{
		config:  config,
		clock:   core.NewClock(),
		metrics: core.NewMetrics(),
	}, nil
}

// Config returns the validated configuration.
func (e *Engine) Config() *ApplicationConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config
}

// SetOverride registers the edits applied on top of the config file every
// time Watch reloads it.
func (e *Engine) SetOverride(override ConfigOverride) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.override = override
}

// Metrics returns the stage metrics of the last generation.
func (e *Engine) Metrics() []core.StageMetric {
	return e.metrics.Stages()
}

// Generate writes the configured shape to w.
func (e *Engine) Generate(w io.Writer) error {
	e.jobID = uuid.New()
	e.metrics = core.NewMetrics()
	core.LogInfo("%s job %s: generating %s (format=%s mode=%s subdivisions=%d)",
		e.config.Name, e.jobID, e.config.Shape, e.config.Format, e.config.Mode, e.config.Subdivisions)

	out := emitter.New(w)
	var err error
	switch e.config.Shape {
	case ShapeIcosphere:
		err = e.emitIcosphere(out)
	case ShapeIcosahedron:
		var points []math.Vec3
		e.stage(func() (string, int) {
			points = solids.IcosahedronVertices()
			return solids.StageRaw.String(), len(points)
		})
		err = out.WritePoints(points)
	case ShapeRandom:
		var points []math.Vec3
		e.stage(func() (string, int) {
			points = solids.RandomPointCloud(e.config.Random.Count, e.config.Random.Seed)
			return string(ShapeRandom), len(points)
		})
		err = out.WritePoints(points)
	default:
		err = fmt.Errorf("%w: %q", core.ErrUnknownShape, e.config.Shape)
	}
	if err != nil {
		core.LogError("%s job %s: %s", e.config.Name, e.jobID, err)
		return err
	}

	core.LogInfo("%s job %s: done in %s", e.config.Name, e.jobID, e.metrics.Total())
	return nil
}

// outputFileMode is the permission of generated files. CreateTemp alone
// would leave them owner-only.
const outputFileMode os.FileMode = 0o644

// GenerateFile writes the configured shape to path, replacing the file only
// once generation has finished.
func (e *Engine) GenerateFile(path string) error {
	if path == "" || path == "-" {
		return e.Generate(os.Stdout)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := e.Generate(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(outputFileMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// BuildIcosphere runs base solid, face discovery, subdivision and edge
// extraction, recording a metric for each stage.
func (e *Engine) BuildIcosphere() *solids.Solid {
	var solid *solids.Solid
	e.stage(func() (string, int) {
		solid = solids.NewIcosahedron()
		return solid.Stage.String(), len(solid.Points)
	})

	threshold := e.config.AdjacencyThreshold()
	e.stage(func() (string, int) {
		solid = solid.DiscoverFaces(threshold)
		return solid.Stage.String(), len(solid.Faces)
	})
	if len(solid.Faces) != solids.IcosahedronFaceCount {
		core.LogWarn("threshold %v found %d faces on the base solid, expected %d",
			threshold, len(solid.Faces), solids.IcosahedronFaceCount)
	}

	if e.config.Subdivisions > 0 {
		e.stage(func() (string, int) {
			solid = solid.Subdivide(e.config.Subdivisions)
			return solid.Stage.String(), len(solid.Faces)
		})
	}
	e.stage(func() (string, int) {
		solid = solid.ExtractEdges()
		return solid.Stage.String(), len(solid.Edges)
	})

	ext := math.GeometryCalculateExtents(solid.Points)
	core.LogDebug("icosphere: V=%d E=%d F=%d extents=%v..%v",
		len(solid.Points), len(solid.Edges), len(solid.Faces), ext.Min, ext.Max)
	return solid
}

func (e *Engine) emitIcosphere(out *emitter.Emitter) error {
	solid := e.BuildIcosphere()

	if e.config.Format == FormatOBJ {
		return out.WriteOBJ(emitter.NewSphereMesh(solid.Faces))
	}
	switch emitter.Mode(e.config.Mode) {
	case emitter.ModePoints:
		return out.WritePoints(solid.Points)
	case emitter.ModeLines:
		return out.WriteLines(solid.Edges)
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownMode, e.config.Mode)
	}
}

// stage times fn and records a metric under the stage name and entity count
// fn reports.
func (e *Engine) stage(fn func() (name string, count int)) {
	e.clock.Start()
	name, n := fn()
	e.clock.Stop()

	e.metrics.Record(name, n, e.clock.Elapsed())
	core.LogDebug("%s job %s: stage %s produced %d in %s", e.config.Name, e.jobID, name, n, e.clock.Elapsed())
}
