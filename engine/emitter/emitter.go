package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spaghettifunk/geodesic/engine/core"
	"github.com/spaghettifunk/geodesic/engine/math"
	"github.com/spaghettifunk/geodesic/engine/solids"
)

// Mode selects the record format following the mode line.
type Mode string

const (
	// One `x y z 1` record per point
	ModePoints Mode = "points"
	// Two consecutive point records per edge
	ModeLines Mode = "lines"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePoints, ModeLines:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnknownMode, s)
	}
}

// Emitter serializes points or edges in the plain-text point/line protocol.
type Emitter struct {
	w *bufio.Writer
}

func New(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// WritePoints writes the `points` mode line followed by one record per point.
func (e *Emitter) WritePoints(points []math.Vec3) error {
	e.mode(ModePoints)
	for _, p := range points {
		e.point(p)
	}
	return e.w.Flush()
}

// WriteLines writes the `lines` mode line followed by two records per edge.
func (e *Emitter) WriteLines(edges []solids.Edge) error {
	e.mode(ModeLines)
	for _, edge := range edges {
		e.point(edge.A)
		e.point(edge.B)
	}
	return e.w.Flush()
}

func (e *Emitter) mode(m Mode) {
	e.w.WriteString(string(m))
	e.w.WriteByte('\n')
}

// Write errors stick in the bufio.Writer and surface on Flush.
func (e *Emitter) point(p math.Vec3) {
	h := p.ToVec4(1)
	e.w.WriteString(formatFloat(h.X))
	e.w.WriteByte(' ')
	e.w.WriteString(formatFloat(h.Y))
	e.w.WriteByte(' ')
	e.w.WriteString(formatFloat(h.Z))
	e.w.WriteByte(' ')
	e.w.WriteString(formatFloat(h.W))
	e.w.WriteByte('\n')
}

// formatFloat uses the shortest representation that round-trips, so 1.0
// prints as "1".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
