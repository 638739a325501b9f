package mvt

// geometry.go - geometry command stream decoding
// Implements MVT spec §4.3: a geometry is a packed sequence of
// CommandIntegers, each followed by zigzag-encoded ParameterIntegers,
// interpreted against a cumulative coordinate cursor.

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Geometry command ids (MVT spec §4.3.3)
const (
	CmdMoveTo    = 1
	CmdLineTo    = 2
	CmdClosePath = 7
)

// Point is a coordinate in tile-local integer units. The origin is the
// tile's top-left corner and y grows downward.
type Point struct {
	X int32
	Y int32
}

// BBox is an axis-aligned box in tile-local integer units.
type BBox struct {
	MinX, MinY, MaxX, MaxY int32
}

// geometrySink receives decoded commands with absolute coordinates.
// The full decode and the bounding-box decode implement it over the
// same command loop.
type geometrySink interface {
	MoveTo(p Point)
	LineTo(p Point)
	ClosePath()
}

// decodeCommands runs the command loop over one raw geometry field.
//
// The (x, y) cursor accumulates deltas for the whole stream: MoveTo
// starts a new ring in the output but never resets the cursor
// (MVT spec §4.3.2). A CommandInteger with a count of zero still
// executes its command once. Any command id outside MoveTo, LineTo and
// ClosePath aborts the decode. Decoding is linear in the field length:
// repeat counts demanding more executions than the field's bytes can
// account for are rejected as malformed.
func decodeCommands(data []byte, sink geometrySink) error {
	var x, y int32
	var cmd uint32
	var length int64
	pos := 0

	// A well-formed stream executes at most one MoveTo or LineTo per
	// pair of delta varints and at most one ClosePath per
	// CommandInteger byte, so twice the field length bounds the total
	// execution count. ClosePath consumes no parameter bytes, so its
	// repeat count alone must not drive the loop.
	budget := 2 * int64(len(data))

	for pos < len(data) {
		if length <= 0 {
			v, n := protowire.ConsumeVarint(data[pos:])
			if n < 0 {
				return &ErrMalformedBuffer{Offset: pos, Err: protowire.ParseError(n)}
			}
			pos += n
			cmd = uint32(v & 0x7)
			length = int64(v >> 3)
		}
		length--

		budget--
		if budget < 0 {
			return &ErrMalformedBuffer{Offset: pos, Err: fmt.Errorf("command repeat counts exceed the %d-byte geometry", len(data))}
		}

		switch cmd {
		case CmdMoveTo, CmdLineTo:
			dx, n := protowire.ConsumeVarint(data[pos:])
			if n < 0 {
				return &ErrMalformedBuffer{Offset: pos, Err: protowire.ParseError(n)}
			}
			pos += n
			dy, n := protowire.ConsumeVarint(data[pos:])
			if n < 0 {
				return &ErrMalformedBuffer{Offset: pos, Err: protowire.ParseError(n)}
			}
			pos += n
			x += int32(protowire.DecodeZigZag(dx))
			y += int32(protowire.DecodeZigZag(dy))
			if cmd == CmdMoveTo {
				sink.MoveTo(Point{X: x, Y: y})
			} else {
				sink.LineTo(Point{X: x, Y: y})
			}
		case CmdClosePath:
			sink.ClosePath()
		default:
			return &ErrUnknownCommand{Command: cmd}
		}
	}
	return nil
}

// ringSink materializes commands into rings of points. ring stays nil
// until the first MoveTo; an open ring is explicit state, never
// inferred from emptiness.
type ringSink struct {
	rings [][]Point
	ring  []Point
}

func (s *ringSink) MoveTo(p Point) {
	if s.ring != nil {
		s.rings = append(s.rings, s.ring)
	}
	s.ring = make([]Point, 0, 8)
	s.ring = append(s.ring, p)
}

func (s *ringSink) LineTo(p Point) {
	if s.ring == nil {
		// Delta already consumed by the cursor; there is no ring to
		// extend before the first MoveTo.
		return
	}
	s.ring = append(s.ring, p)
}

func (s *ringSink) ClosePath() {
	if len(s.ring) > 0 {
		s.ring = append(s.ring, s.ring[0])
	}
}

// finish stores a still-open ring and returns the result.
func (s *ringSink) finish() [][]Point {
	if s.ring != nil {
		s.rings = append(s.rings, s.ring)
		s.ring = nil
	}
	return s.rings
}

// DecodeGeometry decodes a raw geometry field into rings or lines of
// tile-local points. Every call decodes from scratch and allocates a
// fresh result; the input bytes are never modified, so repeated and
// concurrent decodes of the same feature are safe. On error no partial
// geometry is returned.
func DecodeGeometry(data []byte) ([][]Point, error) {
	sink := &ringSink{}
	if err := decodeCommands(data, sink); err != nil {
		return nil, err
	}
	return sink.finish(), nil
}

// bboxSink tracks coordinate extrema without materializing points.
type bboxSink struct {
	box BBox
}

func newBBoxSink() *bboxSink {
	return &bboxSink{box: BBox{
		MinX: math.MaxInt32,
		MinY: math.MaxInt32,
		MaxX: math.MinInt32,
		MaxY: math.MinInt32,
	}}
}

func (s *bboxSink) MoveTo(p Point) { s.extend(p) }
func (s *bboxSink) LineTo(p Point) { s.extend(p) }

// ClosePath duplicates a point the sink has already seen, so the
// extrema cannot change.
func (s *bboxSink) ClosePath() {}

func (s *bboxSink) extend(p Point) {
	if p.X < s.box.MinX {
		s.box.MinX = p.X
	}
	if p.X > s.box.MaxX {
		s.box.MaxX = p.X
	}
	if p.Y < s.box.MinY {
		s.box.MinY = p.Y
	}
	if p.Y > s.box.MaxY {
		s.box.MaxY = p.Y
	}
}

// DecodeBBox decodes only the bounding box of a raw geometry field,
// without materializing any points. Empty geometry yields an inverted
// box (min greater than max).
func DecodeBBox(data []byte) (BBox, error) {
	sink := newBBoxSink()
	if err := decodeCommands(data, sink); err != nil {
		return BBox{}, err
	}
	return sink.box, nil
}
