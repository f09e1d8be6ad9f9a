package selection

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CodeCoordinateOverflow is the status code for out-of-range coordinates.
const CodeCoordinateOverflow uint16 = 0x20

// Coordinate is a pixel location in the original, unscaled image.
type Coordinate struct {
	X uint16
	Y uint16
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Pack places X in bits 31:16 and Y in bits 15:0.
func Pack(c Coordinate) uint32 {
	return uint32(c.X)<<16 | uint32(c.Y)
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) Coordinate {
	return Coordinate{X: uint16(v >> 16), Y: uint16(v)}
}

// CoordinateOverflowError rejects a value that does not fit 16 bits.
type CoordinateOverflowError struct {
	Axis  string
	Value int64
}

func (e *CoordinateOverflowError) Error() string {
	return fmt.Sprintf("selection: %s=%d outside 0..%d", e.Axis, e.Value, math.MaxUint16)
}

func (e *CoordinateOverflowError) Code() uint16 { return CodeCoordinateOverflow }

// NewCoordinate builds a Coordinate, failing instead of wrapping.
func NewCoordinate(x, y int64) (Coordinate, error) {
	if x < 0 || x > math.MaxUint16 {
		return Coordinate{}, &CoordinateOverflowError{Axis: "x", Value: x}
	}
	if y < 0 || y > math.MaxUint16 {
		return Coordinate{}, &CoordinateOverflowError{Axis: "y", Value: y}
	}
	return Coordinate{X: uint16(x), Y: uint16(y)}, nil
}

// ParseCoordinate parses decimal text as typed into an entry field.
func ParseCoordinate(sx, sy string) (Coordinate, error) {
	x, err := strconv.ParseInt(strings.TrimSpace(sx), 10, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("selection: parse x %q: %w", sx, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(sy), 10, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("selection: parse y %q: %w", sy, err)
	}
	return NewCoordinate(x, y)
}
