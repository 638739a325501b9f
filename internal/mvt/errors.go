package mvt

import (
	"fmt"
)

// ErrUnknownCommand indicates a geometry command id outside MoveTo,
// LineTo, ClosePath
type ErrUnknownCommand struct {
	Command uint32
}

func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown geometry command %d (expected 1, 2 or 7)", e.Command)
}

// ErrMalformedBuffer indicates wire bytes that cannot be decoded at the
// given offset, typically a truncated varint or a length or repeat
// count running past what the message can hold
type ErrMalformedBuffer struct {
	Offset int
	Err    error
}

func (e *ErrMalformedBuffer) Error() string {
	return fmt.Sprintf("malformed buffer at offset %d: %v", e.Offset, e.Err)
}

func (e *ErrMalformedBuffer) Unwrap() error { return e.Err }

// ErrRingOrder indicates an interior ring appearing before any
// exterior ring has been established
type ErrRingOrder struct {
	Ring int
}

func (e *ErrRingOrder) Error() string {
	return fmt.Sprintf("interior ring at index %d appears before any exterior ring", e.Ring)
}

// ErrTagIndex indicates a feature tag referencing past the end of a
// layer dictionary
type ErrTagIndex struct {
	Dict  string
	Index int
	Size  int
}

func (e *ErrTagIndex) Error() string {
	return fmt.Sprintf("feature tag references %s[%d], but the layer has %d entries", e.Dict, e.Index, e.Size)
}
