package selection

import (
	"errors"
	"fmt"
)

// Buffer keeps the most recent selections, at most cap of them.
// Index i is destined for PARAM register i.
// Not safe for concurrent use; the owning session serializes access.
type Buffer struct {
	cap   int
	items []Coordinate
}

// NewBuffer creates an empty buffer holding up to capacity entries.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, errors.New("selection: capacity must be > 0")
	}
	return &Buffer{
		cap:   capacity,
		items: make([]Coordinate, 0, capacity),
	}, nil
}

// Append adds c at the end. When full, the oldest entry is dropped
// and the rest shift down one slot.
func (b *Buffer) Append(c Coordinate) {
	if len(b.items) < b.cap {
		b.items = append(b.items, c)
		return
	}
	copy(b.items, b.items[1:])
	b.items[b.cap-1] = c
}

// Replace overwrites an occupied slot.
func (b *Buffer) Replace(i int, c Coordinate) error {
	if i < 0 || i >= len(b.items) {
		return fmt.Errorf("selection: slot %d not occupied (len=%d)", i, len(b.items))
	}
	b.items[i] = c
	return nil
}

func (b *Buffer) Len() int { return len(b.items) }

func (b *Buffer) Cap() int { return b.cap }

// At returns slot i. It panics if i is out of range, like a slice index.
func (b *Buffer) At(i int) Coordinate { return b.items[i] }

// Coordinates returns a copy of the occupied slots in order.
func (b *Buffer) Coordinates() []Coordinate {
	out := make([]Coordinate, len(b.items))
	copy(out, b.items)
	return out
}

// Packed returns the register value for each occupied slot.
func (b *Buffer) Packed() []uint32 {
	out := make([]uint32, len(b.items))
	for i, c := range b.items {
		out[i] = Pack(c)
	}
	return out
}
