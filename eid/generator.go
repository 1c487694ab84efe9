package eid

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out sequential IDs for T, starting at 1.
// The zero value is ready to use. It is safe for concurrent use.
type Generator[T any] struct {
	last atomic.Uint64
}

// Next returns the next ID. IDs are strictly increasing.
func (g *Generator[T]) Next() ID[T] {
	return New[T](g.last.Add(1))
}

// NewTimeOrdered returns an ID derived from a UUIDv7.
// The leading 64 bits of a UUIDv7 hold the creation time in milliseconds and a sequence,
// so IDs created later in the same process compare greater.
// Across processes the IDs are ordered by the millisecond they were created in.
func NewTimeOrdered[T any]() (ID[T], error) {
	u, err := uuid.NewV7()
	if err != nil {
		return ID[T]{}, fmt.Errorf("%w: could not generate time ordered id: %v", ErrInvalid, err)
	}

	return New[T](binary.BigEndian.Uint64(u[:8])), nil
}
