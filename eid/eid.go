// Package eid provides identifiers that are tagged with the type of the entity they identify.
//
// An ID[User] and an ID[Order] share the same representation, but are different types.
// The compiler rejects comparing, assigning, or converting one into the other,
// so an identifier can never be used to look up an entity of another kind by accident.
package eid

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
)

var ErrInvalid = errors.New("invalid id")

// ID identifies an entity of type T.
// IDs are totally ordered and comparable with ==, but only with IDs of the same T.
//
// The zero value is a valid ID with the value 0.
type ID[T any] struct {
	// makes the underlying type of ID differ for each T, so that even an explicit
	// conversion between IDs of different entity types does not compile.
	// It is a pointer, so that T may contain an ID[T] without becoming a recursive type.
	_ [0]*T

	value uint64
}

// New returns the ID of T with the given value.
func New[T any](v uint64) ID[T] {
	return ID[T]{value: v}
}

// Parse parses the decimal text form of an ID, as returned by ID.String.
func Parse[T any](s string) (ID[T], error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return ID[T]{}, fmt.Errorf("%w: %s: %v", ErrInvalid, typeName[T](), err)
	}

	return New[T](v), nil
}

// Compare returns -1, 0, or +1 depending on a being less, equal, or greater than b.
// It can be used with slices.SortFunc and friends.
func Compare[T any](a, b ID[T]) int {
	return a.Compare(b)
}

func (id ID[T]) Uint64() uint64 {
	return id.value
}

func (id ID[T]) IsZero() bool {
	return id.value == 0
}

func (id ID[T]) Compare(other ID[T]) int {
	return cmp.Compare(id.value, other.value)
}

func (id ID[T]) Less(other ID[T]) bool {
	return id.value < other.value
}

func (id ID[T]) String() string {
	return strconv.FormatUint(id.value, 10)
}

// LogValue implements slog.LogValuer.
// The entity type is part of the value, so that IDs of different entities are distinguishable in the logs.
func (id ID[T]) LogValue() slog.Value {
	return slog.StringValue(typeName[T]() + ":" + id.String())
}

func (id ID[T]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, id.value, 10), nil
}

func (id *ID[T]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T](string(text))
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}

func typeName[T any]() string {
	name := reflect.TypeFor[T]().Name()
	if name == "" {
		return reflect.TypeFor[T]().String()
	}

	return name
}
