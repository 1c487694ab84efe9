package entity

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists  = errors.New("exists already")
	ErrBorrowConflict = errors.New("conflicting access to shared entity")
)

// CollisionError is returned by SharedCollection.Insert, if an entity with the same ID is stored already.
// It hands the rejected entity back, unmodified. Use errors.As to get it:
//
//	var collision *entity.CollisionError[User]
//	if errors.As(err, &collision) {
//		rejected := collision.Entity
//	}
type CollisionError[T Entity[T]] struct {
	Entity T
}

func (e *CollisionError[T]) Error() string {
	return fmt.Sprintf("%s %s: %v", entityName[T](), e.Entity.EntityID(), ErrAlreadyExists)
}

func (e *CollisionError[T]) Unwrap() error {
	return ErrAlreadyExists
}
