package entity

import (
	"reflect"
	"slices"

	"github.com/go-arrower/entities/eid"
)

// Entity is a domain object that knows its own identity.
// Use it as a self-referential constraint, T Entity[T],
// so that the ID of an entity is always tagged with the entity's own type:
//
//	type User struct {
//		UID  eid.ID[User]
//		Name string
//	}
//
//	func (u User) EntityID() eid.ID[User] { return u.UID }
//
// Two entities are the same, if their IDs are the same.
// It is the responsibility of the implementation, that EntityID is unique for every instance.
type Entity[T any] interface {
	EntityID() eid.ID[T]
}

// Compare orders entities by their ID.
// As both arguments have to be of the same type T, entities of different types cannot be compared.
func Compare[T Entity[T]](a, b T) int {
	return a.EntityID().Compare(b.EntityID())
}

// Equal reports whether a and b have the same ID. Other fields are not compared.
func Equal[T Entity[T]](a, b T) bool {
	return a.EntityID() == b.EntityID()
}

func Less[T Entity[T]](a, b T) bool {
	return a.EntityID().Less(b.EntityID())
}

// Sort sorts entities in ascending order of their IDs.
func Sort[T Entity[T]](entities []T) {
	slices.SortFunc(entities, Compare[T])
}

func entityName[T any]() string {
	return reflect.TypeFor[T]().Name()
}
