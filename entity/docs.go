// Package entity holds typed collections of domain objects, keyed by their eid.ID.
//
// Any type T with a method EntityID() eid.ID[T] is an Entity and can be stored.
// There are two collections with different policies on collisions:
//
//   - Collection owns the entities. Inserting an entity with an existing ID overwrites
//     the stored one and hands the previous entity back.
//   - SharedCollection hands out a shared Ref for every entity, so that multiple collaborators
//     can observe and mutate the same entity without going through the collection.
//     Inserting an entity with an existing ID is rejected, the stored Ref stays untouched.
//
// Entities are never removed. Lookups by other attributes are done with the indexes in package index,
// which the caller keeps up to date: mutating or overwriting an entity does not touch any index.
//
// The collections are not safe for concurrent use, use them from one goroutine at a time
// or guard them with a mutex.
package entity
