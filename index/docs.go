// Package index offers secondary indexes, to look up entities by other attributes than their ID.
//
// An index maps a key, derived from an entity by the caller, to entity IDs,
// which can be resolved through an entity.Collection or entity.SharedCollection.
//
//   - Unique maps every key to exactly one ID, e.g. a user's login.
//   - Reverse maps every key to an ordered set of IDs, e.g. all users of a team.
//
// Indexes do not know any collection and do not validate IDs.
// Keeping them up to date, when entities are inserted or changed, is the responsibility of the caller.
//
// Keys have to be totally ordered: use the constructors for cmp.Ordered keys
// or pass a compare function for any other key type.
// The indexes are not safe for concurrent use.
package index
