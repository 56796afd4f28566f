// Package datastore is the CoordiNet data-access layer: seven record
// collections (users, clubs, festivals, sub-events, tasks, expenses,
// participations) and the session singleton, kept on top of a key-value
// storage.Repository.
//
// # Layout
//
// Each collection is one JSON array stored under "<prefix><name>"; the
// session is one JSON object under "<prefix>session" and the key is absent
// when nobody is signed in. Reads decode the whole collection and lookups
// are linear scans preserving insertion order.
//
// # Writes
//
// A mutation reads the collection together with its storage version,
// applies the change and writes it back only if the version is unchanged.
// When another writer got in first the whole read-check-write is repeated
// (a bounded number of times), so uniqueness and capacity checks always see
// the latest data. Exhausted retries surface common.ErrVersionConflict.
//
// # References
//
// Foreign keys are plain identifiers and deletes never cascade. Lookups of
// missing records return (nil, nil); callers treat that as "not found".
package datastore
