// Package models defines the records kept in the CoordiNet local store.
//
// Every entity is a plain JSON-serializable struct. Foreign keys are plain
// identifier strings rather than owning references: a referenced record may
// have been deleted, and readers are expected to handle the missing referent.
//
// For each entity the package provides three shapes:
//
//   - the stored record (User, Club, Festival, ...)
//   - a New* input holding every field except identifiers and timestamps
//   - a *Patch with pointer fields; nil means "leave unchanged"
package models
