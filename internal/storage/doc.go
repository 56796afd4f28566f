// Package storage provides the key-value layer underneath the CoordiNet data
// store: the Go counterpart of browser local storage.
//
// # Overview
//
// A Repository maps string keys to opaque byte values. Each key carries a
// version that increases on every write, so callers can implement
// read-modify-write with CompareAndSet and detect a concurrent writer.
//
// Two implementations are provided:
//
//   - SQLiteRepository: a single table in an embedded SQLite database file
//     (modernc.org/sqlite), schema managed by goose migrations
//   - MemoryRepository: a mutex-guarded map, for tests and throwaway sessions
//
// # Typical usage
//
//	db, err := storage.Open(ctx, "coordinet.db", 5*time.Second)
//	repo := storage.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "coordinet_session", b)
//	v, ver, _ := repo.GetVersioned(ctx, "coordinet_users")
//	err = repo.CompareAndSet(ctx, "coordinet_users", updated, ver)
package storage
