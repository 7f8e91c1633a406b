// Package metadata provides the client's persistent key-value store.
//
// # Overview
//
// The package defines a Repository interface with Get/Set/Delete/List/Clear
// and two implementations:
//
//   - SQLiteRepository persists pairs in the "metadata" table (created by the
//     embedded goose migrations, see internal/client/migrations) through a
//     dbx.DBTX, so it works over either *sql.DB or *sql.Tx.
//   - MemoryRepository keeps pairs in a process-local map. It is handy for
//     tests and for runs that should not leave anything on disk.
//
// # Semantics
//
// A missing key is not an error: Get returns (nil, nil). Set overwrites.
// Clear wipes the whole store. Writers are not coordinated beyond what the
// backend gives for free, so concurrent writers to the same key race and the
// last write wins.
//
// Typical Usage
//
//	repo := metadata.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "token", []byte(`"abc"`))
//	v, _ := repo.Get(ctx, "token")
//	_ = repo.Clear(ctx)
package metadata
