/*
Package store implements the record store behind the dashboard.

# Store Interface

The Store interface exposes InsertMany, ReadAll, Clear and Replace. Replace
is the clear-then-insert sequence as a single guarded operation: the
ingestion pipeline swaps the whole snapshot through it, and readers observe
either the old snapshot or the new one.

# Backends

Two implementations:

  - MemoryStore: slice guarded by a sync.RWMutex; Replace swaps the slice
    under the write lock. The default backend.
  - SQLStore: database/sql over SQLite (modernc.org/sqlite) or PostgreSQL
    (lib/pq); Replace runs DELETE plus batch INSERT in one transaction.

Record IDs are assigned by the store on insertion (google/uuid).

# Schema

CreateSchema initializes the sales_record table for SQL backends:

	if err := store.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.
*/
package store
