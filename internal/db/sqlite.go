// Package db opens the tablenavi SQLite database and applies its schema
// migrations. Directory traffic is read-heavy (search, detail pages,
// review listings), so connectivity is split into a single-connection
// write pool and a wider read pool over the same file.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"
)

const (
	busyTimeoutMillis = "5000"
	defaultReadConns  = 4
	pingTimeout       = 5 * time.Second
)

// OpenSQLitePair opens the write pool and the read pool for one SQLite
// file. The write pool is capped at a single connection and takes
// immediate transaction locks, which serializes reservation, review, and
// favorite writes. readMaxOpen sizes the read pool (0 means 4).
func OpenSQLitePair(path string, readMaxOpen int) (writeDB, readDB *sql.DB, err error) {
	writeDB, err = openPool(path, true, 1)
	if err != nil {
		return nil, nil, err
	}

	if readMaxOpen <= 0 {
		readMaxOpen = defaultReadConns
	}
	readDB, err = openPool(path, false, readMaxOpen)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, err
	}

	return writeDB, readDB, nil
}

// openPool opens one pool with WAL journaling, a 5s busy timeout,
// NORMAL synchronous mode, and foreign keys enforced.
func openPool(path string, write bool, maxOpen int) (*sql.DB, error) {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", busyTimeoutMillis)
	params.Set("_synchronous", "NORMAL")
	params.Set("_foreign_keys", "on")
	role := "read"
	if write {
		params.Set("_txlock", "immediate")
		role = "write"
	}

	pool, err := sql.Open("sqlite3", path+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite (%s): %w", role, err)
	}
	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxOpen)
	pool.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping sqlite (%s): %w", role, err)
	}

	return pool, nil
}
