package sqlite

import "github.com/uptrace/bun"

// Bun exposes the underlying bun handle to tests that need raw DDL.
func (d *DB) Bun() *bun.DB {
	return d.bun
}
