// Package testdb provides database helpers for tests.
//
// Every call to Open creates a fresh, fully migrated SQLite file inside the
// test's temporary directory, so tests never share state and need no manual
// cleanup:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.Open(t)
//	    userStore := sqlite.NewSQLiteUserStore(db, nil)
//	    // ...
//	}
package testdb
