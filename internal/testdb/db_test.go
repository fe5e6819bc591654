package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/users-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenIsolatesDatabases(t *testing.T) {
	ctx := context.Background()

	db1, store1 := OpenUserStore(t)
	db2, store2 := OpenUserStore(t)
	assert.NotEqual(t, db1.Path(), db2.Path())
	assert.Equal(t, DatabaseFile, filepath.Base(db1.Path()))

	require.NoError(t, store1.Create(ctx, &domain.User{FirstName: "A", LastName: "B", Email: "a@b.co"}))

	n, err := store2.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
