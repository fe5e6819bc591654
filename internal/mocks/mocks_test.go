package mocks

import (
	"context"
	"testing"

	"github.com/phrazzld/users-api/internal/domain"
	"github.com/phrazzld/users-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUserStoreDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMockUserStore()

	for _, name := range []string{"Bob", "Zoe", "Amy"} {
		require.NoError(t, s.Create(ctx, &domain.User{FirstName: name, LastName: "X", Email: "x@example.com"}))
	}

	got, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Zoe", got.FirstName)

	_, err = s.GetByID(ctx, 9)
	assert.ErrorIs(t, err, store.ErrNotFound)

	list, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Zoe", list[0].FirstName)
	assert.Equal(t, "Bob", list[1].FirstName)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, s.CreateCalls)
}

func TestMockGeneratorNumbersUsers(t *testing.T) {
	g := &MockGenerator{}

	first, err := g.NextUser()
	require.NoError(t, err)
	second, err := g.NextUser()
	require.NoError(t, err)

	assert.Equal(t, "User1", first.FirstName)
	assert.Equal(t, "user2@example.com", second.Email)
	assert.Equal(t, 2, g.Calls)
}
