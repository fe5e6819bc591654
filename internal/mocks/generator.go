package mocks

import (
	"fmt"
	"sync"

	"github.com/phrazzld/users-api/internal/domain"
	"github.com/phrazzld/users-api/internal/seed"
)

// MockGenerator implements seed.Generator for testing. By default it returns
// numbered users ("User1", "User2", ...).
type MockGenerator struct {
	// NextUserFn allows test cases to mock the NextUser behavior
	NextUserFn func() (*domain.User, error)

	// Calls counts NextUser calls.
	Calls int

	mu sync.Mutex
}

var _ seed.Generator = (*MockGenerator)(nil)

// NextUser implements the seed.Generator interface
func (m *MockGenerator) NextUser() (*domain.User, error) {
	m.mu.Lock()
	m.Calls++
	n := m.Calls
	m.mu.Unlock()

	if m.NextUserFn != nil {
		return m.NextUserFn()
	}

	return domain.NewUser(
		fmt.Sprintf("User%d", n),
		"Seed",
		fmt.Sprintf("user%d@example.com", n),
		domain.StringPtr("generated"),
	)
}
