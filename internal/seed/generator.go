// Package seed produces synthetic users for the development seeding endpoint.
package seed

import (
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/phrazzld/users-api/internal/domain"
)

const (
	// bioWordCount is the length of each generated lorem ipsum bio.
	bioWordCount = 12

	// maxAttempts bounds retries when the faker yields a value the domain rejects.
	maxAttempts = 5
)

// Generator produces unsaved users with fake but well formed values.
type Generator interface {
	NextUser() (*domain.User, error)
}

// FakeGenerator generates users with gofakeit.
type FakeGenerator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewFakeGenerator returns a generator seeded with seed. A zero seed draws a
// random one, so every run produces different users.
func NewFakeGenerator(seed uint64) *FakeGenerator {
	return &FakeGenerator{faker: gofakeit.New(seed)}
}

// NextUser returns a validated user with a first name, last name, email and
// lorem ipsum bio.
func (g *FakeGenerator) NextUser() (*domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		bio := g.faker.LoremIpsumSentence(bioWordCount)
		user, err := domain.NewUser(g.faker.FirstName(), g.faker.LastName(), g.faker.Email(), &bio)
		if err == nil {
			return user, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to generate a valid user after %d attempts: %w", maxAttempts, lastErr)
}
