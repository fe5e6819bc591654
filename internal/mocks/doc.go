// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields for every interface method. When a field is
// nil the mock falls back to a simple in-memory behavior, so most tests only
// override the one call they care about:
//
//	userStore := mocks.NewMockUserStore()
//	userStore.CreateFn = func(ctx context.Context, u *domain.User) error {
//	    return errors.New("disk full")
//	}
package mocks
