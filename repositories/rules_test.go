package repositories

import (
	"sync"
	"testing"

	"groupwarden/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRuleSetStore_CreatesDefaultOnce(t *testing.T) {
	req := require.New(t)
	store := NewRuleSetStore(openTestDB(t))

	first, err := store.LoadOrCreateDefault()
	req.NoError(err)
	req.Equal([]string{"spam", "scam", "fake"}, first.OffensiveWords)
	req.Equal(5, first.SpamLimit)
	req.NotEqual(uuid.Nil, first.Version)

	// Second load returns the same rule set, it never creates a duplicate.
	second, err := store.LoadOrCreateDefault()
	req.NoError(err)
	req.Equal(first, second)
}

func TestRuleSetStore_ConcurrentFirstLoadYieldsOneRuleSet(t *testing.T) {
	req := require.New(t)
	store := NewRuleSetStore(openTestDB(t))

	const goroutines = 8
	results := make([]domain.RuleSet, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.LoadOrCreateDefault()
		}(i)
	}
	wg.Wait()

	// All observers agree on a single version: only one creation happened.
	for i := 0; i < goroutines; i++ {
		req.NoError(errs[i])
		req.Equal(results[0].Version, results[i].Version)
	}
}
