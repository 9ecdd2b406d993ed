package idx

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewGeneratesUniqueSortedIDs(t *testing.T) {
	const n = 1000

	ids := make([]ID, 0, n)
	for range n {
		ids = append(ids, New())
	}

	seen := make(map[ID]struct{}, n)
	for _, id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}

	require.True(t, sort.SliceIsSorted(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	}), "monotonic generator should produce lexically ordered ids")
}

func TestNewConcurrent(t *testing.T) {
	const workers = 16
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[ID]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ID, 0, perWorker)
			for range perWorker {
				local = append(local, New())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker, "concurrent creators must never collide")
}

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("not-a-ulid")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("  " + id.String() + "  ")
	require.NoError(t, err, "surrounding whitespace is trimmed")
}

func TestTime(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, Zero.Time().IsZero())
}
