package database

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstallmo/agentic-protos/src/util"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetCreatesMissingCounter(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	value, err := db.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(0), value)

	// The implicit creation leaves statistics at zero.
	stats, err := db.Stats(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Value)
	assert.Equal(t, int64(0), stats.TotalIncrements)
	assert.Equal(t, float64(0), stats.AverageIncrement)
	assert.Equal(t, int64(0), stats.HighestValue)
}

func TestMainCounterSeeded(t *testing.T) {
	db := openTestDB(t)

	counters, err := db.List(context.Background())
	require.NoError(t, err)

	found := false
	for _, c := range counters {
		if c.ID == MainCounterID {
			found = true
			assert.Equal(t, int64(0), c.Value)
		}
	}
	assert.True(t, found, "main counter should exist after Open")
}

func TestIncrementAccumulates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	v, err := db.Increment(ctx, "acc", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = db.Increment(ctx, "acc", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)

	v, err = db.Get(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)
}

func TestIncrementStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for _, amount := range []int64{1, 2, 5, 10} {
		_, err := db.Increment(ctx, MainCounterID, amount)
		require.NoError(t, err)
	}

	stats, err := db.Stats(ctx, MainCounterID)
	require.NoError(t, err)
	assert.Equal(t, int64(18), stats.Value)
	assert.Equal(t, int64(4), stats.TotalIncrements)
	assert.InDelta(t, 4.5, stats.AverageIncrement, 1e-9)
	assert.Equal(t, int64(18), stats.HighestValue)
}

func TestHighestValueTracksPeak(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Increment(ctx, "peak", 10)
	require.NoError(t, err)
	_, err = db.Increment(ctx, "peak", -4)
	require.NoError(t, err)

	stats, err := db.Stats(ctx, "peak")
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Value)
	assert.Equal(t, int64(10), stats.HighestValue)
	assert.InDelta(t, 3.0, stats.AverageIncrement, 1e-9)
}

func TestSetDoesNotTouchStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Increment(ctx, "s", 7)
	require.NoError(t, err)

	require.NoError(t, db.Set(ctx, "s", 100))

	v, err := db.Get(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(100), v)

	stats, err := db.Stats(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalIncrements)
	assert.InDelta(t, 7.0, stats.AverageIncrement, 1e-9)
	assert.Equal(t, int64(7), stats.HighestValue)
}

func TestStatsMissingCounter(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Stats(context.Background(), "nope")
	assert.True(t, errors.Is(err, util.ErrCounterNotFound))

	// Stats must not create the counter as a side effect.
	counters, err := db.List(context.Background())
	require.NoError(t, err)
	for _, c := range counters {
		assert.NotEqual(t, "nope", c.ID)
	}
}

func TestListOrdering(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, db.Set(ctx, id, 1))
	}

	counters, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, counters, 4) // three plus the main counter
	for i := 1; i < len(counters); i++ {
		assert.Less(t, counters[i-1].ID, counters[i].ID)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Increment(ctx, "gone", 3)
	require.NoError(t, err)

	existed, err := db.Delete(ctx, "gone")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = db.Delete(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, existed)

	// Recreated at zero, stats included.
	v, err := db.Get(ctx, "gone")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	stats, err := db.Stats(ctx, "gone")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalIncrements)
}

func TestBootstrapIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counters.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.Increment(ctx, MainCounterID, 42)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Re-running migrations and seeding against a populated store must
	// change nothing.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	stats, err := db.Stats(ctx, MainCounterID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.Value)
	assert.Equal(t, int64(1), stats.TotalIncrements)
	assert.InDelta(t, 42.0, stats.AverageIncrement, 1e-9)
	assert.Equal(t, int64(42), stats.HighestValue)
}

func TestConcurrentIncrements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	const workers = 8
	const perWorker = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := db.Increment(ctx, "contended", 1); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stats, err := db.Stats(ctx, "contended")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), stats.Value, "no increment may be lost")
	assert.Equal(t, int64(workers*perWorker), stats.TotalIncrements)
	assert.Equal(t, int64(workers*perWorker), stats.HighestValue)
}
