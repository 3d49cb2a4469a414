package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aqualab/meterconsole/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(clock Clock) *Client {
	return New(WithClock(clock), WithRetryDelay(0))
}

// counter returns a read that yields 1, 2, 3... and counts its calls.
func counter(calls *atomic.Int32) func(context.Context) (int, error) {
	return func(context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}
}

func TestFetch_CoalescesConcurrentReads(t *testing.T) {
	c := newTestClient(testutil.FixedClock())

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "users", nil
	}

	const readers = 10
	var wg sync.WaitGroup
	results := make([]Result[string], readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Fetch(context.Background(), c, Options[string]{Key: NewKey("users", 0, 20), Fn: fn})
		}(i)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, StatusSuccess, r.Status)
		assert.Equal(t, "users", r.Data)
	}

	// A second read within the freshness window is served from cache.
	r := Fetch(context.Background(), c, Options[string]{Key: NewKey("users", 0, 20), Fn: fn})
	assert.True(t, r.OK())
	assert.False(t, r.Stale)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_DistinctKeysDoNotShare(t *testing.T) {
	c := newTestClient(testutil.FixedClock())

	var calls atomic.Int32
	Fetch(context.Background(), c, Options[int]{Key: NewKey("users", 0, 20), Fn: counter(&calls)})
	Fetch(context.Background(), c, Options[int]{Key: NewKey("users", 1, 20), Fn: counter(&calls)})

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, c.Len())
}

func TestFetch_Disabled(t *testing.T) {
	c := newTestClient(testutil.FixedClock())

	var calls atomic.Int32
	r := Fetch(context.Background(), c, Options[int]{
		Key:      NewKey("user", 0),
		Fn:       counter(&calls),
		Disabled: true,
	})

	assert.Equal(t, StatusDisabled, r.Status)
	assert.False(t, r.OK())
	assert.NoError(t, r.Err)
	assert.Zero(t, r.Data)
	assert.Zero(t, calls.Load())
	assert.Zero(t, c.Len())
}

func TestFetch_StaleWhileRevalidate(t *testing.T) {
	clock := testutil.FixedClock()
	c := newTestClient(clock)
	key := NewKey("roles")

	var calls atomic.Int32
	opts := Options[int]{Key: key, Fn: counter(&calls)}

	first := Fetch(context.Background(), c, opts)
	require.True(t, first.OK())
	assert.Equal(t, 1, first.Data)

	clock.Advance(DefaultStaleTime - time.Second)
	fresh := Fetch(context.Background(), c, opts)
	assert.Equal(t, 1, fresh.Data)
	assert.False(t, fresh.Stale)
	assert.Equal(t, int32(1), calls.Load())

	clock.Advance(2 * time.Second)
	stale := Fetch(context.Background(), c, opts)
	assert.True(t, stale.OK())
	assert.True(t, stale.Stale)
	assert.Equal(t, 1, stale.Data, "stale value is served while refreshing")

	assert.Eventually(t, func() bool {
		info, ok := c.Entry(key)
		return ok && calls.Load() == 2 && !info.Stale
	}, time.Second, time.Millisecond)

	refreshed := Fetch(context.Background(), c, opts)
	assert.Equal(t, 2, refreshed.Data)
	assert.False(t, refreshed.Stale)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_StaleTimeOverride(t *testing.T) {
	clock := testutil.FixedClock()
	c := newTestClient(clock)

	var calls atomic.Int32
	opts := Options[int]{Key: NewKey("serialPorts"), Fn: counter(&calls), StaleTime: time.Minute}

	Fetch(context.Background(), c, opts)
	clock.Advance(2 * time.Minute)
	r := Fetch(context.Background(), c, opts)
	assert.True(t, r.Stale)
}

func TestEntry_UsesReadStaleTime(t *testing.T) {
	clock := testutil.FixedClock()
	c := newTestClient(clock)
	key := NewKey("serialPorts")

	var calls atomic.Int32
	Fetch(context.Background(), c, Options[int]{Key: key, Fn: counter(&calls), StaleTime: time.Minute})

	info, ok := c.Entry(key)
	require.True(t, ok)
	assert.False(t, info.Stale)

	clock.Advance(2 * time.Minute)
	info, _ = c.Entry(key)
	assert.True(t, info.Stale, "entry is stale after its own window, not the client default")
}

func TestFetch_RetriesOnce(t *testing.T) {
	c := newTestClient(testutil.FixedClock())

	var calls atomic.Int32
	flaky := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("connection reset")
		}
		return "ok", nil
	}

	r := Fetch(context.Background(), c, Options[string]{Key: NewKey("flaky"), Fn: flaky})
	assert.True(t, r.OK())
	assert.Equal(t, "ok", r.Data)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_SecondFailureSurfaces(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	key := NewKey("broken")

	var calls atomic.Int32
	boom := errors.New("boom")
	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, boom
	}

	r := Fetch(context.Background(), c, Options[int]{Key: key, Fn: failing})
	assert.Equal(t, StatusError, r.Status)
	assert.ErrorIs(t, r.Err, boom)
	assert.Equal(t, int32(2), calls.Load())

	info, ok := c.Entry(key)
	require.True(t, ok)
	assert.Equal(t, StatusError, info.Status)

	// A failed entry is fetched again on the next read.
	Fetch(context.Background(), c, Options[int]{Key: key, Fn: failing})
	assert.Equal(t, int32(4), calls.Load())
}

func TestFetch_NoRetryWhenDisabled(t *testing.T) {
	c := New(WithClock(testutil.FixedClock()), WithRetry(0))

	var calls atomic.Int32
	r := Fetch(context.Background(), c, Options[int]{
		Key: NewKey("broken"),
		Fn: func(context.Context) (int, error) {
			calls.Add(1)
			return 0, errors.New("boom")
		},
	})
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_CallerCancellationDoesNotCancelRead(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	key := NewKey("pdfRecords")

	release := make(chan struct{})
	var readErr atomic.Value
	fn := func(ctx context.Context) (string, error) {
		<-release
		readErr.Store(errOrNil{ctx.Err()})
		return "records", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Result[string])
	go func() {
		done <- Fetch(ctx, c, Options[string]{Key: key, Fn: fn})
	}()

	cancel()
	r := <-done
	assert.Equal(t, StatusError, r.Status)
	assert.ErrorIs(t, r.Err, context.Canceled)

	close(release)
	assert.Eventually(t, func() bool {
		info, ok := c.Entry(key)
		return ok && info.HasData
	}, time.Second, time.Millisecond)
	assert.Equal(t, errOrNil{}, readErr.Load())

	again := Fetch(context.Background(), c, Options[string]{Key: key, Fn: fn})
	assert.Equal(t, "records", again.Data)
}

type errOrNil struct{ err error }

func TestInvalidate_FamilyAndExact(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	ctx := context.Background()

	var calls atomic.Int32
	keys := []Key{
		NewKey("departments", 0, 20),
		NewKey("departments", 1, 20),
		NewKey("department", 5),
		NewKey("department", 6),
		NewKey("roles"),
	}
	for _, k := range keys {
		require.True(t, Fetch(ctx, c, Options[int]{Key: k, Fn: counter(&calls)}).OK())
	}
	require.Equal(t, int32(5), calls.Load())

	c.Invalidate(NewKey("departments"), NewKey("department", int64(5)))

	invalidated := map[string]bool{}
	for _, k := range keys {
		info, ok := c.Entry(k)
		require.True(t, ok)
		invalidated[k.String()] = info.Invalidated
		assert.True(t, info.HasData, "invalidation keeps data")
	}
	assert.Equal(t, map[string]bool{
		`["departments",0,20]`: true,
		`["departments",1,20]`: true,
		`["department",5]`:     true,
		`["department",6]`:     false,
		`["roles"]`:            false,
	}, invalidated)

	// Invalidated keys refetch; untouched keys stay cached.
	r := Fetch(ctx, c, Options[int]{Key: NewKey("department", 5), Fn: counter(&calls)})
	assert.Equal(t, 6, r.Data)
	assert.False(t, r.Stale)

	Fetch(ctx, c, Options[int]{Key: NewKey("roles"), Fn: counter(&calls)})
	Fetch(ctx, c, Options[int]{Key: NewKey("department", 6), Fn: counter(&calls)})
	assert.Equal(t, int32(6), calls.Load())
}

func TestInvalidate_DuringFlight(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	ctx := context.Background()
	key := NewKey("notifications", "op")

	release := make(chan struct{})
	var calls atomic.Int32
	slow := func(context.Context) (int, error) {
		n := calls.Add(1)
		if n == 1 {
			<-release
		}
		return int(n), nil
	}

	done := make(chan Result[int])
	go func() { done <- Fetch(ctx, c, Options[int]{Key: key, Fn: slow}) }()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	c.Invalidate(NewKey("notifications"))
	close(release)

	first := <-done
	assert.Equal(t, 1, first.Data, "in-flight read completes with what it fetched")

	info, _ := c.Entry(key)
	assert.True(t, info.HasData)
	assert.True(t, info.Invalidated, "a read that started before invalidation does not clear it")

	second := Fetch(ctx, c, Options[int]{Key: key, Fn: slow})
	assert.Equal(t, 2, second.Data)

	info, _ = c.Entry(key)
	assert.False(t, info.Invalidated)
}

func TestInvalidate_FailedRefetchKeepsPreviousData(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	ctx := context.Background()
	key := NewKey("passwordPolicy")

	Fetch(ctx, c, Options[string]{Key: key, Fn: func(context.Context) (string, error) { return "90 days", nil }})
	c.Invalidate(key)

	r := Fetch(ctx, c, Options[string]{Key: key, Fn: func(context.Context) (string, error) {
		return "", errors.New("unavailable")
	}})
	assert.Equal(t, StatusError, r.Status)
	assert.Error(t, r.Err)
	assert.Equal(t, "90 days", r.Data)
	assert.True(t, r.Stale)
}

func TestMutate(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	ctx := context.Background()

	var calls atomic.Int32
	Fetch(ctx, c, Options[int]{Key: NewKey("departments", 0, 20), Fn: counter(&calls)})
	Fetch(ctx, c, Options[int]{Key: NewKey("roles"), Fn: counter(&calls)})

	var sawInvalidated bool
	res := Mutate(ctx, c, MutationOptions[string]{
		Fn:          func(context.Context) (string, error) { return "created", nil },
		Invalidates: []Key{NewKey("departments")},
		OnSuccess: func(string) {
			info, _ := c.Entry(NewKey("departments", 0, 20))
			sawInvalidated = info.Invalidated
		},
	})
	require.True(t, res.OK())
	assert.Equal(t, "created", res.Data)
	assert.False(t, sawInvalidated, "OnSuccess runs before invalidation")

	info, _ := c.Entry(NewKey("departments", 0, 20))
	assert.True(t, info.Invalidated)
	info, _ = c.Entry(NewKey("roles"))
	assert.False(t, info.Invalidated)
}

func TestMutate_FailureDoesNotRetryOrInvalidate(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	ctx := context.Background()

	Fetch(ctx, c, Options[int]{Key: NewKey("users", 0, 20), Fn: func(context.Context) (int, error) { return 1, nil }})

	var calls atomic.Int32
	var succeeded bool
	res := Mutate(ctx, c, MutationOptions[int]{
		Fn: func(context.Context) (int, error) {
			calls.Add(1)
			return 0, errors.New("conflict")
		},
		Invalidates: []Key{NewKey("users")},
		OnSuccess:   func(int) { succeeded = true },
	})

	assert.Equal(t, StatusError, res.Status)
	assert.EqualError(t, res.Err, "conflict")
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, succeeded)

	info, _ := c.Entry(NewKey("users", 0, 20))
	assert.False(t, info.Invalidated)
}

func TestClear(t *testing.T) {
	c := newTestClient(testutil.FixedClock())
	ctx := context.Background()

	var calls atomic.Int32
	Fetch(ctx, c, Options[int]{Key: NewKey("currentUser"), Fn: counter(&calls)})
	require.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Entry(NewKey("currentUser"))
	assert.False(t, ok)

	r := Fetch(ctx, c, Options[int]{Key: NewKey("currentUser"), Fn: counter(&calls)})
	assert.Equal(t, 2, r.Data)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "disabled", StatusDisabled.String())
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}
