package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultStaleTime is how long a successful read stays fresh.
	DefaultStaleTime = 5 * time.Minute

	// DefaultRetries is the number of automatic retries for a failed read.
	DefaultRetries = 1

	// DefaultRetryDelay is the pause before a read is retried.
	DefaultRetryDelay = time.Second
)

// Status is the state of a read or write.
type Status int

const (
	// StatusDisabled means a gated read did not run.
	StatusDisabled Status = iota
	// StatusPending means no result is available yet.
	StatusPending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Clock supplies the current time for staleness decisions.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Client is a read-through cache for API reads with invalidation driven by
// writes. It holds no global state; construct one per session.
type Client struct {
	mu      sync.Mutex
	entries map[string]*entry
	epoch   uint64

	group singleflight.Group

	staleTime  time.Duration
	retries    uint64
	retryDelay time.Duration
	clock      Clock
	logger     hclog.Logger
}

type entry struct {
	key Key

	data      any
	hasData   bool
	dataGen   uint64
	updatedAt time.Time
	staleTime time.Duration

	err         error
	generation  uint64
	invalidated bool
}

// Option configures a Client.
type Option func(*Client)

// WithStaleTime sets how long a successful read stays fresh.
func WithStaleTime(d time.Duration) Option {
	return func(c *Client) {
		c.staleTime = d
	}
}

// WithRetry sets how many times a failed read is retried.
func WithRetry(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}
		c.retries = uint64(n)
	}
}

// WithRetryDelay sets the pause between read attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

func WithClock(clock Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates an empty cache.
func New(opts ...Option) *Client {
	c := &Client{
		entries:    make(map[string]*entry),
		staleTime:  DefaultStaleTime,
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
		clock:      realClock{},
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("query")
	return c
}

// Options describes one cached read.
type Options[T any] struct {
	Key Key
	Fn  func(ctx context.Context) (T, error)

	// Disabled gates the read: nothing runs and the result reports
	// StatusDisabled.
	Disabled bool

	// StaleTime overrides the client's freshness window when positive.
	StaleTime time.Duration
}

// Result is the outcome of a read.
type Result[T any] struct {
	Status    Status
	Data      T
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

// OK reports whether Data holds a successful read.
func (r Result[T]) OK() bool {
	return r.Status == StatusSuccess
}

// Fetch serves a read through the cache.
//
// A fresh entry is returned without a call. An entry past its freshness
// window is returned at once, marked Stale, while a refresh runs in the
// background. A missing, failed, or invalidated entry is fetched and waited
// for. Concurrent reads of one key share a single call, and that call runs
// to completion even when every caller has gone away.
func Fetch[T any](ctx context.Context, c *Client, opts Options[T]) Result[T] {
	if opts.Disabled {
		return Result[T]{Status: StatusDisabled}
	}

	staleTime := c.staleTime
	if opts.StaleTime > 0 {
		staleTime = opts.StaleTime
	}

	k := opts.Key.String()

	c.mu.Lock()
	e := c.entries[k]
	if e == nil {
		e = &entry{key: opts.Key}
		c.entries[k] = e
	}
	e.staleTime = staleTime
	gen, epoch := e.generation, c.epoch

	if e.hasData && e.err == nil && !e.invalidated {
		cached, _ := e.data.(T)
		res := Result[T]{
			Status:    StatusSuccess,
			Data:      cached,
			UpdatedAt: e.updatedAt,
		}
		if c.clock.Now().Sub(e.updatedAt) < staleTime {
			c.mu.Unlock()
			return res
		}
		c.mu.Unlock()

		res.Stale = true
		c.logger.Debug("serving stale entry, refreshing", "key", k)
		c.group.DoChan(flightKey(k, epoch, gen), func() (any, error) {
			return load(context.WithoutCancel(ctx), c, opts.Key, epoch, gen, opts.Fn)
		})
		return res
	}

	previous, hadData := e.data, e.hasData
	c.mu.Unlock()

	ch := c.group.DoChan(flightKey(k, epoch, gen), func() (any, error) {
		return load(context.WithoutCancel(ctx), c, opts.Key, epoch, gen, opts.Fn)
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			res := Result[T]{Status: StatusError, Err: r.Err}
			if hadData {
				res.Data, _ = previous.(T)
				res.Stale = true
			}
			return res
		}
		data, _ := r.Val.(T)
		return Result[T]{
			Status:    StatusSuccess,
			Data:      data,
			UpdatedAt: c.updatedAt(k),
		}

	case <-ctx.Done():
		return Result[T]{Status: StatusError, Err: ctx.Err()}
	}
}

func flightKey(k string, epoch, gen uint64) string {
	return fmt.Sprintf("%s@%d.%d", k, epoch, gen)
}

// load runs fn with retries and records the outcome in the entry for key.
func load[T any](ctx context.Context, c *Client, key Key, epoch, gen uint64, fn func(context.Context) (T, error)) (any, error) {
	var out T
	op := func() error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), c.retries),
		ctx,
	)
	err := backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		c.logger.Debug("retrying read", "key", key.String(), "wait", wait, "error", err)
	})

	c.store(key, epoch, gen, out, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// store records a finished fetch. Results of a fetch that started before an
// invalidation still land, unless newer data is already present, but leave
// the entry invalidated.
func (c *Client) store(key Key, epoch, gen uint64, data any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		return
	}

	k := key.String()
	e := c.entries[k]
	if e == nil {
		e = &entry{key: key}
		c.entries[k] = e
	}

	if err != nil {
		if gen == e.generation {
			e.err = err
		}
		c.logger.Debug("read failed", "key", k, "error", err)
		return
	}

	if !e.hasData || gen >= e.dataGen {
		e.data = data
		e.hasData = true
		e.dataGen = gen
		e.updatedAt = c.clock.Now()
	}
	if gen == e.generation {
		e.err = nil
		e.invalidated = false
	}
	c.logger.Debug("read stored", "key", k)
}

func (c *Client) updatedAt(k string) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e := c.entries[k]; e != nil {
		return e.updatedAt
	}
	return time.Time{}
}

// Invalidate marks every entry matching one of keys as stale. A key without
// parameters covers its whole family. Entries keep their data; the next
// read refetches. Reads already in flight are not cancelled.
func (c *Client) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		for _, k := range keys {
			if k.Matches(e.key) {
				e.generation++
				e.invalidated = true
				break
			}
		}
	}

	for _, k := range keys {
		c.logger.Debug("invalidated", "key", k.String())
	}
}

// Clear drops every entry. Reads in flight finish but are not stored.
func (c *Client) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	c.epoch++
}

// EntryInfo is a snapshot of one cache entry.
type EntryInfo struct {
	Status      Status
	HasData     bool
	UpdatedAt   time.Time
	Stale       bool
	Invalidated bool
	Err         error
}

// Entry returns a snapshot of the entry for key, if one exists.
func (c *Client) Entry(key Key) (EntryInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return EntryInfo{}, false
	}

	info := EntryInfo{
		HasData:     e.hasData,
		UpdatedAt:   e.updatedAt,
		Invalidated: e.invalidated,
		Err:         e.err,
	}
	switch {
	case e.err != nil:
		info.Status = StatusError
	case e.hasData:
		info.Status = StatusSuccess
	default:
		info.Status = StatusPending
	}
	staleTime := e.staleTime
	if staleTime <= 0 {
		staleTime = c.staleTime
	}
	info.Stale = e.invalidated || (e.hasData && c.clock.Now().Sub(e.updatedAt) >= staleTime)
	return info, true
}

// Len returns the number of entries.
func (c *Client) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// MutationOptions describes one write.
type MutationOptions[T any] struct {
	Fn func(ctx context.Context) (T, error)

	// Invalidates lists the keys and families a successful write makes stale.
	Invalidates []Key

	// OnSuccess runs after the write succeeds and before invalidation.
	OnSuccess func(T)
}

// MutationResult is the outcome of a write.
type MutationResult[T any] struct {
	Status Status
	Data   T
	Err    error
}

func (r MutationResult[T]) OK() bool {
	return r.Status == StatusSuccess
}

// Mutate runs a write once, without retry. On success the listed keys are
// invalidated before Mutate returns, so any read started afterwards sees it.
func Mutate[T any](ctx context.Context, c *Client, opts MutationOptions[T]) MutationResult[T] {
	v, err := opts.Fn(ctx)
	if err != nil {
		return MutationResult[T]{Status: StatusError, Err: err}
	}

	if opts.OnSuccess != nil {
		opts.OnSuccess(v)
	}
	c.Invalidate(opts.Invalidates...)

	return MutationResult[T]{Status: StatusSuccess, Data: v}
}
