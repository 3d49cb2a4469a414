package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
	"github.com/aqualab/meterconsole/pkg/services"
	"github.com/aqualab/meterconsole/pkg/session"
	"github.com/hashicorp/go-hclog"
)

// Config holds everything needed to build a Dashboard.
type Config struct {
	API        *apiclient.Config // Backend connection (default: apiclient.DefaultConfig)
	HTTPClient *http.Client      // Overrides the client built from API (optional)
	Storage    session.Storage   // Token storage (default: in-memory)

	StaleTime   time.Duration // Freshness window of cached reads (default: 5m)
	ReadRetries int           // Retries for failed reads; 0 uses the default, negative disables
	RetryDelay  time.Duration // Pause before a read is retried (default: 1s)
	Clock       query.Clock   // Time source for staleness (optional)

	Logger hclog.Logger // Logger (optional)
}

// Dashboard is the context object pages and commands work through: a session,
// the services of every backend resource, and the cache in front of them.
type Dashboard struct {
	API     *services.Registry
	Session *session.Store
	Cache   *query.Client

	logger hclog.Logger
}

// New builds a Dashboard. Each call yields an independent session and cache.
func New(cfg Config) (*Dashboard, error) {
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	apiCfg := apiclient.DefaultConfig()
	if cfg.API != nil {
		c := *cfg.API
		apiCfg = &c
	}
	if apiCfg.Logger == nil {
		apiCfg.Logger = cfg.Logger
	}

	storage := cfg.Storage
	if storage == nil {
		storage = session.NewMemoryStorage()
	}
	store := session.NewStore(storage, cfg.Logger)

	var common []apiclient.Option
	if cfg.HTTPClient != nil {
		common = append(common, apiclient.WithHTTPClient(cfg.HTTPClient))
	}

	authed, err := apiclient.New(apiCfg, append([]apiclient.Option{apiclient.WithTokenSource(store)}, common...)...)
	if err != nil {
		return nil, fmt.Errorf("error creating API client: %w", err)
	}
	public, err := apiclient.New(apiCfg, common...)
	if err != nil {
		return nil, fmt.Errorf("error creating API client: %w", err)
	}

	cacheOpts := []query.Option{query.WithLogger(cfg.Logger)}
	if cfg.StaleTime > 0 {
		cacheOpts = append(cacheOpts, query.WithStaleTime(cfg.StaleTime))
	}
	switch {
	case cfg.ReadRetries > 0:
		cacheOpts = append(cacheOpts, query.WithRetry(cfg.ReadRetries))
	case cfg.ReadRetries < 0:
		cacheOpts = append(cacheOpts, query.WithRetry(0))
	}
	if cfg.RetryDelay > 0 {
		cacheOpts = append(cacheOpts, query.WithRetryDelay(cfg.RetryDelay))
	}
	if cfg.Clock != nil {
		cacheOpts = append(cacheOpts, query.WithClock(cfg.Clock))
	}

	return &Dashboard{
		API:     services.NewRegistry(authed, public),
		Session: store,
		Cache:   query.New(cacheOpts...),
		logger:  cfg.Logger.Named("dashboard"),
	}, nil
}

// IsAuthenticated reports whether a session token is held.
func (d *Dashboard) IsAuthenticated() bool {
	return d.Session.IsAuthenticated()
}

// Login authenticates and stores the session token found in the response.
// It returns the stored token.
func (d *Dashboard) Login(ctx context.Context, username, password string) query.MutationResult[string] {
	return query.Mutate(ctx, d.Cache, query.MutationOptions[string]{
		Fn: func(ctx context.Context) (string, error) {
			payload, err := d.API.Auth.Login(ctx, username, password)
			if err != nil {
				return "", err
			}
			return session.ExtractToken(payload)
		},
		OnSuccess: func(token string) {
			d.Session.SetToken(token)
			d.logger.Info("logged in", "username", username)
		},
	})
}

// Logout ends the session and drops every cached read.
func (d *Dashboard) Logout() {
	d.Session.ClearToken()
	d.Cache.Clear()
	d.logger.Info("logged out")
}

// read serves a typed read through the cache.
func read[T any](ctx context.Context, d *Dashboard, key query.Key, disabled bool, fn func(context.Context) (T, error)) query.Result[T] {
	return query.Fetch(ctx, d.Cache, query.Options[T]{
		Key:      key,
		Fn:       fn,
		Disabled: disabled,
	})
}

// list serves a list read through the cache, normalizing both response
// shapes into a page.
func list[T any](ctx context.Context, d *Dashboard, key query.Key, disabled bool, fn func(context.Context) (json.RawMessage, error)) query.Result[models.Page[T]] {
	return read(ctx, d, key, disabled, func(ctx context.Context) (models.Page[T], error) {
		raw, err := fn(ctx)
		if err != nil {
			return models.Page[T]{}, err
		}
		return query.Normalize[T](raw)
	})
}

// write runs a mutation and invalidates keys once it succeeds.
func write[T any](ctx context.Context, d *Dashboard, fn func(context.Context) (T, error), keys ...query.Key) query.MutationResult[T] {
	return query.Mutate(ctx, d.Cache, query.MutationOptions[T]{
		Fn:          fn,
		Invalidates: keys,
	})
}

// exec adapts an error-only call to a mutation function.
func exec(fn func(context.Context) error) func(context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}
}
