package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/dashboard"
	"github.com/aqualab/meterconsole/pkg/session"
)

// BaseURLEnv overrides base_url when set.
const BaseURLEnv = "METERCONSOLE_BASE_URL"

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageNone   = "none"
)

// Config contains the meterconsole configuration.
type Config struct {
	// BaseURL is the backend origin.
	BaseURL string `hcl:"base_url,optional"`

	// Timeout bounds each request, e.g. "30s". "0s" leaves the network stack
	// in charge.
	Timeout string `hcl:"timeout,optional"`

	// TLSVerify disables certificate checks when false.
	TLSVerify *bool `hcl:"tls_verify,optional"`

	// StaleTime is how long a cached read stays fresh, e.g. "5m".
	StaleTime string `hcl:"stale_time,optional"`

	// ReadRetries is how many times a failed read is retried. Unset uses the
	// default of one retry.
	ReadRetries *int `hcl:"read_retries,optional"`

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `hcl:"log_level,optional"`

	// Session configures where the session token is kept.
	Session *Session `hcl:"session,block"`
}

// Session configures token storage.
type Session struct {
	// Storage is one of "memory", "file", "none".
	Storage string `hcl:"storage,optional"`

	// Path is the session directory for file storage. A leading "~" is
	// expanded to the home directory.
	Path string `hcl:"path,optional"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error locating user config dir: %w", err)
	}
	return filepath.Join(dir, "meterconsole", "config.hcl"), nil
}

// Load decodes the HCL file at path from fs. A missing file yields the
// defaults. The environment override is applied before validation.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("error reading config file: %w", err)
		default:
			if err := hclsimple.Decode(filepath.Base(path), src, nil, cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	if v := os.Getenv(BaseURLEnv); v != "" {
		cfg.BaseURL = v
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = apiclient.DefaultBaseURL
	}
	if c.Timeout == "" {
		c.Timeout = "0s"
	}
	if c.StaleTime == "" {
		c.StaleTime = "5m"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Session == nil {
		c.Session = &Session{}
	}
	if c.Session.Storage == "" {
		c.Session.Storage = StorageFile
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.By(duration)),
		validation.Field(&c.StaleTime, validation.By(duration), validation.By(positiveDuration)),
		validation.Field(&c.LogLevel, validation.By(logLevel)),
	); err != nil {
		result = appendFieldErrors(result, err)
	}

	if c.ReadRetries != nil && *c.ReadRetries < 0 {
		result = multierror.Append(result, fmt.Errorf("read_retries: must be no less than 0"))
	}

	if c.Session != nil {
		if err := validation.ValidateStruct(c.Session,
			validation.Field(&c.Session.Storage,
				validation.In(StorageMemory, StorageFile, StorageNone)),
		); err != nil {
			result = appendFieldErrors(result, err, "session.")
		}
	}

	apiCfg := &apiclient.Config{BaseURL: c.BaseURL}
	if err := apiCfg.Validate(); err != nil {
		result = appendFieldErrors(result, err)
	}

	return result.ErrorOrNil()
}

// appendFieldErrors flattens ozzo field errors into result, one per field
// in a stable order.
func appendFieldErrors(result *multierror.Error, err error, prefix ...string) *multierror.Error {
	p := strings.Join(prefix, "")

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return multierror.Append(result, err)
	}
	for _, field := range sortedKeys(fieldErrs) {
		result = multierror.Append(result, fmt.Errorf("%s%s: %w", p, field, fieldErrs[field]))
	}
	return result
}

func sortedKeys(errs validation.Errors) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func duration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as 30s or 5m")
	}
	if d < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// positiveDuration rejects zero; a cache entry must stay fresh for some time.
func positiveDuration(value interface{}) error {
	s, _ := value.(string)
	if d, err := time.ParseDuration(s); err == nil && d == 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func logLevel(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if hclog.LevelFromString(s) == hclog.NoLevel {
		return errors.New("must be one of trace, debug, info, warn, error")
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// NewStorage builds the session storage the configuration selects. File
// storage lives on fs.
func (c *Config) NewStorage(fs afero.Fs) (session.Storage, error) {
	switch c.Session.Storage {
	case StorageMemory:
		return session.NewMemoryStorage(), nil
	case StorageNone:
		return session.NoopStorage{}, nil
	}

	dir := c.Session.Path
	if dir == "" {
		d, err := session.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	return session.NewFileStorage(fs, dir), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error locating home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Dashboard converts the configuration into a dashboard.Config. Durations
// must already be valid.
func (c *Config) Dashboard(storage session.Storage, logger hclog.Logger) dashboard.Config {
	timeout, _ := time.ParseDuration(c.Timeout)
	staleTime, _ := time.ParseDuration(c.StaleTime)

	retries := 0
	if c.ReadRetries != nil {
		retries = *c.ReadRetries
		if retries == 0 {
			retries = -1
		}
	}

	return dashboard.Config{
		API: &apiclient.Config{
			BaseURL:   c.BaseURL,
			Timeout:   timeout,
			TLSVerify: c.TLSVerify,
			Logger:    logger,
		},
		Storage:     storage,
		StaleTime:   staleTime,
		ReadRetries: retries,
		Logger:      logger,
	}
}
