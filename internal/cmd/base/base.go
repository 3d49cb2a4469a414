package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/aqualab/meterconsole/internal/config"
	"github.com/aqualab/meterconsole/pkg/dashboard"
)

// Command is embedded by every CLI command. It carries the logger, the UI,
// and the flags every command shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is where the config file and the session live.
	Fs afero.Fs

	// ConfigPath is used when -config is not given. Empty means the per-user
	// default location.
	ConfigPath string

	flagConfig string
	flagFormat string

	dash *dashboard.Dashboard
}

// New creates the shared command base.
func New(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	}
}

// NewFlagSet returns a flag set named name carrying the shared flags.
func (c *Command) NewFlagSet(name string) *FlagSet {
	f := NewFlagSet(name)
	f.StringVar(&c.flagConfig, "config", "",
		"Path to the meterconsole config file.")
	f.StringVar(&c.flagFormat, "format", FormatTable,
		"Output format: table, json or yaml.")
	return f
}

// Format returns the output format selected with -format.
func (c *Command) Format() string {
	return c.flagFormat
}

// Context returns a context cancelled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Config loads the configuration selected with -config.
func (c *Command) Config() (*config.Config, error) {
	path := c.flagConfig
	if path == "" {
		path = c.ConfigPath
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(c.Fs, path)
}

// Dashboard builds the dashboard from configuration on first use.
func (c *Command) Dashboard() (*dashboard.Dashboard, error) {
	if c.dash != nil {
		return c.dash, nil
	}

	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}
	c.Log.SetLevel(cfg.Level())

	storage, err := cfg.NewStorage(c.Fs)
	if err != nil {
		return nil, fmt.Errorf("error creating session storage: %w", err)
	}

	d, err := dashboard.New(cfg.Dashboard(storage, c.Log))
	if err != nil {
		return nil, err
	}
	c.dash = d
	return d, nil
}

// Init parses args into f and builds the dashboard.
func (c *Command) Init(f *FlagSet, args []string) (*dashboard.Dashboard, error) {
	if err := f.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	switch c.flagFormat {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", c.flagFormat)
	}
	d, err := c.Dashboard()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return d, nil
}

// Error reports err prefixed with what failed and returns exit code 1.
func (c *Command) Error(what string, err error) int {
	c.UI.Error(fmt.Sprintf("error %s: %v", what, err))
	return 1
}
