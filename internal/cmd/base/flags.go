package base

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/aqualab/meterconsole/pkg/models"
)

// FlagSet wraps flag.FlagSet with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a FlagSet that reports errors to the caller instead of
// exiting.
func NewFlagSet(name string) *FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help renders the flags for command help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return b.String()
}

// PageVars defines -page and -size flags filling p.
func (f *FlagSet) PageVars(p *models.PageRequest) {
	f.IntVar(&p.Page, "page", 0, "Zero-based page number.")
	f.IntVar(&p.Size, "size", 0, "Page size. 0 uses the default size for the list.")
}

// ParseID reads the single positional id argument.
func ParseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one id argument, got %d", len(args))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// TimeVar defines a flag holding a date-time in any common layout. The
// value is stored as an ISO-8601 local date-time, the form the backend
// filters expect.
func (f *FlagSet) TimeVar(p *string, name, usage string) {
	f.Var(&timeValue{p: p}, name, usage)
}

type timeValue struct {
	p *string
}

const isoLocal = "2006-01-02T15:04:05"

func (v *timeValue) String() string {
	if v.p == nil {
		return ""
	}
	return *v.p
}

func (v *timeValue) Set(s string) error {
	t, err := dateparse.ParseIn(s, time.Local)
	if err != nil {
		return fmt.Errorf("unrecognized date-time %q", s)
	}
	*v.p = t.Format(isoLocal)
	return nil
}
