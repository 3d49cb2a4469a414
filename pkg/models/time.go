package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// localLayout is how the backend writes zone-less date-times.
const localLayout = "2006-01-02T15:04:05.999999999"

var zoneSuffix = regexp.MustCompile(`(Z|[+-]\d{2}:?\d{2})$`)

// Timestamp is a backend date-time. The backend mixes zoned (RFC 3339) and
// zone-less local date-times; both decode, and a value is written back in the
// form it was read.
type Timestamp struct {
	time.Time
	local bool
}

// NewTimestamp wraps t as a zone-less local date-time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, local: true}
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}

	*t = Timestamp{
		Time:  parsed,
		local: !(strings.Contains(s, "T") && zoneSuffix.MatchString(s)),
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.local {
		return json.Marshal(t.Time.Format(localLayout))
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// MarshalYAML renders the timestamp the same way as JSON.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}
	if t.local {
		return t.Time.Format(localLayout), nil
	}
	return t.Time.Format(time.RFC3339Nano), nil
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Time.Format("2006-01-02 15:04:05")
}

// LocalTime is a time of day. The API schema describes it as an object, but
// the server may also send "HH:MM[:SS[.nnn]]"; both decode.
type LocalTime struct {
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`
	Second int `json:"second" yaml:"second"`
	Nano   int `json:"nano" yaml:"nano"`
}

func (lt *LocalTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*lt = LocalTime{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return lt.parse(s)
	}

	type plain LocalTime
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("invalid local time: %w", err)
	}
	*lt = LocalTime(p)
	return nil
}

func (lt *LocalTime) parse(s string) error {
	var frac string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i+1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid local time %q", s)
	}

	var out LocalTime
	fields := []*int{&out.Hour, &out.Minute, &out.Second}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid local time %q: %w", s, err)
		}
		*fields[i] = n
	}

	if frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		frac += strings.Repeat("0", 9-len(frac))
		n, err := strconv.Atoi(frac)
		if err != nil {
			return fmt.Errorf("invalid local time fraction %q: %w", frac, err)
		}
		out.Nano = n
	}

	*lt = out
	return nil
}

func (lt LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", lt.Hour, lt.Minute, lt.Second)
}
