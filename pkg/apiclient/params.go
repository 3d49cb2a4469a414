package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Params is an ordered set of query parameters.
//
// Pairs are encoded in insertion order. Nil values, including typed nil
// pointers, are dropped so optional parameters can be added unconditionally.
type Params struct {
	keys   []string
	values []string
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Add appends key=value unless value is nil.
func (p *Params) Add(key string, value any) *Params {
	s, ok := formatValue(value)
	if !ok {
		return p
	}
	p.keys = append(p.keys, key)
	p.values = append(p.values, s)
	return p
}

// AddIf appends key=value only when cond holds.
func (p *Params) AddIf(cond bool, key string, value any) *Params {
	if !cond {
		return p
	}
	return p.Add(key, value)
}

// Len returns the number of encoded pairs.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Get returns the first value stored for key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	for i, k := range p.keys {
		if k == key {
			return p.values[i], true
		}
	}
	return "", false
}

// Encode renders the set as a URL query string without the leading '?'.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[i]))
	}
	return b.String()
}

func formatValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	value = rv.Interface()

	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return v.Format(time.RFC3339), true
	case fmt.Stringer:
		return v.String(), true
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}

	return fmt.Sprint(value), true
}
