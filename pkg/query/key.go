package query

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key addresses a cache entry: a family name plus an ordered parameter
// tuple. Keys sharing a name form a family.
type Key struct {
	name   string
	params []any
	parts  []string
}

// NewKey builds a key. Parameters are compared by their JSON encoding, so
// int 5 and int64 5 address the same entry.
func NewKey(name string, params ...any) Key {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = encodePart(p)
	}
	return Key{name: name, params: params, parts: parts}
}

func encodePart(p any) string {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(p))
	}
	return string(b)
}

// Name returns the family name.
func (k Key) Name() string {
	return k.name
}

// Params returns the parameters the key was built with.
func (k Key) Params() []any {
	return k.params
}

// Family returns the key with its parameters dropped.
func (k Key) Family() Key {
	return Key{name: k.name}
}

// String is the canonical form used as the cache map key.
func (k Key) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(encodePart(k.name))
	for _, p := range k.parts {
		b.WriteByte(',')
		b.WriteString(p)
	}
	b.WriteByte(']')
	return b.String()
}

// Matches reports whether other falls under k: same name, and k's parameters
// are a prefix of other's. A key without parameters matches its whole family.
func (k Key) Matches(other Key) bool {
	if k.name != other.name || len(k.parts) > len(other.parts) {
		return false
	}
	for i, p := range k.parts {
		if other.parts[i] != p {
			return false
		}
	}
	return true
}
