package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_String(t *testing.T) {
	assert.Equal(t, `["roles"]`, NewKey("roles").String())
	assert.Equal(t, `["users",0,20]`, NewKey("users", 0, 20).String())
	assert.Equal(t, `["notifications","op"]`, NewKey("notifications", "op").String())
	assert.Equal(t, NewKey("user", 5).String(), NewKey("user", int64(5)).String())
	assert.NotEqual(t, NewKey("user", 5).String(), NewKey("user", "5").String())
}

func TestKey_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern Key
		key     Key
		want    bool
	}{
		{name: "family covers all params", pattern: NewKey("users"), key: NewKey("users", 2, 20), want: true},
		{name: "family covers bare key", pattern: NewKey("roles"), key: NewKey("roles"), want: true},
		{name: "exact key", pattern: NewKey("department", 5), key: NewKey("department", 5), want: true},
		{name: "different id", pattern: NewKey("department", 5), key: NewKey("department", 6), want: false},
		{name: "different family", pattern: NewKey("departments"), key: NewKey("department", 5), want: false},
		{name: "prefix params", pattern: NewKey("ph", "M-1"), key: NewKey("ph", "M-1", 0, 10), want: true},
		{name: "longer pattern", pattern: NewKey("ph", "M-1", 0), key: NewKey("ph", "M-1"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.key))
		})
	}
}

func TestKey_Family(t *testing.T) {
	k := NewKey("users", 0, 20)
	assert.Equal(t, "users", k.Name())
	assert.Equal(t, []any{0, 20}, k.Params())
	assert.Equal(t, `["users"]`, k.Family().String())
	assert.True(t, k.Family().Matches(k))
}
