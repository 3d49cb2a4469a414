package query

import (
	"encoding/json"
	"testing"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID int `json:"id"`
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		content []item
		total   int64
	}{
		{name: "bare array", raw: `[{"id":1},{"id":2}]`, content: []item{{1}, {2}}, total: 2},
		{name: "envelope", raw: `{"content":[{"id":1},{"id":2}],"totalPages":1,"totalElements":2,"size":20}`, content: []item{{1}, {2}}, total: 2},
		{name: "envelope with null content", raw: `{"content":null,"totalElements":0}`, content: []item{}},
		{name: "object without content", raw: `{"id":1}`, content: []item{}},
		{name: "empty array", raw: `[]`, content: []item{}},
		{name: "null", raw: `null`, content: []item{}},
		{name: "empty body", raw: ``, content: []item{}},
		{name: "scalar", raw: `"nothing"`, content: []item{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Normalize[item](json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.content, page.Content)
			assert.Equal(t, tt.total, page.TotalElements)
		})
	}
}

func TestNormalize_EnvelopeUnchanged(t *testing.T) {
	raw := `{
		"content": [{"id": 1}, {"id": 2}],
		"number": 0,
		"size": 20,
		"totalElements": 2,
		"totalPages": 1,
		"numberOfElements": 2,
		"first": true,
		"last": true,
		"empty": false
	}`

	page, err := Normalize[item](json.RawMessage(raw))
	require.NoError(t, err)
	assert.Equal(t, models.Page[item]{
		Content:          []item{{1}, {2}},
		Number:           0,
		Size:             20,
		TotalElements:    2,
		TotalPages:       1,
		NumberOfElements: 2,
		First:            true,
		Last:             true,
		Empty:            false,
	}, page)
}

func TestNormalize_BareArrayBecomesPage(t *testing.T) {
	page, err := Normalize[item](json.RawMessage(`[{"id":1},{"id":2}]`))
	require.NoError(t, err)
	assert.Equal(t, models.PageOf([]item{{1}, {2}}), page)
}

func TestNormalize_Invalid(t *testing.T) {
	_, err := Normalize[item](json.RawMessage(`[{"id":"x"}]`))
	assert.Error(t, err)

	_, err = Normalize[item](json.RawMessage(`{"content":`))
	assert.Error(t, err)

	_, err = Normalize[item](json.RawMessage(`nope`))
	assert.Error(t, err)
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want item
	}{
		{name: "plain record", raw: `{"id":7}`, want: item{7}},
		{name: "wrapped record", raw: `{"content":{"id":7}}`, want: item{7}},
		{name: "null", raw: `null`},
		{name: "empty", raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unwrap[item](json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Unwrap[item](json.RawMessage(`[1]`))
	assert.Error(t, err)
}
