package query

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/models"
)

// Normalize turns a list response into a page. The backend answers some
// lists with a paginated envelope and others with a bare array; both are
// legitimate.
//
// Precedence: the envelope's content if present, else the raw response when
// it is an array, else an empty page. An envelope keeps its page metadata.
func Normalize[T any](raw json.RawMessage) (models.Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return models.PageOf[T](nil), nil
	}

	switch trimmed[0] {
	case '{':
		var page models.Page[T]
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return models.Page[T]{}, fmt.Errorf("failed to decode page: %w", err)
		}
		if page.Content == nil {
			page.Content = []T{}
		}
		return page, nil

	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return models.Page[T]{}, fmt.Errorf("failed to decode list: %w", err)
		}
		return models.PageOf(items), nil
	}

	if !json.Valid(trimmed) {
		return models.Page[T]{}, fmt.Errorf("failed to decode list: invalid JSON")
	}
	return models.PageOf[T](nil), nil
}

// Unwrap decodes a single record, looking inside a content envelope when the
// server sent one.
func Unwrap[T any](raw json.RawMessage) (T, error) {
	var out T

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}

	if trimmed[0] == '{' {
		var env struct {
			Content json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(trimmed, &env); err == nil {
			c := bytes.TrimSpace(env.Content)
			if len(c) > 0 && c[0] == '{' {
				trimmed = c
			}
		}
	}

	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, fmt.Errorf("failed to decode record: %w", err)
	}
	return out, nil
}
