// Package pagedit holds the copy-and-splice helpers used by the page editors.
// None of the helpers modify the slice they are given.
package pagedit

import (
	"encoding/json"
	"fmt"

	apperrors "hall-of-fame-backend/internal/errors"
)

type Action string

const (
	ActionAppend Action = "append"
	ActionUpdate Action = "update"
	ActionRemove Action = "remove"
)

// Edit is one operation on an array-valued page section.
// For updates, Item is merged over the existing element.
type Edit struct {
	Action Action          `json:"action" binding:"required"`
	Index  int             `json:"index"`
	Item   json.RawMessage `json:"item,omitempty" swaggertype:"object"`
}

// Apply runs e against items and returns the new slice.
func Apply[T any](items []T, e Edit) ([]T, error) {
	switch e.Action {
	case ActionAppend:
		var item T
		if err := decode(e.Item, &item); err != nil {
			return nil, err
		}
		return Append(items, item), nil
	case ActionUpdate:
		if err := checkIndex(items, e.Index); err != nil {
			return nil, err
		}
		item := items[e.Index]
		if err := decode(e.Item, &item); err != nil {
			return nil, err
		}
		return Replace(items, e.Index, item)
	case ActionRemove:
		return Remove(items, e.Index)
	default:
		return nil, apperrors.ErrUnknownEditAction
	}
}

// Append returns a copy of items with item added at the end.
func Append[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// Replace returns a copy of items with the element at i swapped for item.
func Replace[T any](items []T, i int, item T) ([]T, error) {
	if err := checkIndex(items, i); err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out, nil
}

// Remove returns a copy of items without the element at i.
func Remove[T any](items []T, i int) ([]T, error) {
	if err := checkIndex(items, i); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}

func checkIndex[T any](items []T, i int) error {
	if i < 0 || i >= len(items) {
		return apperrors.ErrItemIndexRange
	}
	return nil
}

func decode(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return apperrors.NewValidationError("item", "item is required")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return apperrors.NewValidationError("item", fmt.Sprintf("invalid item: %v", err))
	}
	return nil
}
