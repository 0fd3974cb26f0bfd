package pagedit

import (
	"encoding/json"
	"testing"

	apperrors "hall-of-fame-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func TestAppendDoesNotAlias(t *testing.T) {
	original := make([]string, 2, 10)
	original[0], original[1] = "a", "b"

	out := Append(original, "c")
	out[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, original)
	assert.Equal(t, []string{"changed", "b", "c"}, out)
	assert.Equal(t, "", original[:3][2])
}

func TestReplaceAndRemove(t *testing.T) {
	original := []string{"a", "b", "c"}

	replaced, err := Replace(original, 1, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "c"}, replaced)

	removed, err := Remove(original, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, removed)

	assert.Equal(t, []string{"a", "b", "c"}, original)
}

func TestIndexOutOfRange(t *testing.T) {
	_, err := Remove([]string{"a"}, 1)
	assert.ErrorIs(t, err, apperrors.ErrItemIndexRange)

	_, err = Replace([]string{}, 0, "x")
	assert.ErrorIs(t, err, apperrors.ErrItemIndexRange)

	_, err = Remove([]string{"a"}, -1)
	assert.ErrorIs(t, err, apperrors.ErrItemIndexRange)
}

func TestApply(t *testing.T) {
	faqs := []faq{{Question: "When?", Answer: "June"}}

	t.Run("append decodes the item", func(t *testing.T) {
		out, err := Apply(faqs, Edit{Action: ActionAppend, Item: json.RawMessage(`{"question":"Where?","answer":"Gym"}`)})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Gym", out[1].Answer)
		assert.Len(t, faqs, 1)
	})

	t.Run("update merges fields over the existing element", func(t *testing.T) {
		out, err := Apply(faqs, Edit{Action: ActionUpdate, Index: 0, Item: json.RawMessage(`{"answer":"July"}`)})
		require.NoError(t, err)
		assert.Equal(t, faq{Question: "When?", Answer: "July"}, out[0])
		assert.Equal(t, "June", faqs[0].Answer)
	})

	t.Run("remove", func(t *testing.T) {
		out, err := Apply(faqs, Edit{Action: ActionRemove, Index: 0})
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.NotNil(t, out)
	})

	t.Run("missing item is a validation error", func(t *testing.T) {
		_, err := Apply(faqs, Edit{Action: ActionAppend})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := Apply(faqs, Edit{Action: "swap"})
		assert.ErrorIs(t, err, apperrors.ErrUnknownEditAction)
	})
}
