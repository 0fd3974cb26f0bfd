package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		value int
	}{
		{"number", `{"year": 2024}`, true, 2024},
		{"numeric string", `{"year": "1998"}`, true, 1998},
		{"padded string", `{"year": " 7 "}`, true, 7},
		{"blank string", `{"year": ""}`, false, 0},
		{"null", `{"year": null}`, false, 0},
		{"whole float", `{"year": 3.0}`, true, 3},
		{"exponent", `{"year": "2.024e3"}`, true, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Year FlexInt `json:"year"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &out))
			assert.True(t, out.Year.Set)
			assert.Equal(t, tt.valid, out.Year.Valid)
			assert.Equal(t, tt.value, out.Year.Int())
		})
	}
}

func TestFlexIntAbsentKey(t *testing.T) {
	var out struct {
		Year FlexInt `json:"year"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &out))
	assert.False(t, out.Year.Set)
	assert.Nil(t, out.Year.Ptr())
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var out struct {
		Year FlexInt `json:"year"`
	}
	for _, input := range []string{
		`{"year": "twenty"}`,
		`{"year": 2024.7}`,
		`{"year": "1999.5"}`,
		`{"year": 1e30}`,
		`{"year": "-1e300"}`,
		`{"year": "NaN"}`,
		`{"year": "Inf"}`,
	} {
		assert.Error(t, json.Unmarshal([]byte(input), &out), input)
	}
}

func TestFlexIntMarshal(t *testing.T) {
	b, err := json.Marshal(NewFlexInt(12))
	require.NoError(t, err)
	assert.Equal(t, "12", string(b))

	b, err = json.Marshal(FlexInt{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	p := NewFlexInt(5).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 5, *p)
}
