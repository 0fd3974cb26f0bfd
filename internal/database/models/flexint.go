package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt is a numeric form field. It accepts whole JSON numbers and numeric strings;
// null and blank strings decode as an absent value.
type FlexInt struct {
	Value int
	Valid bool
	// Set reports whether the key appeared in the payload at all.
	Set bool
}

// Largest magnitude a float64 holds without losing integer precision.
const maxExactInt = 1 << 53

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Valid = false
	f.Value = 0

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("expected a number, got %q", raw)
	}
	if n != math.Trunc(n) || math.Abs(n) > maxExactInt {
		return fmt.Errorf("expected a whole number, got %q", raw)
	}
	f.Value = int(n)
	f.Valid = true
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// Int returns the value, or 0 when blank.
func (f FlexInt) Int() int {
	if !f.Valid {
		return 0
	}
	return f.Value
}

// Ptr returns the value, or nil when blank.
func (f FlexInt) Ptr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// NewFlexInt builds a valid FlexInt.
func NewFlexInt(v int) FlexInt {
	return FlexInt{Value: v, Valid: true, Set: true}
}
