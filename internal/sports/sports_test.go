package sports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "Basketball", []string{"Basketball"}},
		{"comma", "Football, Baseball", []string{"Football", "Baseball"}},
		{"ampersand", "Football & Wrestling", []string{"Football", "Wrestling"}},
		{"slash and semicolon", "Golf/Tennis; Soccer", []string{"Golf", "Tennis", "Soccer"}},
		{"word and", "Football and Basketball", []string{"Football", "Basketball"}},
		{"compound kept whole", "Track & Field", []string{"Track & Field"}},
		{"compound spelled with and", "track and field, Basketball", []string{"Track & Field", "Basketball"}},
		{"two compounds", "Swimming & Diving & Track & Field", []string{"Swimming & Diving", "Track & Field"}},
		{"hyphen is not a delimiter", "Cross-Country, Softball", []string{"Cross Country", "Softball"}},
		{"hyphenated name survives", "Tae-Kwon-Do", []string{"Tae-Kwon-Do"}},
		{"dedupes ignoring case", "Football, football", []string{"Football"}},
		{"extra whitespace", "  Girls   Basketball ,  ", []string{"Girls Basketball"}},
		{"does not split inside words", "Handball", []string{"Handball"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeEmptyIsNotNil(t *testing.T) {
	got := Normalize("   ")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHas(t *testing.T) {
	tags := []string{"Track & Field", "Basketball"}
	assert.True(t, Has(tags, "basketball"))
	assert.True(t, Has(tags, " track & field "))
	assert.False(t, Has(tags, "Track"))
}

func TestDistinct(t *testing.T) {
	got := Distinct([]string{"Football", "basketball"}, []string{"Basketball", "Baseball"}, nil)
	assert.Equal(t, []string{"Baseball", "basketball", "Football"}, got)
}
