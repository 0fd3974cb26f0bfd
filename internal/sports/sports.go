// Package sports turns the free-text sport field into an ordered list of tags.
package sports

import (
	"regexp"
	"sort"
	"strings"
)

// Compound sport names whose "&" or "and" is part of the name.
var compounds = []string{
	"Track & Field",
	"Swimming & Diving",
	"Cross Country",
}

var (
	delimiters       = regexp.MustCompile(`(?i)\s*(?:[,&/;]|\band\b)\s*`)
	spaces           = regexp.MustCompile(`\s+`)
	compoundPatterns = compilePatterns(compounds)
)

// Normalize splits raw on ",", "&", "/", ";" and the word "and". Compound names
// are kept whole and returned in their canonical spelling. Hyphens are not
// delimiters. Duplicates are dropped case-insensitively; the result is never nil.
func Normalize(raw string) []string {
	text := strings.TrimSpace(raw)
	tags := make([]string, 0)
	if text == "" {
		return tags
	}

	placeholders := map[string]string{}
	for i, re := range compoundPatterns {
		key := "\x00" + string(rune('a'+i)) + "\x00"
		if re.MatchString(text) {
			text = re.ReplaceAllLiteralString(text, key)
			placeholders[key] = compounds[i]
		}
	}

	seen := map[string]bool{}
	for _, part := range delimiters.Split(text, -1) {
		part = strings.TrimSpace(spaces.ReplaceAllString(part, " "))
		for key, canonical := range placeholders {
			part = strings.ReplaceAll(part, key, canonical)
		}
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		tags = append(tags, part)
	}
	return tags
}

// compilePatterns matches each compound name with either "&" or "and", in any case
// and with spaces or a hyphen between words.
func compilePatterns(names []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(names))
	for i, name := range names {
		words := strings.Fields(name)
		parts := make([]string, 0, len(words))
		for _, w := range words {
			if w == "&" {
				parts = append(parts, `(?:&|and)`)
				continue
			}
			parts = append(parts, regexp.QuoteMeta(w))
		}
		out[i] = regexp.MustCompile(`(?i)\b` + strings.Join(parts, `[\s-]*`))
	}
	return out
}

// Has reports whether tags contains sport, ignoring case.
func Has(tags []string, sport string) bool {
	sport = strings.TrimSpace(sport)
	for _, t := range tags {
		if strings.EqualFold(t, sport) {
			return true
		}
	}
	return false
}

// Distinct merges tag lists into one sorted list without case-insensitive duplicates.
func Distinct(lists ...[]string) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, tags := range lists {
		for _, t := range tags {
			lower := strings.ToLower(t)
			if t == "" || seen[lower] {
				continue
			}
			seen[lower] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
