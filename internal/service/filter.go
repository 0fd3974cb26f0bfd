package service

import (
	"sort"
	"strconv"
	"strings"

	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/sports"
)

// The search and filter functions below run over a fully fetched collection.
// They never modify their input and always return a new, non-nil slice.

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// SearchInductees matches q against name and sport.
func SearchInductees(items []models.Inductee, q string) []models.Inductee {
	q = normalizeQuery(q)
	return filter(items, func(in *models.Inductee) bool {
		return q == "" || matches(q, in.Name, in.Sport)
	})
}

// SearchClasses matches q against the year and description.
func SearchClasses(items []models.InductionClass, q string) []models.InductionClass {
	q = normalizeQuery(q)
	return filter(items, func(c *models.InductionClass) bool {
		return q == "" || matches(q, strconv.Itoa(c.Year), c.Description)
	})
}

// SearchChampionships matches q against title, sport, coach and year.
func SearchChampionships(items []models.Championship, q string) []models.Championship {
	q = normalizeQuery(q)
	return filter(items, func(c *models.Championship) bool {
		return q == "" || matches(q, c.Title, c.Sport, c.Coach, strconv.Itoa(c.Year))
	})
}

// SearchVideos matches q against title, description and class year.
func SearchVideos(items []models.Video, q string) []models.Video {
	q = normalizeQuery(q)
	return filter(items, func(v *models.Video) bool {
		return q == "" || matches(q, v.Title, v.Description, strconv.Itoa(v.ClassYear))
	})
}

// Sort keys for FilterTimeline.
const (
	SortByName           = "name"
	SortByGraduationYear = "graduationYear"
)

// TimelineFilter narrows the public inductee timeline. Zero values match everything.
type TimelineFilter struct {
	ClassYear int    `form:"year"`
	Sport     string `form:"sport"`
	Query     string `form:"q"`
	Sort      string `form:"sort"`
	Desc      bool   `form:"-"`
}

// FilterTimeline filters by class year, sport tag and free text over name, sport
// and years, then sorts stably so ties keep their fetch order. Inductees without a
// graduation year sort last in either direction.
func FilterTimeline(items []models.Inductee, f TimelineFilter) []models.Inductee {
	q := normalizeQuery(f.Query)
	out := filter(items, func(in *models.Inductee) bool {
		if f.ClassYear != 0 && in.ClassYear != f.ClassYear {
			return false
		}
		if f.Sport != "" && !sports.Has(inducteeSports(in), f.Sport) {
			return false
		}
		if q == "" {
			return true
		}
		grad := ""
		if in.GraduationYear != nil {
			grad = strconv.Itoa(*in.GraduationYear)
		}
		return matches(q, in.Name, in.Sport, strconv.Itoa(in.ClassYear), grad)
	})

	switch f.Sort {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
			if f.Desc {
				return a > b
			}
			return a < b
		})
	case SortByGraduationYear:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].GraduationYear, out[j].GraduationYear
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			case f.Desc:
				return *a > *b
			default:
				return *a < *b
			}
		})
	}
	return out
}

// inducteeSports returns the stored tags, deriving them from the raw field for
// documents written before tags existed.
func inducteeSports(in *models.Inductee) []string {
	if len(in.Sports) > 0 {
		return in.Sports
	}
	return sports.Normalize(in.Sport)
}
