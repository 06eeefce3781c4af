package hotels

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// IsGranLujo reports whether a category label marks a grand-luxury hotel.
// The match is a case-insensitive substring test for "lujo" anywhere in the
// text; a missing category is never luxury.
func IsGranLujo(categories string) bool {
	if categories == "" {
		return false
	}
	return strings.Contains(strings.ToLower(categories), "lujo")
}

// StarCount extracts the star rating from a category label such as
// "4 estrellas". An empty category yields 0; a first token that is not an
// integer yields -1. Callers must not conflate the two: -1 means the label
// exists but carries no parseable rating.
func StarCount(categories string) int {
	if categories == "" {
		return 0
	}
	first := strings.Split(categories, " ")[0]
	n, err := strconv.Atoi(first)
	if err != nil {
		return -1
	}
	return n
}

// SortByRank returns the hotels ordered for the "por estrellas" views:
// grand-luxury hotels before everything else, then star count descending.
// The sort is stable, so ties keep their input order. The input slice is not
// modified.
func SortByRank(hs []models.Hotel) []models.Hotel {
	out := make([]models.Hotel, len(hs))
	copy(out, hs)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := IsGranLujo(out[i].Categories), IsGranLujo(out[j].Categories)
		if li != lj {
			return li
		}
		return StarCount(out[i].Categories) > StarCount(out[j].Categories)
	})
	return out
}

// FilterByStars keeps hotels whose extracted star count equals stars exactly.
func FilterByStars(hs []models.Hotel, stars int) []models.Hotel {
	out := []models.Hotel{}
	for _, h := range hs {
		if StarCount(h.Categories) == stars {
			out = append(out, h)
		}
	}
	return out
}

// FilterLujo keeps only grand-luxury hotels.
func FilterLujo(hs []models.Hotel) []models.Hotel {
	out := []models.Hotel{}
	for _, h := range hs {
		if IsGranLujo(h.Categories) {
			out = append(out, h)
		}
	}
	return out
}

// FilterByModality keeps hotels whose comma-joined modalities text contains
// modality as a substring. This is deliberately a substring test, not a
// membership test over the parsed list: the source data is queried that way
// and the behavior is preserved, boundary false-positives included.
func FilterByModality(hs []models.Hotel, modality string) []models.Hotel {
	out := []models.Hotel{}
	for _, h := range hs {
		if strings.Contains(h.Modalities, modality) {
			out = append(out, h)
		}
	}
	return out
}

// Provinces returns the distinct province labels across the given hotels, in
// first-seen order.
func Provinces(hs []models.Hotel) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, h := range hs {
		if !seen[h.Provinces] {
			seen[h.Provinces] = true
			out = append(out, h.Provinces)
		}
	}
	return out
}

// Modalities returns the distinct non-blank modality labels across the given
// hotels, in first-seen order.
func Modalities(hs []models.Hotel) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, h := range hs {
		m := h.Modalities
		if strings.TrimSpace(m) == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
