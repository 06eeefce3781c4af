package hotels

import (
	"testing"

	"github.com/vanesatov/HotelesApi/internal/models"
)

func TestStarCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"4 estrellas", 4},
		{"1 estrella", 1},
		{"cinco estrellas", -1},
		{"Gran Lujo", -1},
		{"3", 3},
	}
	for _, c := range cases {
		if got := StarCount(c.in); got != c.want {
			t.Fatalf("StarCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIsGranLujo(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"Gran Lujo", true},
		{"GRAN LUJO", true},
		{"gran lujo", true},
		{"4 estrellas", false},
	}
	for _, c := range cases {
		if got := IsGranLujo(c.in); got != c.want {
			t.Fatalf("IsGranLujo(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSortByRank(t *testing.T) {
	hs := []models.Hotel{
		{ID: "a", Categories: "2 estrellas"},
		{ID: "b", Categories: "Gran Lujo"},
		{ID: "c", Categories: "5 estrellas"},
		{ID: "d", Categories: ""},
		{ID: "e", Categories: "Gran Lujo"},
		{ID: "f", Categories: "sin categoria"},
	}
	got := SortByRank(hs)

	// every luxury hotel comes before every non-luxury one, and within each
	// group star counts are non-increasing
	lastLujo := false
	for i, h := range got {
		lujo := IsGranLujo(h.Categories)
		if i > 0 {
			if lujo && !lastLujo {
				t.Fatalf("luxury hotel %s sorted after non-luxury at %d: %v", h.ID, i, ids(got))
			}
			if lujo == lastLujo && StarCount(got[i-1].Categories) < StarCount(h.Categories) {
				t.Fatalf("star counts increase at %d: %v", i, ids(got))
			}
		}
		lastLujo = lujo
	}

	// ties keep input order (stable sort): b before e
	if indexOf(got, "b") > indexOf(got, "e") {
		t.Fatalf("expected stable order for equal luxury hotels: %v", ids(got))
	}

	// input untouched
	if hs[0].ID != "a" || hs[5].ID != "f" {
		t.Fatalf("input slice was reordered: %v", ids(hs))
	}
}

func TestFilterCommutes(t *testing.T) {
	hs := []models.Hotel{
		{ID: "a", Provinces: "Almeria", Modalities: "Playa,Ciudad", Categories: "3 estrellas"},
		{ID: "b", Provinces: "Almeria", Modalities: "Rural", Categories: "Gran Lujo"},
		{ID: "c", Provinces: "Granada", Modalities: "Playa", Categories: "5 estrellas"},
		{ID: "d", Provinces: "Almeria", Modalities: "Playa", Categories: "1 estrella"},
	}

	byProvince := func(hs []models.Hotel) []models.Hotel {
		out := []models.Hotel{}
		for _, h := range hs {
			if h.Provinces == "Almeria" {
				out = append(out, h)
			}
		}
		return out
	}

	p1 := SortByRank(FilterByModality(byProvince(hs), "Playa"))
	p2 := SortByRank(byProvince(FilterByModality(hs, "Playa")))
	if len(p1) != len(p2) {
		t.Fatalf("filter order changed result size: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i].ID != p2[i].ID {
			t.Fatalf("filter order changed result: %v vs %v", ids(p1), ids(p2))
		}
	}
}

func TestFilterByModalitySubstring(t *testing.T) {
	hs := []models.Hotel{
		{ID: "a", Modalities: "Playa,Ciudad"},
		{ID: "b", Modalities: "Rural"},
		{ID: "c", Modalities: ""},
	}
	got := FilterByModality(hs, "Ciudad")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected result: %v", ids(got))
	}
	// substring semantics: a fragment spanning the comma still matches
	got = FilterByModality(hs, "ya,Ciu")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected substring semantics over the joined field: %v", ids(got))
	}
}

func TestFilterByStars(t *testing.T) {
	hs := []models.Hotel{
		{ID: "a", Categories: "4 estrellas"},
		{ID: "b", Categories: "sin numero"},
		{ID: "c", Categories: ""},
		{ID: "d", Categories: "4 estrellas"},
	}
	if got := FilterByStars(hs, 4); len(got) != 2 {
		t.Fatalf("expected 2 four-star hotels, got %v", ids(got))
	}
	// -1 (unparseable) and 0 (absent) are distinct buckets
	if got := FilterByStars(hs, -1); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only the unparseable category: %v", ids(got))
	}
	if got := FilterByStars(hs, 0); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("expected only the absent category: %v", ids(got))
	}
}

func TestProvincesAndModalitiesDistinct(t *testing.T) {
	hs := []models.Hotel{
		{ID: "a", Provinces: "Almeria", Modalities: "Playa"},
		{ID: "b", Provinces: "Granada", Modalities: " "},
		{ID: "c", Provinces: "Almeria", Modalities: "Playa"},
		{ID: "d", Provinces: "Granada", Modalities: "Rural"},
	}
	ps := Provinces(hs)
	if len(ps) != 2 || ps[0] != "Almeria" || ps[1] != "Granada" {
		t.Fatalf("unexpected provinces: %v", ps)
	}
	ms := Modalities(hs)
	if len(ms) != 2 || ms[0] != "Playa" || ms[1] != "Rural" {
		t.Fatalf("unexpected modalities: %v", ms)
	}
}

func ids(hs []models.Hotel) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func indexOf(hs []models.Hotel, id string) int {
	for i, h := range hs {
		if h.ID == id {
			return i
		}
	}
	return -1
}
