package domain

import "testing"

func TestGenderRatio(t *testing.T) {
	cases := []struct {
		rate int
		want string
	}{
		{-1, "Unknown"},
		{0, "100% male, 0% female"},
		{1, "87.5% male, 12.5% female"},
		{4, "50% male, 50% female"},
		{8, "0% male, 100% female"},
	}
	for _, c := range cases {
		if got := GenderRatio(c.rate); got != c.want {
			t.Errorf("GenderRatio(%d) = %q, want %q", c.rate, got, c.want)
		}
	}
}

func TestGrowthRateName(t *testing.T) {
	cases := map[int]string{
		1: "Slow",
		4: "Medium Slow",
		6: "Fluctuating",
		0: "Unknown",
		9: "Unknown",
	}
	for id, want := range cases {
		if got := GrowthRateName(id); got != want {
			t.Errorf("GrowthRateName(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestFormatTenths(t *testing.T) {
	cases := map[int]string{
		7:   "0.7",
		10:  "1",
		69:  "6.9",
		125: "12.5",
		0:   "0",
	}
	for in, want := range cases {
		if got := FormatTenths(in); got != want {
			t.Errorf("FormatTenths(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestClampPokemonID(t *testing.T) {
	cases := map[int]int{
		1:   1,
		905: 905,
		906: 1,
		0:   905,
		-1:  904,
	}
	for in, want := range cases {
		if got := ClampPokemonID(in); got != want {
			t.Errorf("ClampPokemonID(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSpeciesDisplayNameFallback(t *testing.T) {
	s := PokemonSpecies{
		Name: "bulbasaur",
		Names: []SpeciesName{
			{Language: LanguageEnglish, Name: "Bulbasaur", Genus: "Seed Pokémon"},
			{Language: LanguageJapanese, Name: "フシギダネ", Genus: "たねポケモン"},
		},
	}

	if got := s.DisplayName(LanguageJapanese); got != "フシギダネ" {
		t.Fatalf("expected japanese name, got %q", got)
	}
	if got := s.DisplayName(5); got != "Bulbasaur" {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := s.Genus(5); got != "Seed Pokémon" {
		t.Fatalf("expected english genus fallback, got %q", got)
	}
	if got := (PokemonSpecies{Name: "missingno"}).DisplayName(LanguageEnglish); got != "missingno" {
		t.Fatalf("expected slug fallback, got %q", got)
	}
}
