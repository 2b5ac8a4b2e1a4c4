package domain

// Pokédex numbering the random picker and TUI navigation wrap around.
const (
	MinPokemonID = 1
	MaxPokemonID = 905
)

// LanguageID is a PokeAPI language identifier.
type LanguageID int

const (
	LanguageJapanese LanguageID = 1 // ja-Hrkt
	LanguageRoomaji  LanguageID = 2 // ja-Roomaji
	LanguageEnglish  LanguageID = 9
)

// SpeciesName is the localized name and genus of a species.
type SpeciesName struct {
	Language LanguageID
	Name     string
	Genus    string
}

type Ability struct {
	Name   string
	Hidden bool
}

type Stat struct {
	Name   string
	Base   int
	Effort int
}

// FlavorText is a Pokédex entry. Version is empty when the game version has
// no name in the requested language.
type FlavorText struct {
	Text    string
	Version string
}

// Variety is a species-level Pokémon (default or alternate form).
type Variety struct {
	ID       int
	Name     string
	FormName string
	Types    []string
}

type PokemonSpecies struct {
	Name          string
	BaseHappiness int
	CaptureRate   int
	GenderRate    int
	HatchCounter  int
	GrowthRateID  int

	Names       []SpeciesName
	EggGroups   []string
	FlavorTexts []FlavorText
	Evolutions  []Species
	Varieties   []Variety
}

// NameIn returns the species name in the given language.
func (s PokemonSpecies) NameIn(lang LanguageID) (SpeciesName, bool) {
	for _, n := range s.Names {
		if n.Language == lang {
			return n, true
		}
	}
	return SpeciesName{}, false
}

// DisplayName returns the name in lang, falling back to English and then the slug.
func (s PokemonSpecies) DisplayName(lang LanguageID) string {
	if n, ok := s.NameIn(lang); ok && n.Name != "" {
		return n.Name
	}
	if n, ok := s.NameIn(LanguageEnglish); ok && n.Name != "" {
		return n.Name
	}
	return s.Name
}

// Genus returns the genus in lang, falling back to English.
func (s PokemonSpecies) Genus(lang LanguageID) string {
	if n, ok := s.NameIn(lang); ok && n.Genus != "" {
		return n.Genus
	}
	if n, ok := s.NameIn(LanguageEnglish); ok {
		return n.Genus
	}
	return ""
}

// Pokemon is one Pokédex record. Height is in decimetres, weight in hectograms.
type Pokemon struct {
	ID             int
	Name           string
	Height         int
	Weight         int
	BaseExperience int

	Types     []string
	Abilities []Ability
	Stats     []Stat
	Species   PokemonSpecies
}

// ClampPokemonID wraps id into [MinPokemonID, MaxPokemonID].
func ClampPokemonID(id int) int {
	span := MaxPokemonID - MinPokemonID + 1
	id = (id - MinPokemonID) % span
	if id < 0 {
		id += span
	}
	return id + MinPokemonID
}
