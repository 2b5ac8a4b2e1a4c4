package domain

import "time"

// Config represents the resolved Pokédex configuration.
type Config struct {
	Language  LanguageID
	Endpoint  string
	Timeout   time.Duration
	FormsFile string
	Theme     string
	Cache     CacheConfig
	URLs      URLTemplates
}

type CacheConfig struct {
	Enabled bool
	Dir     string
	TTL     time.Duration
}

// URLTemplates hold {{var}} templates for artwork and external links.
//
// Artwork receives {{number}} (zero-padded id, optionally with a _fN form suffix).
// Official receives {{species}}. Bulbapedia receives {{english_name}}.
type URLTemplates struct {
	Artwork    string
	Official   string
	Bulbapedia string
}

const DefaultEndpoint = "https://beta.pokeapi.co/graphql/v1beta"

// DefaultURLTemplates returns the pokemon.com and Bulbapedia URL layouts.
func DefaultURLTemplates() URLTemplates {
	return URLTemplates{
		Artwork:    "https://assets.pokemon.com/assets/cms2/img/pokedex/detail/{{number}}.png",
		Official:   "https://www.pokemon.com/us/pokedex/{{species}}",
		Bulbapedia: "https://bulbapedia.bulbagarden.net/wiki/{{english_name}}_(Pok%C3%A9mon)",
	}
}

// DefaultConfig provides sane defaults if pokedex.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Language: LanguageEnglish,
		Endpoint: DefaultEndpoint,
		Timeout:  15 * time.Second,
		Theme:    "auto",
		Cache: CacheConfig{
			Enabled: false,
			TTL:     7 * 24 * time.Hour,
		},
		URLs: DefaultURLTemplates(),
	}
}
