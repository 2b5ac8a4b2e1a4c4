package config

// fileConfig is the koanf view of pokedex.yaml.
type fileConfig struct {
	Language  int        `koanf:"language"`
	Endpoint  string     `koanf:"endpoint"`
	Timeout   string     `koanf:"timeout"`
	FormsFile string     `koanf:"forms_file"`
	Theme     string     `koanf:"theme"`
	Cache     cacheBlock `koanf:"cache"`
	URLs      urlBlock   `koanf:"urls"`
}

type cacheBlock struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	TTL     string `koanf:"ttl"`
}

type urlBlock struct {
	Artwork    string `koanf:"artwork"`
	Official   string `koanf:"official"`
	Bulbapedia string `koanf:"bulbapedia"`
}
