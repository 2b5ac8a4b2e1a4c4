// Package config resolves the Pokédex configuration.
//
// Precedence (highest to lowest): flags > POKEDEX_ env vars > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/aalvaropc/pokedex/internal/app/template"
	"github.com/aalvaropc/pokedex/internal/domain"
)

const envPrefix = "POKEDEX_"

// Options controls where configuration is read from.
type Options struct {
	// File is an explicit config path (--config). Empty means search.
	File string
	// WorkDir is where the upward search starts. Empty means the process CWD.
	WorkDir string
	// Flags are applied last; only changed flags override.
	Flags *pflag.FlagSet
	// SkipUserFile disables the per-user config fallback (useful for tests).
	SkipUserFile bool
}

// Result is the resolved configuration and the file it came from, if any.
type Result struct {
	Config domain.Config
	File   string
}

// Load resolves configuration from defaults, file, env and flags.
func Load(opts Options) (Result, error) {
	k := koanf.New(".")

	def := domain.DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"language":        int(def.Language),
		"endpoint":        def.Endpoint,
		"timeout":         def.Timeout.String(),
		"forms_file":      "",
		"theme":           def.Theme,
		"cache.enabled":   def.Cache.Enabled,
		"cache.dir":       filepath.Join(StateDir(), "records"),
		"cache.ttl":       def.Cache.TTL.String(),
		"urls.artwork":    def.URLs.Artwork,
		"urls.official":   def.URLs.Official,
		"urls.bulbapedia": def.URLs.Bulbapedia,
	}, "."), nil); err != nil {
		return Result{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := resolveFile(opts)
	if err != nil {
		return Result{}, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Result{}, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Result{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagKey(opts.Flags)), nil); err != nil {
			return Result{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return Result{}, &domain.OpError{
			Op:   "config.decode",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := mapConfig(fc, baseDir(path))
	if err != nil {
		return Result{}, &domain.OpError{
			Op:   "config.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return Result{Config: cfg, File: path}, nil
}

// resolveFile picks the config file: explicit > upward search > user config dir.
func resolveFile(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindNotFound,
				Path: opts.File,
				Err:  err,
			}
		}
		return opts.File, nil
	}

	start := opts.WorkDir
	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		}
	}
	if start != "" {
		p, err := FindFile(start)
		if err == nil {
			return p, nil
		}
		if !domain.IsKind(err, domain.KindNotFound) {
			return "", err
		}
	}

	if opts.SkipUserFile {
		return "", nil
	}
	return UserConfigFile(), nil
}

// envKey maps POKEDEX_CACHE_ENABLED to cache.enabled and POKEDEX_FORMS_FILE to forms_file.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"cache_", "urls_"} {
		if strings.HasPrefix(key, section) {
			return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(key, section)
		}
	}
	return key
}

// flagKey maps changed CLI flags onto config keys. Flags with no config key are ignored.
func flagKey(flags *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		switch f.Name {
		case "language", "endpoint", "theme":
			return f.Name, posflag.FlagVal(flags, f)
		case "timeout":
			return "timeout", f.Value.String()
		case "forms-file":
			return "forms_file", f.Value.String()
		case "no-cache":
			if v, _ := flags.GetBool("no-cache"); v {
				return "cache.enabled", false
			}
			return "", nil
		case "cache":
			return "cache.enabled", posflag.FlagVal(flags, f)
		default:
			return "", nil
		}
	}
}

func mapConfig(fc fileConfig, base string) (domain.Config, error) {
	cfg := domain.Config{
		Language:  domain.LanguageID(fc.Language),
		Endpoint:  strings.TrimSpace(fc.Endpoint),
		FormsFile: resolvePath(strings.TrimSpace(fc.FormsFile), base),
		Theme:     strings.ToLower(strings.TrimSpace(fc.Theme)),
		Cache: domain.CacheConfig{
			Enabled: fc.Cache.Enabled,
			Dir:     resolvePath(strings.TrimSpace(fc.Cache.Dir), base),
		},
		URLs: domain.URLTemplates{
			Artwork:    fc.URLs.Artwork,
			Official:   fc.URLs.Official,
			Bulbapedia: fc.URLs.Bulbapedia,
		},
	}

	if cfg.Language <= 0 {
		return cfg, fmt.Errorf("language must be a positive PokeAPI language id, got %d", fc.Language)
	}
	if cfg.Endpoint == "" {
		return cfg, errors.New("endpoint is empty")
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(fc.Timeout))
	if err != nil || timeout <= 0 {
		return cfg, fmt.Errorf("invalid timeout %q", fc.Timeout)
	}
	cfg.Timeout = timeout

	ttl, err := time.ParseDuration(strings.TrimSpace(fc.Cache.TTL))
	if err != nil || ttl < 0 {
		return cfg, fmt.Errorf("invalid cache.ttl %q", fc.Cache.TTL)
	}
	cfg.Cache.TTL = ttl

	if err := template.Check(cfg.URLs.Artwork, "number"); err != nil {
		return cfg, fmt.Errorf("urls.artwork: %w", err)
	}
	if err := template.Check(cfg.URLs.Official, "species"); err != nil {
		return cfg, fmt.Errorf("urls.official: %w", err)
	}
	if err := template.Check(cfg.URLs.Bulbapedia, "english_name"); err != nil {
		return cfg, fmt.Errorf("urls.bulbapedia: %w", err)
	}

	return cfg, nil
}

func baseDir(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return filepath.Dir(abs)
	}
	return filepath.Dir(path)
}

// resolvePath resolves a path relative to baseDir if it's not absolute.
func resolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
