package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/aalvaropc/pokedex/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("language", 9, "")
	fs.String("theme", "auto", "")
	fs.Duration("timeout", 15*time.Second, "")
	fs.Bool("no-cache", false, "")
	fs.Bool("debug", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	res, err := Load(Options{WorkDir: t.TempDir(), SkipUserFile: true})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if res.File != "" {
		t.Fatalf("expected no config file, got %q", res.File)
	}

	cfg := res.Config
	def := domain.DefaultConfig()
	if cfg.Language != domain.LanguageEnglish || cfg.Endpoint != def.Endpoint || cfg.Timeout != def.Timeout {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Cache.Enabled || cfg.Cache.TTL != def.Cache.TTL || cfg.Cache.Dir == "" {
		t.Fatalf("unexpected cache defaults: %+v", cfg.Cache)
	}
	if cfg.URLs != def.URLs {
		t.Fatalf("unexpected url defaults: %+v", cfg.URLs)
	}
}

func TestLoad_FileFoundUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pokedex.yaml", `
language: 1
theme: dark
forms_file: forms.yaml
cache:
  enabled: true
  dir: cache
  ttl: 1h
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := Load(Options{WorkDir: nested, SkipUserFile: true})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	cfg := res.Config
	if cfg.Language != domain.LanguageJapanese || cfg.Theme != "dark" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != time.Hour {
		t.Fatalf("unexpected cache config: %+v", cfg.Cache)
	}

	wantRoot, _ := filepath.Abs(root)
	if cfg.Cache.Dir != filepath.Join(wantRoot, "cache") {
		t.Fatalf("expected cache dir relative to config file, got %q", cfg.Cache.Dir)
	}
	if cfg.FormsFile != filepath.Join(wantRoot, "forms.yaml") {
		t.Fatalf("expected forms file relative to config file, got %q", cfg.FormsFile)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "custom.yaml", "language: 1\ntheme: dark\ntimeout: 5s\ncache:\n  enabled: true\n")

	t.Setenv("POKEDEX_LANGUAGE", "5")
	t.Setenv("POKEDEX_THEME", "light")
	t.Setenv("POKEDEX_CACHE_TTL", "2h")

	fs := testFlags()
	if err := fs.Parse([]string{"--language", "7", "--no-cache"}); err != nil {
		t.Fatal(err)
	}

	res, err := Load(Options{File: p, Flags: fs, SkipUserFile: true})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	cfg := res.Config
	if cfg.Language != 7 {
		t.Fatalf("expected flag to win for language, got %d", cfg.Language)
	}
	if cfg.Theme != "light" {
		t.Fatalf("expected env to win over file for theme, got %q", cfg.Theme)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected file timeout, got %s", cfg.Timeout)
	}
	if cfg.Cache.TTL != 2*time.Hour {
		t.Fatalf("expected env cache ttl, got %s", cfg.Cache.TTL)
	}
	if cfg.Cache.Enabled {
		t.Fatalf("expected --no-cache to disable cache")
	}
	if res.File != p {
		t.Fatalf("expected file %q, got %q", p, res.File)
	}
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "pokedex.yaml", "language: 1\n")

	fs := testFlags()
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	res, err := Load(Options{File: p, Flags: fs, SkipUserFile: true})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if res.Config.Language != domain.LanguageJapanese {
		t.Fatalf("expected file language, got %d", res.Config.Language)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":     "language: [",
		"bad language": "language: 0\n",
		"bad timeout":  "timeout: soon\n",
		"bad ttl":      "cache:\n  ttl: -1h\n",
		"bad template": "urls:\n  official: \"https://x/{{name}}\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "pokedex.yaml", content)
			_, err := Load(Options{File: p, SkipUserFile: true})
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid config, got %v", err)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "nope.yaml"), SkipUserFile: true})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"POKEDEX_LANGUAGE":      "language",
		"POKEDEX_FORMS_FILE":    "forms_file",
		"POKEDEX_CACHE_ENABLED": "cache.enabled",
		"POKEDEX_URLS_ARTWORK":  "urls.artwork",
		"POKEDEX_CACHE_DIR":     "cache.dir",
		"POKEDEX_ENDPOINT":      "endpoint",
	}
	for in, want := range cases {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindFile_NotFound(t *testing.T) {
	_, err := FindFile(t.TempDir())
	if err == nil {
		t.Skip("a pokedex.yaml exists above the temp dir")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
