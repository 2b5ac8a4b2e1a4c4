// Package formtable loads the form allow-list table from YAML.
package formtable

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/ports"
)

//go:embed forms.yaml
var embedded []byte

type yamlTable struct {
	Forms map[int][]string `yaml:"forms"`
}

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.FormTableLoader = (*Loader)(nil)

// LoadFormTable returns the built-in table with entries from overridePath
// (if non-empty) replacing built-in entries for the same id.
func (l *Loader) LoadFormTable(overridePath string) (domain.FormAllowList, error) {
	base, err := Parse(embedded, "forms.yaml")
	if err != nil {
		return nil, err
	}

	overridePath = strings.TrimSpace(overridePath)
	if overridePath == "" {
		return base, nil
	}

	b, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "formtable.load",
			Kind: domain.KindNotFound,
			Path: overridePath,
			Err:  err,
		}
	}

	override, err := Parse(b, overridePath)
	if err != nil {
		return nil, err
	}
	return base.Merge(override), nil
}

// Parse decodes a forms table document.
func Parse(b []byte, path string) (domain.FormAllowList, error) {
	var y yamlTable
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, &domain.OpError{
			Op:   "formtable.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	out := make(domain.FormAllowList, len(y.Forms))
	for id, names := range y.Forms {
		if id < domain.MinPokemonID {
			return nil, &domain.OpError{
				Op:   "formtable.parse",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("invalid pokemon id %d", id),
			}
		}
		clean := make([]string, 0, len(names))
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				clean = append(clean, n)
			}
		}
		out[id] = clean
	}
	return out, nil
}
