package ports

import "github.com/aalvaropc/pokedex/internal/domain"

// FormTableLoader loads the form allow-list table, merging an optional override file.
type FormTableLoader interface {
	LoadFormTable(overridePath string) (domain.FormAllowList, error)
}
