package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/ports"
)

// DetailLoader fetches and builds the detail for one id; id 0 picks a random one.
type DetailLoader interface {
	Execute(ctx context.Context, id int, lang domain.LanguageID) (domain.Detail, error)
}

type Deps struct {
	Loader DetailLoader
	Opener ports.LinkOpener

	Language  domain.LanguageID
	Style     string
	InitialID int

	Logger *slog.Logger
	Debug  bool
}
