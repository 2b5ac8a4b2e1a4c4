package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/usecase"
)

func cmdLoadDetail(ctx context.Context, deps Deps, ticket usecase.Ticket, id int) tea.Cmd {
	return func() tea.Msg {
		if deps.Loader == nil {
			return detailLoadedMsg{ticket: ticket, id: id, detail: domain.EmptyDetail(), err: errors.New("Loader is nil")}
		}

		d, err := deps.Loader.Execute(ctx, id, deps.Language)
		return detailLoadedMsg{ticket: ticket, id: id, detail: d, err: err}
	}
}

func cmdOpenLink(deps Deps, url string) tea.Cmd {
	return func() tea.Msg {
		if deps.Opener == nil {
			return linkOpenedMsg{url: url, err: errors.New("Opener is nil")}
		}
		return linkOpenedMsg{url: url, err: deps.Opener.Open(url)}
	}
}
