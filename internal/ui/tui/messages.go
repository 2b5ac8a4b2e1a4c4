package tui

import (
	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/usecase"
)

type detailLoadedMsg struct {
	ticket usecase.Ticket
	id     int
	detail domain.Detail
	err    error
}

type linkOpenedMsg struct {
	url string
	err error
}
