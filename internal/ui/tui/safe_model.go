package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/pokedex/internal/domain"
)

const panicText = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r, "msg_type", fmt.Sprintf("%T", msg), "id", s.m.requested)

			// Drop the record and any in-flight fetch; the user can navigate again.
			if s.m.gate != nil {
				s.m.gate.Stop()
			}
			s.m.loading = false
			s.m.detail = domain.EmptyDetail()
			s.m.viewport.SetContent(panicText)
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r, "id", s.m.detail.ID)
			out = panicText
		}
	}()
	return s.m.View()
}

func (s safeModel) logPanic(where string, r any, attrs ...any) {
	args := append([]any{
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}, attrs...)
	s.log.Error("panic.recovered", args...)
}

var _ tea.Model = (*safeModel)(nil)
