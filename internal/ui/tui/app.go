package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/pokedex/internal/app/markdown"
	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/usecase"
)

// header title line, body border, help line
const chromeHeight = 4

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	log   *slog.Logger

	gate     *usecase.Gate
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.TerminalRenderer

	ready  bool
	width  int
	height int

	// requested is the id of the in-flight or last successful request; 0 means random.
	requested int
	loading   bool
	detail    domain.Detail
}

func Run(deps Deps) error {
	m := newModel(deps)
	defer m.gate.Stop()

	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	t := DefaultTheme()
	sp.Style = t.Spinner

	return model{
		theme:     t,
		deps:      deps,
		keys:      defaultKeys(),
		log:       log.With("component", "tui"),
		gate:      usecase.NewGate(),
		viewport:  viewport.New(0, 0),
		spinner:   sp,
		requested: deps.InitialID,
		loading:   true,
		detail:    domain.EmptyDetail(),
	}
}

func (m model) Init() tea.Cmd {
	ticket, ctx := m.gate.Begin(context.Background())
	return tea.Batch(m.spinner.Tick, cmdLoadDetail(ctx, m.deps, ticket, m.requested))
}

// load starts a request for id and clears the current record until it answers.
func (m *model) load(id int) tea.Cmd {
	wasLoading := m.loading

	ticket, ctx := m.gate.Begin(context.Background())
	m.requested = id
	m.loading = true
	m.detail = domain.EmptyDetail()
	m.viewport.SetContent("")

	m.log.Info("fetch.requested", "id", id, "ticket", uint64(ticket))

	cmd := cmdLoadDetail(ctx, m.deps, ticket, id)
	if wasLoading {
		return cmd
	}
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case detailLoadedMsg:
		if !m.gate.Accept(msg.ticket) {
			m.log.Debug("fetch.stale_discarded", "id", msg.id, "ticket", uint64(msg.ticket))
			return m, nil
		}
		m.gate.Finish(msg.ticket)
		m.loading = false

		if msg.err != nil {
			m.log.Error("fetch.failed", "id", msg.id, "err", msg.err)
			m.detail = domain.EmptyDetail()
			m.viewport.SetContent("")
			return m, nil
		}

		m.detail = msg.detail
		m.requested = msg.detail.ID
		m.refresh()
		m.viewport.GotoTop()
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.log.Warn("link.open_failed", "url", msg.url, "err", msg.err)
		} else {
			m.log.Info("link.opened", "url", msg.url)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.gate.Stop()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			cmd := m.load(domain.ClampPokemonID(m.requested + 1))
			return m, cmd

		case key.Matches(msg, m.keys.Prev):
			cmd := m.load(domain.ClampPokemonID(m.requested - 1))
			return m, cmd

		case key.Matches(msg, m.keys.Random):
			cmd := m.load(0)
			return m, cmd

		case key.Matches(msg, m.keys.Official):
			return m, m.open(usecase.OfficialLinkTitle)

		case key.Matches(msg, m.keys.Bulbapedia):
			return m, m.open(usecase.BulbapediaLinkTitle)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) open(title string) tea.Cmd {
	url, ok := linkURL(m.detail, title)
	if !ok {
		return nil
	}
	return cmdOpenLink(m.deps, url)
}

func (m *model) resize() {
	bodyWidth := m.width - m.theme.Body.GetHorizontalFrameSize()
	bodyHeight := m.height - chromeHeight
	if bodyWidth < 0 {
		bodyWidth = 0
	}
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	m.viewport.Width = bodyWidth
	m.viewport.Height = bodyHeight
	m.ready = true

	if m.renderer == nil || m.renderer.Width() != bodyWidth {
		r, err := markdown.NewTerminalRenderer(m.deps.Style, bodyWidth)
		if err != nil {
			m.log.Warn("render.setup_failed", "style", m.deps.Style, "err", err)
			r = nil
		}
		m.renderer = r
	}
	m.refresh()
}

func (m *model) refresh() {
	if m.detail.IsEmpty() {
		m.viewport.SetContent("")
		return
	}
	out, err := renderDetail(m.renderer, m.detail)
	if err != nil {
		m.log.Warn("render.failed", "id", m.detail.ID, "err", err)
	}
	m.viewport.SetContent(out)
}

func (m model) View() string {
	if !m.ready {
		return m.spinner.View() + " Loading…"
	}

	title := m.detail.Title
	if m.loading {
		title = m.spinner.View() + " " + title
	}
	header := m.theme.Title.Render(clampString(title, m.width-2))
	body := m.theme.Body.Render(m.viewport.View())
	help := m.theme.Help.Render(clampString(helpLine(m.keys), m.width-2))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
