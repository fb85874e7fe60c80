package tui

import (
	"context"
	"fmt"
	"time"

	"cardwall/internal/cards"
	"cardwall/internal/store"
	"cardwall/internal/viewport"
	"cardwall/ui/tui/state"
	"cardwall/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// DefaultWideColumns is the terminal-column threshold standing in for the
// 600px predicate of the markup pass.
const DefaultWideColumns = 96

// Config contains the tunable parameters of the TUI.
type Config struct {
	// WideThreshold is the minimum terminal width, in columns, for the
	// wide-viewport predicate to read true.
	WideThreshold int
	// LoadTimeout bounds the initial post load.
	LoadTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		WideThreshold: DefaultWideColumns,
		LoadTimeout:   5 * time.Second,
	}
}

// WithWideThreshold returns a copy of the config with a modified threshold.
func (c Config) WithWideThreshold(w int) Config {
	c.WideThreshold = w
	return c
}

// MainModel is the Bubble Tea Model acting as the Controller.
type MainModel struct {
	repo        store.PostRepository
	signal      *viewport.Signal
	config      Config
	state       state.AppState
	spinner     spinner.Model
	cardCursor  int
	animCursor  float64
	velocity    float64 // Physics velocity
	spring      harmonica.Spring
	unsubscribe func()
	mouseX      int
	mouseY      int
	quitting    bool
	width       int
	height      int
}

// Messages
type AnimateMsg time.Time
type PostsLoadedMsg struct {
	Posts []cards.Item
	Err   error
}

func InitialModel(repo store.PostRepository, cfg Config) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Physics spring for the card cursor animation
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	signal := viewport.NewSignal(viewport.DefaultConfig().WithThreshold(cfg.WideThreshold))

	return MainModel{
		repo:    repo,
		signal:  signal,
		config:  cfg,
		spinner: s,
		spring:  spring,
		state: state.AppState{
			CurrentPage: state.PageCards,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()

	// Scoped acquisition of the viewport predicate: immediate evaluation
	// now (the default false), updates on every threshold crossing, and
	// release on quit.
	m.unsubscribe = m.signal.Subscribe(func(wide bool) {
		m.state.Wide = wide
	})

	return tea.Batch(
		m.spinner.Tick,
		loadPostsCmd(m.repo, m.config.LoadTimeout),
		animateCmd(),
	)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func loadPostsCmd(repo store.PostRepository, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		posts, err := repo.ListPosts(ctx)
		return PostsLoadedMsg{Posts: posts, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case PostsLoadedMsg:
		return m.handlePostsLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.teardown()
		return m, tea.Quit
	}

	if m.state.CurrentPage == state.PageCards {
		switch msg.String() {
		case "up", "k":
			if m.cardCursor > 0 {
				m.cardCursor--
			}
		case "down", "j":
			if m.cardCursor < len(m.state.Posts)-1 {
				m.cardCursor++
			}
		case "a":
			m.state.CurrentPage = state.PageAbout
		}
		return m, nil
	}

	if msg.String() == "b" || msg.String() == "esc" || msg.String() == "backspace" {
		m.state.CurrentPage = state.PageCards
	}

	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.cardCursor), v)
	m.velocity = v
	return m, animateCmd()
}

// handleWindowSizeMsg is where the live pass begins: the first size report
// activates the viewport signal, and every report feeds the predicate. The
// subscription installed in Init picks up any threshold crossing.
func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	if !m.signal.Active() {
		m.signal.Activate()
	}
	m.signal.Set(msg.Width)
	m.state.Activated = m.signal.Active()

	return m, nil
}

func (m *MainModel) handlePostsLoadedMsg(msg PostsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state.Err = msg.Err
		return m, nil
	}

	m.state.Posts = cards.Annotate(msg.Posts)
	m.state.Loaded = true
	m.state.LoadedAt = time.Now()
	if m.cardCursor >= len(m.state.Posts) {
		m.cardCursor = 0
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if msg.Action == tea.MouseActionRelease && m.state.CurrentPage == state.PageCards {
		for i, post := range m.state.Posts {
			if zone.Get(fmt.Sprintf("card_%d_%s", i, post.Title)).InBounds(msg) {
				m.cardCursor = i
				return m, nil
			}
		}
	}
	return m, nil
}

func (m *MainModel) teardown() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	props := views.ViewProps{
		Width:       m.width,
		Height:      m.height,
		MouseX:      m.mouseX,
		MouseY:      m.mouseY,
		CardCursor:  m.cardCursor,
		AnimCursor:  m.animCursor,
		SpinnerView: m.spinner.View(),
	}

	switch m.state.CurrentPage {
	case state.PageAbout:
		return views.AboutView{}.Render(m.state, props)
	default:
		return views.CardListView{}.Render(m.state, props)
	}
}

func Start(repo store.PostRepository, cfg Config) error {
	m := InitialModel(repo, cfg)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
