package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/npradeep/joule/internal/audio"
	"github.com/npradeep/joule/internal/router"
	"github.com/npradeep/joule/internal/screen"
	"github.com/npradeep/joule/internal/screens/home"
	"github.com/npradeep/joule/internal/screens/lesson"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
	"github.com/npradeep/joule/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Registry  *topic.Registry
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Sound     *audio.Player

	// LatestVersion, when non-empty, surfaces an update notice on the
	// home screen.
	LatestVersion string

	// StartTopic, when non-empty, opens that topic's lesson immediately
	// with the home screen beneath it.
	StartTopic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	width   int
	height  int
	initCmd tea.Cmd
}

// newAppModel creates an AppModel with the home screen on the stack.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Registry, opts.EventRepo, opts.SnapRepo, opts.Sound)
	if opts.LatestVersion != "" {
		homeScreen.SetUpdateNote(opts.LatestVersion)
	}
	r := router.New(homeScreen)

	var initCmd tea.Cmd
	if opts.StartTopic != "" {
		if tp, ok := opts.Registry.Get(opts.StartTopic); ok {
			initCmd = r.Push(lesson.New(tp, opts.EventRepo, opts.SnapRepo, opts.Sound))
		}
	}
	return AppModel{
		router:  r,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that run their own esc flow get the key; anything
			// else pops.
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	badge := ""
	if bp, ok := active.(screen.BadgeProvider); ok {
		badge = bp.Badge()
	}

	header := layout.RenderHeader(title, badge, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
