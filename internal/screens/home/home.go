package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/npradeep/joule/internal/audio"
	"github.com/npradeep/joule/internal/router"
	"github.com/npradeep/joule/internal/screen"
	lessonscreen "github.com/npradeep/joule/internal/screens/lesson"
	"github.com/npradeep/joule/internal/screens/stats"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
	"github.com/npradeep/joule/internal/ui/components"
)

// HomeScreen is the topic picker and entry point of the application.
type HomeScreen struct {
	menu        components.Menu
	passedCount int
	topicCount  int
	updateNote  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Progress badges come from the latest
// snapshot; a nil snapshot repo simply shows a bare menu.
func New(reg *topic.Registry, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, sound *audio.Player) *HomeScreen {
	var progress map[string]*store.TopicProgress
	if snapRepo != nil {
		if snap, _ := snapRepo.Latest(context.Background()); snap != nil {
			progress = snap.Data.Topics
		}
	}

	topics := reg.All()
	var passed int
	items := make([]components.MenuItem, 0, len(topics)+2)
	for _, tp := range topics {
		tp := tp
		badge := ""
		if prog := progress[tp.ID]; prog != nil {
			switch {
			case prog.Passed:
				badge = "✓ passed"
				passed++
			case prog.Attempts > 0:
				badge = fmt.Sprintf("best %d/10", prog.BestScore)
			case prog.ResumePhase != "":
				badge = "in progress"
			}
		}
		items = append(items, components.MenuItem{
			Label:       tp.Title,
			Description: tp.Tagline,
			Badge:       badge,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lessonscreen.New(tp, eventRepo, snapRepo, sound),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:       "Progress",
		Description: "Quiz history and best scores",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: stats.New(reg, eventRepo),
				}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:        components.NewMenu(items),
		passedCount: passed,
		topicCount:  len(topics),
	}
}

// SetUpdateNote shows a one-line new-version notice under the banner.
func (h *HomeScreen) SetUpdateNote(latestVersion string) {
	h.updateNote = fmt.Sprintf("New version %s available — run joule update", latestVersion)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
