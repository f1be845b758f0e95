package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/npradeep/joule/internal/screen"
)

// fakeScreen stands in for a real screen and records lifecycle calls.
type fakeScreen struct {
	name     string
	initRan  bool
	lastMsg  tea.Msg
	popOnKey bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	if s.popOnKey {
		if _, ok := msg.(tea.KeyMsg); ok {
			return s, func() tea.Msg { return PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }

func TestRouter_PushRunsInit(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	lesson := &fakeScreen{name: "disk-seek"}

	r.Push(lesson)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "disk-seek" {
		t.Errorf("active = %q, want disk-seek", r.Active().Title())
	}
	if !lesson.initRan {
		t.Error("Init did not run on the pushed screen")
	}
}

func TestRouter_PopRevealsScreenBeneath(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "stats"})

	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestRouter_RootScreenNeverPops(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active() == nil {
		t.Fatal("active screen is nil after popping the root")
	}
}

func TestRouter_UpdateRoutesNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	lesson := &fakeScreen{name: "thermal-throttle"}

	r.Update(PushScreenMsg{Screen: lesson})
	if r.Active().Title() != "thermal-throttle" {
		t.Fatalf("active = %q after push msg, want thermal-throttle", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active = %q after pop msg, want home", r.Active().Title())
	}
}

func TestRouter_UpdateForwardsToActiveScreenOnly(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	lesson := &fakeScreen{name: "antenna-gain"}
	r.Push(lesson)

	msg := tea.KeyPressMsg{Code: 'n', Text: "n"}
	r.Update(msg)

	if lesson.lastMsg == nil {
		t.Error("active screen did not receive the message")
	}
	if home.lastMsg != nil {
		t.Error("covered screen received a message meant for the active one")
	}
}

func TestRouter_ScreenCmdCanPopItself(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "lesson", popOnKey: true})

	cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("screen returned no command")
	}
	r.Update(cmd())

	if r.Depth() != 1 {
		t.Errorf("depth = %d after screen-initiated pop, want 1", r.Depth())
	}
}
