// Package router keeps the stack of screens the app navigates between.
// Screens request navigation by returning PushScreenMsg or PopScreenMsg
// from their Update; the root model routes those back here.
package router

import (
	"github.com/npradeep/joule/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg opens a screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen, revealing the one beneath.
type PopScreenMsg struct{}

// Router owns the screen stack. The bottom screen is never popped, so
// Active is non-nil for the router's whole lifetime.
type Router struct {
	screens []screen.Screen
}

// New builds a router with root as its bottom screen.
func New(root screen.Screen) *Router {
	return &Router{screens: []screen.Screen{root}}
}

// Push makes s the active screen and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.screens = append(r.screens, s)
	return s.Init()
}

// Pop discards the active screen. The root screen stays put.
func (r *Router) Pop() tea.Cmd {
	if n := len(r.screens); n > 1 {
		r.screens = r.screens[:n-1]
	}
	return nil
}

// Active returns the screen currently on top.
func (r *Router) Active() screen.Screen {
	return r.screens[len(r.screens)-1]
}

// Depth reports how many screens are stacked, root included.
func (r *Router) Depth() int {
	return len(r.screens)
}

// Update consumes navigation messages and forwards everything else to
// the active screen, storing whatever screen value it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	top := len(r.screens) - 1
	updated, cmd := r.screens[top].Update(msg)
	r.screens[top] = updated
	return cmd
}

// View renders the active screen at the given content size.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
