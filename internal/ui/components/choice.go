package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/npradeep/joule/internal/ui/theme"
)

// ChoiceOption is one selectable answer, addressed by id.
type ChoiceOption struct {
	ID    string
	Label string
}

// Choice is a multiple-choice selector. Options carry stable ids so
// the caller compares answers by id, never by position. After Reveal
// the component shows correct/incorrect coloring and stops accepting
// input.
type Choice struct {
	Prompt   string
	Options  []ChoiceOption
	Selected int

	revealed  bool
	chosenID  string
	correctID string
	locked    bool
}

// NewChoice creates a choice selector.
func NewChoice(prompt string, options []ChoiceOption) Choice {
	return Choice{Prompt: prompt, Options: options}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Enter locks in the selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		if c.Selected >= 0 && c.Selected < len(c.Options) {
			c.chosenID = c.Options[c.Selected].ID
		}
	}

	return c, nil
}

// ChosenID returns the locked-in option id, or "".
func (c Choice) ChosenID() string {
	return c.chosenID
}

// HasChosen reports whether a selection was made.
func (c Choice) HasChosen() bool {
	return c.chosenID != ""
}

// Select moves the cursor to the option with the given id, used when
// restoring a prior answer.
func (c *Choice) Select(id string) {
	for i, o := range c.Options {
		if o.ID == id {
			c.Selected = i
			c.chosenID = id
			return
		}
	}
}

// Reveal locks the component and shows the correct answer.
func (c *Choice) Reveal(correctID string) {
	c.revealed = true
	c.correctID = correctID
	c.locked = true
}

// View renders the choice list.
func (c Choice) View() string {
	var b strings.Builder
	if c.Prompt != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt))
		b.WriteString("\n\n")
	}

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.revealed {
			prefix = "▸ "
		}
		marker := " "
		if opt.ID == c.chosenID {
			marker = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, strings.ToUpper(opt.ID), opt.Label)

		var style lipgloss.Style
		switch {
		case c.revealed && opt.ID == c.correctID:
			style = theme.Correct
		case c.revealed && opt.ID == c.chosenID:
			style = theme.Incorrect
		case c.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		case opt.ID == c.chosenID:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect reports whether the chosen id matches the revealed answer.
func (c Choice) IsCorrect() bool {
	return c.revealed && c.chosenID == c.correctID
}
