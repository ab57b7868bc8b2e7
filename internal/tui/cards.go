package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/dailydeck/internal/model"
)

const (
	cardHeight  = 3
	cardSpacing = 1
)

// cardItem adapts a RoutineItem to bubbles/list.Item
type cardItem struct {
	item  model.RoutineItem
	glyph string
}

func (c cardItem) Title() string       { return c.item.Task }
func (c cardItem) Description() string { return c.item.Description }
func (c cardItem) FilterValue() string { return c.item.Task + " " + c.item.Time }

// compactTime drops the space between clock and meridiem: "6:00 AM" -> "6:00AM".
func compactTime(t string) string { return strings.Replace(t, " ", "", 1) }

// cardNumber pads the id like a card index: "7" -> "NO. 007".
func cardNumber(id string) string {
	if len(id) < 3 {
		id = strings.Repeat("0", 3-len(id)) + id
	}
	return "NO. " + id
}

// Card delegate: three lines per routine item, one blank line between cards.
type cardDelegate struct{}

func (d cardDelegate) Height() int                               { return cardHeight }
func (d cardDelegate) Spacing() int                              { return cardSpacing }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, ok := item.(cardItem)
	if !ok {
		return
	}
	width := m.Width() - 2
	if width < 20 {
		width = 20
	}

	prefix := "  "
	name := titleStyle.Render(c.glyph + " " + c.item.Task)
	if index == m.Index() {
		prefix = selectedStyle.Render("▌ ")
		name = selectedStyle.Render(c.glyph+" ") + titleStyle.Underline(true).Render(c.item.Task)
	}

	clock := mutedStyle.Render("TIME ") + timeStyle.Render(compactTime(c.item.Time))
	header := spread(name, clock, width)

	lore := ansi.Truncate(c.item.Description, width, "…")
	footer := spread(mutedStyle.Render(cardNumber(c.item.ID)), accentStyle.Render("EDIT"), width)

	fmt.Fprint(w, strings.Join([]string{
		prefix + header,
		prefix + loreStyle.Render(lore),
		prefix + footer,
	}, "\n"))
}

// spread places left and right at opposite ends of width columns.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = ansi.Truncate(left, width-lipgloss.Width(right)-1, "…")
		gap = max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return left + strings.Repeat(" ", gap) + right
}
