// Package tui is the interactive Daily Deck screen.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"

	"github.com/idilsaglam/dailydeck/internal/anim"
	"github.com/idilsaglam/dailydeck/internal/assets"
	"github.com/idilsaglam/dailydeck/internal/model"
	"github.com/idilsaglam/dailydeck/internal/store"
)

// headerHeight is the number of rows above the card list.
const headerHeight = 3

// Options wires the screen to its collaborators.
type Options struct {
	Store  *store.Store
	Logger *log.Logger
	Spring anim.SpringConfig
	Theme  string
	Mouse  bool
	// Remeasure makes the modal origin follow terminal resizes.
	Remeasure bool
	// Width and Height are the initial viewport, normally the terminal size.
	Width, Height int
	// Now is the clock used for the "next up" line.
	Now func() time.Time
}

type tickMsg struct{ at time.Time }

// afterClose is what runs once the modal has fully shrunk.
type afterClose struct {
	done <-chan struct{}
	edit *model.RoutineItem
}

type keyMap struct {
	open, add, edit, quit         key.Binding
	close, delete, confirm, abort key.Binding
	next, prev, save              key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		open:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		add:     key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "transfer")),
		confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		abort:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	}
}

// Model is the Bubble Tea model of the deck screen.
type Model struct {
	store   *store.Store
	anim    *anim.Animator
	catalog *assets.Catalog
	log     *log.Logger
	now     func() time.Time

	list list.Model
	keys keyMap

	form       taskForm
	formOpen   bool
	confirming bool
	pending    *afterClose

	ticking   bool
	lastTick  time.Time
	remeasure bool

	width, height int
}

// New builds the screen. The animator's viewport is the one in opts.
func New(opts Options) Model {
	if opts.Store == nil {
		opts.Store = store.NewSeeded()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Spring == (anim.SpringConfig{}) {
		opts.Spring = anim.DefaultSpring()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	applyTheme(opts.Theme)

	keys := newKeyMap()
	l := list.New(nil, cardDelegate{}, opts.Width, opts.Height-headerHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	// Card rows start right under the header; mouse hit-testing relies on it.
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = helpStyle.Padding(0, 0, 0, 2)
	l.Styles.PaginationStyle = helpStyle.Padding(0, 0, 0, 2)
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.open, keys.add, keys.edit, keys.quit} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{keys.open, keys.add, keys.edit, keys.quit} }

	m := Model{
		store:     opts.Store,
		anim:      anim.New(anim.Viewport{Width: float64(opts.Width), Height: float64(opts.Height)}, opts.Spring),
		catalog:   assets.NewCatalog(opts.Logger),
		log:       opts.Logger,
		now:       opts.Now,
		list:      l,
		keys:      keys,
		form:      newTaskForm(),
		remeasure: opts.Remeasure,
		width:     opts.Width,
		height:    opts.Height,
	}
	m.refresh("")
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(opts Options) error {
	applyColorProfilePreference(opts.Theme)
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		opts.Width, opts.Height = w, h
	}
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(New(opts), progOpts...).Run(); err != nil {
		return fmt.Errorf("run deck: %w", err)
	}
	return nil
}

// refresh reloads the cards from the store, keeping the selection on id
// when it still exists.
func (m *Model) refresh(id string) {
	if id == "" {
		if c, ok := m.list.SelectedItem().(cardItem); ok {
			id = c.item.ID
		}
	}
	items := m.store.List()
	li := make([]list.Item, 0, len(items))
	sel := -1
	for i, it := range items {
		li = append(li, cardItem{item: it, glyph: m.catalog.Image(it.Image).Glyph})
		if it.ID == id {
			sel = i
		}
	}
	m.list.SetItems(li)
	if sel >= 0 {
		m.list.Select(sel)
	} else if m.list.Index() >= len(li) && len(li) > 0 {
		m.list.Select(len(li) - 1)
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-headerHeight, 1))
		if m.remeasure {
			m.anim.SetViewport(anim.Viewport{Width: float64(msg.Width), Height: float64(msg.Height)})
		}
		return m, nil

	case tickMsg:
		return m.onTick(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch {
	case m.formOpen:
		return m.updateForm(msg)
	case m.anim.Visible():
		return m.updateModal(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.CursorUp()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.list.CursorDown()
			return m, nil
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		i, ok := m.cardAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.list.Select(i)
		return m.openModal(float64(msg.X), float64(msg.Y))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.open):
			x, y := m.cardOrigin()
			return m.openModal(x, y)
		case key.Matches(msg, m.keys.add):
			cmd := m.showForm(nil)
			return m, cmd
		case key.Matches(msg, m.keys.edit):
			if c, ok := m.list.SelectedItem().(cardItem); ok {
				it := c.item
				cmd := m.showForm(&it)
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A shrinking modal takes no input.
	if m.anim.State() == anim.Closing {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.insideModal(msg.X, msg.Y) {
			m.confirming = false
			return m.closeModal(nil)
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			switch {
			case key.Matches(msg, m.keys.confirm):
				return m.deleteSelected()
			case key.Matches(msg, m.keys.abort):
				m.confirming = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.close):
			return m.closeModal(nil)
		case key.Matches(msg, m.keys.edit):
			it, ok := m.anim.Selected()
			if !ok {
				return m, nil
			}
			return m.closeModal(&it)
		case key.Matches(msg, m.keys.delete):
			m.confirming = true
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		cmd = m.form.update(msg)
		return m, cmd
	}
	switch {
	case km.String() == "esc":
		m.formOpen = false
		m.form.err = ""
		return m, nil
	case key.Matches(km, m.keys.save):
		return m.saveForm()
	case km.String() == "enter":
		if m.form.lastField() {
			return m.saveForm()
		}
		cmd = m.form.setFocus(m.form.focus + 1)
	case key.Matches(km, m.keys.next):
		cmd = m.form.setFocus(m.form.focus + 1)
	case key.Matches(km, m.keys.prev):
		cmd = m.form.setFocus(m.form.focus - 1)
	default:
		cmd = m.form.update(msg)
	}
	return m, cmd
}

func (m Model) openModal(x, y float64) (tea.Model, tea.Cmd) {
	c, ok := m.list.SelectedItem().(cardItem)
	if !ok {
		return m, nil
	}
	m.confirming = false
	m.pending = nil
	m.anim.Open(c.item, x, y)
	m.log.Debug("open modal", "id", c.item.ID, "x", x, "y", y)
	cmd := m.startTicking()
	return m, cmd
}

// closeModal shrinks the modal. With edit set, the form opens for that item
// once the shrink has finished, never on top of the closing modal.
func (m Model) closeModal(edit *model.RoutineItem) (tea.Model, tea.Cmd) {
	done := m.anim.Close(nil)
	m.pending = &afterClose{done: done, edit: edit}
	cmd := m.startTicking()
	return m, cmd
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	m.confirming = false
	it, ok := m.anim.Selected()
	if !ok {
		return m, nil
	}
	if err := m.store.Delete(it.ID); err != nil {
		// Only ids taken from the store reach here.
		m.log.Error("delete routine item", "id", it.ID, "err", err)
	} else {
		m.log.Info("transferred routine item", "id", it.ID, "task", it.Task)
	}
	m.refresh("")
	return m.closeModal(nil)
}

// showForm opens the form, empty for a new task or filled from it.
func (m *Model) showForm(it *model.RoutineItem) tea.Cmd {
	m.formOpen = true
	return m.form.open(it)
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	data := m.form.data()
	var (
		saved model.RoutineItem
		err   error
	)
	if m.form.editingID != "" {
		saved, err = m.store.Update(m.form.editingID, data)
	} else {
		saved, err = m.store.Create(data)
	}
	switch {
	case errors.Is(err, store.ErrValidation):
		m.form.err = missingInfo
		return m, nil
	case err != nil:
		m.log.Error("save routine item", "id", m.form.editingID, "err", err)
		m.form.err = err.Error()
		return m, nil
	}

	m.log.Info("saved routine item", "id", saved.ID, "task", saved.Task)
	m.formOpen = false
	m.form.err = ""
	m.refresh(saved.ID)
	return m, nil
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	m.lastTick = time.Time{}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.anim.Frame(), func(t time.Time) tea.Msg { return tickMsg{at: t} })
}

func (m Model) onTick(msg tickMsg) (tea.Model, tea.Cmd) {
	dt := m.anim.Frame()
	if !m.lastTick.IsZero() {
		dt = msg.at.Sub(m.lastTick)
	}
	m.lastTick = msg.at
	running := m.anim.Tick(dt)

	var cmd tea.Cmd
	if p := m.pending; p != nil {
		select {
		case <-p.done:
			m.pending = nil
			if p.edit != nil && m.anim.State() == anim.Closed {
				cmd = m.showForm(p.edit)
			}
		default:
		}
	}

	if !running {
		m.ticking = false
		return m, cmd
	}
	return m, tea.Batch(cmd, m.tick())
}

// cardAt maps a screen row to a card index on the current page.
func (m Model) cardAt(y int) (int, bool) {
	row := y - headerHeight
	if row < 0 {
		return 0, false
	}
	slot := cardHeight + cardSpacing
	if row%slot >= cardHeight {
		return 0, false
	}
	i := m.list.Paginator.Page*m.list.Paginator.PerPage + row/slot
	if i >= len(m.list.VisibleItems()) || row/slot >= m.list.Paginator.PerPage {
		return 0, false
	}
	return i, true
}

// cardOrigin is the screen point of the selected card, used as the tap
// point for keyboard opens.
func (m Model) cardOrigin() (float64, float64) {
	per := max(m.list.Paginator.PerPage, 1)
	row := m.list.Index() % per
	y := headerHeight + row*(cardHeight+cardSpacing) + cardHeight/2
	return float64(m.width) / 4, float64(y)
}

// modalFrame renders the full-size modal content and its outer size.
func (m Model) modalFrame() (string, int, int, bool) {
	it, ok := m.anim.Selected()
	if !ok {
		return "", 0, 0, false
	}
	w := modalWidth(m.width)
	content := modalContent(it, m.catalog.Image(it.Image), m.confirming, w)
	return content, w, modalHeight(content), true
}

func (m Model) insideModal(x, y int) bool {
	_, w, h, ok := m.modalFrame()
	if !ok {
		return false
	}
	cx, cy := m.anim.Viewport().Center()
	left, top := int(cx)-w/2, int(cy)-h/2
	return x >= left && x < left+w && y >= top && y < top+h
}

func (m Model) header() string {
	sub := subtitleStyle.Render("TRAINER'S LOG")
	title := titleStyle.Render("Daily Deck")
	next := mutedStyle.Render(fmt.Sprintf("%d tasks", m.store.Len()))
	if it, ok := m.store.Next(m.now()); ok {
		next = mutedStyle.Render("next: ") + accentStyle.Render(it.Task) + mutedStyle.Render(" at "+it.Time)
	}
	return strings.Join([]string{
		" " + sub,
		" " + spread(title, next, max(m.width-2, 20)),
		"",
	}, "\n")
}

func (m Model) View() string {
	if m.formOpen {
		w := modalWidth(m.width)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.view(w))
	}

	bg := fitPane(m.header()+"\n"+m.list.View(), m.width, m.height)
	if !m.anim.Visible() {
		return bg
	}
	content, w, h, ok := m.modalFrame()
	if !ok {
		return bg
	}
	bg = mutedStyle.Render(ansi.Strip(bg))
	return placeModal(bg, content, w, h, m.anim.Transform(), m.anim.Viewport())
}
