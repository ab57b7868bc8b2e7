package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/dailydeck/internal/model"
)

const missingInfo = "Missing Information: please fill in all fields to continue"

// taskForm edits a FormData buffer. editingID is empty when creating.
type taskForm struct {
	inputs    [3]textinput.Model
	focus     int
	editingID string
	err       string
}

var formLabels = [3]string{"Time", "Task", "Description"}

func newTaskForm() taskForm {
	var f taskForm
	placeholders := [3]string{"6:00 AM", "Wake Up", "A wild day appears! Start gently."}
	limits := [3]int{16, 60, 200}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		f.inputs[i] = ti
	}
	return f
}

// open resets the buffer; with an item it becomes an edit form.
func (f *taskForm) open(it *model.RoutineItem) tea.Cmd {
	data := model.FormData{}
	f.editingID = ""
	if it != nil {
		data = model.FormFrom(*it)
		f.editingID = it.ID
	}
	f.inputs[0].SetValue(data.Time)
	f.inputs[1].SetValue(data.Task)
	f.inputs[2].SetValue(data.Description)
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
	f.err = ""
	return f.setFocus(0)
}

func (f *taskForm) data() model.FormData {
	return model.FormData{
		Time:        f.inputs[0].Value(),
		Task:        f.inputs[1].Value(),
		Description: f.inputs[2].Value(),
	}
}

func (f *taskForm) setFocus(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *taskForm) lastField() bool { return f.focus == len(f.inputs)-1 }

func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *taskForm) view(width int) string {
	title := "New Task"
	if f.editingID != "" {
		title = "Edit Task"
	}
	inner := width - 4
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if f.err != "" {
		b.WriteString(errorStyle.Width(inner).Render(f.err))
		b.WriteString("\n")
	}
	for i := range f.inputs {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(formLabels[i]))
		b.WriteString("\n")
		f.inputs[i].Width = inner - 3
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next   ctrl+s: save   esc: cancel"))
	return formStyle.Width(width - 2).Render(b.String())
}
