package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldDescription
)

type projectForm struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newProjectForm() projectForm {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 128
	name.Width = 50
	name.Focus()

	desc := textinput.New()
	desc.Placeholder = "description"
	desc.CharLimit = 1024
	desc.Width = 50

	return projectForm{inputs: []textinput.Model{name, desc}}
}

func (f *projectForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *projectForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *projectForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *projectForm) values() (name, description string) {
	return strings.TrimSpace(f.inputs[fieldName].Value()), strings.TrimSpace(f.inputs[fieldDescription].Value())
}

func (f projectForm) View() string {
	var b strings.Builder
	b.WriteString("Name\n")
	b.WriteString(f.inputs[fieldName].View())
	b.WriteString("\n\nDescription\n")
	b.WriteString(f.inputs[fieldDescription].View())
	if f.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(f.err))
	}
	return renderPage(titleStyle.Render("NEW PROJECT"), b.String(), "tab: next field  enter: save  esc: cancel")
}
