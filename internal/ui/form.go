package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	playlistForm formKind = iota
	songForm
	userForm
)

// form is a single structured input screen for one creation flow. All fields
// are collected atomically: esc abandons the whole flow without sending
// anything, submit sends optional fields exactly as entered, so an empty
// artist or album still reaches the wire as the empty string.
type form struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(kind formKind, title string, fields ...string) *form {
	f := &form{kind: kind, title: title, labels: fields}
	for i, label := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = label
		in.CharLimit = 200
		if i == 0 {
			in.Focus()
		}
		f.inputs = append(f.inputs, in)
	}
	return f
}

func newPlaylistForm() *form {
	return newForm(playlistForm, "New playlist", "Name")
}

func newSongForm() *form {
	return newForm(songForm, "Add song", "Title", "Artist", "Album")
}

func newUserForm() *form {
	return newForm(userForm, "Share playlist", "Email")
}

// next moves focus to the following field, wrapping around.
func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// prev moves focus to the preceding field, wrapping around.
func (f *form) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// values returns the entered text per field, in declaration order.
func (f *form) values() []string {
	vals := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		vals[i] = in.Value()
	}
	return vals
}

func (f *form) View() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(f.title))
	b.WriteString("\n")
	for i, in := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(styles.help.Render("enter submit • tab next field • esc cancel"))
	return b.String()
}
