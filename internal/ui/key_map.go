package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	back        key.Binding
	newPlaylist key.Binding
	addSong     key.Binding
	shareUser   key.Binding
	nextField   key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		newPlaylist: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new playlist")),
		addSong:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add song")),
		shareUser:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		nextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.newPlaylist, k.addSong, k.shareUser, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.newPlaylist, k.addSong, k.shareUser},
		{k.back, k.quit},
	}
}
