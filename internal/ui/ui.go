package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"playroom/internal/api"
	"playroom/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	FormView
)

// User-facing failure messages, matching the service's product wording.
const (
	msgPlaylistsLoadFailed  = "Your playlists could not be loaded. Please try again later."
	msgSongsLoadFailed      = "That playlist could not be loaded. Please try again later."
	msgUsersLoadFailed      = "That playlist's users could not be loaded. Please try again later."
	msgPlaylistCreateFailed = "Your new playlist could not be created. Please try again later."
	msgSongCreateFailed     = "Your song could not be added. Please try again later."
	msgUserShareFailed      = "The user could not be added. Please try again later."
	msgNoSelection          = "No playlist selected."
)

type playlistsLoadedMsg struct {
	playlists []models.Playlist
	err       error
}

type songsLoadedMsg struct {
	gen   int
	songs []models.Song
	err   error
}

type usersLoadedMsg struct {
	gen   int
	users []models.PlaylistUser
	err   error
}

type playlistCreatedMsg struct {
	playlist *models.Playlist
	err      error
}

type songCreatedMsg struct {
	gen  int
	song *models.Song
	err  error
}

type userSharedMsg struct {
	gen  int
	user *models.PlaylistUser
	err  error
}

// Model represents the TUI application state. It owns the selection cursor,
// the three rendered collections and the in-flight load bookkeeping; all
// mutation happens inside Update, which bubbletea serializes.
type Model struct {
	ctx  context.Context
	svc  api.Service
	view ViewState

	width  int
	height int

	playlistList  list.Model
	playlists     []models.Playlist
	seenPlaylists map[string]bool

	// selected is the selection cursor: nil until a playlist is chosen.
	selected *models.Playlist

	// gen is bumped on every selection change; pane load results carry the
	// generation they were started for and stale ones are discarded.
	gen int

	songs *pane
	users *pane

	songsLoading bool
	usersLoading bool
	spin         spinner.Model

	form  *form
	flash string

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model backed by the given playlist service.
func NewModel(ctx context.Context, svc api.Service) *Model {
	playlistList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	playlistList.Title = "Playlists"
	playlistList.SetShowStatusBar(false)

	return &Model{
		ctx:           ctx,
		svc:           svc,
		view:          BrowseView,
		playlistList:  playlistList,
		seenPlaylists: map[string]bool{},
		songs:         newPane("Songs"),
		users:         newPane("Shared with"),
		spin:          spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:          help.New(),
		keys:          newKeyMap(),
	}
}

// Init fetches the user's playlists.
func (m *Model) Init() tea.Cmd {
	return m.loadPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width/2-4, msg.Height-6)
		return m, nil

	case spinner.TickMsg:
		if !m.songsLoading && !m.usersLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		}

	case playlistsLoadedMsg:
		if msg.err != nil {
			m.flash = msgPlaylistsLoadFailed
			return m, nil
		}
		for _, p := range msg.playlists {
			m.appendPlaylist(p)
		}
		return m, m.playlistList.SetItems(m.playlistItems())

	case songsLoadedMsg:
		if msg.gen != m.gen {
			// superseded by a later selection
			return m, nil
		}
		m.songsLoading = false
		if msg.err != nil {
			m.flash = msgSongsLoadFailed
			return m, nil
		}
		for _, s := range msg.songs {
			m.songs.Append(s.ItemID(), s.Label())
		}
		m.songs.visible = true
		return m, nil

	case usersLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.usersLoading = false
		if msg.err != nil {
			m.flash = msgUsersLoadFailed
			return m, nil
		}
		for _, u := range msg.users {
			m.users.Append(u.ItemID(), u.Label())
		}
		m.users.visible = true
		return m, nil

	case playlistCreatedMsg:
		if msg.err != nil {
			m.flash = msgPlaylistCreateFailed
			return m, nil
		}
		// render the server's record; no auto-select of the new playlist
		m.appendPlaylist(*msg.playlist)
		return m, m.playlistList.SetItems(m.playlistItems())

	case songCreatedMsg:
		if msg.err != nil {
			m.flash = msgSongCreateFailed
			return m, nil
		}
		if msg.gen != m.gen {
			// selection moved on; the song belongs to the previous scope
			return m, nil
		}
		m.songs.Append(msg.song.ItemID(), msg.song.Label())
		return m, nil

	case userSharedMsg:
		if msg.err != nil {
			var svcErr *api.Error
			if errors.As(msg.err, &svcErr) && svcErr.Message != "" {
				m.flash = svcErr.Message
			} else {
				m.flash = msgUserShareFailed
			}
			return m, nil
		}
		if msg.gen != m.gen {
			return m, nil
		}
		m.users.Append(msg.user.ItemID(), msg.user.Label())
		return m, nil
	}

	return m, nil
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.playlistList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.playlistList, cmd = m.playlistList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.enter):
		if item, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			return m.selectPlaylist(item.playlist)
		}
		return m, nil

	case key.Matches(msg, m.keys.newPlaylist):
		m.form = newPlaylistForm()
		m.view = FormView
		m.flash = ""
		return m, nil

	case key.Matches(msg, m.keys.addSong):
		if m.selected == nil {
			m.flash = msgNoSelection
			return m, nil
		}
		m.form = newSongForm()
		m.view = FormView
		m.flash = ""
		return m, nil

	case key.Matches(msg, m.keys.shareUser):
		if m.selected == nil {
			m.flash = msgNoSelection
			return m, nil
		}
		m.form = newUserForm()
		m.view = FormView
		m.flash = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

// selectPlaylist is the selection handler. Synchronously, before any load is
// dispatched: clear both panes, hide them, move the cursor and bump the
// generation, so stale items are never visible next to new ones and late
// results from the previous selection are discarded.
func (m *Model) selectPlaylist(p models.Playlist) (tea.Model, tea.Cmd) {
	m.songs.Clear()
	m.users.Clear()
	m.songs.visible = false
	m.users.visible = false
	m.selected = &p
	m.gen++
	m.songsLoading = true
	m.usersLoading = true
	m.flash = ""

	return m, tea.Batch(
		m.loadSongs(m.gen, p.PlaylistID),
		m.loadUsers(m.gen, p.PlaylistID),
		m.spin.Tick,
	)
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		// user abort: nothing is sent, nothing is shown
		m.form = nil
		m.view = BrowseView
		return m, nil

	case key.Matches(msg, m.keys.nextField):
		m.form.next()
		return m, nil

	case msg.String() == "shift+tab":
		m.form.prev()
		return m, nil

	case key.Matches(msg, m.keys.enter):
		return m.submitForm()
	}

	return m, m.form.update(msg)
}

// submitForm closes the active form and dispatches the matching create
// request. An empty required field aborts the flow the same way esc does.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	m.form = nil
	m.view = BrowseView

	vals := f.values()
	switch f.kind {
	case playlistForm:
		name := strings.TrimSpace(vals[0])
		if name == "" {
			return m, nil
		}
		return m, m.createPlaylist(name)

	case songForm:
		title := strings.TrimSpace(vals[0])
		if title == "" {
			return m, nil
		}
		if m.selected == nil {
			m.flash = msgNoSelection
			return m, nil
		}
		// artist and album go out exactly as entered: an empty submitted
		// field is distinct from an abandoned form
		return m, m.createSong(m.gen, m.selected.PlaylistID, title, vals[1], vals[2])

	case userForm:
		email := strings.TrimSpace(vals[0])
		if email == "" {
			return m, nil
		}
		if m.selected == nil {
			m.flash = msgNoSelection
			return m, nil
		}
		return m, m.shareUser(m.gen, m.selected.PlaylistID, email)
	}

	return m, nil
}

func (m *Model) appendPlaylist(p models.Playlist) bool {
	if m.seenPlaylists[p.ItemID()] {
		return false
	}
	m.seenPlaylists[p.ItemID()] = true
	m.playlists = append(m.playlists, p)
	return true
}

func (m *Model) playlistItems() []list.Item {
	items := make([]list.Item, len(m.playlists))
	for i, p := range m.playlists {
		items[i] = playlistItem{playlist: p}
	}
	return items
}

func (m *Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.svc.ListPlaylists(m.ctx)
		return playlistsLoadedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) loadSongs(gen int, listID string) tea.Cmd {
	return func() tea.Msg {
		songs, err := m.svc.ListSongs(m.ctx, listID)
		return songsLoadedMsg{gen: gen, songs: songs, err: err}
	}
}

func (m *Model) loadUsers(gen int, listID string) tea.Cmd {
	return func() tea.Msg {
		users, err := m.svc.ListUsers(m.ctx, listID)
		return usersLoadedMsg{gen: gen, users: users, err: err}
	}
}

func (m *Model) createPlaylist(name string) tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.svc.CreatePlaylist(m.ctx, name)
		return playlistCreatedMsg{playlist: playlist, err: err}
	}
}

func (m *Model) createSong(gen int, listID, title, artist, album string) tea.Cmd {
	return func() tea.Msg {
		song, err := m.svc.CreateSong(m.ctx, listID, title, artist, album)
		return songCreatedMsg{gen: gen, song: song, err: err}
	}
}

func (m *Model) shareUser(gen int, listID, email string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.svc.ShareUser(m.ctx, listID, email)
		return userSharedMsg{gen: gen, user: user, err: err}
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.view == FormView && m.form != nil {
		return m.form.View()
	}
	return m.renderBrowse()
}

func (m *Model) renderBrowse() string {
	left := m.playlistList.View()

	var right string
	if m.selected == nil {
		right = styles.help.Render("Select a playlist to see its songs and members.")
	} else {
		sections := []string{styles.title.Render(m.selected.Name)}
		if s := m.songs.render(m.songsLoading, m.spin.View()); s != "" {
			sections = append(sections, s)
		}
		if u := m.users.render(m.usersLoading, m.spin.View()); u != "" {
			sections = append(sections, u)
		}
		right = strings.Join(sections, "\n\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var footer []string
	if m.flash != "" {
		footer = append(footer, styles.err.Render(m.flash))
	}
	footer = append(footer, m.help.ShortHelpView(m.keys.ShortHelp()))

	return body + "\n\n" + strings.Join(footer, "\n")
}
