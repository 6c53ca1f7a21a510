// Package ui implements the interactive playlist browser using bubbletea's Elm architecture.
//
// The [Model] coordinates three collections scoped by a selected playlist:
//  1. [BrowseView] : playlist list on the left, the selected playlist's song
//     and member panes on the right
//  2. [FormView] : a single structured form for one creation flow (new
//     playlist, add song, share with a user)
//
// Selecting a playlist clears and hides both panes before the two scoped
// loads are dispatched, and bumps a load generation; a load result that
// arrives for an older generation is discarded, so a slow response can never
// append into another playlist's panes. Rendered panes are append-only and
// deduplicate by the record's server-assigned identifier.
//
// Network work runs in [tea.Cmd] closures and reaches the model only as
// messages; failures surface as a flash line, never as a re-render of partial
// state.
package ui
