package ui

import (
	"strings"
)

// paneItem is one rendered list entry: a derived identifier and its display label.
type paneItem struct {
	id    string
	label string
}

// pane is an append-only collection of rendered items keyed by derived item
// identifier. Appending an identifier that is already present is a no-op, so
// repeated loads cannot double-render a record. Arrival order is preserved.
type pane struct {
	title   string
	items   []paneItem
	seen    map[string]bool
	visible bool
}

func newPane(title string) *pane {
	return &pane{title: title, seen: map[string]bool{}}
}

// Append adds one item unless its identifier is already rendered.
// Reports whether the item was added.
func (p *pane) Append(id, label string) bool {
	if p.seen[id] {
		return false
	}
	p.seen[id] = true
	p.items = append(p.items, paneItem{id: id, label: label})
	return true
}

// Clear removes all items. Visibility is managed separately by the caller.
func (p *pane) Clear() {
	p.items = nil
	p.seen = map[string]bool{}
}

func (p *pane) Len() int {
	return len(p.items)
}

// Labels returns the display labels in arrival order.
func (p *pane) Labels() []string {
	labels := make([]string, len(p.items))
	for i, it := range p.items {
		labels[i] = it.label
	}
	return labels
}

// IDs returns the derived item identifiers in arrival order.
func (p *pane) IDs() []string {
	ids := make([]string, len(p.items))
	for i, it := range p.items {
		ids[i] = it.id
	}
	return ids
}

// render returns the pane's display text, or the empty string while hidden.
func (p *pane) render(loading bool, spinnerView string) string {
	if !p.visible {
		if loading {
			return styles.title.Render(p.title) + "\n" + spinnerView + " loading..."
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(p.title))
	b.WriteString("\n")
	if len(p.items) == 0 {
		b.WriteString(styles.help.Render("(empty)"))
		return b.String()
	}
	for _, it := range p.items {
		b.WriteString("• ")
		b.WriteString(it.label)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
