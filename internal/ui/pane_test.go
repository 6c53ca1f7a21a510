package ui

import (
	"reflect"
	"testing"
)

func TestPane(t *testing.T) {
	t.Run("Append Preserves Order", func(t *testing.T) {
		p := newPane("Songs")
		p.Append("song-2", "B")
		p.Append("song-1", "A")

		if got := p.Labels(); !reflect.DeepEqual(got, []string{"B", "A"}) {
			t.Errorf("expected arrival order preserved, got %v", got)
		}
		if got := p.IDs(); !reflect.DeepEqual(got, []string{"song-2", "song-1"}) {
			t.Errorf("expected ids in arrival order, got %v", got)
		}
	})

	t.Run("Append Deduplicates By ID", func(t *testing.T) {
		p := newPane("Songs")
		if !p.Append("song-1", "A") {
			t.Error("expected first append to succeed")
		}
		if p.Append("song-1", "A again") {
			t.Error("expected duplicate append to be a no-op")
		}
		if p.Len() != 1 {
			t.Errorf("expected 1 item, got %d", p.Len())
		}
	})

	t.Run("Clear Empties And Forgets", func(t *testing.T) {
		p := newPane("Songs")
		p.Append("song-1", "A")
		p.Clear()

		if p.Len() != 0 {
			t.Errorf("expected empty pane, got %d items", p.Len())
		}
		if !p.Append("song-1", "A") {
			t.Error("expected append after clear to succeed")
		}
	})

	t.Run("Render Hidden Pane Is Empty", func(t *testing.T) {
		p := newPane("Songs")
		p.Append("song-1", "A")

		if out := p.render(false, ""); out != "" {
			t.Errorf("expected hidden pane to render nothing, got %q", out)
		}
	})
}
