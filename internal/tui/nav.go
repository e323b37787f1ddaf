package tui

import (
	"path/filepath"

	"burrow/internal/errors"
	"burrow/internal/fs"
	"burrow/internal/log"

	tea "github.com/charmbracelet/bubbletea"
)

// viewportHeight is the number of listing rows below the fixed header.
func (m *Model) viewportHeight() int {
	h := m.height - headerRows
	if h < 0 {
		return 0
	}
	return h
}

// clampViewport re-establishes the invariants after any transition or
// resize: the selection stays inside the snapshot and inside the viewport,
// and the viewport prefers being filled over leaving blank trailing rows.
func (m *Model) clampViewport() {
	n := m.snap.Len()
	if n == 0 {
		m.sel = 0
		m.offset = 0
		return
	}

	if m.sel >= n {
		m.sel = n - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}

	h := m.viewportHeight()
	if h == 0 {
		m.offset = m.sel
		return
	}

	// Selection visible
	if m.offset > m.sel {
		m.offset = m.sel
	}
	if m.sel-m.offset >= h {
		m.offset = m.sel - h + 1
	}

	// Pack the tail: don't leave blank rows the list could fill
	if n-m.offset < h {
		m.offset = n - h
		if m.offset < 0 {
			m.offset = 0
		}
	}
}

// moveSelection moves the selection by one step, scrolling the viewport
// only when the selection would leave it. This is the one transition served
// by an incremental repaint rather than a full one.
func (m *Model) moveSelection(delta int) {
	n := m.snap.Len()
	if n == 0 {
		return
	}

	next := m.sel + delta
	if next < 0 || next >= n {
		return
	}
	m.sel = next

	h := m.viewportHeight()
	if h > 0 {
		if m.sel >= m.offset+h {
			m.offset++
		}
		if m.sel < m.offset {
			m.offset--
		}
	}
}

// jumpTop selects the first entry. A full repaint is owed only when the
// first row is not already on screen.
func (m *Model) jumpTop() {
	if m.snap.Empty() {
		return
	}
	if m.offset > 0 {
		m.fullRedraw = true
	}
	m.sel = 0
	m.offset = 0
}

// jumpBottom selects the last entry and shows as much of the tail as fits.
func (m *Model) jumpBottom() {
	n := m.snap.Len()
	if n == 0 {
		return
	}

	m.sel = n - 1
	h := m.viewportHeight()
	bottom := n - h
	if bottom < 0 {
		bottom = 0
	}
	if m.offset != bottom {
		m.fullRedraw = true
	}
	m.offset = bottom
}

// goParent replaces the path with its parent; at the root this is a no-op.
func (m *Model) goParent() {
	if m.path == "/" {
		return
	}
	m.path = filepath.Dir(m.path)
	m.fetchDir = true
}

// goTo replaces the path wholesale (home and root jumps).
func (m *Model) goTo(path string) {
	m.path = path
	m.fetchDir = true
}

// enter descends into the selected directory, or hands a non-directory
// entry to the opener. It returns a command only when a child process needs
// to run.
func (m *Model) enter() tea.Cmd {
	name := m.selName()
	if name == "" {
		return nil
	}

	if m.snap.Entries[m.sel].IsDir() {
		m.enterChild(name)
		return nil
	}
	if m.cfg.Opener != "" {
		return m.spawn(m.cfg.Opener, name)
	}
	// No opener configured: still re-read the listing
	m.fetchDir = true
	return nil
}

// enterChild appends one component to the path. The append is bounded:
// overflowing the path limit rejects the descent instead of truncating.
func (m *Model) enterChild(name string) {
	child := filepath.Join(m.path, name)
	if len(child) > maxPathLen {
		log.Error("%v", errors.NewFileError("path exceeds maximum length", child[:64]+"...", errors.PathTooLong, nil))
		return
	}
	m.path = child
	m.fetchDir = true
}

// toggleMark flips the mark on the selected entry in place; no snapshot
// rebuild happens.
func (m *Model) toggleMark() {
	if m.snap.Empty() {
		return
	}
	m.snap.Entries[m.sel].Marked = !m.snap.Entries[m.sel].Marked
}

// deleteMarked removes every marked entry, or the selected one if nothing
// is marked, then requests a fresh snapshot. Per-entry failures are logged
// inside RemoveMarked and skipped.
func (m *Model) deleteMarked() {
	if m.snap.Empty() {
		return
	}
	removed := fs.RemoveMarked(m.snap, m.sel)
	log.Debug("deleted %d entries in %s", removed, m.path)
	m.fetchDir = true
}
