// Package tui implements the browser itself: the bubbletea model owning the
// navigation and selection state, the key dispatcher, the renderer, and the
// suspend/spawn handling for child processes.
package tui

import (
	"fmt"
	"os"
	"os/user"

	"burrow/internal/config"
	"burrow/internal/errors"
	"burrow/internal/fs"
	"burrow/internal/log"
	"burrow/internal/session"
	"burrow/internal/watch"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// headerRows is the fixed header: one status line plus one spacer.
const headerRows = 2

// maxPathLen bounds the browse path. Appends that would overflow it are
// rejected instead of performed.
const maxPathLen = 4096

// Model is the browser state machine. All mutation happens synchronously in
// Update; the only asynchronous inputs are resize, key, and watcher
// messages, which bubbletea already funnels through the single event loop.
type Model struct {
	cfg     *config.Config
	watcher *watch.Watcher

	// Navigation and selection state
	path       string
	snap       fs.Snapshot
	sel        int
	offset     int
	showHidden bool

	// Dirty flags, serviced by sync() once per update
	fetchDir   bool
	fullRedraw bool
	shutdown   bool

	// Terminal geometry, refreshed on WindowSizeMsg
	width  int
	height int

	userHost string
	keys     keyMap
}

// dirChangedMsg reports that the watcher saw the current directory change.
type dirChangedMsg struct{}

// spawnFinishedMsg reports a child process exiting, by any means.
type spawnFinishedMsg struct{ err error }

// New builds the model for a starting path. The user@host header component
// is resolved once here; an unresolvable user is a fatal startup error, a
// missing hostname degrades to the bare username.
func New(cfg *config.Config, path string, watcher *watch.Watcher) (*Model, error) {
	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "cannot resolve current user")
	}

	userHost := u.Username
	if host, err := os.Hostname(); err == nil && host != "" {
		userHost = fmt.Sprintf("%s@%s", u.Username, host)
	}

	m := &Model{
		cfg:        cfg,
		watcher:    watcher,
		path:       path,
		showHidden: cfg.ShowHidden,
		userHost:   userHost,
		keys:       defaultKeyMap(),
		fetchDir:   true,
	}
	m.sync()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fullRedraw = true
		m.clampViewport()
		return m, m.redrawCmd()

	case dirChangedMsg:
		m.autoRefresh()
		return m, tea.Batch(m.redrawCmd(), m.waitForChange())

	case spawnFinishedMsg:
		if msg.err != nil {
			log.Warn("child process: %v", msg.err)
		}
		// The child may have changed the directory contents
		m.fetchDir = true
		m.sync()
		return m, m.redrawCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey is the command dispatcher: one logical key, one transition or
// external action. Commands that need an entry are no-ops on an empty
// snapshot; navigation, toggles, refresh, and quit always apply.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Parent):
		m.goParent()
	case key.Matches(msg, m.keys.Home):
		m.goTo(m.cfg.Home)
	case key.Matches(msg, m.keys.Root):
		m.goTo("/")
	case key.Matches(msg, m.keys.ToggleHidden):
		m.showHidden = !m.showHidden
		m.fetchDir = true
	case key.Matches(msg, m.keys.Refresh):
		m.fetchDir = true

	case key.Matches(msg, m.keys.Shell):
		session.Save(m.path, m.selName())
		return m, m.spawn(m.cfg.Shell, "")

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Top):
		m.jumpTop()
	case key.Matches(msg, m.keys.Bottom):
		m.jumpBottom()

	case key.Matches(msg, m.keys.Enter):
		if cmd := m.enter(); cmd != nil {
			return m, cmd
		}
	case key.Matches(msg, m.keys.Mark):
		m.toggleMark()
	case key.Matches(msg, m.keys.Delete):
		m.deleteMarked()
	case key.Matches(msg, m.keys.Editor):
		if name := m.selName(); name != "" {
			return m, m.spawn(m.cfg.Editor, name)
		}
	}

	m.sync()
	return m, m.redrawCmd()
}

// redrawCmd consumes the full-redraw flag, translating it into a screen
// clear before the next frame. Single-step selection moves never raise the
// flag, so they cost only the rows the renderer's line diffing finds
// changed, visually identical to a repaint from scratch.
func (m *Model) redrawCmd() tea.Cmd {
	if !m.fullRedraw {
		return nil
	}
	m.fullRedraw = false
	return tea.ClearScreen
}

// quit persists the session and tears the program down; bubbletea restores
// the terminal on the way out.
func (m *Model) quit() tea.Cmd {
	m.Shutdown()
	return tea.Quit
}

// Shutdown persists the session and releases the watcher. Idempotent, and
// reachable from every exit path: the quit key arrives here through Update,
// while interrupt and termination signals arrive through the program's
// message filter, since bubbletea stops the loop on those before Update
// would see them.
func (m *Model) Shutdown() {
	if m.shutdown {
		return
	}
	m.shutdown = true
	session.Save(m.path, m.selName())
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// sync services the dirty flags exactly once per update cycle. A requested
// snapshot rebuild resets the selection and offset; every path through here
// re-establishes the viewport invariants.
func (m *Model) sync() {
	if m.fetchDir {
		m.fetchDir = false
		m.snap = fs.Read(m.path, m.showHidden, m.cfg.Ignored)
		m.sel = 0
		m.offset = 0
		m.fullRedraw = true
		if m.watcher != nil {
			_ = m.watcher.Follow(m.path)
		}
	}
	m.clampViewport()
}

// autoRefresh re-reads the current directory after a watcher event,
// restoring the selection by name when the entry still exists.
func (m *Model) autoRefresh() {
	keep := m.selName()
	m.fetchDir = true
	m.sync()
	if keep == "" {
		return
	}
	for i := range m.snap.Entries {
		if m.snap.Entries[i].Name == keep {
			m.sel = i
			break
		}
	}
	m.clampViewport()
}

// waitForChange blocks on the watcher channel as a bubbletea command,
// re-issued after every delivery.
func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.watcher.Changes(); ok {
			return dirChangedMsg{}
		}
		return nil
	}
}

// selName returns the selected entry's name, or "" when the snapshot is
// empty.
func (m *Model) selName() string {
	if m.snap.Empty() {
		return ""
	}
	return m.snap.Entries[m.sel].Name
}

// Path returns the current browse path.
func (m *Model) Path() string {
	return m.path
}

// Selection returns the selection index.
func (m *Model) Selection() int {
	return m.sel
}

// Offset returns the viewport offset (index of the top visible row).
func (m *Model) Offset() int {
	return m.offset
}

// Snapshot returns the current snapshot.
func (m *Model) Snapshot() fs.Snapshot {
	return m.snap
}
