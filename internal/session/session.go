// Package session persists the browse location for shell integration. Two
// fixed-path files are overwritten on quit and before every shell spawn: one
// with the current directory, one with the absolute path of the selected
// entry, so wrappers can "cd to where the browser was".
package session

import (
	"os"
	"path/filepath"

	"burrow/internal/log"
)

var root = os.TempDir()

// SetRoot relocates the session files; used by tests.
func SetRoot(dir string) {
	root = dir
}

// DirFile returns the path of the current-directory file.
func DirFile() string { return filepath.Join(root, "burrow_dir") }

// SelFile returns the path of the selected-entry file.
func SelFile() string { return filepath.Join(root, "burrow_sel") }

// Save overwrites both session files. selName may be empty (empty directory,
// no selection); the selection file then carries just the directory path.
// Failures are logged and ignored: losing shell integration is not worth
// aborting a quit for.
func Save(dir, selName string) {
	write(DirFile(), dir)

	sel := dir
	if selName != "" {
		sel = filepath.Join(dir, selName)
	}
	write(SelFile(), sel)
}

func write(path, content string) {
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		log.WithFields(log.F("file", path)).Warnf("cannot save session: %v", err)
	}
}
