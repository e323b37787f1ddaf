// Package fs builds directory snapshots: sorted, typed listings of one
// directory's children, plus the delete helpers the browser invokes on
// marked entries.
package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"burrow/internal/log"
)

// Kind classifies a directory entry for sorting and colorization.
type Kind int

const (
	Regular Kind = iota
	Directory
	Symlink
	SymlinkToDir
	Executable
)

// Entry is one filesystem child. Entries are created fresh on every snapshot
// rebuild; identity does not survive a directory re-read.
type Entry struct {
	Name   string
	Kind   Kind
	Marked bool
}

// IsDir reports whether entering the entry is meaningful.
func (e Entry) IsDir() bool {
	return e.Kind == Directory || e.Kind == SymlinkToDir
}

// Snapshot is the sorted listing of exactly one directory path.
type Snapshot struct {
	Path    string
	Entries []Entry
}

// Len returns the number of entries.
func (s Snapshot) Len() int {
	return len(s.Entries)
}

// Empty reports whether the snapshot has no entries.
func (s Snapshot) Empty() bool {
	return len(s.Entries) == 0
}

// Marked returns the indexes of all marked entries.
func (s Snapshot) Marked() []int {
	var idx []int
	for i := range s.Entries {
		if s.Entries[i].Marked {
			idx = append(idx, i)
		}
	}
	return idx
}

// Read lists path into a fresh snapshot. A directory that cannot be opened
// yields an empty snapshot, not an error: the browser renders it as empty
// and stays usable. Children whose stat fails are skipped silently, which
// tolerates races with concurrent deletion. The ignored predicate, like the
// dot-file rule, applies only while hidden entries are filtered.
func Read(path string, showHidden bool, ignored func(name string) bool) Snapshot {
	snap := Snapshot{Path: path}

	children, err := os.ReadDir(path)
	if err != nil {
		log.WithFields(log.F("path", path)).Warn("unreadable directory")
		if len(children) == 0 {
			return snap
		}
	}

	for _, child := range children {
		name := child.Name()
		if !showHidden {
			if strings.HasPrefix(name, ".") {
				continue
			}
			if ignored != nil && ignored(name) {
				continue
			}
		}

		info, err := child.Info()
		if err != nil {
			continue
		}

		snap.Entries = append(snap.Entries, Entry{
			Name: name,
			Kind: classify(path, name, info.Mode()),
		})
	}

	sort.Slice(snap.Entries, func(i, j int) bool {
		a, b := snap.Entries[i], snap.Entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return a.Name < b.Name
	})

	return snap
}

// classify maps a non-following stat result to a Kind. Symlinks get one
// additional following stat to detect links to directories; resolution
// failure leaves them plain symlinks.
func classify(dir, name string, mode os.FileMode) Kind {
	switch {
	case mode.IsDir():
		return Directory
	case mode&os.ModeSymlink != 0:
		target, err := os.Stat(filepath.Join(dir, name))
		if err == nil && target.IsDir() {
			return SymlinkToDir
		}
		return Symlink
	case mode&0o100 != 0:
		return Executable
	default:
		return Regular
	}
}
