package fs

import (
	"os"
	"path/filepath"

	apperrors "burrow/internal/errors"
	"burrow/internal/log"
)

// Remove deletes one entry of dir: recursively for directories, a single
// unlink for everything else. Symlinks are unlinked, never followed, so a
// symlink to a directory cannot take its target down with it.
func Remove(dir string, entry Entry) error {
	target := filepath.Join(dir, entry.Name)

	var err error
	if entry.Kind == Directory {
		err = os.RemoveAll(target)
	} else {
		err = os.Remove(target)
	}
	if err != nil {
		return apperrors.NewFileError("delete failed", target, apperrors.DeleteFailed, err)
	}
	return nil
}

// RemoveMarked deletes every marked entry of the snapshot, or the entry at
// sel when nothing is marked. Per-entry failures are logged and skipped;
// the count of successful removals is returned.
func RemoveMarked(snap Snapshot, sel int) int {
	targets := snap.Marked()
	if len(targets) == 0 {
		if sel < 0 || sel >= snap.Len() {
			return 0
		}
		targets = []int{sel}
	}

	removed := 0
	for _, i := range targets {
		if err := Remove(snap.Path, snap.Entries[i]); err != nil {
			log.Error("%v", err)
			continue
		}
		removed++
	}
	return removed
}
