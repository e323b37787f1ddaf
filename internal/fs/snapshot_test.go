package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(snap Snapshot) []string {
	out := make([]string, 0, snap.Len())
	for _, e := range snap.Entries {
		out = append(out, e.Name)
	}
	return out
}

func writeFile(t *testing.T, dir, name string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), perm))
}

func TestReadOrdering(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "A_dir"), 0o755))
	writeFile(t, dir, "b.txt", 0o644)
	writeFile(t, dir, ".hidden", 0o644)

	t.Run("hidden_filtered", func(t *testing.T) {
		snap := Read(dir, false, nil)
		assert.Equal(t, []string{"A_dir", "b.txt"}, names(snap))
	})

	t.Run("hidden_shown", func(t *testing.T) {
		snap := Read(dir, true, nil)
		assert.Equal(t, []string{"A_dir", ".hidden", "b.txt"}, names(snap))
	})
}

func TestReadGroupsDirectoriesFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aaa", 0o644)
	writeFile(t, dir, "zzz", 0o644)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "mmm"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zzz_dir"), 0o755))

	snap := Read(dir, false, nil)
	assert.Equal(t, []string{"mmm", "zzz_dir", "aaa", "zzz"}, names(snap))

	// Byte-wise ordering within a group is case-sensitive
	writeFile(t, dir, "Zupper", 0o644)
	snap = Read(dir, false, nil)
	assert.Equal(t, []string{"mmm", "zzz_dir", "Zupper", "aaa", "zzz"}, names(snap))
}

func TestReadClassification(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission and symlink semantics")
	}

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	writeFile(t, dir, "plain", 0o644)
	writeFile(t, dir, "script", 0o755)
	require.NoError(t, os.Symlink(filepath.Join(dir, "subdir"), filepath.Join(dir, "to_dir")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "plain"), filepath.Join(dir, "to_file")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "dangling")))

	snap := Read(dir, false, nil)

	kinds := make(map[string]Kind)
	for _, e := range snap.Entries {
		kinds[e.Name] = e.Kind
	}

	assert.Equal(t, Directory, kinds["subdir"])
	assert.Equal(t, Regular, kinds["plain"])
	assert.Equal(t, Executable, kinds["script"])
	assert.Equal(t, SymlinkToDir, kinds["to_dir"])
	assert.Equal(t, Symlink, kinds["to_file"])
	assert.Equal(t, Symlink, kinds["dangling"])

	// Symlinks to directories sort with the directory group
	assert.Equal(t, []string{"subdir", "to_dir"}, names(snap)[:2])
}

func TestReadUnreadableDirectory(t *testing.T) {
	snap := Read("/nonexistent/burrow/test/path", false, nil)
	assert.True(t, snap.Empty())
	assert.Equal(t, "/nonexistent/burrow/test/path", snap.Path)
}

func TestReadIgnorePredicate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.go", 0o644)
	writeFile(t, dir, "drop.o", 0o644)

	ignored := func(name string) bool { return filepath.Ext(name) == ".o" }

	snap := Read(dir, false, ignored)
	assert.Equal(t, []string{"keep.go"}, names(snap))

	// Showing hidden entries shows ignored ones too
	snap = Read(dir, true, ignored)
	assert.Equal(t, []string{"drop.o", "keep.go"}, names(snap))
}

func TestReadToggleHiddenIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".dotfile", 0o644)
	writeFile(t, dir, "visible", 0o644)

	before := names(Read(dir, false, nil))
	_ = Read(dir, true, nil)
	after := names(Read(dir, false, nil))
	assert.Equal(t, before, after)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()

	t.Run("regular_file", func(t *testing.T) {
		writeFile(t, dir, "victim", 0o644)
		err := Remove(dir, Entry{Name: "victim", Kind: Regular})
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "victim"))
	})

	t.Run("directory_recursive", func(t *testing.T) {
		nested := filepath.Join(dir, "tree", "deep")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		writeFile(t, nested, "leaf", 0o644)

		err := Remove(dir, Entry{Name: "tree", Kind: Directory})
		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Join(dir, "tree"))
	})

	t.Run("symlink_not_followed", func(t *testing.T) {
		target := filepath.Join(dir, "target")
		require.NoError(t, os.Mkdir(target, 0o755))
		writeFile(t, target, "precious", 0o644)
		require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

		err := Remove(dir, Entry{Name: "link", Kind: SymlinkToDir})
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "link"))
		assert.FileExists(t, filepath.Join(target, "precious"))
	})

	t.Run("missing_entry_fails", func(t *testing.T) {
		err := Remove(dir, Entry{Name: "ghost", Kind: Regular})
		assert.Error(t, err)
	})
}

func TestRemoveMarked(t *testing.T) {
	t.Run("marked_entries_only", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"a", "b", "c", "d"} {
			writeFile(t, dir, name, 0o644)
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "e_dir"), 0o755))

		snap := Read(dir, false, nil)
		require.Equal(t, 5, snap.Len())

		// Mark one directory and one file: e_dir sorts first, then a..d
		snap.Entries[0].Marked = true
		snap.Entries[3].Marked = true

		removed := RemoveMarked(snap, 1)
		assert.Equal(t, 2, removed)
		assert.NoDirExists(t, filepath.Join(dir, "e_dir"))
		assert.NoFileExists(t, filepath.Join(dir, "c"))
		assert.FileExists(t, filepath.Join(dir, "a"))
		assert.FileExists(t, filepath.Join(dir, "b"))
		assert.FileExists(t, filepath.Join(dir, "d"))
	})

	t.Run("falls_back_to_selection", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "only", 0o644)

		snap := Read(dir, false, nil)
		removed := RemoveMarked(snap, 0)
		assert.Equal(t, 1, removed)
		assert.NoFileExists(t, filepath.Join(dir, "only"))
	})

	t.Run("failures_continue", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "real", 0o644)

		snap := Read(dir, false, nil)
		require.Equal(t, 1, snap.Len())
		snap.Entries[0].Marked = true
		// Inject an entry that no longer exists alongside a real one
		snap.Entries = append([]Entry{{Name: "ghost", Marked: true}}, snap.Entries...)

		removed := RemoveMarked(snap, 0)
		assert.Equal(t, 1, removed)
		assert.NoFileExists(t, filepath.Join(dir, "real"))
	})

	t.Run("empty_snapshot_no_op", func(t *testing.T) {
		snap := Snapshot{Path: t.TempDir()}
		assert.Zero(t, RemoveMarked(snap, 0))
		assert.Zero(t, RemoveMarked(snap, -1))
	})
}
