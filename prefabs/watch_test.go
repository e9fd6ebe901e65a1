package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/character.yaml", SpecChanged, true},
		{"x.YML", SpecChanged, true},
		{"scripts/demo.tengo", ScriptChanged, true},
		{"notes.txt", 0, false},
		{"character.yaml~", 0, false},
	}
	for _, c := range cases {
		kind, ok := classify(c.path)
		assert.Equal(t, c.ok, ok, c.path)
		if ok {
			assert.Equal(t, c.kind, kind, c.path)
		}
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "character.yaml"), []byte("name: x\n"), 0o644))

	select {
	case change := <-w.Events:
		assert.Equal(t, "character.yaml", filepath.Base(change.Path))
		assert.Equal(t, SpecChanged, change.Kind)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no change reported")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
