package suggest

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikomand/komand"
)

func TestStatic(t *testing.T) {
	completer := Static("loaded", "flushed", "dropped", "flushing")

	t.Run("empty_partial_returns_all", func(t *testing.T) {
		assert.Equal(t, []string{"loaded", "flushed", "dropped", "flushing"}, completer.Complete(""))
	})

	t.Run("prefix_filters_in_order", func(t *testing.T) {
		assert.Equal(t, []string{"flushed", "flushing"}, completer.Complete("flush"))
	})

	t.Run("no_match", func(t *testing.T) {
		assert.Empty(t, completer.Complete("sealed"))
	})
}

func TestRegistry(t *testing.T) {
	Register("state", Static("loaded", "flushed"))
	defer Unregister("state")

	completer, ok := Get("state")
	require.True(t, ok)
	assert.Equal(t, []string{"loaded"}, completer.Complete("lo"))

	t.Run("named_resolves_lazily", func(t *testing.T) {
		// lookup happens at completion time, registration may come later
		lazy := Named("segment-state")
		assert.Empty(t, lazy.Complete(""))

		Register("segment-state", Static("sealed", "growing"))
		defer Unregister("segment-state")
		assert.Equal(t, []string{"sealed", "growing"}, lazy.Complete(""))
	})

	t.Run("unregister_removes", func(t *testing.T) {
		Register("gone", Static("x"))
		Unregister("gone")
		_, ok := Get("gone")
		assert.False(t, ok)
	})

	t.Run("register_overwrites", func(t *testing.T) {
		Register("fmt", Static("json"))
		defer Unregister("fmt")
		Register("fmt", Static("table"))
		completer, ok := Get("fmt")
		require.True(t, ok)
		assert.Equal(t, []string{"table"}, completer.Complete(""))
	})
}

func TestRegistryWiresIntoParser(t *testing.T) {
	Register("collection", Static("demo", "default"))
	defer Unregister("collection")

	p := komand.NewParser()
	require.NoError(t, p.AddArgument([]string{"-c", "--collection"}, komand.WithCompleter(Named("collection"))))

	assert.Equal(t, []string{"demo", "default"}, p.Complete("-c d"))
}

func TestFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(base, "backup.bin"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path.Join(base, "backup.idx"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path.Join(base, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(path.Join(base, "snapshots"), 0o755))

	t.Run("lists_directory_contents", func(t *testing.T) {
		got := File().Complete(base + "/")
		assert.ElementsMatch(t, []string{
			path.Join(base, "backup.bin"),
			path.Join(base, "backup.idx"),
			path.Join(base, "notes.txt"),
			path.Join(base, "snapshots"),
		}, got)
	})

	t.Run("prefix_filters_entries", func(t *testing.T) {
		got := File().Complete(path.Join(base, "back"))
		assert.ElementsMatch(t, []string{
			path.Join(base, "backup.bin"),
			path.Join(base, "backup.idx"),
		}, got)
	})

	t.Run("missing_directory_proposes_nothing", func(t *testing.T) {
		assert.Empty(t, File().Complete(path.Join(base, "absent")+"/"))
	})

	t.Run("dir_keeps_directories_only", func(t *testing.T) {
		got := Dir().Complete(base + "/")
		assert.Equal(t, []string{path.Join(base, "snapshots")}, got)
	})
}
