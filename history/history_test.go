package history

import (
	"os"
	"path"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelper(t *testing.T) {
	t.Run("append_and_list", func(t *testing.T) {
		workspace := t.TempDir()
		h := New(workspace)
		defer h.Close()

		h.Append("show segment")
		h.Append("show collection")
		h.Append("backup etcd")
		h.Append("   ")

		assert.Len(t, h.List(""), 3)
		matched := h.List("show")
		require.Len(t, matched, 2)
		assert.Equal(t, "show segment", matched[0].Line)
		assert.Equal(t, "show collection", matched[1].Line)
	})

	t.Run("reload_from_file", func(t *testing.T) {
		workspace := t.TempDir()
		h := New(workspace)
		h.Append("first")
		h.Append("second")
		h.Close()

		reloaded := New(workspace)
		defer reloaded.Close()
		assert.Equal(t, []string{"first", "second"}, reloaded.Lines())
	})

	t.Run("corrupt_lines_skipped", func(t *testing.T) {
		workspace := t.TempDir()
		content := `{"Line":"good","Ts":10}
not json at all
{"Line":"also good","Ts":20}
`
		require.NoError(t, os.WriteFile(path.Join(workspace, historyFileName), []byte(content), 0o644))

		h := New(workspace)
		defer h.Close()
		lines := lo.Map(h.List(""), func(entry Entry, _ int) string { return entry.Line })
		assert.Equal(t, []string{"good", "also good"}, lines)
	})

	t.Run("missing_workspace_still_works", func(t *testing.T) {
		h := New(path.Join(t.TempDir(), "absent"))
		defer h.Close()

		h.Append("line")
		assert.Len(t, h.List(""), 1)
	})
}
