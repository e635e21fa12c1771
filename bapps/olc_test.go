package bapps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikomand/komand"
	"github.com/statikomand/komand/shell"
)

func TestParseScripts(t *testing.T) {
	app := &olcApp{}
	cmds := app.parseScripts("show collection,#load backup.bin,exit")
	require.Len(t, cmds, 3)

	assert.Equal(t, "show collection", cmds[0].cmd)
	assert.False(t, cmds[0].muted)
	assert.Equal(t, "load backup.bin", cmds[1].cmd)
	assert.True(t, cmds[1].muted)
	assert.Equal(t, "exit", cmds[2].cmd)
}

func TestOlcRun(t *testing.T) {
	makeCountingShell := func(t *testing.T) (*shell.Shell, *int) {
		t.Helper()
		s, err := shell.New(nil)
		require.NoError(t, err)

		count := 0
		require.NoError(t, s.Add(&shell.Command{
			Name: "count",
			Run: func(_ context.Context, _ *komand.Result) error {
				count++
				return nil
			},
		}))
		return s, &count
	}

	t.Run("runs_all_commands", func(t *testing.T) {
		s, count := makeCountingShell(t)
		NewOlcApp("count,count,count").Run(s)
		assert.Equal(t, 3, *count)
	})

	t.Run("stops_at_first_failure", func(t *testing.T) {
		s, count := makeCountingShell(t)
		NewOlcApp("count,nonsense,count").Run(s)
		assert.Equal(t, 1, *count)
	})

	t.Run("exit_stops_the_script", func(t *testing.T) {
		s, count := makeCountingShell(t)
		NewOlcApp("exit,count").Run(s)
		assert.Equal(t, 0, *count)
	})

	t.Run("muted_commands_still_run", func(t *testing.T) {
		s, count := makeCountingShell(t)
		NewOlcApp("#count,count").Run(s)
		assert.Equal(t, 2, *count)
	})
}
