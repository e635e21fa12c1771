package bapps

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/statikomand/komand/shell"
)

// olcApp runs a comma separated one-line script and exits.
type olcApp struct {
	script string
}

type olcCmd struct {
	cmd   string
	muted bool
}

// NewOlcApp builds the one-line command application for script.
func NewOlcApp(script string) App {
	return &olcApp{
		script: script,
	}
}

// Run executes the script commands in order, stopping at the first
// failure. Muted commands run with their output discarded.
func (a *olcApp) Run(s *shell.Shell) {
	for _, cmd := range a.parseScripts(a.script) {
		stdout := os.Stdout
		if cmd.muted {
			// set to /dev/null to discard not wanted output
			os.Stdout, _ = os.Open(os.DevNull)
		}
		err := s.Process(cmd.cmd)
		if cmd.muted {
			os.Stdout = stdout
		}
		if errors.Is(err, shell.ErrExit) {
			return
		}
		if err != nil {
			fmt.Println(color.RedString(err.Error()))
			return
		}
	}
}

// parseScripts splits the script into commands, a leading # mutes the
// command output.
func (a *olcApp) parseScripts(script string) []olcCmd {
	parts := strings.Split(script, ",")
	return lo.Map(parts, func(raw string, _ int) olcCmd {
		muted := false
		cmd := raw
		// mute cmd using #[command]
		if strings.HasPrefix(cmd, "#") {
			muted = true
			cmd = cmd[1:]
		}
		return olcCmd{
			muted: muted,
			cmd:   cmd,
		}
	})
}
