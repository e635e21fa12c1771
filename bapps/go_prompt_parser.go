package bapps

import (
	"os"
	"os/exec"

	"github.com/c-bata/go-prompt"
)

// inputParser wraps prompt.PosixParser to change TearDown behavior,
// go-prompt leaves the terminal in raw mode on some platforms.
type inputParser struct {
	*prompt.PosixParser
}

// TearDown should be called after stopping input.
func (p *inputParser) TearDown() error {
	p.PosixParser.TearDown()
	rawModeOff := exec.Command("/bin/stty", "-raw", "echo")
	rawModeOff.Stdin = os.Stdin
	_ = rawModeOff.Run()
	rawModeOff.Wait()
	return nil
}

func newInputParser() *inputParser {
	return &inputParser{
		PosixParser: prompt.NewStandardInputParser(),
	}
}
