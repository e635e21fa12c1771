package bapps

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"github.com/statikomand/komand/shell"
)

// simpleApp wraps promptui as App. (no suggestion and history)
type simpleApp struct{}

// NewSimpleApp builds the plain line reader application.
func NewSimpleApp() App {
	return &simpleApp{}
}

// Run reads lines until an interrupt or the exit command.
func (a *simpleApp) Run(s *shell.Shell) {
	for {
		p := promptui.Prompt{
			Label: s.Label(),
			Validate: func(_ string) error {
				return nil
			},
		}

		line, err := p.Run()
		if err != nil {
			// interrupted or closed input
			return
		}
		if err := s.Process(line); err != nil {
			if errors.Is(err, shell.ErrExit) {
				fmt.Println("Bye!")
				return
			}
			fmt.Println(color.RedString(err.Error()))
		}
	}
}
