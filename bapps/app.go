// Package bapps provides the runnable front-ends over a shell: an
// interactive prompt with completion and history, a plain line reader,
// a one-line script runner and a REST server.
package bapps

import (
	"log"

	"github.com/statikomand/komand/shell"
)

// App interface for komand applications.
type App interface {
	Run(s *shell.Shell)
}

// AppOption application setup option function.
type AppOption func(opt *appOption)

type appOption struct {
	logger *log.Logger
}

// WithLogger returns AppOption to setup application debug logger.
func WithLogger(logger *log.Logger) AppOption {
	return func(opt *appOption) {
		opt.logger = logger
	}
}
