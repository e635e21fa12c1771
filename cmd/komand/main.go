package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/statikomand/komand"
	"github.com/statikomand/komand/bapps"
	"github.com/statikomand/komand/configs"
	"github.com/statikomand/komand/framework"
	"github.com/statikomand/komand/shell"
	"github.com/statikomand/komand/version"
)

var (
	configPath     = flag.String("config", ".komand_config", "config folder path")
	oneLineCommand = flag.String("olc", "", "one line command execution mode")
	simple         = flag.Bool("simple", false, "use simple ui without suggestion and history")
	restServer     = flag.Bool("rest", false, "expose the shell as a rest server")
	webPort        = flag.Int("port", 8002, "listening port for rest server")
	printVersion   = flag.Bool("version", false, "print version")
)

func main() {
	flag.Parse()

	var appFactory func(config *configs.Config) bapps.App

	switch {
	// Print current komand version
	case *printVersion:
		fmt.Println("komand version", version.Version)
		return
	case *simple:
		appFactory = func(*configs.Config) bapps.App { return bapps.NewSimpleApp() }
	case len(*oneLineCommand) > 0:
		appFactory = func(*configs.Config) bapps.App { return bapps.NewOlcApp(*oneLineCommand) }
	case *restServer:
		appFactory = func(*configs.Config) bapps.App { return bapps.NewRestApp(*webPort) }
	default:
		defer handleExit()
		// open file and create if non-existent
		file, err := os.OpenFile("komand_debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()

		logger := log.New(file, "[komand] ", log.LstdFlags)

		appFactory = func(config *configs.Config) bapps.App {
			return bapps.NewPromptApp(config, bapps.WithLogger(logger))
		}
	}

	config, err := configs.NewConfig(*configPath)
	if err != nil {
		// run by default, just printing warning.
		fmt.Println("[WARN] load config file failed, running in default setting", err.Error())
	}

	s, err := shell.New(config)
	if err != nil {
		fmt.Println("failed to setup shell:", err.Error())
		os.Exit(1)
	}
	if err := registerPlayground(s); err != nil {
		fmt.Println("failed to register playground commands:", err.Error())
		os.Exit(1)
	}

	app := appFactory(config)
	app.Run(s)
}

// tokenizeParam declares the built-in tokenize command.
type tokenizeParam struct {
	framework.ParamBase `use:"tokenize" desc:"show how a line splits into tokens"`
	Text                string `name:"TEXT" desc:"line to tokenize, quote it to include blanks"`
}

// registerPlayground adds commands useful for exploring the parser.
func registerPlayground(s *shell.Shell) error {
	return shell.Handle(s, func(_ context.Context, param *tokenizeParam) error {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Text", "Start", "End", "Quoted"})
		for _, token := range komand.Tokenize(param.Text) {
			t.AppendRow(table.Row{token.Text, token.Start, token.End, token.Quoted})
		}
		t.Render()
		return nil
	})
}

// handleExit is the fix for go-prompt output hi-jack fix.
func handleExit() {
	rawModeOff := exec.Command("/bin/stty", "-raw", "echo")
	rawModeOff.Stdin = os.Stdin
	_ = rawModeOff.Run()
	rawModeOff.Wait()
}
