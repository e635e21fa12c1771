package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/statikomand/komand"
)

// addBuiltins registers the help and exit commands every shell serves.
func (s *Shell) addBuiltins() {
	helpParser := komand.NewParser(komand.WithDescription("list commands, or show the usage of one"))
	// the positional completes registered command names
	helpParser.AddArgument([]string{"COMMAND"},
		komand.WithLabel("command"),
		komand.WithHelp("command to show usage for"),
		komand.WithCompleter(komand.CompleterFunc(s.completeCommandNames)))

	s.Add(&Command{
		Name:        "help",
		Description: "list declared commands",
		Parser:      helpParser,
		Run: func(_ context.Context, result *komand.Result) error {
			if name, ok := result.GetString("command"); ok {
				return s.printCommandUsage(name)
			}
			fmt.Print(s.renderCommandList())
			return nil
		},
	})

	s.Add(&Command{
		Name:        "exit",
		Description: "leave the shell",
		Run: func(_ context.Context, _ *komand.Result) error {
			return ErrExit
		},
	})
}

func (s *Shell) completeCommandNames(partial string) []string {
	return lo.Filter(s.order, func(name string, _ int) bool {
		return strings.HasPrefix(name, partial)
	})
}

func (s *Shell) printCommandUsage(name string) error {
	cmd, ok := s.commands[name]
	if !ok {
		return errors.Newf("unknown command %q", name)
	}
	fmt.Printf("%s\t%s\n", cmd.Name, cmd.Description)
	if usage := cmd.Parser.Usage(); usage != "" {
		fmt.Println(usage)
	}
	return nil
}

func (s *Shell) renderCommandList() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Command", "Description"})
	for _, cmd := range s.Commands() {
		t.AppendRow(table.Row{cmd.Name, cmd.Description})
	}
	return t.Render() + "\n"
}
