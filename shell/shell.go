// Package shell dispatches raw input lines to named commands, each
// backed by a komand parser. The first token selects the command, the
// rest of the line is handed to its parser for matching or completion.
package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/statikomand/komand"
	"github.com/statikomand/komand/cobrautil"
	"github.com/statikomand/komand/configs"
	"github.com/statikomand/komand/framework"
)

// ErrExit indicates the user asked to leave the shell.
var ErrExit = errors.New("exited")

// Command couples a name with the parser matching its arguments and the
// handler run after a successful parse. A nil Run prints the parse
// result in the configured format.
type Command struct {
	Name        string
	Description string
	Parser      *komand.Parser
	Run         func(ctx context.Context, result *komand.Result) error
}

// Shell routes input lines to registered commands.
type Shell struct {
	label    string
	format   Format
	commands map[string]*Command
	order    []string
}

// New builds a shell serving the commands declared in config plus the
// built-in help and exit commands. A nil config starts an empty shell
// with default settings.
func New(config *configs.Config) (*Shell, error) {
	s := &Shell{
		label:    "komand",
		format:   FormatTable,
		commands: make(map[string]*Command),
	}
	s.addBuiltins()
	if config != nil {
		if name := config.GetOutputFormat(); name != "" {
			s.format = NameFormat(name)
		}
		for _, cc := range config.Commands {
			parser, err := cc.BuildParser()
			if err != nil {
				return nil, errors.Wrapf(err, "configured command %q", cc.Name)
			}
			if err := s.Add(&Command{
				Name:        cc.Name,
				Description: cc.Description,
				Parser:      parser,
			}); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Label returns the prompt label.
func (s *Shell) Label() string { return s.label }

// Commands returns the registered commands in registration order.
func (s *Shell) Commands() []*Command {
	return lo.Map(s.order, func(name string, _ int) *Command {
		return s.commands[name]
	})
}

// Add registers one command under its name.
func (s *Shell) Add(cmd *Command) error {
	if cmd.Name == "" {
		return errors.New("command name must not be empty")
	}
	if strings.ContainsAny(cmd.Name, " \t") {
		return errors.Newf("command name %q contains blanks", cmd.Name)
	}
	if _, ok := s.commands[cmd.Name]; ok {
		return errors.Newf("command %q already registered", cmd.Name)
	}
	if cmd.Parser == nil {
		cmd.Parser = komand.NewParser()
	}
	s.commands[cmd.Name] = cmd
	s.order = append(s.order, cmd.Name)
	return nil
}

// Handle registers a command derived from a tagged parameter struct.
// The use and desc tags of the embedded framework.ParamBase name and
// describe the command, the struct fields declare its arguments. The
// handler receives a fresh bound instance per invocation.
func Handle[T any](s *Shell, handler func(ctx context.Context, param *T) error) error {
	probe := new(T)
	use, desc := framework.Use(probe)
	if use == "" {
		return errors.New("param struct misses use tag")
	}
	parser, err := framework.BuildParser(probe)
	if err != nil {
		return err
	}
	return s.Add(&Command{
		Name:        strings.Split(use, " ")[0],
		Description: desc,
		Parser:      parser,
		Run: func(ctx context.Context, result *komand.Result) error {
			param := new(T)
			if err := framework.Bind(result, param); err != nil {
				return err
			}
			return handler(ctx, param)
		},
	})
}

// AddCobraCommand mirrors a cobra command into the shell, matching and
// completing its flags through a komand parser instead of cobra's own
// argv parsing.
func (s *Shell) AddCobraCommand(cmd *cobra.Command, run func(ctx context.Context, result *komand.Result) error) error {
	parser, err := cobrautil.NewParser(cmd)
	if err != nil {
		return err
	}
	return s.Add(&Command{
		Name:        strings.Split(cmd.Use, " ")[0],
		Description: cmd.Short,
		Parser:      parser,
		Run:         run,
	})
}

// Dispatch resolves the command selected by the first token of line and
// parses the remainder against its parser. No handler is run.
func (s *Shell) Dispatch(line string) (*Command, *komand.Result, error) {
	tokens := komand.Tokenize(line)
	if len(tokens) == 0 {
		return nil, nil, errors.New("empty command line")
	}
	cmd, ok := s.commands[tokens[0].Text]
	if !ok {
		return nil, nil, errors.Newf("unknown command %q", tokens[0].Text)
	}
	result, err := cmd.Parser.Parse(line[tokens[0].End:])
	if err != nil {
		return cmd, nil, errors.Wrapf(err, "command %q", cmd.Name)
	}
	return cmd, result, nil
}

// Process runs one input line. Blank lines are ignored, commands
// without handler print their parse result.
func (s *Shell) Process(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	cmd, result, err := s.Dispatch(line)
	if err != nil {
		return err
	}
	if cmd.Run == nil {
		fmt.Print(renderResult(result, s.format))
		return nil
	}
	return cmd.Run(context.Background(), result)
}

// Complete proposes ordered continuations for input. While the first
// token is being typed command names are proposed, afterwards the
// matched command's parser completes the remainder.
func (s *Shell) Complete(input string) []string {
	tokens := komand.Tokenize(input)
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0].End == len(input)) {
		prefix := ""
		if len(tokens) == 1 {
			prefix = tokens[0].Text
		}
		return lo.Filter(s.order, func(name string, _ int) bool {
			return strings.HasPrefix(name, prefix)
		})
	}
	cmd, ok := s.commands[tokens[0].Text]
	if !ok {
		return nil
	}
	return cmd.Parser.Complete(input[tokens[0].End:])
}

// Suggestions returns completion candidates with descriptions, shaped
// for prompt style UIs. Command name candidates carry the command
// description, delegated candidates an empty one.
func (s *Shell) Suggestions(input string) map[string]string {
	suggestions := make(map[string]string)
	for _, candidate := range s.Complete(input) {
		if cmd, ok := s.commands[candidate]; ok {
			suggestions[candidate] = cmd.Description
			continue
		}
		suggestions[candidate] = ""
	}
	return suggestions
}
