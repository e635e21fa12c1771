package configs

import (
	"github.com/cockroachdb/errors"

	"github.com/statikomand/komand"
	"github.com/statikomand/komand/suggest"
)

// ArgumentConfig declares one argument of a configured command. Either
// Flags or Name is set, both empty declares an unnamed positional.
type ArgumentConfig struct {
	// flag tokens, "-f" "--flag1" style
	Flags []string `yaml:"flags,omitempty"`
	// bare name for a positional argument
	Name string `yaml:"name,omitempty"`
	// label the parsed value binds under
	Label string `yaml:"label,omitempty"`
	// help text shown by usage
	Help string `yaml:"help,omitempty"`
	// boolean marks a flag as bare switch
	Boolean bool `yaml:"boolean,omitempty"`
	// static completion values
	Values []string `yaml:"values,omitempty"`
	// name of a completer in the suggest registry, ignored when values is set
	Completer string `yaml:"completer,omitempty"`
}

// CommandConfig declares one shell command with its argument set.
type CommandConfig struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Arguments   []ArgumentConfig `yaml:"arguments,omitempty"`
}

// BuildParser converts the declared arguments into a komand parser.
func (c CommandConfig) BuildParser() (*komand.Parser, error) {
	p := komand.NewParser(komand.WithDescription(c.Description))
	for i, ac := range c.Arguments {
		tokens := ac.Flags
		if len(tokens) == 0 && ac.Name != "" {
			tokens = []string{ac.Name}
		}

		var opts []komand.ArgumentOption
		if ac.Label != "" {
			opts = append(opts, komand.WithLabel(ac.Label))
		}
		if ac.Help != "" {
			opts = append(opts, komand.WithHelp(ac.Help))
		}
		if ac.Boolean {
			opts = append(opts, komand.WithBoolean())
		}
		switch {
		case len(ac.Values) > 0:
			opts = append(opts, komand.WithCompleter(suggest.Static(ac.Values...)))
		case ac.Completer != "":
			opts = append(opts, komand.WithCompleter(suggest.Named(ac.Completer)))
		}

		if err := p.AddArgument(tokens, opts...); err != nil {
			return nil, errors.Wrapf(err, "argument #%d of command %q", i, c.Name)
		}
	}
	return p, nil
}

// defaultCommands seeds a fresh config with one sample command showing
// the declaration schema.
func defaultCommands() []CommandConfig {
	return []CommandConfig{
		{
			Name:        "greet",
			Description: "greet somebody by name",
			Arguments: []ArgumentConfig{
				{
					Name: "NAME",
					Help: "who to greet",
				},
				{
					Flags:  []string{"-g", "--greeting"},
					Label:  "greeting",
					Help:   "greeting word to use",
					Values: []string{"hello", "howdy", "welcome"},
				},
			},
		},
	}
}
