// Package cobrautil bridges cobra commands into komand parsers, so an
// existing cobra command tree can be matched and completed from raw
// strings instead of pre-split argv slices.
package cobrautil

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/statikomand/komand"
	"github.com/statikomand/komand/suggest"
)

// Flag annotation keys read during conversion.
const (
	// AnnotationValues lists static completion values for a flag.
	AnnotationValues = "values"
	// AnnotationSuggester names a completer in the suggest registry.
	AnnotationSuggester = "valuesSuggester"
)

// Positional names in the use string carrying path completion.
const (
	useArgFile      = "file"
	useArgDirectory = "directory"
)

// NewParser builds a parser matching the flags and positional arguments
// of cmd. Bool flags convert to bare flags, all others to value flags
// under "--name" plus the shorthand when one is declared. Bracketed
// segments of the use string, "backup [file]" style, convert to
// positionals in order.
func NewParser(cmd *cobra.Command) (*komand.Parser, error) {
	p := komand.NewParser(komand.WithDescription(cmd.Short))

	var convErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if convErr != nil {
			return
		}
		tokens := []string{"--" + flag.Name}
		if flag.Shorthand != "" {
			tokens = append([]string{"-" + flag.Shorthand}, tokens...)
		}

		opts := []komand.ArgumentOption{
			komand.WithLabel(flag.Name),
			komand.WithHelp(flag.Usage),
		}
		if flag.Value.Type() == "bool" {
			opts = append(opts, komand.WithBoolean())
		} else if completer := flagCompleter(flag); completer != nil {
			opts = append(opts, komand.WithCompleter(completer))
		}

		if err := p.AddArgument(tokens, opts...); err != nil {
			convErr = errors.Wrapf(err, "flag --%s", flag.Name)
		}
	})
	if convErr != nil {
		return nil, convErr
	}

	for _, name := range useArgs(cmd.Use) {
		opts := []komand.ArgumentOption{komand.WithLabel(name)}
		switch name {
		case useArgFile:
			opts = append(opts, komand.WithCompleter(suggest.File()))
		case useArgDirectory:
			opts = append(opts, komand.WithCompleter(suggest.Dir()))
		}
		if err := p.AddArgument(nil, opts...); err != nil {
			return nil, errors.Wrapf(err, "use argument [%s]", name)
		}
	}
	return p, nil
}

// useArgs returns the bracketed argument names of a use string in order.
func useArgs(use string) []string {
	var names []string
	for _, part := range strings.Split(use, " ") {
		if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
			names = append(names, part[1:len(part)-1])
		}
	}
	return names
}

func flagCompleter(flag *pflag.Flag) komand.Completer {
	if values, ok := flag.Annotations[AnnotationValues]; ok && len(values) > 0 {
		return suggest.Static(values...)
	}
	if names, ok := flag.Annotations[AnnotationSuggester]; ok && len(names) > 0 {
		return suggest.Named(names[0])
	}
	return nil
}
