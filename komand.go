// Package komand parses raw command strings against declared argument
// specifications and proposes completions for partial input. All values
// stay strings, interpretation is left to the caller.
package komand

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parser holds argument specifications and matches raw command lines
// against them. Declarations mutate the parser, so finish all AddArgument
// calls before sharing it. Parse and Complete never mutate and are safe
// for concurrent use on a fully declared parser.
type Parser struct {
	description string
	arguments   []*Argument
	flags       []*Argument
	positionals []*Argument
	byToken     map[string]*Argument
}

// ParserOption configures a Parser during construction.
type ParserOption func(p *Parser)

// WithDescription sets the description rendered by Usage.
func WithDescription(description string) ParserOption {
	return func(p *Parser) {
		p.description = description
	}
}

// NewParser returns a parser with no argument specifications.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		byToken: make(map[string]*Argument),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Description returns the parser description.
func (p *Parser) Description() string { return p.description }

// Arguments returns all registered specifications in declaration order.
func (p *Parser) Arguments() []*Argument {
	return append([]*Argument(nil), p.arguments...)
}

// ArgumentOption configures one argument declaration.
type ArgumentOption func(opt *argumentOpt)

type argumentOpt struct {
	label     string
	help      string
	completer Completer
	boolean   bool
}

// WithLabel overrides the label the parsed value is exposed under.
func WithLabel(label string) ArgumentOption {
	return func(opt *argumentOpt) {
		opt.label = label
	}
}

// WithHelp sets the help text rendered by Usage.
func WithHelp(help string) ArgumentOption {
	return func(opt *argumentOpt) {
		opt.help = help
	}
}

// WithCompleter attaches a completer proposing values for the argument.
func WithCompleter(c Completer) ArgumentOption {
	return func(opt *argumentOpt) {
		opt.completer = c
	}
}

// WithBoolean declares a flag as a bare switch consuming no value token.
func WithBoolean() ArgumentOption {
	return func(opt *argumentOpt) {
		opt.boolean = true
	}
}

// AddArgument registers one argument specification. The forms are
//
//	AddArgument([]string{"-f", "--flag1"}, ...)  value flag with aliases
//	AddArgument([]string{"-v"}, WithBoolean())   bare switch
//	AddArgument([]string{"POS1"}, ...)           named positional
//	AddArgument(nil, ...)                        unnamed positional
//
// Tokens starting with a dash declare a flag and must all be flags.
// A positional accepts exactly one bare name, or none at all, in which
// case its label defaults to the 1-based positional ordinal as POS<n>.
// Flags default their label to the first token stripped of leading
// dashes. The parser is left untouched when an error is returned.
func (p *Parser) AddArgument(nameOrFlags []string, opts ...ArgumentOption) error {
	opt := &argumentOpt{}
	for _, o := range opts {
		o(opt)
	}

	seen := make(map[string]struct{}, len(nameOrFlags))
	for i, token := range nameOrFlags {
		if token == "" {
			return errors.Wrapf(ErrInvalidSpecification, "empty string for name or flag #%d", i)
		}
		if _, ok := seen[token]; ok {
			return errors.Wrapf(ErrDuplicateMatchToken, "%q declared twice in one argument", token)
		}
		seen[token] = struct{}{}
		if _, ok := p.byToken[token]; ok {
			return errors.Wrapf(ErrDuplicateMatchToken, "%q", token)
		}
	}

	arg := &Argument{
		help:      opt.help,
		completer: opt.completer,
	}
	switch {
	case len(nameOrFlags) == 0:
		if opt.boolean {
			return errors.Wrap(ErrInvalidSpecification, "positional argument cannot be boolean")
		}
		arg.kind = KindPositional
		arg.label = opt.label
		if arg.label == "" {
			arg.label = fmt.Sprintf("POS%d", len(p.positionals)+1)
		}
	case strings.HasPrefix(nameOrFlags[0], "-"):
		for _, token := range nameOrFlags {
			if !strings.HasPrefix(token, "-") {
				return errors.Wrapf(ErrInvalidSpecification, "%q mixes a bare name into a flag list", token)
			}
		}
		arg.kind = KindValueFlag
		if opt.boolean {
			arg.kind = KindFlag
		}
		arg.tokens = append([]string(nil), nameOrFlags...)
		arg.label = opt.label
		if arg.label == "" {
			arg.label = strings.TrimLeft(nameOrFlags[0], "-")
		}
		if arg.label == "" {
			return errors.Wrapf(ErrInvalidSpecification, "flag %q yields an empty label", nameOrFlags[0])
		}
	default:
		if len(nameOrFlags) > 1 {
			return errors.Wrapf(ErrInvalidSpecification, "positional argument accepts a single name, got %d", len(nameOrFlags))
		}
		if opt.boolean {
			return errors.Wrap(ErrInvalidSpecification, "positional argument cannot be boolean")
		}
		arg.kind = KindPositional
		arg.tokens = []string{nameOrFlags[0]}
		arg.label = opt.label
		if arg.label == "" {
			arg.label = nameOrFlags[0]
		}
	}

	p.arguments = append(p.arguments, arg)
	if arg.kind == KindPositional {
		p.positionals = append(p.positionals, arg)
	} else {
		p.flags = append(p.flags, arg)
	}
	for _, token := range arg.tokens {
		p.byToken[token] = arg
	}
	return nil
}

// flagFor returns the flag argument matching token exactly, nil when the
// token is no flag. Positional names share the token namespace but never
// match as flags.
func (p *Parser) flagFor(token string) *Argument {
	arg, ok := p.byToken[token]
	if !ok || arg.kind == KindPositional {
		return nil
	}
	return arg
}
