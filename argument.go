package komand

// Kind describes how an argument consumes tokens during matching.
type Kind int

const (
	// KindFlag is a bare switch recorded as true when its token appears.
	KindFlag Kind = iota + 1
	// KindValueFlag consumes the token following its own as its value.
	KindValueFlag
	// KindPositional consumes one token by position.
	KindPositional
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindValueFlag:
		return "value flag"
	case KindPositional:
		return "positional"
	}
	return "unknown"
}

// Completer proposes completions for a partially typed argument value.
// Implementations shall treat an empty partial as "propose everything"
// and never report failure, an empty result is the degraded answer.
type Completer interface {
	Complete(partial string) []string
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(partial string) []string

// Complete implements Completer.
func (fn CompleterFunc) Complete(partial string) []string {
	return fn(partial)
}

// Argument is one registered argument specification. Arguments are
// created via Parser.AddArgument and never mutated afterwards.
type Argument struct {
	tokens    []string
	label     string
	help      string
	kind      Kind
	completer Completer
}

// Tokens returns the declared match tokens, in declaration order.
func (a *Argument) Tokens() []string {
	return append([]string(nil), a.tokens...)
}

// Label returns the label parse results are stored under.
func (a *Argument) Label() string { return a.label }

// Help returns the help text shown by Usage.
func (a *Argument) Help() string { return a.help }

// Kind returns how the argument consumes tokens.
func (a *Argument) Kind() Kind { return a.kind }

// Completer returns the attached completer, nil when none was declared.
func (a *Argument) Completer() Completer { return a.completer }

// complete delegates to the attached completer, an argument without one
// proposes nothing.
func (a *Argument) complete(partial string) []string {
	if a.completer == nil {
		return nil
	}
	return a.completer.Complete(partial)
}
