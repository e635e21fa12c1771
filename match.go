package komand

import "github.com/cockroachdb/errors"

// Parse tokenizes raw and matches the tokens against the registered
// specifications. A token equal to a flag token always binds as that
// flag, even when a positional slot is still open. A value flag consumes
// the following token verbatim, so "-f --verbose" binds "--verbose" as
// the value of -f. Positionals bind left to right in declaration order,
// declared but absent arguments are simply missing from the result.
func (p *Parser) Parse(raw string) (*Result, error) {
	result := newResult()
	tokens := Tokenize(raw)
	nextPos := 0
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if arg := p.flagFor(token.Text); arg != nil {
			if arg.kind == KindFlag {
				result.set(arg.label, true)
				continue
			}
			if i+1 >= len(tokens) {
				return nil, errors.Wrapf(ErrMissingFlagValue, "flag %q", token.Text)
			}
			i++
			result.set(arg.label, tokens[i].Text)
			continue
		}
		if nextPos >= len(p.positionals) {
			return nil, errors.Wrapf(ErrUnexpectedToken, "%q at offset %d", token.Text, token.Start)
		}
		result.set(p.positionals[nextPos].label, token.Text)
		nextPos++
	}
	return result, nil
}
