package komand

import "strings"

// Complete proposes continuations for raw, with the cursor assumed at
// the end of the string. The trailing token is the one being completed,
// trailing whitespace means a fresh empty token is being started.
// Exactly one of three cases applies:
//
//  1. the active token starts with a dash and is no complete flag
//     token, propose all flag tokens it prefixes
//  2. the token before the active one is a value flag token, delegate
//     to that flag's completer
//  3. otherwise the active token fills a positional slot, delegate to
//     the completer of the slot the preceding tokens leave open
//
// Complete never fails. Input that matches no case, exceeds the declared
// positionals or hits an argument without completer yields nil.
func (p *Parser) Complete(raw string) []string {
	tokens := Tokenize(raw)

	active := Token{Start: len(raw), End: len(raw)}
	if n := len(tokens); n > 0 && tokens[n-1].End == len(raw) {
		active = tokens[n-1]
		tokens = tokens[:n-1]
	}

	if strings.HasPrefix(active.Text, "-") && p.flagFor(active.Text) == nil {
		return p.completeFlagTokens(active.Text)
	}

	if n := len(tokens); n > 0 {
		if arg := p.flagFor(tokens[n-1].Text); arg != nil && arg.kind == KindValueFlag {
			return arg.complete(active.Text)
		}
	}

	if p.flagFor(active.Text) != nil {
		// a finished flag token completes nothing by itself
		return nil
	}
	return p.completePositional(tokens, active.Text)
}

// completeFlagTokens returns every registered flag token with the given
// prefix, in declaration order.
func (p *Parser) completeFlagTokens(prefix string) []string {
	var candidates []string
	for _, arg := range p.flags {
		for _, token := range arg.tokens {
			if strings.HasPrefix(token, prefix) {
				candidates = append(candidates, token)
			}
		}
	}
	return candidates
}

// completePositional replays the tokens before the active one the same
// way Parse consumes them to find the positional slot the active token
// would fill.
func (p *Parser) completePositional(before []Token, partial string) []string {
	slot := 0
	skipValue := false
	for _, token := range before {
		if skipValue {
			skipValue = false
			continue
		}
		if arg := p.flagFor(token.Text); arg != nil {
			skipValue = arg.kind == KindValueFlag
			continue
		}
		slot++
	}
	if slot >= len(p.positionals) {
		return nil
	}
	return p.positionals[slot].complete(partial)
}
