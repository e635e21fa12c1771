package komand

// Token is one unit of a tokenized command line. Start and End are byte
// offsets into the raw input, with End pointing one past the last byte.
// For quoted tokens the span covers the quote characters while Text holds
// the content between them.
type Token struct {
	Text   string
	Start  int
	End    int
	Quoted bool
}

// Tokenize splits raw into tokens separated by unquoted whitespace. A
// token opening with a single or double quote runs to the matching quote,
// or to the end of the input when the quote is never closed, so partial
// lines coming from an interactive prompt still tokenize cleanly.
func Tokenize(raw string) []Token {
	var tokens []Token
	i := 0
	for i < len(raw) {
		if isBlank(raw[i]) {
			i++
			continue
		}
		start := i
		if quote := raw[i]; quote == '\'' || quote == '"' {
			i++
			textStart := i
			for i < len(raw) && raw[i] != quote {
				i++
			}
			text := raw[textStart:i]
			if i < len(raw) {
				// closing quote belongs to the span
				i++
			}
			tokens = append(tokens, Token{Text: text, Start: start, End: i, Quoted: true})
			continue
		}
		for i < len(raw) && !isBlank(raw[i]) {
			i++
		}
		tokens = append(tokens, Token{Text: raw[start:i], Start: start, End: i})
	}
	return tokens
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
