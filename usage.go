package komand

import (
	"fmt"
	"strings"
)

// Usage renders the description and the declared arguments as a help
// text, positionals first, flags after.
func (p *Parser) Usage() string {
	sb := &strings.Builder{}
	if p.description != "" {
		sb.WriteString(p.description)
		sb.WriteString("\n")
	}
	if len(p.positionals) > 0 {
		sb.WriteString("\npositional arguments:\n")
		for _, arg := range p.positionals {
			writeUsageLine(sb, arg.label, arg.help)
		}
	}
	if len(p.flags) > 0 {
		sb.WriteString("\nflags:\n")
		for _, arg := range p.flags {
			display := strings.Join(arg.tokens, ", ")
			if arg.kind == KindValueFlag {
				display += " <value>"
			}
			writeUsageLine(sb, display, arg.help)
		}
	}
	return sb.String()
}

func writeUsageLine(sb *strings.Builder, display, help string) {
	if help == "" {
		fmt.Fprintf(sb, "  %s\n", display)
		return
	}
	fmt.Fprintf(sb, "  %-24s %s\n", display, help)
}
