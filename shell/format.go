package shell

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/statikomand/komand"
)

// Format selects how parse results render.
type Format int32

const (
	FormatTable Format = iota + 1
	FormatJSON
	FormatPlain
)

var name2Format = map[string]Format{
	"table": FormatTable,
	"json":  FormatJSON,
	"plain": FormatPlain,
}

// NameFormat name to format mapping tool function, unknown names fall
// back to the table format.
func NameFormat(name string) Format {
	f, ok := name2Format[name]
	if !ok {
		return FormatTable
	}
	return f
}

// renderResult renders the bound labels and values of one parse result.
func renderResult(result *komand.Result, format Format) string {
	labels := result.Labels()
	switch format {
	case FormatJSON:
		bs, err := json.MarshalIndent(result.Values(), "", "  ")
		if err != nil {
			return err.Error() + "\n"
		}
		return string(bs) + "\n"
	case FormatPlain:
		sb := &strings.Builder{}
		for _, label := range labels {
			value, _ := result.Get(label)
			fmt.Fprintf(sb, "%s=%v\n", label, value)
		}
		return sb.String()
	default:
		if len(labels) == 0 {
			return "no arguments bound\n"
		}
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Label", "Value"})
		for _, label := range labels {
			value, _ := result.Get(label)
			t.AppendRow(table.Row{label, value})
		}
		return t.Render() + "\n"
	}
}
