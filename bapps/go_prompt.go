package bapps

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/statikomand/komand/configs"
	"github.com/statikomand/komand/history"
	"github.com/statikomand/komand/shell"
)

// PromptApp wraps go-prompt as application.
type PromptApp struct {
	exited         bool
	sh             *shell.Shell
	suggestHistory bool
	historyHelper  *history.Helper
	logger         *log.Logger
	prompt         *prompt.Prompt
}

// NewPromptApp builds the interactive prompt application. History is
// stored under the configured workspace path, Ctrl-R toggles between
// command suggestions and history suggestions.
func NewPromptApp(config *configs.Config, opts ...AppOption) App {
	opt := &appOption{}
	for _, o := range opts {
		o(opt)
	}

	// use workspace path to open&store history log
	hh := history.New(config.WorkspacePath)
	pa := &PromptApp{
		historyHelper: hh,
		logger:        opt.logger,
	}

	p := prompt.New(pa.promptExecute, pa.completeInput,
		prompt.OptionTitle("komand"),
		prompt.OptionHistory(hh.Lines()),
		prompt.OptionLivePrefix(pa.livePrefix),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			// setup exit command
			return breakline && strings.ToLower(strings.TrimSpace(in)) == "exit"
		}),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlR,
			Fn: func(_ *prompt.Buffer) {
				pa.suggestHistory = !pa.suggestHistory
			},
		}),
		// setup InputParser with `TearDown` overrided
		prompt.OptionParser(newInputParser()),
	)
	pa.prompt = p
	return pa
}

// Run starts the prompt loop until the exit command.
func (a *PromptApp) Run(s *shell.Shell) {
	a.sh = s
	a.prompt.Run()
	a.historyHelper.Close()
}

// promptExecute actual execution logic entry.
func (a *PromptApp) promptExecute(in string) {
	in = strings.TrimSpace(in)

	err := a.sh.Process(in)
	a.historyHelper.Append(in)
	// back to normal mode
	a.suggestHistory = false

	if errors.Is(err, shell.ErrExit) {
		fmt.Println("Bye!")
		a.exited = true
		return
	}
	if err != nil {
		fmt.Println(color.RedString(err.Error()))
		if a.logger != nil {
			a.logger.Printf("[DEBUG] process %q failed: %v", in, err)
		}
	}
}

// completeInput auto-complete logic entry.
func (a *PromptApp) completeInput(d prompt.Document) []prompt.Suggest {
	input := d.CurrentLineBeforeCursor()
	if a.suggestHistory {
		return a.historySuggestions(input)
	}
	if input == "" {
		return nil
	}
	r := a.sh.Suggestions(input)
	s := make([]prompt.Suggest, 0, len(r))
	for text, description := range r {
		s = append(s, prompt.Suggest{
			Text:        text,
			Description: description,
		})
	}
	sort.Slice(s, func(i, j int) bool {
		return s[i].Text < s[j].Text
	})
	return s
}

// historySuggestions returns suggestion from command history.
func (a *PromptApp) historySuggestions(input string) []prompt.Suggest {
	entries := a.historyHelper.List(input)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Ts > entries[j].Ts
	})

	lastIdx := strings.LastIndex(input, " ") + 1
	return lo.Map(entries, func(entry history.Entry, _ int) prompt.Suggest {
		t := time.Unix(entry.Ts, 0)
		return prompt.Suggest{
			Text:        entry.Line[lastIdx:],
			Description: t.Format("2006-01-02 15:04:05"),
		}
	})
}

// livePrefix implements dynamic change prefix.
func (a *PromptApp) livePrefix() (string, bool) {
	if a.exited {
		return "", false
	}
	return fmt.Sprintf("%s > ", a.sh.Label()), true
}
