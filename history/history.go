// Package history records executed shell lines as JSON lines in the
// workspace, one Entry per line, newest appended last.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

const historyFileName = ".komand_history"

// Entry is one recorded shell line.
type Entry struct {
	Line string
	Ts   int64
}

// Helper appends and lists shell history.
type Helper struct {
	entries []Entry
	file    *os.File
}

// New reads the history stored under workspace and returns a helper
// appending to it. A missing or unreadable file starts empty, corrupt
// lines are skipped.
func New(workspace string) *Helper {
	filePath := path.Join(workspace, historyFileName)

	var entries []Entry
	if readFile, err := os.Open(filePath); err == nil {
		scanner := bufio.NewScanner(readFile)
		for scanner.Scan() {
			entry := Entry{}
			if err := json.Unmarshal(scanner.Bytes(), &entry); err == nil {
				entries = append(entries, entry)
			}
		}
		readFile.Close()
	}

	// open file and create if non-existent
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Println("[WARN] failed to open history file", err.Error())
	}

	return &Helper{
		entries: entries,
		file:    file,
	}
}

// Append records one executed line, blank lines are skipped.
func (h *Helper) Append(line string) {
	if len(strings.TrimSpace(line)) == 0 {
		return
	}
	entry := Entry{
		Line: line,
		Ts:   time.Now().Unix(),
	}
	if h.file != nil {
		if bs, err := json.Marshal(entry); err == nil {
			h.file.Write(bs)
			h.file.WriteString("\n")
		}
	}
	h.entries = append(h.entries, entry)
}

// List returns all entries whose line starts with prefix.
func (h *Helper) List(prefix string) []Entry {
	return lo.Filter(h.entries, func(entry Entry, _ int) bool {
		return strings.HasPrefix(entry.Line, prefix)
	})
}

// Lines returns all recorded lines oldest first, for seeding prompt
// history.
func (h *Helper) Lines() []string {
	ordered := append([]Entry(nil), h.entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Ts < ordered[j].Ts
	})
	return lo.Map(ordered, func(entry Entry, _ int) string {
		return entry.Line
	})
}

// Close flushes and closes the backing file.
func (h *Helper) Close() {
	if h.file != nil {
		h.file.Close()
	}
}
