package suggest

import (
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/statikomand/komand"
)

// File returns a completer proposing filesystem paths. A leading ~ is
// expanded to the user home directory before listing.
func File() komand.Completer {
	return pathCompleter(nil)
}

// Dir behaves like File but proposes directories only.
func Dir() komand.Completer {
	return pathCompleter(func(entry fs.DirEntry) bool {
		return entry.IsDir()
	})
}

func pathCompleter(validator func(fs.DirEntry) bool) komand.Completer {
	return komand.CompleterFunc(func(partial string) []string {
		target := partial
		if strings.HasPrefix(target, "~") {
			expanded, err := homedir.Expand(target)
			if err != nil {
				return nil
			}
			target = expanded
		}

		dir, prefix := ".", ""
		switch {
		case target == "":
		case strings.HasSuffix(target, "/"):
			dir = target
		default:
			dir, prefix = path.Dir(target), path.Base(target)
		}

		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil
		}

		var candidates []string
		for _, entry := range entries {
			if !strings.HasPrefix(entry.Name(), prefix) {
				continue
			}
			if validator != nil && !validator(entry) {
				continue
			}
			candidates = append(candidates, path.Join(dir, entry.Name()))
		}
		return candidates
	})
}
