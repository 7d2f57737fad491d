// Package wordpack loads the comma-joined .wdpck word lists a session draws
// from. Packs resolve from a configurable directory first, with a couple of
// embedded defaults as fallback so a fresh checkout is playable. Commas
// inside words were already replaced with spaces at fetch time, so a plain
// split is safe here.
package wordpack

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed packs/*.wdpck
var packsFS embed.FS

// Ext is the word-pack file extension.
const Ext = ".wdpck"

// ErrEmptyPack is returned when a pack file parses to zero words.
var ErrEmptyPack = errors.New("word pack contains no words")

// Pack is a named, non-empty word list.
type Pack struct {
	Name  string
	Words []string
}

// Parse splits comma-joined pack data into words, trimming whitespace and
// dropping empties. An effectively empty pack is an error: sessions validate
// their pool at creation and never want a zero-word pack.
func Parse(name string, data []byte) (Pack, error) {
	var words []string
	for _, field := range strings.Split(string(data), ",") {
		word := strings.TrimSpace(field)
		if word != "" {
			words = append(words, word)
		}
	}
	if len(words) == 0 {
		return Pack{}, fmt.Errorf("%s: %w", name, ErrEmptyPack)
	}
	return Pack{Name: strings.TrimSuffix(name, Ext), Words: words}, nil
}

// Load resolves a pack by name, preferring dir over the embedded defaults.
// The name may be given with or without the .wdpck extension.
func Load(dir, name string) (Pack, error) {
	filename := name
	if !strings.HasSuffix(filename, Ext) {
		filename += Ext
	}
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, filename)); err == nil {
			return Parse(filename, data)
		}
	}
	data, err := fs.ReadFile(packsFS, "packs/"+filename)
	if err != nil {
		return Pack{}, fmt.Errorf("word pack %q not found", name)
	}
	return Parse(filename, data)
}

// List returns the pack names available from dir and the embedded defaults,
// sorted and de-duplicated, without extensions.
func List(dir string) []string {
	seen := make(map[string]bool)

	entries, _ := fs.ReadDir(packsFS, "packs")
	for _, entry := range entries {
		seen[strings.TrimSuffix(entry.Name(), Ext)] = true
	}
	if dir != "" {
		files, _ := os.ReadDir(dir)
		for _, file := range files {
			if !file.IsDir() && strings.HasSuffix(file.Name(), Ext) {
				seen[strings.TrimSuffix(file.Name(), Ext)] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
