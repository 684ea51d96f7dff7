// Package dictionary loads the word and emoji dictionaries that passphrases
// and emojiphrases are drawn from.
//
// Dictionaries are looked up by name in a file system laid out as
//
//	words/<name>.yaml   YAML list of words
//	words/<name>.txt    one word per line, diceware lines ("11111\tabacus") accepted
//	emoji/<name>.yaml   YAML list of single-key mappings, icon code to name
//
// The built-in set is embedded in the binary; LoadDir reads the same layout
// from disk.
package dictionary

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"apassphrase/internal/phrase"
)

//go:embed data
var builtin embed.FS

// Dictionary names in the order their entries appear in a phrase.
var (
	WordNames  = []string{"colours", "animals", "verbs", "adverbs", "adjectives"}
	EmojiNames = []string{"sports", "animals", "foods", "weathers"}
)

var ErrMalformedEntry = errors.New("malformed dictionary entry")

// Set is a complete, ordered collection of dictionaries.
type Set struct {
	Words  []phrase.Words
	Emojis []phrase.Emojis
}

// Default returns the built-in dictionaries.
func Default() (*Set, error) {
	data, err := fs.Sub(builtin, "data")
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// LoadDir reads dictionaries from dir. Every name in WordNames and EmojiNames
// must be present.
func LoadDir(dir string) (*Set, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("dictionary dir: %w", err)
	}
	return Load(os.DirFS(dir))
}

// Load reads every dictionary named in WordNames and EmojiNames from fsys.
func Load(fsys fs.FS) (*Set, error) {
	set := &Set{
		Words:  make([]phrase.Words, 0, len(WordNames)),
		Emojis: make([]phrase.Emojis, 0, len(EmojiNames)),
	}

	for _, name := range WordNames {
		words, err := loadWords(fsys, name)
		if err != nil {
			return nil, err
		}
		set.Words = append(set.Words, words)
	}

	for _, name := range EmojiNames {
		emojis, err := loadEmojis(fsys, path.Join("emoji", name+".yaml"))
		if err != nil {
			return nil, err
		}
		set.Emojis = append(set.Emojis, emojis)
	}

	return set, nil
}

func loadWords(fsys fs.FS, name string) (phrase.Words, error) {
	yamlPath := path.Join("words", name+".yaml")
	if _, err := fs.Stat(fsys, yamlPath); err == nil {
		return loadWordsYAML(fsys, yamlPath)
	}

	txtPath := path.Join("words", name+".txt")
	if _, err := fs.Stat(fsys, txtPath); err == nil {
		return loadWordsText(fsys, txtPath)
	}

	return nil, fmt.Errorf("word dictionary %q: %w", name, fs.ErrNotExist)
}
