package dictionary

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"apassphrase/internal/phrase"
)

func loadWordsYAML(fsys fs.FS, name string) (phrase.Words, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	words, err := phrase.NewWords(entries...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return words, nil
}

// loadEmojis converts each single-key mapping into an Emoji record. Entries
// with no key or more than one key are rejected.
func loadEmojis(fsys fs.FS, name string) (phrase.Emojis, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var entries []map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	emojis := make([]phrase.Emoji, 0, len(entries))
	for i, entry := range entries {
		if len(entry) != 1 {
			return nil, fmt.Errorf("%s: entry %d has %d keys: %w", name, i, len(entry), ErrMalformedEntry)
		}
		for code, label := range entry {
			if code == "" || label == "" {
				return nil, fmt.Errorf("%s: entry %d is blank: %w", name, i, ErrMalformedEntry)
			}
			emojis = append(emojis, phrase.Emoji{Code: code, Name: label})
		}
	}

	dictionary, err := phrase.NewEmojis(emojis...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return dictionary, nil
}
