package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"apassphrase/internal/phrase"
)

func loadWordsText(fsys fs.FS, name string) (phrase.Words, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	defer file.Close()

	entries, err := readWordlist(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	words, err := phrase.NewWords(entries...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return words, nil
}

// readWordlist reads one word per line, skipping blank lines and # comments.
// Diceware lines such as the EFF list's "11111\tabacus" keep only the word.
func readWordlist(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if _, word, found := strings.Cut(text, "\t"); found {
			trimmed = strings.TrimSpace(word)
		}
		if trimmed == "" {
			return nil, fmt.Errorf("unexpected line %d: %q: %w", line, text, ErrMalformedEntry)
		}
		words = append(words, trimmed)
	}
	return words, scanner.Err()
}
