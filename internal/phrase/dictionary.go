// Package phrase draws random entries from word and emoji dictionaries and
// assembles them into passphrases and emojiphrases.
package phrase

// Words is an ordered, non-empty list of candidate words.
type Words []string

// NewWords returns a word dictionary, failing with ErrEmptyDictionary when no
// entries are given.
func NewWords(entries ...string) (Words, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyDictionary
	}
	return Words(entries), nil
}

// Emoji pairs an icon code with its display name.
type Emoji struct {
	Code string
	Name string
}

// Emojis is an ordered, non-empty list of candidate emoji.
type Emojis []Emoji

func NewEmojis(entries ...Emoji) (Emojis, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyDictionary
	}
	return Emojis(entries), nil
}

// Emojiphrase holds the parallel name and icon strings of one emojiphrase.
type Emojiphrase struct {
	Names string
	Icons string
}
