package phrase

import (
	"io"
	"strings"
)

// Separator joins the words of a passphrase.
const Separator = "-"

// GeneratePassphrase draws one word from every dictionary, in order, and joins
// them with Separator. Any failing draw aborts the whole passphrase.
func GeneratePassphrase(dictionaries []Words, randSrc io.Reader) (string, error) {
	if len(dictionaries) == 0 {
		return "", ErrNoDictionaries
	}

	words := make([]string, len(dictionaries))
	for i, dictionary := range dictionaries {
		word, err := SampleWord(dictionary, randSrc)
		if err != nil {
			return "", err
		}
		words[i] = word
	}
	return strings.Join(words, Separator), nil
}

// GenerateEmojiphrase draws one emoji from every dictionary and returns the
// space-joined names along with the space-joined decoded icons. Index i of
// both strings comes from dictionary i.
func GenerateEmojiphrase(dictionaries []Emojis, randSrc io.Reader) (Emojiphrase, error) {
	if len(dictionaries) == 0 {
		return Emojiphrase{}, ErrNoDictionaries
	}

	names := make([]string, len(dictionaries))
	icons := make([]string, len(dictionaries))
	for i, dictionary := range dictionaries {
		emoji, err := SampleEmoji(dictionary, randSrc)
		if err != nil {
			return Emojiphrase{}, err
		}
		icon, err := DecodeIcon(emoji.Code)
		if err != nil {
			return Emojiphrase{}, err
		}
		names[i] = emoji.Name
		icons[i] = icon
	}

	return Emojiphrase{
		Names: strings.Join(names, " "),
		Icons: strings.Join(icons, " "),
	}, nil
}
