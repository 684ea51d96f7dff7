package phrase

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
)

func randomIndex(n int, randSrc io.Reader) (int, error) {
	if randSrc == nil {
		randSrc = rand.Reader
	}
	idx, err := rand.Int(randSrc, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(idx.Int64()), nil
}

// SampleWord picks one word uniformly at random and strips its spaces.
func SampleWord(dictionary Words, randSrc io.Reader) (string, error) {
	if len(dictionary) == 0 {
		return "", ErrEmptyDictionary
	}
	idx, err := randomIndex(len(dictionary), randSrc)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(dictionary[idx], " ", ""), nil
}

// SampleEmoji picks one emoji uniformly at random.
func SampleEmoji(dictionary Emojis, randSrc io.Reader) (Emoji, error) {
	if len(dictionary) == 0 {
		return Emoji{}, ErrEmptyDictionary
	}
	idx, err := randomIndex(len(dictionary), randSrc)
	if err != nil {
		return Emoji{}, err
	}
	return dictionary[idx], nil
}
