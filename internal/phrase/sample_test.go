package phrase_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apassphrase/internal/phrase"
)

func TestNewWords(t *testing.T) {
	t.Parallel()

	_, err := phrase.NewWords()
	require.ErrorIs(t, err, phrase.ErrEmptyDictionary)

	words, err := phrase.NewWords("red", "blue")
	require.NoError(t, err)
	assert.Equal(t, phrase.Words{"red", "blue"}, words)
}

func TestNewEmojis(t *testing.T) {
	t.Parallel()

	_, err := phrase.NewEmojis()
	require.ErrorIs(t, err, phrase.ErrEmptyDictionary)

	emojis, err := phrase.NewEmojis(phrase.Emoji{Code: "U0001F3C0", Name: "basketball"})
	require.NoError(t, err)
	assert.Len(t, emojis, 1)
}

func TestSampleWord(t *testing.T) {
	t.Parallel()

	t.Run("returns a dictionary entry without spaces", func(t *testing.T) {
		t.Parallel()

		dictionary := phrase.Words{"sky blue", "red", "light sea green"}
		allowed := map[string]bool{"skyblue": true, "red": true, "lightseagreen": true}

		for range 200 {
			word, err := phrase.SampleWord(dictionary, rand.Reader)
			require.NoError(t, err)
			assert.True(t, allowed[word], "unexpected word %q", word)
			assert.NotContains(t, word, " ")
		}
	})

	t.Run("covers every entry", func(t *testing.T) {
		t.Parallel()

		dictionary := phrase.Words{"a", "b", "c", "d", "e"}
		seen := make(map[string]int)
		for range 2000 {
			word, err := phrase.SampleWord(dictionary, nil)
			require.NoError(t, err)
			seen[word]++
		}
		assert.Len(t, seen, len(dictionary))
	})

	t.Run("uses the supplied random source", func(t *testing.T) {
		t.Parallel()

		zeros := bytes.NewReader(make([]byte, 64))
		word, err := phrase.SampleWord(phrase.Words{"first", "second"}, zeros)
		require.NoError(t, err)
		assert.Equal(t, "first", word)
	})

	t.Run("single entry", func(t *testing.T) {
		t.Parallel()

		word, err := phrase.SampleWord(phrase.Words{"only one"}, rand.Reader)
		require.NoError(t, err)
		assert.Equal(t, "onlyone", word)
	})

	t.Run("random source failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		_, err := phrase.SampleWord(phrase.Words{"a", "b"}, iotest.ErrReader(boom))
		require.ErrorIs(t, err, boom)
	})
}

func TestSampleWord_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		dictionary phrase.Words
	}{
		{name: "nil", dictionary: nil},
		{name: "zero length", dictionary: phrase.Words{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := phrase.SampleWord(tt.dictionary, rand.Reader)
			assert.ErrorIs(t, err, phrase.ErrEmptyDictionary)
		})
	}
}

func TestSampleEmoji(t *testing.T) {
	t.Parallel()

	dictionary := phrase.Emojis{
		{Code: "U0001F3C0", Name: "basketball"},
		{Code: "U26BD", Name: "soccer"},
		{Code: "🎾", Name: "tennis"},
	}

	seen := make(map[string]bool)
	for range 500 {
		emoji, err := phrase.SampleEmoji(dictionary, rand.Reader)
		require.NoError(t, err)
		assert.Contains(t, dictionary, emoji)
		seen[emoji.Name] = true
	}
	assert.Len(t, seen, len(dictionary))

	_, err := phrase.SampleEmoji(nil, rand.Reader)
	assert.ErrorIs(t, err, phrase.ErrEmptyDictionary)
	_, err = phrase.SampleEmoji(phrase.Emojis{}, rand.Reader)
	assert.ErrorIs(t, err, phrase.ErrEmptyDictionary)
}
