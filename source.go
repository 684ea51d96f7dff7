package main

import (
	"context"
	"crypto/rand"
	"io"

	"apassphrase/internal/dictionary"
	"apassphrase/internal/phrase"
)

// phraseSource produces passphrases and emojiphrases, either locally or by
// asking a backend.
type phraseSource interface {
	Passphrase(ctx context.Context) (string, error)
	Emojiphrase(ctx context.Context) (phrase.Emojiphrase, error)
}

// localSource generates phrases from in-memory dictionaries.
type localSource struct {
	dictionaries *dictionary.Set
	randSrc      io.Reader
}

func newLocalSource(dictionaries *dictionary.Set) *localSource {
	return &localSource{dictionaries: dictionaries, randSrc: rand.Reader}
}

func (s *localSource) Passphrase(context.Context) (string, error) {
	return phrase.GeneratePassphrase(s.dictionaries.Words, s.randSrc)
}

func (s *localSource) Emojiphrase(context.Context) (phrase.Emojiphrase, error) {
	return phrase.GenerateEmojiphrase(s.dictionaries.Emojis, s.randSrc)
}
