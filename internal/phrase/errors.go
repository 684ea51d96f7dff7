package phrase

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDictionary   = errors.New("empty dictionary")
	ErrNoDictionaries    = errors.New("no dictionaries")
	ErrMalformedIconCode = errors.New("malformed icon code")
)

// IconCodeError reports an icon code whose escape form could not be decoded.
type IconCodeError struct {
	Code   string
	Reason string
}

func (e *IconCodeError) Error() string {
	return fmt.Sprintf("malformed icon code %q: %s", e.Code, e.Reason)
}

func (e *IconCodeError) Unwrap() error { return ErrMalformedIconCode }
