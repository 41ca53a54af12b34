package models

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// MinNameLength is the shortest accepted canonical name, in characters
	MinNameLength = 2
	// MaxNameLength is the longest accepted canonical name, in characters
	MaxNameLength = 100
)

var (
	// ErrNameEmpty is returned for names that are blank after trimming
	ErrNameEmpty = errors.New("name is required")
	// ErrNameLength is returned for names outside the accepted length
	ErrNameLength = errors.New("name must be between 2 and 100 characters")
	// ErrNameCharacters is returned for names with disallowed characters
	ErrNameCharacters = errors.New("name may only contain letters, spaces, apostrophes, hyphens and periods")
)

// Identity represents a registered person whose presence is recorded
type Identity struct {
	ID            int       `json:"id" db:"id"`
	CanonicalName string    `json:"canonical_name" db:"canonical_name"`
	Active        bool      `json:"active" db:"active"`
	RegisteredAt  time.Time `json:"registered_at" db:"registered_at"`
}

// DisplayName returns the canonical name in title case
func (i *Identity) DisplayName() string {
	words := strings.Split(i.CanonicalName, " ")
	for n, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError {
			continue
		}
		words[n] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// CanonicalizeName trims, collapses internal whitespace and lower-cases a raw
// display name, rejecting names that cannot identify a person.
func CanonicalizeName(raw string) (string, error) {
	name := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if name == "" {
		return "", ErrNameEmpty
	}

	length := utf8.RuneCountInString(name)
	if length < MinNameLength || length > MaxNameLength {
		return "", ErrNameLength
	}

	for _, char := range name {
		if unicode.IsLetter(char) || char == ' ' || char == '\'' || char == '-' || char == '.' {
			continue
		}
		return "", ErrNameCharacters
	}

	return name, nil
}
