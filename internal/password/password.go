// Package password implements constrained-random password generation.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/mzaglia/passmint/internal/errors"
)

// Character classes. Special matches the ASCII punctuation set.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Special   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Length bounds for generated passwords.
const (
	MinLength = 8
	MaxLength = 128
)

// Criteria holds the constraints for one generation call.
// Lowercase letters are always included regardless of flags.
type Criteria struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"use_uppercase"`
	Numbers   bool `json:"use_numbers"`
	Special   bool `json:"use_special"`
}

// DefaultCriteria returns the criteria used when the caller specifies nothing.
func DefaultCriteria() Criteria {
	return Criteria{Length: 12, Uppercase: true, Numbers: true, Special: true}
}

// Validate checks that the criteria are generatable.
func (c Criteria) Validate() error {
	if c.Length < MinLength || c.Length > MaxLength {
		return errors.NewInvalidCriteria(
			fmt.Sprintf("password length must be between %d and %d characters", MinLength, MaxLength))
	}
	return nil
}

// Generate constructs a random password satisfying the criteria.
//
// One character from each enabled class (plus one lowercase, always) is made
// mandatory so short passwords still cover every enabled class; the rest of the
// length is filled with uniform draws over the combined alphabet, and the whole
// list is shuffled so mandatory characters are not predictably positioned.
// When the mandatory list alone exceeds the requested length the result is not
// truncated; with the [8,128] bound that case cannot arise in practice.
func Generate(c Criteria) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	alphabet := Lowercase
	var chars []byte

	if c.Uppercase {
		alphabet += Uppercase
		b, err := pick(Uppercase)
		if err != nil {
			return "", err
		}
		chars = append(chars, b)
	}
	if c.Numbers {
		alphabet += Digits
		b, err := pick(Digits)
		if err != nil {
			return "", err
		}
		chars = append(chars, b)
	}
	if c.Special {
		alphabet += Special
		b, err := pick(Special)
		if err != nil {
			return "", err
		}
		chars = append(chars, b)
	}

	b, err := pick(Lowercase)
	if err != nil {
		return "", err
	}
	chars = append(chars, b)

	for remaining := c.Length - len(chars); remaining > 0; remaining-- {
		b, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		chars = append(chars, b)
	}

	if err := shuffle(chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

// HasClass reports whether s contains at least one character from class.
func HasClass(s, class string) bool {
	return strings.ContainsAny(s, class)
}

// pick returns one uniformly random character from set.
func pick(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle performs a Fisher-Yates shuffle using crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// randInt returns a uniform random int in [0, max) using crypto/rand.
func randInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, errors.NewInternal(fmt.Errorf("random source failed: %w", err))
	}
	return int(n.Int64()), nil
}
