// Package strength scores passwords against a set of heuristics.
package strength

import (
	"fmt"
	"strings"

	"github.com/mzaglia/passmint/internal/breach"
	"github.com/mzaglia/passmint/internal/password"
)

// Rating is a named strength tier derived from the numeric score.
type Rating string

const (
	VeryWeak    Rating = "Very Weak"
	Weak        Rating = "Weak"
	Good        Rating = "Good"
	Strong      Rating = "Strong"
	VeryStrong  Rating = "Very Strong"
	Compromised Rating = "Compromised"
)

// Result holds the outcome of a strength evaluation.
// Score is the raw signed sum; penalties can push it below zero.
type Result struct {
	Score       int      `json:"score"`
	Rating      Rating   `json:"rating"`
	Suggestions []string `json:"suggestions"`
}

// commonPatterns are literal substrings that mark a password as predictable.
var commonPatterns = []string{"123", "abc", "qwerty", "password", "admin", "welcome"}

// Evaluate scores a password. The result is a pure function of the password;
// checker, when non-nil, adds a breach lookup whose positive finding overrides
// score and rating last. Checker failures are swallowed and evaluation degrades
// to the offline result.
func Evaluate(pw string, checker breach.Checker) Result {
	result := Result{Rating: VeryWeak, Suggestions: []string{}}

	switch n := len([]rune(pw)); {
	case n >= 12:
		result.Score += 30
	case n >= 8:
		result.Score += 20
	default:
		result.Suggestions = append(result.Suggestions, "Password is too short (minimum 8 characters)")
	}

	classes := []struct {
		set        string
		suggestion string
	}{
		{password.Lowercase, "Add lowercase letters"},
		{password.Uppercase, "Add uppercase letters"},
		{password.Digits, "Add numbers"},
		{password.Special, "Add special characters"},
	}
	for _, cl := range classes {
		if password.HasClass(pw, cl.set) {
			result.Score += 10
		} else {
			result.Suggestions = append(result.Suggestions, cl.suggestion)
		}
	}

	lower := strings.ToLower(pw)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			result.Score -= 20
			result.Suggestions = append(result.Suggestions, "Avoid common patterns")
			break
		}
	}

	if hasSequence(pw) {
		result.Score -= 15
		result.Suggestions = append(result.Suggestions, "Avoid sequential characters")
	}
	if hasRepeat(pw) {
		result.Score -= 15
		result.Suggestions = append(result.Suggestions, "Avoid repeated characters")
	}

	result.Rating = bucket(result.Score)

	if checker != nil {
		if br, err := checker.Check(pw); err == nil && br.Found {
			result.Score = 0
			result.Rating = Compromised
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("This password has been found in %d data breaches. DO NOT USE IT!", br.Count))
		}
	}

	return result
}

// bucket maps a raw signed score to its rating tier.
func bucket(score int) Rating {
	switch {
	case score >= 80:
		return VeryStrong
	case score >= 60:
		return Strong
	case score >= 40:
		return Good
	case score >= 20:
		return Weak
	default:
		return VeryWeak
	}
}

// hasSequence reports whether any three consecutive characters have strictly
// ascending code points (c, c+1, c+2).
func hasSequence(pw string) bool {
	r := []rune(pw)
	for i := 0; i+2 < len(r); i++ {
		if r[i+1] == r[i]+1 && r[i+2] == r[i+1]+1 {
			return true
		}
	}
	return false
}

// hasRepeat reports whether any three consecutive characters are identical.
func hasRepeat(pw string) bool {
	r := []rune(pw)
	for i := 0; i+2 < len(r); i++ {
		if r[i] == r[i+1] && r[i+1] == r[i+2] {
			return true
		}
	}
	return false
}
