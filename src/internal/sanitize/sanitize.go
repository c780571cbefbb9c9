// Package sanitize turns raw console input into the typed values the catalog
// accepts. Everything here is syntax only: character classes, digit counts
// and integer ranges. Stock-dependent checks belong to the catalog.
package sanitize

import (
	"errors"
	"strconv"
	"strings"
)

const (
	maxTitle  = 512
	maxAuthor = 256
)

var (
	ErrInvalidTitle    = errors.New("title must be letters, spaces and commas")
	ErrInvalidAuthor   = errors.New("author must be letters and spaces")
	ErrInvalidISBN     = errors.New("ISBN must be 10 or 13 digits")
	ErrInvalidQuantity = errors.New("quantity must be digits only")
)

// CleanString trims and removes ASCII control characters except tab/newline/carriage
// return up to max bytes (if max <= 0, no truncation).
func CleanString(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
			if max > 0 && b.Len() >= max {
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func allOf(s string, ok func(rune) bool) bool {
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return true
}

// Title accepts a non-empty run of ASCII letters, whitespace and commas.
func Title(raw string) (string, error) {
	s := CleanString(raw, maxTitle)
	if s == "" || !allOf(s, func(r rune) bool { return isLetter(r) || isSpace(r) || r == ',' }) {
		return "", ErrInvalidTitle
	}
	return s, nil
}

// Author accepts a non-empty run of ASCII letters and whitespace.
func Author(raw string) (string, error) {
	s := CleanString(raw, maxAuthor)
	if s == "" || !allOf(s, func(r rune) bool { return isLetter(r) || isSpace(r) }) {
		return "", ErrInvalidAuthor
	}
	return s, nil
}

// NamePart is the title fragment used to find a book for removal. Any
// cleaned text is accepted, including the empty string.
func NamePart(raw string) string { return CleanString(raw, maxTitle) }

// ISBN parses a digits-only identifier whose integer value prints as 10 or
// 13 digits. Leading zeros are dropped by the parse, so "0123456789" is
// rejected. No checksum is verified.
func ISBN(raw string) (int64, error) {
	s := CleanString(raw, 0)
	if s == "" || !allOf(s, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return 0, ErrInvalidISBN
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidISBN
	}
	if l := len(strconv.FormatInt(n, 10)); l != 10 && l != 13 {
		return 0, ErrInvalidISBN
	}
	return n, nil
}

// Quantity parses a non-negative, digits-only count.
func Quantity(raw string) (int, error) {
	s := CleanString(raw, 0)
	if s == "" || !allOf(s, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return 0, ErrInvalidQuantity
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

// PositiveQuantity is Quantity restricted to values above zero.
func PositiveQuantity(raw string) (int, error) {
	n, err := Quantity(raw)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}
