package catalog

import (
	"fmt"
	"strings"
)

// Record is a single book entry held by the Catalog.
type Record struct {
	Title    string `yaml:"title" json:"title"`
	Author   string `yaml:"author" json:"author"`
	ISBN     int64  `yaml:"isbn" json:"isbn"`
	Quantity int    `yaml:"quantity" json:"quantity"`
}

// SameEntry reports whether r and o share title, author and ISBN exactly.
// Quantity is not part of a record's identity.
func (r Record) SameEntry(o Record) bool {
	return r.Title == o.Title && r.Author == o.Author && r.ISBN == o.ISBN
}

// matchesRemoval is the looser lookup used for removal: exact ISBN plus a
// case-insensitive substring of the title.
func (r Record) matchesRemoval(namePart string, isbn int64) bool {
	if r.ISBN != isbn {
		return false
	}
	return strings.Contains(strings.ToLower(r.Title), strings.ToLower(namePart))
}

// FormatLogLine renders r in the fixed layout written to the addition log.
func FormatLogLine(r Record) string {
	return fmt.Sprintf("Title: %s, Author: %s, ISBN: %d, Quantity: %d", r.Title, r.Author, r.ISBN, r.Quantity)
}
