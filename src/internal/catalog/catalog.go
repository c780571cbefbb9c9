// Package catalog holds the in-memory book inventory: the active records, the
// log of newly added records and the history of records removed at zero stock.
//
// The catalog never talks to a console. Callers hand it values that already
// passed syntax checks (see package sanitize) and branch on the returned
// Outcome or sentinel error.
package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Sink receives one line per newly created record, in creation order.
type Sink interface {
	Append(line string) error
}

// Catalog owns all record state. It is not safe for concurrent use.
type Catalog struct {
	active  []Record
	added   []Record
	removed []Record
	sink    Sink
	log     *slog.Logger
}

// New returns an empty Catalog writing additions to sink. A nil logger falls
// back to slog.Default.
func New(sink Sink, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{sink: sink, log: logger}
}

// Add merges the record into an existing entry with the same title, author
// and ISBN, or creates a new entry and appends it to the addition log.
// The only failure once inputs are well formed is a sink write error, in
// which case the catalog is left unchanged.
func (c *Catalog) Add(title, author string, isbn int64, quantity int) (Result, error) {
	if quantity < 0 {
		return Result{}, fmt.Errorf("%w: cannot add %d copies", ErrInvalidQuantity, quantity)
	}
	rec := Record{Title: title, Author: author, ISBN: isbn, Quantity: quantity}

	if i := c.indexOf(rec); i >= 0 {
		c.active[i].Quantity += quantity
		c.log.Debug("book merged", "isbn", isbn, "added", quantity, "quantity", c.active[i].Quantity)
		return Result{Outcome: Merged, Record: c.active[i]}, nil
	}

	if err := c.sink.Append(FormatLogLine(rec)); err != nil {
		c.log.Error("log sink append failed", "isbn", isbn, "err", err)
		return Result{}, fmt.Errorf("%w: %w", ErrSink, err)
	}
	c.active = append(c.active, rec)
	c.added = append(c.added, rec)
	c.log.Debug("book created", "isbn", isbn, "quantity", quantity)
	return Result{Outcome: Created, Record: rec}, nil
}

// List returns a snapshot of the active records in insertion order.
func (c *Catalog) List() []Record {
	return slices.Clone(c.active)
}

// Len is the number of active records.
func (c *Catalog) Len() int { return len(c.active) }

// FindByISBN returns the first active record with the given ISBN.
func (c *Catalog) FindByISBN(isbn int64) (Record, bool) {
	for _, r := range c.active {
		if r.ISBN == isbn {
			return r, true
		}
	}
	return Record{}, false
}

// Match returns the first active record whose ISBN equals isbn and whose
// title contains namePart, ignoring case. It is the lookup Remove uses.
func (c *Catalog) Match(namePart string, isbn int64) (Record, bool) {
	if i := c.matchIndex(namePart, isbn); i >= 0 {
		return c.active[i], true
	}
	return Record{}, false
}

// Remove takes amount copies off the first record found by Match. A record
// whose stock reaches zero leaves the active set for the removal history.
// It returns ErrNotFound when nothing matches and ErrInvalidQuantity when
// amount is not in 1..stock; in both cases nothing changes.
func (c *Catalog) Remove(namePart string, isbn int64, amount int) (Result, error) {
	i := c.matchIndex(namePart, isbn)
	if i < 0 {
		return Result{}, fmt.Errorf("%w: %q with ISBN %d", ErrNotFound, namePart, isbn)
	}
	rec := &c.active[i]
	if amount <= 0 || amount > rec.Quantity {
		return Result{}, fmt.Errorf("%w: cannot remove %d of %d in stock", ErrInvalidQuantity, amount, rec.Quantity)
	}

	rec.Quantity -= amount
	if rec.Quantity > 0 {
		c.log.Debug("book quantity updated", "isbn", isbn, "removed", amount, "quantity", rec.Quantity)
		return Result{Outcome: Updated, Record: *rec}, nil
	}

	gone := *rec
	c.active = slices.Delete(c.active, i, i+1)
	c.removed = append(c.removed, gone)
	c.log.Debug("book removed", "isbn", isbn, "title", gone.Title)
	return Result{Outcome: Removed, Record: gone}, nil
}

// Added returns the records that were logged as new, oldest first.
func (c *Catalog) Added() []Record {
	return slices.Clone(c.added)
}

// Removed returns the removal history, most recently removed first.
func (c *Catalog) Removed() []Record {
	out := slices.Clone(c.removed)
	slices.Reverse(out)
	return out
}

// Close releases the sink if it holds a resource.
func (c *Catalog) Close() error {
	if cl, ok := c.sink.(io.Closer); ok {
		if err := cl.Close(); err != nil {
			return fmt.Errorf("%w: close: %w", ErrSink, err)
		}
	}
	return nil
}

func (c *Catalog) indexOf(rec Record) int {
	return slices.IndexFunc(c.active, rec.SameEntry)
}

func (c *Catalog) matchIndex(namePart string, isbn int64) int {
	return slices.IndexFunc(c.active, func(r Record) bool { return r.matchesRemoval(namePart, isbn) })
}
