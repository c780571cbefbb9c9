package catalog

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// =============================================================================
// Generators
// =============================================================================

func titleGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z ,]{0,24}`)
}

func authorGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,24}`)
}

// isbnGenerator draws ISBNs with a 10 or 13 digit decimal form.
func isbnGenerator() *rapid.Generator[int64] {
	return rapid.OneOf(
		rapid.Int64Range(1_000_000_000, 9_999_999_999),
		rapid.Int64Range(1_000_000_000_000, 9_999_999_999_999),
	)
}

func recordGenerator() *rapid.Generator[Record] {
	return rapid.Custom(func(t *rapid.T) Record {
		return Record{
			Title:    titleGenerator().Draw(t, "title"),
			Author:   authorGenerator().Draw(t, "author"),
			ISBN:     isbnGenerator().Draw(t, "isbn"),
			Quantity: rapid.IntRange(1, 500).Draw(t, "quantity"),
		}
	})
}

func newRapidCatalog() (*Catalog, *memSink) {
	s := &memSink{}
	return New(s, nil), s
}

// =============================================================================
// Property: two adds of one identity leave one record holding the sum
// =============================================================================

func testAdd_Dedup_Properties(t *rapid.T) {
	c, s := newRapidCatalog()
	rec := recordGenerator().Draw(t, "record")
	more := rapid.IntRange(0, 500).Draw(t, "more")

	if _, err := c.Add(rec.Title, rec.Author, rec.ISBN, rec.Quantity); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	res, err := c.Add(rec.Title, rec.Author, rec.ISBN, more)
	if err != nil {
		t.Fatalf("second Add failed: %v", err)
	}
	if res.Outcome != Merged {
		t.Fatalf("second Add outcome: want merged, got %s", res.Outcome)
	}
	if c.Len() != 1 {
		t.Fatalf("active set size: want 1, got %d", c.Len())
	}
	if got := c.List()[0].Quantity; got != rec.Quantity+more {
		t.Fatalf("quantity: want %d, got %d", rec.Quantity+more, got)
	}
	if len(s.lines) != 1 || len(c.Added()) != 1 {
		t.Fatalf("addition log: want 1 entry, got %d lines / %d records", len(s.lines), len(c.Added()))
	}
}

func TestAdd_Dedup_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testAdd_Dedup_Properties)
}

// =============================================================================
// Property: removing the whole stock archives the record
// =============================================================================

func testRemove_ToZero_Properties(t *rapid.T) {
	c, _ := newRapidCatalog()
	rec := recordGenerator().Draw(t, "record")

	if _, err := c.Add(rec.Title, rec.Author, rec.ISBN, rec.Quantity); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	res, err := c.Remove(rec.Title, rec.ISBN, rec.Quantity)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if res.Outcome != Removed {
		t.Fatalf("outcome: want removed, got %s", res.Outcome)
	}
	if len(c.List()) != 0 {
		t.Fatalf("record still listed: %+v", c.List())
	}
	if _, ok := c.FindByISBN(rec.ISBN); ok {
		t.Fatalf("record still found by ISBN %d", rec.ISBN)
	}
	if len(c.Removed()) != 1 {
		t.Fatalf("removal history: want 1, got %d", len(c.Removed()))
	}
}

func TestRemove_ToZero_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testRemove_ToZero_Properties)
}

// =============================================================================
// Property: over-removal is rejected without touching stock
// =============================================================================

func testRemove_OverStock_Properties(t *rapid.T) {
	c, _ := newRapidCatalog()
	rec := recordGenerator().Draw(t, "record")
	extra := rapid.IntRange(1, 1000).Draw(t, "extra")

	if _, err := c.Add(rec.Title, rec.Author, rec.ISBN, rec.Quantity); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	_, err := c.Remove(rec.Title, rec.ISBN, rec.Quantity+extra)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
	if got := c.List()[0].Quantity; got != rec.Quantity {
		t.Fatalf("quantity changed: want %d, got %d", rec.Quantity, got)
	}
}

func TestRemove_OverStock_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testRemove_OverStock_Properties)
}

// =============================================================================
// Property: any case-folded slice of the title matches on removal
// =============================================================================

func testMatch_CaseInsensitive_Properties(t *rapid.T) {
	c, _ := newRapidCatalog()
	rec := recordGenerator().Draw(t, "record")
	if _, err := c.Add(rec.Title, rec.Author, rec.ISBN, rec.Quantity); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	start := rapid.IntRange(0, len(rec.Title)).Draw(t, "start")
	end := rapid.IntRange(start, len(rec.Title)).Draw(t, "end")
	part := rec.Title[start:end]
	if rapid.Bool().Draw(t, "upper") {
		part = strings.ToUpper(part)
	} else {
		part = strings.ToLower(part)
	}

	if _, ok := c.Match(part, rec.ISBN); !ok {
		t.Fatalf("Match(%q, %d) missed title %q", part, rec.ISBN, rec.Title)
	}
}

func TestMatch_CaseInsensitive_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testMatch_CaseInsensitive_Properties)
}

// =============================================================================
// Property: the log holds exactly one fixed-format line per created record
// =============================================================================

var logLine = regexp.MustCompile(`^Title: [A-Za-z ,]+, Author: [A-Za-z ]+, ISBN: \d{10}(\d{3})?, Quantity: \d+$`)

func testLog_AppendOnly_Properties(t *rapid.T) {
	c, s := newRapidCatalog()
	pool := rapid.SliceOfN(recordGenerator(), 1, 5).Draw(t, "pool")
	ops := rapid.IntRange(1, 30).Draw(t, "ops")

	created, merged := 0, 0
	for i := 0; i < ops; i++ {
		rec := rapid.SampledFrom(pool).Draw(t, "pick")
		res, err := c.Add(rec.Title, rec.Author, rec.ISBN, rec.Quantity)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		switch res.Outcome {
		case Created:
			created++
		case Merged:
			merged++
		default:
			t.Fatalf("unexpected outcome %s", res.Outcome)
		}
	}

	if created+merged != ops {
		t.Fatalf("outcomes: %d created + %d merged != %d ops", created, merged, ops)
	}
	if len(s.lines) != created {
		t.Fatalf("log lines: want %d, got %d", created, len(s.lines))
	}
	for _, l := range s.lines {
		if !logLine.MatchString(l) {
			t.Fatalf("malformed log line %q", l)
		}
	}
	for i, r := range c.Added() {
		if s.lines[i] != FormatLogLine(r) {
			t.Fatalf("log order: line %d is %q, want %q", i, s.lines[i], FormatLogLine(r))
		}
	}
}

func TestLog_AppendOnly_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testLog_AppendOnly_Properties)
}
