package menucmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"bookshelf/src/internal/catalog"
)

func renderRecords(w io.Writer, format string, records []catalog.Record) error {
	if strings.ToLower(format) == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Title, r.Author, strconv.FormatInt(r.ISBN, 10), strconv.Itoa(r.Quantity)})
	}
	renderTable(w, []string{"title", "author", "isbn", "quantity"}, rows)
	return nil
}

func renderRecord(w io.Writer, r catalog.Record) {
	_, _ = fmt.Fprintf(w, "Title: %s\n Author: %s\n ISBN: %d\n Quantity: %d\n", r.Title, r.Author, r.ISBN, r.Quantity)
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := computeColWidths(headers, rows)
	writeColumns(w, headers, widths)
	writeSeparator(w, widths)
	for _, r := range rows {
		writeColumns(w, r, widths)
	}
}

func computeColWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) && len(r[i]) > widths[i] {
				widths[i] = len(r[i])
			}
		}
	}
	return widths
}

func writeSeparator(w io.Writer, widths []int) {
	cols := make([]string, len(widths))
	for i, width := range widths {
		cols[i] = strings.Repeat("-", width)
	}
	writeColumns(w, cols, widths)
}

func writeColumns(w io.Writer, cols []string, widths []int) {
	for i, width := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		if i == len(widths)-1 {
			_, _ = fmt.Fprint(w, val)
			break
		}
		_, _ = fmt.Fprintf(w, "%-*s  ", width, val)
	}
	_, _ = fmt.Fprint(w, "\n")
}
