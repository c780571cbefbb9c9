// Package menucmd is the interactive front end of the inventory: a numbered
// menu on stdin/stdout that collects raw fields, re-prompts until they pass
// syntax checks and maps each choice to one catalog operation.
package menucmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"bookshelf/src/internal/catalog"
	"bookshelf/src/internal/config"
	"bookshelf/src/internal/logging"
	"bookshelf/src/internal/sanitize"
	"bookshelf/src/internal/sink"
)

// ConfigLoader resolves the effective configuration for cmd (env plus flags).
type ConfigLoader func(cmd *cobra.Command) (*config.Config, error)

// errInputClosed unwinds the menu when stdin hits EOF.
var errInputClosed = errors.New("input closed")

// New returns the command that runs the interactive menu.
func New(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive book inventory menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

			file, err := sink.Open(cfg.LogDir, cfg.LogPrefix, time.Now())
			if err != nil {
				return err
			}
			cat := catalog.New(file, logging.WithFields("component", "catalog"))
			defer func() {
				if err := cat.Close(); err != nil {
					slog.Error("closing log sink", "path", file.Path(), "err", err)
				}
			}()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Output will be added to file: %s\n", file.Path())
			return Run(cmd.InOrStdin(), out, cat, cfg.ListFormat)
		},
	}
}

// Run drives the menu until the exit choice or end of input.
func Run(in io.Reader, out io.Writer, cat *catalog.Catalog, listFormat string) error {
	s := &session{in: bufio.NewScanner(in), out: out, cat: cat, listFormat: listFormat}
	err := s.loop()
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

type menuItem struct {
	Label  string
	Action func() error
}

type session struct {
	in         *bufio.Scanner
	out        io.Writer
	cat        *catalog.Catalog
	listFormat string
}

func (s *session) items() []menuItem {
	return []menuItem{
		{Label: "Adding the Book", Action: s.add},
		{Label: "Display the Book", Action: s.list},
		{Label: "Search the Book", Action: s.search},
		{Label: "Remove the Book", Action: s.remove},
		{Label: "Exit the Book"},
	}
}

func (s *session) loop() error {
	items := s.items()
	for {
		s.banner(items)
		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return err
		}
		n, err := sanitize.Quantity(choice)
		if err != nil || n < 1 || n > len(items) {
			s.println("Invalid choice. Please try again and Enter the Valid Choice")
			continue
		}
		item := items[n-1]
		if item.Action == nil {
			s.println("Exiting program. Goodbye!")
			return nil
		}
		if err := item.Action(); err != nil {
			return err
		}
	}
}

func (s *session) banner(items []menuItem) {
	s.println(" [+] --------------------------------------------------------------------------------------- [+]  ")
	s.println("")
	s.println("                *******  Welcome to the Online Book Management  *********                          ")
	s.println("")
	s.println("______________________________ Our Menu For Online Book Managment _________________________________")
	s.println("")
	for i, it := range items {
		_, _ = fmt.Fprintf(s.out, "[+]======> Enter %d For %s:\n", i+1, it.Label)
	}
	s.println("")
}

func (s *session) add() error {
	title, err := ask(s, "Enter Book Title for Adding: ",
		"Invalid input, Please try again. Enter the Valid Title (Alphabets only)", sanitize.Title)
	if err != nil {
		return err
	}
	author, err := ask(s, "Enter Author for adding: ",
		"Invalid input, Please try again.Enter the Valid Author Name", sanitize.Author)
	if err != nil {
		return err
	}
	isbn, err := ask(s, "Enter ISBN for Adding: ",
		"Invalid input. Please Enter a Valid ISBN.", sanitize.ISBN)
	if err != nil {
		return err
	}
	qty, err := ask(s, "Enter quantity of the book: ",
		"Invalid input. Please enter a valid quantity (non-negative digits only).", sanitize.Quantity)
	if err != nil {
		return err
	}

	res, err := s.cat.Add(title, author, isbn, qty)
	switch {
	case err != nil:
		// The add is lost but the session goes on; later adds may succeed.
		_, _ = fmt.Fprintf(s.out, "Unable to record book: %v\n", err)
	case res.Outcome == catalog.Merged:
		s.println("Quantity of existing book updated successfully.")
	default:
		s.println("Book Added Successfully.")
	}
	s.println("")
	return nil
}

func (s *session) list() error {
	s.println("Book Store:")
	return renderRecords(s.out, s.listFormat, s.cat.List())
}

func (s *session) search() error {
	isbn, err := ask(s, "Enter ISBN of the book to search (10 or 13 digits): ",
		"Invalid input. Please enter a valid ISBN.", sanitize.ISBN)
	if err != nil {
		return err
	}
	r, ok := s.cat.FindByISBN(isbn)
	if !ok {
		s.println("Book not found.")
		return nil
	}
	s.println("Book found:")
	renderRecord(s.out, r)
	return nil
}

func (s *session) remove() error {
	name, err := s.prompt("Enter the name of the book to remove: ")
	if err != nil {
		return err
	}
	namePart := sanitize.NamePart(name)
	isbn, err := ask(s, "Enter ISBN of the book to remove: ",
		"Invalid input. Please enter a valid ISBN.", sanitize.ISBN)
	if err != nil {
		return err
	}
	if _, ok := s.cat.Match(namePart, isbn); !ok {
		s.println("Book not found and Unable to remove.")
		return nil
	}

	for {
		qty, err := ask(s, "Enter the quantity of books to remove: ",
			"Invalid input. Please enter a valid quantity (positive digits, less than or equal to available quantity).",
			sanitize.PositiveQuantity)
		if err != nil {
			return err
		}
		res, err := s.cat.Remove(namePart, isbn, qty)
		switch {
		case errors.Is(err, catalog.ErrInvalidQuantity):
			s.println("Invalid input. Please enter a valid quantity (positive digits, less than or equal to available quantity).")
			continue
		case errors.Is(err, catalog.ErrNotFound):
			s.println("Book not found and Unable to remove.")
		case err != nil:
			return err
		case res.Outcome == catalog.Removed:
			s.println("Book removed successfully.")
		default:
			s.println("Quantity of book updated successfully.")
		}
		return nil
	}
}

// ask prompts until parse accepts the line, printing retry after each miss.
func ask[T any](s *session, prompt, retry string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.prompt(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.println(retry)
	}
}

func (s *session) prompt(p string) (string, error) {
	_, _ = fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		s.println("")
		return "", errInputClosed
	}
	return s.in.Text(), nil
}

func (s *session) println(line string) { _, _ = fmt.Fprintln(s.out, line) }
