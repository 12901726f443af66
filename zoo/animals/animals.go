// Package animals defines the records that the zoo command sorts.
package animals

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"znkr.io/arraylist/arraylist"
)

// Animal is a record labeled by its name.
type Animal struct {
	Name string
}

// String returns the name.
func (a Animal) String() string { return a.Name }

// ByName orders animals by name in ascending lexicographic order.
func ByName(a, b Animal) int {
	return strings.Compare(a.Name, b.Name)
}

// Reverse returns an ordering that is the reverse of compare.
func Reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return compare(b, a) }
}

// Herd returns the built-in list of animals in insertion order.
func Herd() *arraylist.List[Animal] {
	l := arraylist.New[Animal]()
	for _, name := range []string{"Lion", "Zebra", "Elephant", "Cat"} {
		l.Add(Animal{Name: name})
	}
	return l
}

// Parse reads one animal name per line from r. Surrounding whitespace is removed, empty lines and
// lines starting with '#' are skipped. The name is only used in error messages.
func Parse(name string, r io.Reader) (*arraylist.List[Animal], error) {
	l := arraylist.New[Animal]()

	var errs []error
	s := bufio.NewScanner(r)
	for lineno := 1; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utf8.ValidString(line) {
			errs = append(errs, fmt.Errorf("%s:%d: invalid UTF-8", name, lineno))
			continue
		}
		if i := strings.IndexFunc(line, unicode.IsControl); i >= 0 {
			errs = append(errs, fmt.Errorf("%s:%d: invalid character %q", name, lineno, line[i]))
			continue
		}
		l.Add(Animal{Name: line})
	}
	if err := s.Err(); err != nil {
		errs = append(errs, fmt.Errorf("reading %s: %v", name, err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return l, nil
}
