package requisite

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnresolvedDepartment is returned when a bare catalog number has no
// department-qualified token before it.
var ErrUnresolvedDepartment = errors.New("requisite: cannot resolve department")

// ResolveError names the token whose department could not be resolved.
type ResolveError struct {
	Token string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%v for %q", ErrUnresolvedDepartment, e.Token)
}

// Unwrap lets errors.Is match ErrUnresolvedDepartment.
func (e *ResolveError) Unwrap() error { return ErrUnresolvedDepartment }

// ResolveDepartment scans tokens backward from index (inclusive) and returns
// the department of the nearest token holding a qualified course reference.
func ResolveDepartment(tokens []string, index int) (string, bool) {
	if index >= len(tokens) {
		index = len(tokens) - 1
	}
	for k := index; k >= 0; k-- {
		if dept := Department(tokens[k]); dept != "" {
			return dept, true
		}
	}
	return "", false
}

// Department returns the department prefix of the last qualified course
// reference in token: the run of non-numeric, non-connective words directly
// before a catalog number. "CH E 441 or MEC E 250" yields "MEC E".
func Department(token string) string {
	var (
		dept  string
		words []string
	)
	for _, w := range strings.Fields(token) {
		switch {
		case isCatalogWord(w):
			if len(words) > 0 {
				dept = strings.Join(words, " ")
			}
			words = words[:0]
		case isConnective(w) || countDigits(w) > 0:
			words = words[:0]
		default:
			words = append(words, w)
		}
	}
	return dept
}

// isCatalogWord reports whether w starts with a three-digit catalog number.
func isCatalogWord(w string) bool {
	if len(w) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return len(w) == 3 || !unicode.IsDigit(rune(w[3]))
}

func isConnective(w string) bool {
	switch strings.ToLower(w) {
	case "or", "and", "both", "one", "of", "either":
		return true
	}
	return false
}

// isBareNumber reports whether tok is only a three-digit catalog number.
func isBareNumber(tok string) bool {
	return len(tok) == 3 && countDigits(tok) == 3
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
