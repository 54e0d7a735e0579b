package requisite

import (
	"strings"
	"unicode/utf8"
)

const (
	// minCourseDigits is the digit count of a catalog number.
	minCourseDigits = 3
	// maxTokenLength is the longest token that can still be a course
	// reference, including a leading "one of " style marker.
	maxTokenLength = 16
)

var (
	digitSeparator = func() *strings.Replacer {
		pairs := make([]string, 0, 20)
		for d := '0'; d <= '9'; d++ {
			pairs = append(pairs, string(d)+" ", string(d)+", ")
		}
		return strings.NewReplacer(pairs...)
	}()
	bracketStripper = strings.NewReplacer("(", "", ")", "", "[", "", "]", "", ",", "")
)

// splitClause turns requisite prose into raw list items. A digit followed by
// a space ends a catalog number, so a separator is inserted there; " and" is
// a separator too.
func splitClause(raw string) []string {
	s := strings.ReplaceAll(raw, "\n", " ")
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimRight(s, "."))
	s = digitSeparator.Replace(s)
	s = strings.ReplaceAll(s, " and", ",")
	s = strings.ReplaceAll(s, "  ", " ")
	return strings.Split(s, ", ")
}

// preprocess cleans raw list items: brackets and commas go, a semicolon
// splits an item in two, a slash turns into "or" alternatives, and anything
// that cannot be a course reference is dropped.
func preprocess(items []string) []string {
	var out []string
	for _, item := range items {
		item = bracketStripper.Replace(item)
		for _, piece := range strings.Split(item, ";") {
			for _, tok := range splitSlash(strings.TrimSpace(piece)) {
				if isCourseToken(tok) {
					out = append(out, tok)
				}
			}
		}
	}
	return out
}

// splitSlash rewrites "MATH 100/114" as ["MATH 100", "or 114"].
func splitSlash(item string) []string {
	parts := strings.Split(item, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if i > 0 && !isOrToken(parts[i]) {
			parts[i] = "or " + parts[i]
		}
	}
	return parts
}

func isCourseToken(tok string) bool {
	return countDigits(tok) >= minCourseDigits && utf8.RuneCountInString(tok) <= maxTokenLength
}
