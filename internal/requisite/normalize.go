package requisite

import (
	"strings"

	"progviz/internal/domain"
)

// Normalize converts the text of one requisite clause, e.g.
// "One of CH E 441, MEC E 250, or MATH 100", into an ordered list of
// requirements. Every entry is either a single qualified course name or a
// disjunction joined by domain.OrSeparator.
func Normalize(clause string) ([]domain.Requirement, error) {
	w := &walker{in: preprocess(splitClause(clause))}
	for w.pos < len(w.in) {
		if err := w.step(); err != nil {
			return nil, err
		}
	}
	return tidy(w.out), nil
}

// walker consumes an immutable token stream and appends finished
// requirements to out. Merges only ever touch the last output entry.
type walker struct {
	in  []string
	pos int
	out []string
}

func (w *walker) next() string {
	tok := strings.TrimSpace(w.in[w.pos])
	w.pos++
	return tok
}

func (w *walker) peek() (string, bool) {
	if w.pos >= len(w.in) {
		return "", false
	}
	return strings.TrimSpace(w.in[w.pos]), true
}

func (w *walker) step() error {
	tok := w.next()
	if strings.Contains(tok, "-") {
		// "MATH 100-level" and ranges such as "ENGG 100-199" are not courses.
		return nil
	}
	if rest, ok := cutPrefixFold(tok, "both "); ok {
		return w.both(rest)
	}
	return w.dispatch(tok)
}

func (w *walker) dispatch(tok string) error {
	if rest, ok := cutPrefixFold(tok, "one of "); ok {
		return w.oneOf(rest, false)
	}
	if rest, ok := cutPrefixFold(tok, "either "); ok {
		return w.oneOf(rest, true)
	}
	if isOrToken(tok) {
		return w.orContinuation(tok)
	}
	if isBareNumber(tok) {
		qualified, err := w.qualify(tok)
		if err != nil {
			return err
		}
		w.out = append(w.out, qualified)
		return nil
	}
	w.out = append(w.out, tok)
	return nil
}

// both handles "both MATH 100 and 114": each course stays a separate entry,
// and a bare number right after takes its department from this one.
func (w *walker) both(tok string) error {
	if err := w.dispatch(tok); err != nil {
		return err
	}
	next, ok := w.peek()
	if !ok || !isBareNumber(next) {
		return nil
	}
	w.pos++
	qualified, err := w.qualify(next)
	if err != nil {
		return err
	}
	w.out = append(w.out, qualified)
	return nil
}

// oneOf absorbs the following tokens into one disjunction until a token
// starting with "or" closes it or the stream ends.
func (w *walker) oneOf(first string, either bool) error {
	acc := first
	if isBareNumber(acc) {
		qualified, err := w.qualify(acc)
		if err != nil {
			return err
		}
		acc = qualified
	}
	leading := true
	for {
		tok, ok := w.peek()
		if !ok {
			break
		}
		if leading && either {
			// "either X or one of Y, Z": the second marker is filler.
			if rest, cut := cutPrefixFold(tok, "or one of "); cut {
				tok = strings.TrimSpace(rest)
			}
		}
		leading = false
		w.pos++
		if isOrToken(tok) {
			closed, err := w.closeDisjunction(acc, tok)
			if err != nil {
				return err
			}
			acc = closed
			break
		}
		if strings.Contains(tok, "-") {
			continue
		}
		if isBareNumber(tok) {
			qualified, err := w.qualify(tok, acc)
			if err != nil {
				return err
			}
			tok = qualified
		}
		acc += domain.OrSeparator + tok
	}
	w.out = append(w.out, acc)
	return nil
}

// closeDisjunction merges the terminating "or ..." token into acc. A trailing
// "or both MATH 100 and 101" stays one compound option.
func (w *walker) closeDisjunction(acc, tok string) (string, error) {
	rest := strings.TrimSpace(tok[len("or "):])
	switch {
	case isBareNumber(rest):
		qualified, err := w.qualify(rest, acc)
		if err != nil {
			return "", err
		}
		rest = qualified
	case hasPrefixFold(rest, "both "):
		pair := strings.TrimSpace(rest[len("both "):])
		if isBareNumber(pair) {
			qualified, err := w.qualify(pair, acc)
			if err != nil {
				return "", err
			}
			pair = qualified
		}
		if next, ok := w.peek(); ok && isBareNumber(next) {
			w.pos++
			qualified, err := w.qualify(next, acc, pair)
			if err != nil {
				return "", err
			}
			pair += " and " + qualified
		}
		rest = "both " + pair
	}
	return acc + domain.OrSeparator + rest, nil
}

// orContinuation merges "or 114" or "or MATH 114" into the previous entry.
func (w *walker) orContinuation(tok string) error {
	rest := strings.TrimSpace(tok[len("or "):])
	if isBareNumber(rest) {
		qualified, err := w.qualify(rest)
		if err != nil {
			return err
		}
		rest = qualified
	}
	if len(w.out) == 0 {
		w.out = append(w.out, rest)
		return nil
	}
	w.out[len(w.out)-1] += domain.OrSeparator + rest
	return nil
}

// qualify prefixes a bare number with the department of the nearest
// qualified token in the output so far plus any pending text.
func (w *walker) qualify(number string, pending ...string) (string, error) {
	tokens := make([]string, 0, len(w.out)+len(pending))
	tokens = append(tokens, w.out...)
	tokens = append(tokens, pending...)
	dept, ok := ResolveDepartment(tokens, len(tokens)-1)
	if !ok {
		return "", &ResolveError{Token: number}
	}
	return dept + " " + number, nil
}

// tidy collapses whitespace inside every option.
func tidy(entries []string) []domain.Requirement {
	out := make([]domain.Requirement, 0, len(entries))
	for _, e := range entries {
		opts := domain.Requirement(e).Options()
		for i, o := range opts {
			opts[i] = domain.CourseName(strings.Join(strings.Fields(string(o)), " "))
		}
		if len(opts) == 0 {
			continue
		}
		out = append(out, domain.JoinOptions(opts))
	}
	return out
}

func isOrToken(tok string) bool {
	return hasPrefixFold(tok, "or ")
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if !hasPrefixFold(s, prefix) {
		return s, false
	}
	return strings.TrimSpace(s[len(prefix):]), true
}
