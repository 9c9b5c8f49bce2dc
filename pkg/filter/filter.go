package filter

import (
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"
)

// Filter is an offline word-list profanity matcher. It is built once at
// startup and safe for shared read-only use across all comment evaluations.
type Filter struct {
	matcher *ahocorasick.Matcher
	words   map[string]struct{}
}

// New builds a filter over the given word list. An empty list falls back to
// the built-in default set. Words are matched case-insensitively and on whole
// tokens only, so "class" does not trip the "ass" entry.
func New(words []string) *Filter {
	if len(words) == 0 {
		words = defaultWords
	}

	normalized := make([]string, 0, len(words))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := set[w]; dup {
			continue
		}
		set[w] = struct{}{}
		normalized = append(normalized, w)
	}

	return &Filter{
		matcher: ahocorasick.NewStringMatcher(normalized),
		words:   set,
	}
}

// Matches reports whether text contains a filtered word. It never errors and
// accepts any input, including empty strings and non-ASCII text.
func (f *Filter) Matches(text string) bool {
	if text == "" {
		return false
	}
	lowered := strings.ToLower(text)

	// The automaton scans substrings; a clean text is rejected in one pass.
	// Hits still need token-boundary confirmation.
	if len(f.matcher.MatchThreadSafe([]byte(lowered))) == 0 {
		return false
	}

	for _, token := range tokenize(lowered) {
		if _, ok := f.words[token]; ok {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
