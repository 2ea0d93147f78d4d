package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and removes combining marks, so accented and
// unaccented spellings compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// honorifics are the title abbreviations stripped from staff names before
// name matching.
var honorifics = []string{"dr.", "dra.", "ing.", "lic.", "mg."}

// Normalize lowercases text, strips diacritical marks and trims surrounding
// whitespace. It is idempotent and must be applied to both stored values and
// incoming queries before any comparison.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// The removal chain cannot fail on valid UTF-8; fall back to the
		// lowered text for anything else.
		stripped = lowered
	}
	return strings.TrimSpace(stripped)
}

// stripHonorific removes a leading title abbreviation from a normalized
// name. "dr. carlos lopez" becomes "carlos lopez".
func stripHonorific(name string) string {
	for _, title := range honorifics {
		if strings.HasPrefix(name, title) {
			return strings.TrimSpace(name[len(title):])
		}
	}
	return name
}

// hasExactToken reports whether query equals any whitespace-separated token
// of text. Both arguments must already be normalized.
func hasExactToken(text, query string) bool {
	for _, token := range strings.Fields(text) {
		if token == query {
			return true
		}
	}
	return false
}

// IsNameShaped reports whether a normalized query looks like a person's
// full name: at least two tokens, each longer than 2 characters.
func IsNameShaped(query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) < 2 {
		return false
	}
	for _, token := range tokens {
		if len([]rune(token)) <= 2 {
			return false
		}
	}
	return true
}

// HasThreeDigitToken reports whether any token of the normalized query is a
// run of exactly three digits, the usual shape of a room number.
func HasThreeDigitToken(query string) bool {
	for _, token := range strings.Fields(query) {
		if len(token) != 3 {
			continue
		}
		allDigits := true
		for _, r := range token {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return true
		}
	}
	return false
}
