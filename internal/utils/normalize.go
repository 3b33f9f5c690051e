package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownApplicant is the safe-name fallback when no usable name was supplied.
const UnknownApplicant = "BILINMEYEN_ADAY"

// Dotless ı has no Unicode decomposition, so NFD stripping alone would drop
// it instead of folding it to i.
var dotlessI = strings.NewReplacer("ı", "i", "İ", "I")

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SafeName folds an applicant's name to an ASCII token usable in remote
// folder and file names: diacritics stripped, anything outside
// letters/digits/space/hyphen dropped, whitespace runs collapsed to a
// single underscore, result uppercased. "çağrı öztürk" -> "CAGRI_OZTURK".
func SafeName(name string) string {
	name = dotlessI.Replace(strings.TrimSpace(name))
	if folded, _, err := transform.String(stripDiacritics, name); err == nil {
		name = folded
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	token := strings.Join(strings.Fields(b.String()), "_")
	if token == "" {
		return UnknownApplicant
	}
	return strings.ToUpper(token)
}
