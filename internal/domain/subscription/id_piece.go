package subscription

import (
	"regexp"
	"strings"
)

var idPieceNumberPattern = regexp.MustCompile(`^(?:[A-Z0-9]{9}|[A-Z0-9]{12})$`)

// NormalizeIDPieceNumber drops whitespace and upper-cases the number.
func NormalizeIDPieceNumber(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// IsValidIDPieceNumber accepts passport and ID card numbers (9 characters)
// and older ID card numbers (12 characters).
func IsValidIDPieceNumber(s string) bool {
	return idPieceNumberPattern.MatchString(NormalizeIDPieceNumber(s))
}
