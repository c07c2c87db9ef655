package helper

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from free text, trims it and folds it to NFC. The policy
// escapes what it keeps; the result is JSON, not HTML, so entities are decoded again.
func SanitizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s))))
}

// SanitizePtr keeps nil as nil.
func SanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := SanitizeText(*s)
	return &v
}

// TrimPtr trims without touching markup (emails, urls, enum codes).
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// EscapeLike escapes LIKE/ILIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// NilIfEmpty turns an empty optional string into nil.
func NilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
