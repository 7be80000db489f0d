package usecase

import (
	"strings"
	"unicode"

	"paulocell_pdv/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldText lowercases and strips accents so "João" matches "joao".
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// matchesSearch reports whether any field contains the query. An empty query
// matches everything.
func matchesSearch(query string, fields ...string) bool {
	q := foldText(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(foldText(f), q) {
			return true
		}
	}
	return false
}

// matchesDigits compares a masked number such as "(11) 98765-4321" or
// "529.982.247-25" against digit-only fields. Queries with letters never match.
func matchesDigits(query string, fields ...string) bool {
	q := strings.TrimSpace(query)
	if q == "" || strings.Trim(q, "0123456789 ()-./+") != "" {
		return false
	}
	digits := entities.OnlyDigits(q)
	if digits == "" {
		return false
	}
	for _, f := range fields {
		if strings.Contains(entities.OnlyDigits(f), digits) {
			return true
		}
	}
	return false
}
