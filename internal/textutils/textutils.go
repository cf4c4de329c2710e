// Package textutils provides text matching utilities for statement
// descriptions, tolerant of Brazilian bank formatting quirks.
package textutils

import "strings"

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c",
	"Á", "a", "À", "a", "Â", "a", "Ã", "a", "Ä", "a",
	"É", "e", "È", "e", "Ê", "e", "Ë", "e",
	"Í", "i", "Ì", "i", "Î", "i", "Ï", "i",
	"Ó", "o", "Ò", "o", "Ô", "o", "Õ", "o", "Ö", "o",
	"Ú", "u", "Ù", "u", "Û", "u", "Ü", "u",
	"Ç", "c",
)

// Normalize lowercases a string and strips Portuguese accents, so
// narrative patterns match regardless of how the bank spells them.
func Normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(s))
}

// ContainsNormalized reports whether s contains the phrase, comparing
// case- and accent-insensitively.
func ContainsNormalized(s, phrase string) bool {
	return strings.Contains(Normalize(s), Normalize(phrase))
}

// HasPrefixNormalized reports whether s starts with the prefix, comparing
// case- and accent-insensitively after trimming leading spaces.
func HasPrefixNormalized(s, prefix string) bool {
	return strings.HasPrefix(strings.TrimSpace(Normalize(s)), Normalize(prefix))
}
