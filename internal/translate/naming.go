// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"
)

// unsignedPrefix is kept as one capitalized unit by ToCamel.
const unsignedPrefix = "UInt"

// ToCamel converts an underscore_based identifier into camelCase. Each
// underscore is dropped and the character after it upper-cased; a trailing
// underscore is kept. If first is true the first character is upper-cased too,
// and a leading unsigned-integer token ("uint8", "UInt32") becomes "UInt".
func ToCamel(s string, first bool) string {
	var sb strings.Builder
	sb.Grow(len(s))

	i := 0
	if first && hasUnsignedPrefix(s) {
		sb.WriteString(unsignedPrefix)
		i = len(unsignedPrefix)
	}
	for ; i < len(s); i++ {
		switch {
		case i == 0 && first:
			sb.WriteByte(upper(s[0]))
		case s[i] == '_' && i+1 < len(s):
			i++
			sb.WriteByte(upper(s[i]))
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// hasUnsignedPrefix reports whether s starts with "uint" in any case followed
// by a digit, an underscore or nothing.
func hasUnsignedPrefix(s string) bool {
	n := len(unsignedPrefix)
	if len(s) < n || !strings.EqualFold(s[:n], unsignedPrefix) {
		return false
	}
	return len(s) == n || s[n] == '_' || unicode.IsDigit(rune(s[n]))
}

// ToScreamingCase upper-cases every letter and leaves underscores in place.
func ToScreamingCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		sb.WriteByte(upper(s[i]))
	}
	return sb.String()
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Keywords is a static set of reserved words of a target language.
type Keywords map[string]struct{}

// NewKeywords builds a keyword set.
func NewKeywords(words ...string) Keywords {
	k := make(Keywords, len(words))
	for _, w := range words {
		k[w] = struct{}{}
	}
	return k
}

// Escape returns name unchanged unless it is reserved, in which case an
// underscore is appended.
func (k Keywords) Escape(name string) string {
	if _, ok := k[name]; ok {
		return name + "_"
	}
	return name
}
