// Package translit converts Devanagari (and other non-Latin) text labels
// into a best-effort Roman/ASCII approximation so they survive CSV export
// and downstream tooling that chokes on non-ASCII identifiers.
package translit

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Romanize transliterates s to its closest ASCII phonetic equivalent and
// trims surrounding whitespace. The mapping is deterministic: the same
// input always yields the same output. ASCII input passes through unchanged
// (modulo trimming).
func Romanize(s string) string {
	return strings.TrimSpace(unidecode.Unidecode(s))
}
