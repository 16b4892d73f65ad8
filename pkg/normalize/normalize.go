// Package normalize ofrece la normalización de texto usada por la búsqueda de
// productos: minúsculas y sin marcas diacríticas, para que "Cajón" y "cajon"
// casen igual. La misma función alimenta la columna search_name en Postgres y
// el término que llega por el query string.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Search normaliza un texto para búsqueda: trim, minúsculas, sin acentos.
func Search(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
