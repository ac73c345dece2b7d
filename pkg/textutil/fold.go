// Package textutil normalización de texto para búsquedas.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza una cadena para comparación de búsqueda: minúsculas y sin
// marcas diacríticas ("Café" → "cafe"). Si la transformación falla con una
// secuencia inválida, degrada a solo minúsculas.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si s contiene substr ignorando mayúsculas y tildes.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
