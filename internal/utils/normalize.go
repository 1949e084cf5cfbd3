package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeTitleCase canoniza texto livre para Title Case parcial, de forma
// que valores digitados com capitalização diferente colapsem numa categoria
// só. Exemplo: "AREIA BRANCA" -> "Areia Branca".
//
// Palavras com até 2 caracteres ficam inteiramente em minúsculas, preservando
// conectivos como "de" e "da" sem capitalização. A função é idempotente:
// NormalizeTitleCase(NormalizeTitleCase(x)) == NormalizeTitleCase(x).
func NormalizeTitleCase(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.TrimSpace(strings.ToLower(text))
	words := strings.Split(lowered, " ")
	for i, word := range words {
		if len([]rune(word)) > 2 {
			r := []rune(word)
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}

	return strings.Join(words, " ")
}

// RemoveAcentos remove acentos e diacríticos de um texto e converte para
// minúsculas. Exemplo: "Descrição" -> "descricao".
func RemoveAcentos(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, texto)

	return strings.ToLower(normalized)
}
