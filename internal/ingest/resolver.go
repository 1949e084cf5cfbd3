// Package ingest converte planilhas de solicitações, com colunas de grafia
// heterogênea, no esquema canônico do dashboard.
package ingest

import (
	"sort"
	"strings"
)

// RawRow é uma linha bruta da planilha: chaves são os cabeçalhos como vieram
// do arquivo, valores são fracamente tipados (string, float64 para datas
// seriais, etc).
type RawRow map[string]interface{}

// ResolveField busca o valor de um campo canônico tentando uma lista
// ordenada de chaves candidatas.
//
// Passo 1: match exato de cada candidata, na ordem. Passo 2 (só se o passo 1
// não encontrar nada): varre as chaves reais da linha procurando match
// case-insensitive, ainda na ordem das candidatas. Assim planilhas com
// cabeçalhos variando em acento, capitalização ou grafia ("Descrição" vs
// "descricao") são toleradas, mas a chave canônica exata sempre vence quando
// as duas existem.
//
// Retorna ok=false quando nenhuma candidata resolve; quem chama aplica o
// default do campo.
func ResolveField(row RawRow, keys ...string) (interface{}, bool) {
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			return v, true
		}
	}

	// Ordena as chaves reais para que empates case-insensitive resolvam de
	// forma determinística (iteração de map não tem ordem).
	rowKeys := make([]string, 0, len(row))
	for k := range row {
		rowKeys = append(rowKeys, k)
	}
	sort.Strings(rowKeys)

	for _, key := range keys {
		for _, rowKey := range rowKeys {
			if strings.EqualFold(rowKey, key) && row[rowKey] != nil {
				return row[rowKey], true
			}
		}
	}

	return nil, false
}
