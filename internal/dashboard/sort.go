package dashboard

import (
	"sort"
	"strings"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

// SortBy ordena uma cópia do conjunto pelo valor do campo em minúsculas,
// comparação lexicográfica simples (campo desconhecido compara strings
// vazias, o que mantém a ordem original). A ordenação é estável: chaves
// iguais preservam a ordem relativa de entrada, e inverter a direção duas
// vezes devolve a ordem original.
func SortBy(solicitacoes []models.Solicitacao, field string, direction models.SortDirection) []models.Solicitacao {
	ordenadas := make([]models.Solicitacao, len(solicitacoes))
	copy(ordenadas, solicitacoes)

	sort.SliceStable(ordenadas, func(i, j int) bool {
		a := strings.ToLower(ordenadas[i].FieldValue(field))
		b := strings.ToLower(ordenadas[j].FieldValue(field))
		if direction == models.SortDesc {
			return a > b
		}
		return a < b
	})

	return ordenadas
}

// Paginate devolve a janela da página pedida. page é 1-based; página além do
// fim retorna fatia vazia, sem clamping. Quem chama deve voltar para a
// página 1 quando o tamanho do conjunto filtrado muda.
func Paginate(solicitacoes []models.Solicitacao, pageSize, page int) []models.Solicitacao {
	if pageSize <= 0 || page <= 0 {
		return []models.Solicitacao{}
	}

	start := (page - 1) * pageSize
	if start >= len(solicitacoes) {
		return []models.Solicitacao{}
	}

	end := start + pageSize
	if end > len(solicitacoes) {
		end = len(solicitacoes)
	}
	return solicitacoes[start:end]
}
