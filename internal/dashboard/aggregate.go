package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

// GroupCount conta as ocorrências de cada valor distinto do campo, um bucket
// por valor, na ordem da primeira ocorrência. Valor vazio vira a categoria
// "N/A".
func GroupCount(solicitacoes []models.Solicitacao, field string) []models.Bucket {
	indices := make(map[string]int)
	buckets := make([]models.Bucket, 0)

	for i := range solicitacoes {
		categoria := solicitacoes[i].FieldValue(field)
		if categoria == "" {
			categoria = constants.CategoriaNA
		}

		if idx, ok := indices[categoria]; ok {
			buckets[idx].Total++
			continue
		}
		indices[categoria] = len(buckets)
		buckets = append(buckets, models.Bucket{Categoria: categoria, Total: 1})
	}

	return buckets
}

// TopN agrupa, ordena por contagem decrescente (empates mantêm a ordem de
// primeira ocorrência) e corta nos n primeiros buckets.
func TopN(solicitacoes []models.Solicitacao, field string, n int) []models.Bucket {
	buckets := GroupCount(solicitacoes, field)
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})

	if n >= 0 && len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// TopNWithOthers é como TopN, mas quando existem mais de n categorias
// distintas acrescenta exatamente um bucket sintético "Outros" somando as
// contagens das que ficaram de fora. O bucket sintético não vira drill-down.
func TopNWithOthers(solicitacoes []models.Solicitacao, field string, n int) []models.Bucket {
	buckets := GroupCount(solicitacoes, field)
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})

	if n < 0 || len(buckets) <= n {
		return buckets
	}

	outros := 0
	for _, b := range buckets[n:] {
		outros += b.Total
	}

	top := make([]models.Bucket, n, n+1)
	copy(top, buckets[:n])
	return append(top, models.Bucket{Categoria: constants.CategoriaOutros, Total: outros})
}

// ComputeStats deriva as estatísticas do conjunto filtrado. As classificações
// por status são substrings independentes: um status pode não casar com
// marcador nenhum ou, em tese, casar com mais de um. Nenhuma exclusividade
// mútua é imposta.
func ComputeStats(solicitacoes []models.Solicitacao) models.DashboardStats {
	stats := models.DashboardStats{Total: len(solicitacoes)}

	for i := range solicitacoes {
		status := strings.ToLower(solicitacoes[i].Status)
		if strings.Contains(status, constants.MarcadorConcluido) {
			stats.Completed++
		}
		if strings.Contains(status, constants.MarcadorAndamento) || strings.Contains(status, constants.MarcadorAtendimento) {
			stats.InProgress++
		}
		if strings.Contains(status, constants.MarcadorNaoIniciado) {
			stats.NotStarted++
		}
	}

	// Guarda explícita contra divisão por zero num conjunto filtrado vazio.
	if stats.Total > 0 {
		stats.CompletionRate = fmt.Sprintf("%.1f", float64(stats.Completed)/float64(stats.Total)*100)
	} else {
		stats.CompletionRate = "0.0"
	}

	return stats
}

// AnalystProductivity agrupa por analista e ordena por contagem decrescente;
// empates mantêm a ordem de primeira ocorrência no dataset.
func AnalystProductivity(solicitacoes []models.Solicitacao) []models.AnalystProductivity {
	buckets := GroupCount(solicitacoes, "analista")

	produtividade := make([]models.AnalystProductivity, len(buckets))
	for i, b := range buckets {
		produtividade[i] = models.AnalystProductivity{Analista: b.Categoria, Total: b.Total}
	}
	sort.SliceStable(produtividade, func(i, j int) bool {
		return produtividade[i].Total > produtividade[j].Total
	})

	return produtividade
}
