package dashboard

import (
	"strings"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

// Matches avalia se uma solicitação passa pela conjunção dos seis predicados
// de filtro. Cada predicado é vacuamente verdadeiro quando seu critério está
// vazio; o registro só passa quando todos os seis valem.
func Matches(s *models.Solicitacao, f *models.FilterState, dyn *models.DynamicFilter) bool {
	return matchesSearch(s, f.Search) &&
		matchesStatus(s, f.Status) &&
		matchesSubsecretaria(s, f.Subsecretaria) &&
		matchesDynamic(s, dyn) &&
		matchesDateRange(s, f.StartDate, f.EndDate) &&
		matchesLinhaVerde(s, f.OnlyLinhaVerde)
}

// matchesSearch procura o texto de busca (em minúsculas) como substring de
// protocolo, assunto, analista ou bairro.
func matchesSearch(s *models.Solicitacao, search string) bool {
	if search == "" {
		return true
	}

	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(s.Protocolo), term) ||
		strings.Contains(strings.ToLower(s.Assunto), term) ||
		strings.Contains(strings.ToLower(s.Analista), term) ||
		strings.Contains(strings.ToLower(s.Bairro), term)
}

func matchesStatus(s *models.Solicitacao, status string) bool {
	if status == "" || status == constants.TodosOsStatus {
		return true
	}
	return s.Status == status
}

func matchesSubsecretaria(s *models.Solicitacao, subsecretaria string) bool {
	if subsecretaria == "" || subsecretaria == constants.TodasAsSubsecretarias {
		return true
	}
	return s.Subsecretaria == subsecretaria
}

// matchesDynamic aplica o filtro de drill-down. A igualdade é frouxa (exata
// OU case-insensitive) para tolerar diferenças de normalização entre o valor
// capturado no clique e o valor armazenado. Comportamento preservado como no
// painel original, mesmo podendo casar categorias distintas que diferem só
// por caixa.
func matchesDynamic(s *models.Solicitacao, dyn *models.DynamicFilter) bool {
	if dyn == nil {
		return true
	}

	v := s.FieldValue(dyn.Field)
	return v == dyn.Value || strings.EqualFold(v, dyn.Value)
}

// matchesDateRange compara a data de abertura lexicograficamente com os
// limites ISO. Abertura vazia ordena antes de qualquer data real: registros
// sem data de abertura são excluídos por um filtro de data inicial ativo e
// incluídos por um filtro só de data final. Comportamento de borda
// preservado do painel original.
func matchesDateRange(s *models.Solicitacao, start, end string) bool {
	if start != "" && s.Abertura < start {
		return false
	}
	if end != "" && s.Abertura > end {
		return false
	}
	return true
}

func matchesLinhaVerde(s *models.Solicitacao, only bool) bool {
	if !only {
		return true
	}
	return strings.Contains(strings.ToLower(s.Descricao), constants.PalavraChaveLinhaVerde)
}

// Apply filtra o dataset como função pura de (dataset, critérios, filtro
// dinâmico), sem estado incremental ou cache.
func Apply(solicitacoes []models.Solicitacao, f *models.FilterState, dyn *models.DynamicFilter) []models.Solicitacao {
	filtradas := make([]models.Solicitacao, 0, len(solicitacoes))
	for i := range solicitacoes {
		if Matches(&solicitacoes[i], f, dyn) {
			filtradas = append(filtradas, solicitacoes[i])
		}
	}
	return filtradas
}
