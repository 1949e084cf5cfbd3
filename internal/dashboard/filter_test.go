package dashboard

import (
	"testing"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

func amostra() []models.Solicitacao {
	return []models.Solicitacao{
		{
			ID: "0", Protocolo: "PMB-001", Assunto: "Capina", Subsecretaria: "Limpeza Urbana",
			Status: "Concluído", Abertura: "2024-01-10", Analista: "Maria da Silva",
			Bairro: "Areia Branca", Descricao: "Solicitação via Linha Verde",
		},
		{
			ID: "1", Protocolo: "PMB-002", Assunto: "Poda de Árvore", Subsecretaria: "Parques",
			Status: "Em Andamento", Abertura: "2024-02-05", Analista: "João Souza",
			Bairro: "Centro", Descricao: "Árvore na fiação",
		},
		{
			ID: "2", Protocolo: "PMB-003", Assunto: "Coleta de Entulho", Subsecretaria: "Limpeza Urbana",
			Status: "Não Iniciado", Abertura: "", Analista: "Maria da Silva",
			Bairro: "Jardim do Ipê", Descricao: "entulho acumulado LINHA VERDE",
		},
		{
			ID: "3", Protocolo: "PMB-004", Assunto: "Capina", Subsecretaria: "Parques",
			Status: "Em Atendimento", Abertura: "2024-03-01", Analista: "Não Atribuído",
			Bairro: "Centro", Descricao: "",
		},
	}
}

func ids(solicitacoes []models.Solicitacao) []string {
	out := make([]string, len(solicitacoes))
	for i := range solicitacoes {
		out[i] = solicitacoes[i].ID
	}
	return out
}

func equalIDs(a []models.Solicitacao, expected ...string) bool {
	got := ids(a)
	if len(got) != len(expected) {
		return false
	}
	for i := range got {
		if got[i] != expected[i] {
			return false
		}
	}
	return true
}

func TestApplySemCriterios(t *testing.T) {
	// Todos os predicados vazios são vacuamente verdadeiros.
	filtradas := Apply(amostra(), &models.FilterState{}, nil)
	if len(filtradas) != 4 {
		t.Errorf("Apply sem critérios retornou %d registros; expected 4", len(filtradas))
	}
}

func TestApplyBusca(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{"protocolo", "pmb-002", []string{"1"}},
		{"assunto", "capina", []string{"0", "3"}},
		{"analista", "maria", []string{"0", "2"}},
		{"bairro", "centro", []string{"1", "3"}},
		{"case-insensitive", "AREIA", []string{"0"}},
		{"sem resultado", "inexistente", []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			filtradas := Apply(amostra(), &models.FilterState{Search: test.search}, nil)
			if !equalIDs(filtradas, test.expected...) {
				t.Errorf("Apply(search=%q) = %v; expected %v", test.search, ids(filtradas), test.expected)
			}
		})
	}
}

func TestApplyStatusESubsecretaria(t *testing.T) {
	filtradas := Apply(amostra(), &models.FilterState{Status: "Concluído"}, nil)
	if !equalIDs(filtradas, "0") {
		t.Errorf("filtro de status = %v; expected [0]", ids(filtradas))
	}

	// Sentinela equivale a nenhum filtro.
	filtradas = Apply(amostra(), &models.FilterState{Status: constants.TodosOsStatus}, nil)
	if len(filtradas) != 4 {
		t.Errorf("sentinela de status filtrou registros: %v", ids(filtradas))
	}

	filtradas = Apply(amostra(), &models.FilterState{Subsecretaria: "Parques"}, nil)
	if !equalIDs(filtradas, "1", "3") {
		t.Errorf("filtro de subsecretaria = %v; expected [1 3]", ids(filtradas))
	}

	filtradas = Apply(amostra(), &models.FilterState{Subsecretaria: constants.TodasAsSubsecretarias}, nil)
	if len(filtradas) != 4 {
		t.Errorf("sentinela de subsecretaria filtrou registros: %v", ids(filtradas))
	}
}

func TestApplyFiltroDinamico(t *testing.T) {
	// Igualdade frouxa: valor capturado no clique pode diferir em caixa do
	// valor armazenado.
	dyn := &models.DynamicFilter{Field: "bairro", Value: "CENTRO"}
	filtradas := Apply(amostra(), &models.FilterState{}, dyn)
	if !equalIDs(filtradas, "1", "3") {
		t.Errorf("filtro dinâmico frouxo = %v; expected [1 3]", ids(filtradas))
	}

	dyn = &models.DynamicFilter{Field: "assunto", Value: "Capina"}
	filtradas = Apply(amostra(), &models.FilterState{}, dyn)
	if !equalIDs(filtradas, "0", "3") {
		t.Errorf("filtro dinâmico exato = %v; expected [0 3]", ids(filtradas))
	}

	// Campo desconhecido compara contra string vazia.
	dyn = &models.DynamicFilter{Field: "naoexiste", Value: "x"}
	filtradas = Apply(amostra(), &models.FilterState{}, dyn)
	if len(filtradas) != 0 {
		t.Errorf("campo desconhecido deveria excluir tudo; retornou %v", ids(filtradas))
	}
}

func TestApplyIntervaloDeDatas(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{"só data inicial", "2024-02-01", "", []string{"1", "3"}},
		{"só data final", "", "2024-02-28", []string{"0", "1", "2"}},
		{"intervalo fechado", "2024-01-01", "2024-02-28", []string{"0", "1"}},
		{"limites inclusivos", "2024-01-10", "2024-01-10", []string{"0"}},
		// Abertura vazia ordena antes de qualquer data real: entra quando só
		// há data final, sai quando há data inicial.
		{"vazia incluída por data final", "", "2024-12-31", []string{"0", "1", "2", "3"}},
		{"vazia excluída por data inicial", "2020-01-01", "", []string{"0", "1", "3"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := &models.FilterState{StartDate: test.start, EndDate: test.end}
			filtradas := Apply(amostra(), f, nil)
			if !equalIDs(filtradas, test.expected...) {
				t.Errorf("Apply(start=%q, end=%q) = %v; expected %v", test.start, test.end, ids(filtradas), test.expected)
			}
		})
	}
}

func TestApplyLinhaVerde(t *testing.T) {
	filtradas := Apply(amostra(), &models.FilterState{OnlyLinhaVerde: true}, nil)
	// A palavra-chave casa em qualquer capitalização.
	if !equalIDs(filtradas, "0", "2") {
		t.Errorf("filtro Linha Verde = %v; expected [0 2]", ids(filtradas))
	}
}

func TestApplyConjuncao(t *testing.T) {
	// Todos os seis predicados precisam valer ao mesmo tempo.
	f := &models.FilterState{
		Search:         "maria",
		Subsecretaria:  "Limpeza Urbana",
		OnlyLinhaVerde: true,
		StartDate:      "2024-01-01",
	}
	filtradas := Apply(amostra(), f, nil)
	if !equalIDs(filtradas, "0") {
		t.Errorf("conjunção = %v; expected [0]", ids(filtradas))
	}

	// Apertar um único critério remove exatamente os registros que falham
	// naquele predicado.
	f.OnlyLinhaVerde = false
	filtradas = Apply(amostra(), f, nil)
	if !equalIDs(filtradas, "0") {
		t.Errorf("conjunção relaxada = %v; expected [0]", ids(filtradas))
	}

	f.StartDate = ""
	filtradas = Apply(amostra(), f, nil)
	if !equalIDs(filtradas, "0", "2") {
		t.Errorf("sem data inicial = %v; expected [0 2]", ids(filtradas))
	}
}

func TestMatchesFimAFim(t *testing.T) {
	// Registro importado sem status e com "Linha Verde" na descrição: recebe
	// o default e satisfaz o recorte Linha Verde.
	s := models.Solicitacao{Status: constants.DefaultStatus, Descricao: "atendimento LINHA verde"}

	if !Matches(&s, &models.FilterState{OnlyLinhaVerde: true}, nil) {
		t.Error("registro com Linha Verde na descrição deveria passar no recorte")
	}
	if Matches(&s, &models.FilterState{OnlyLinhaVerde: true, Status: "Concluído"}, nil) {
		t.Error("status default não deveria passar pelo filtro Concluído")
	}
}
