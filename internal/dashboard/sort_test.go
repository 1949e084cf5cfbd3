package dashboard

import (
	"testing"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

func TestSortBy(t *testing.T) {
	ordenadas := SortBy(amostra(), "bairro", models.SortAsc)
	if !equalIDs(ordenadas, "0", "1", "3", "2") {
		t.Errorf("SortBy(bairro, asc) = %v; expected [0 1 3 2]", ids(ordenadas))
	}

	ordenadas = SortBy(amostra(), "bairro", models.SortDesc)
	if !equalIDs(ordenadas, "2", "1", "3", "0") {
		t.Errorf("SortBy(bairro, desc) = %v; expected [2 1 3 0]", ids(ordenadas))
	}
}

func TestSortByEstavel(t *testing.T) {
	// "Centro" aparece nos ids 1 e 3: chave igual preserva a ordem original.
	ordenadas := SortBy(amostra(), "bairro", models.SortAsc)
	posicoes := map[string]int{}
	for i := range ordenadas {
		posicoes[ordenadas[i].ID] = i
	}
	if posicoes["1"] > posicoes["3"] {
		t.Error("ordenação não preservou a ordem relativa de chaves iguais")
	}
}

func TestSortByCaseInsensitive(t *testing.T) {
	solicitacoes := []models.Solicitacao{
		{ID: "0", Analista: "bruno"},
		{ID: "1", Analista: "Ana"},
	}
	ordenadas := SortBy(solicitacoes, "analista", models.SortAsc)
	if !equalIDs(ordenadas, "1", "0") {
		t.Errorf("SortBy deveria comparar em minúsculas; got %v", ids(ordenadas))
	}
}

func TestSortByDirecaoInvolutiva(t *testing.T) {
	// Inverter a direção duas vezes devolve a ordem da primeira ordenação.
	original := SortBy(amostra(), "assunto", models.SortAsc)
	invertida := SortBy(original, "assunto", models.SortDesc)
	devolta := SortBy(invertida, "assunto", models.SortAsc)

	for i := range original {
		if original[i].ID != devolta[i].ID {
			t.Fatalf("direção não é involutiva: %v != %v", ids(original), ids(devolta))
		}
	}
}

func TestSortByCampoDesconhecido(t *testing.T) {
	// Campo desconhecido compara strings vazias: ordem original preservada
	// pela estabilidade.
	ordenadas := SortBy(amostra(), "campo_que_nao_existe", models.SortAsc)
	if !equalIDs(ordenadas, "0", "1", "2", "3") {
		t.Errorf("campo desconhecido mudou a ordem: %v", ids(ordenadas))
	}
}

func TestPaginate(t *testing.T) {
	dados := amostra()

	tests := []struct {
		name     string
		pageSize int
		page     int
		expected []string
	}{
		{"primeira página", 2, 1, []string{"0", "1"}},
		{"segunda página", 2, 2, []string{"2", "3"}},
		{"página parcial", 3, 2, []string{"3"}},
		{"página além do fim", 2, 5, []string{}},
		{"página zero", 2, 0, []string{}},
		{"tamanho zero", 0, 1, []string{}},
		{"página maior que o dataset", 10, 1, []string{"0", "1", "2", "3"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pagina := Paginate(dados, test.pageSize, test.page)
			if !equalIDs(pagina, test.expected...) {
				t.Errorf("Paginate(%d, %d) = %v; expected %v", test.pageSize, test.page, ids(pagina), test.expected)
			}
		})
	}
}
