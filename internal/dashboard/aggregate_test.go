package dashboard

import (
	"strconv"
	"testing"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

func TestGroupCount(t *testing.T) {
	buckets := GroupCount(amostra(), "subsecretaria")

	expected := []models.Bucket{
		{Categoria: "Limpeza Urbana", Total: 2},
		{Categoria: "Parques", Total: 2},
	}
	if len(buckets) != len(expected) {
		t.Fatalf("GroupCount retornou %d buckets; expected %d", len(buckets), len(expected))
	}
	for i, b := range expected {
		if buckets[i] != b {
			t.Errorf("buckets[%d] = %+v; expected %+v", i, buckets[i], b)
		}
	}
}

func TestGroupCountValorVazio(t *testing.T) {
	solicitacoes := []models.Solicitacao{
		{Cidade: "Belford Roxo"},
		{Cidade: ""},
		{Cidade: ""},
	}

	buckets := GroupCount(solicitacoes, "cidade")
	if len(buckets) != 2 {
		t.Fatalf("GroupCount retornou %d buckets; expected 2", len(buckets))
	}
	if buckets[1].Categoria != constants.CategoriaNA || buckets[1].Total != 2 {
		t.Errorf("bucket vazio = %+v; expected {N/A 2}", buckets[1])
	}
}

func TestTopNEmpateEstavel(t *testing.T) {
	solicitacoes := []models.Solicitacao{
		{Assunto: "Capina"}, {Assunto: "Poda"}, {Assunto: "Poda"},
		{Assunto: "Entulho"}, {Assunto: "Capina"},
	}

	buckets := TopN(solicitacoes, "assunto", 2)
	if len(buckets) != 2 {
		t.Fatalf("TopN retornou %d buckets; expected 2", len(buckets))
	}
	// Capina e Poda empatam em 2; Capina apareceu primeiro.
	if buckets[0].Categoria != "Capina" || buckets[1].Categoria != "Poda" {
		t.Errorf("TopN = %+v; expected Capina antes de Poda no empate", buckets)
	}
}

func TestTopNWithOthers(t *testing.T) {
	// 12 bairros distintos, com volume decrescente: bairro-i aparece 12-i
	// vezes. Total de registros = 12+11+...+1 = 78.
	solicitacoes := []models.Solicitacao{}
	for i := 0; i < 12; i++ {
		for j := 0; j < 12-i; j++ {
			solicitacoes = append(solicitacoes, models.Solicitacao{Bairro: "Bairro " + strconv.Itoa(i)})
		}
	}

	buckets := TopNWithOthers(solicitacoes, "bairro", 10)

	if len(buckets) != 11 {
		t.Fatalf("TopNWithOthers retornou %d buckets; expected 11", len(buckets))
	}

	ultimo := buckets[10]
	if ultimo.Categoria != constants.CategoriaOutros {
		t.Fatalf("último bucket = %q; expected %q", ultimo.Categoria, constants.CategoriaOutros)
	}

	somaTop := 0
	for _, b := range buckets[:10] {
		somaTop += b.Total
	}
	if ultimo.Total != len(solicitacoes)-somaTop {
		t.Errorf("Outros = %d; expected %d", ultimo.Total, len(solicitacoes)-somaTop)
	}
	// Os dois bairros de menor volume (2 e 1 registros) caem no Outros.
	if ultimo.Total != 3 {
		t.Errorf("Outros = %d; expected 3", ultimo.Total)
	}
}

func TestTopNWithOthersSemExcedente(t *testing.T) {
	buckets := TopNWithOthers(amostra(), "subsecretaria", 10)
	for _, b := range buckets {
		if b.Categoria == constants.CategoriaOutros {
			t.Error("Outros não deveria aparecer quando há menos categorias que o corte")
		}
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(amostra())

	if stats.Total != 4 {
		t.Errorf("Total = %d; expected 4", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d; expected 1", stats.Completed)
	}
	// "Em Andamento" e "Em Atendimento" contam como em andamento.
	if stats.InProgress != 2 {
		t.Errorf("InProgress = %d; expected 2", stats.InProgress)
	}
	if stats.NotStarted != 1 {
		t.Errorf("NotStarted = %d; expected 1", stats.NotStarted)
	}
	if stats.CompletionRate != "25.0" {
		t.Errorf("CompletionRate = %q; expected %q", stats.CompletionRate, "25.0")
	}
}

func TestComputeStatsConjuntoVazio(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.Total != 0 {
		t.Errorf("Total = %d; expected 0", stats.Total)
	}
	// Guarda de divisão por zero: taxa "0.0", não um erro.
	if stats.CompletionRate != "0.0" {
		t.Errorf("CompletionRate = %q; expected %q", stats.CompletionRate, "0.0")
	}
}

func TestAnalystProductivity(t *testing.T) {
	produtividade := AnalystProductivity(amostra())

	if len(produtividade) != 3 {
		t.Fatalf("AnalystProductivity retornou %d analistas; expected 3", len(produtividade))
	}
	if produtividade[0].Analista != "Maria da Silva" || produtividade[0].Total != 2 {
		t.Errorf("primeiro analista = %+v; expected Maria da Silva com 2", produtividade[0])
	}
	// Empate em 1: João apareceu antes de Não Atribuído no dataset.
	if produtividade[1].Analista != "João Souza" || produtividade[2].Analista != "Não Atribuído" {
		t.Errorf("empate instável: %+v", produtividade)
	}
}
