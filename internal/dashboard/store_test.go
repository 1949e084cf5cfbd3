package dashboard

import (
	"strconv"
	"sync"
	"testing"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

func TestStoreLoadSubstituiTudo(t *testing.T) {
	store := NewStore()

	v1 := store.Load(amostra())
	if store.Len() != 4 {
		t.Fatalf("Len = %d; expected 4", store.Len())
	}

	v2 := store.Load([]models.Solicitacao{{ID: "0", Protocolo: "NOVO"}})
	if store.Len() != 1 {
		t.Errorf("Len após substituição = %d; expected 1", store.Len())
	}
	if v1 == v2 {
		t.Error("substituição do dataset deveria gerar versão nova")
	}
	if store.Version() != v2 {
		t.Errorf("Version = %q; expected %q", store.Version(), v2)
	}

	dados := store.Current()
	if len(dados) != 1 || dados[0].Protocolo != "NOVO" {
		t.Errorf("Current = %+v; expected apenas o dataset novo", dados)
	}
}

func TestStoreCurrentIsolaSnapshot(t *testing.T) {
	store := NewStore()
	store.Load(amostra())

	snapshot := store.Current()
	snapshot[0].Protocolo = "ALTERADO"

	if store.Current()[0].Protocolo == "ALTERADO" {
		t.Error("mutação no snapshot vazou para o store")
	}
}

func TestStoreImportacoesConcorrentes(t *testing.T) {
	// Importações disputando são last-write-wins: ao final, o dataset
	// visível é exatamente o de UMA importação completa, nunca uma mistura.
	store := NewStore()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			lote := make([]models.Solicitacao, 5)
			marca := strconv.Itoa(g)
			for i := range lote {
				lote[i] = models.Solicitacao{ID: strconv.Itoa(i), Protocolo: marca}
			}
			store.Load(lote)
		}(g)
	}
	wg.Wait()

	dados := store.Current()
	if len(dados) != 5 {
		t.Fatalf("Len = %d; expected 5", len(dados))
	}
	marca := dados[0].Protocolo
	for _, s := range dados {
		if s.Protocolo != marca {
			t.Fatalf("dataset misturou importações: %q e %q", marca, s.Protocolo)
		}
	}
}
