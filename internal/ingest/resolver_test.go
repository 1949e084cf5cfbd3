package ingest

import (
	"testing"
)

func TestResolveFieldMatchExato(t *testing.T) {
	row := RawRow{
		"protocolo": "2024-001",
		"Protocolo": "errado",
	}

	v, ok := ResolveField(row, "protocolo", "Protocolo")
	if !ok {
		t.Fatal("ResolveField não encontrou chave existente")
	}
	if v != "2024-001" {
		t.Errorf("ResolveField preferiu %q; esperado o match exato %q", v, "2024-001")
	}
}

func TestResolveFieldCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		row      RawRow
		keys     []string
		expected interface{}
	}{
		{
			name:     "cabeçalho em caixa alta",
			row:      RawRow{"PROTOCOLO": "2024-002"},
			keys:     []string{"protocolo", "Protocolo"},
			expected: "2024-002",
		},
		{
			name:     "cabeçalho acentuado com capitalização diferente",
			row:      RawRow{"DESCRIÇÃO": "poda de árvore"},
			keys:     []string{"descrição", "descricao", "Descrição", "Descricao"},
			expected: "poda de árvore",
		},
		{
			name:     "ordem das candidatas decide",
			row:      RawRow{"Processo": "123"},
			keys:     []string{"nprocessopmbr", "Nprocessopmbr", "Processo"},
			expected: "123",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, ok := ResolveField(test.row, test.keys...)
			if !ok {
				t.Fatalf("ResolveField(%v) não resolveu", test.keys)
			}
			if v != test.expected {
				t.Errorf("ResolveField(%v) = %v; expected %v", test.keys, v, test.expected)
			}
		})
	}
}

func TestResolveFieldAusente(t *testing.T) {
	row := RawRow{"assunto": "Coleta", "vazio": nil}

	if _, ok := ResolveField(row, "status", "Status"); ok {
		t.Error("ResolveField resolveu campo inexistente")
	}

	// Valor nil conta como ausente nas duas passadas.
	if _, ok := ResolveField(row, "vazio", "Vazio"); ok {
		t.Error("ResolveField resolveu valor nil")
	}
}
