package models

// FilterState guarda o estado dos filtros estáticos do dashboard. O estado é
// sempre completo: campo vazio significa "sem restrição", nunca "parcial".
type FilterState struct {
	StartDate      string `json:"start_date" validate:"omitempty,data_iso"`
	EndDate        string `json:"end_date" validate:"omitempty,data_iso"`
	Status         string `json:"status"`
	Subsecretaria  string `json:"subsecretaria"`
	Search         string `json:"search"`
	OnlyLinhaVerde bool   `json:"only_linha_verde"`
}

// DynamicFilter é o filtro ad-hoc criado por drill-down em um gráfico.
// Existe no máximo um por vez; um novo drill-down substitui o anterior.
// É combinado em AND com o FilterState.
type DynamicFilter struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// SortDirection indica a direção de ordenação da tabela.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)
