package models

// Bucket é um grupo de agregação: categoria e quantidade de solicitações.
// Derivado, recalculado a cada mudança de filtro; nunca é persistido.
type Bucket struct {
	Categoria string `json:"categoria"`
	Total     int    `json:"total"`
}

// DashboardStats são as estatísticas derivadas do conjunto filtrado.
// CompletionRate é formatado com uma casa decimal ("0.0" quando o conjunto
// está vazio), como exibido no painel.
type DashboardStats struct {
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	InProgress     int    `json:"in_progress"`
	NotStarted     int    `json:"not_started"`
	CompletionRate string `json:"completion_rate"`
}

// AnalystProductivity é a contagem de solicitações atribuídas a um analista.
type AnalystProductivity struct {
	Analista string `json:"analista"`
	Total    int    `json:"total"`
}

// DashboardResponse reúne tudo que o painel exibe para o filtro corrente:
// estatísticas, agregados dos gráficos e o bloco Linha Verde.
type DashboardResponse struct {
	DatasetVersion   string                `json:"dataset_version"`
	Stats            DashboardStats        `json:"stats"`
	PorStatus        []Bucket              `json:"por_status"`
	PorSubsecretaria []Bucket              `json:"por_subsecretaria"`
	TopAssuntos      []Bucket              `json:"top_assuntos"`
	Geografia        []Bucket              `json:"geografia"`
	Analistas        []AnalystProductivity `json:"analistas"`
	LinhaVerde       LinhaVerdeResponse    `json:"linha_verde"`
	DynamicFilter    *DynamicFilter        `json:"dynamic_filter,omitempty"`
}

// LinhaVerdeResponse é o recorte de monitoramento do programa Linha Verde.
type LinhaVerdeResponse struct {
	Total       int      `json:"total"`
	TopAssuntos []Bucket `json:"top_assuntos"`
}

// TableResponse é uma página da tabela de solicitações detalhadas.
type TableResponse struct {
	Solicitacoes []Solicitacao `json:"solicitacoes"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	TotalPages   int           `json:"total_pages"`
}

// FilterOptions são as listas de valores para os dropdowns de filtro,
// sentinela primeiro e demais valores na ordem de aparição no dataset.
type FilterOptions struct {
	Status         []string `json:"status"`
	Subsecretarias []string `json:"subsecretarias"`
}
