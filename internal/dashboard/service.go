package dashboard

import (
	"strings"
	"sync"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/utils"
)

// TopAssuntosPadrao e TopGeografiaPadrao são os cortes usados pelos gráficos
// de assuntos e de geografia do painel.
const (
	TopAssuntosPadrao  = 5
	TopGeografiaPadrao = 10
)

// Service é o dono do estado do dashboard: dataset, filtros estáticos e o
// filtro dinâmico de drill-down. A camada de apresentação apenas despacha
// mutações e lê estado derivado; nenhuma visão guarda cópia própria do
// dataset, então todas ficam consistentes entre si por construção.
type Service struct {
	store *Store

	mu      sync.RWMutex
	filtros models.FilterState
	dynamic *models.DynamicFilter
}

// NewService cria o serviço com filtros limpos.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Import adota um novo dataset, substituindo o anterior por inteiro, e
// retorna a versão adotada. Filtros ativos são mantidos: continuam valendo
// sobre o dataset novo.
func (sv *Service) Import(solicitacoes []models.Solicitacao) string {
	return sv.store.Load(solicitacoes)
}

// DatasetVersion retorna a versão corrente do dataset.
func (sv *Service) DatasetVersion() string {
	return sv.store.Version()
}

// SetFilters substitui o estado completo dos filtros estáticos.
func (sv *Service) SetFilters(f models.FilterState) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.filtros = f
}

// Filters retorna o estado corrente dos filtros estáticos.
func (sv *Service) Filters() models.FilterState {
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	return sv.filtros
}

// ClearFilters volta os filtros estáticos aos defaults e remove o filtro
// dinâmico, num único reset.
func (sv *Service) ClearFilters() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.filtros = models.FilterState{}
	sv.dynamic = nil
}

// DrillDown define o filtro dinâmico a partir da seleção de uma categoria em
// um agregado. A categoria sintética "Outros" é ignorada, pois não
// corresponde a nenhum valor único no dataset. Um drill-down novo substitui
// o anterior; existe no máximo um ativo por vez.
//
// Retorna true quando o filtro foi definido.
func (sv *Service) DrillDown(field, value string) bool {
	if value == constants.CategoriaOutros {
		return false
	}

	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.dynamic = &models.DynamicFilter{Field: canonicalField(field), Value: value}
	return true
}

// ClearDrillDown remove o filtro dinâmico, se existir.
func (sv *Service) ClearDrillDown() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.dynamic = nil
}

// CurrentDynamic retorna o filtro dinâmico ativo, ou nil, para a camada de
// apresentação exibir como banner dispensável.
func (sv *Service) CurrentDynamic() *models.DynamicFilter {
	sv.mu.RLock()
	defer sv.mu.RUnlock()

	if sv.dynamic == nil {
		return nil
	}
	dyn := *sv.dynamic
	return &dyn
}

// snapshot devolve (dataset, filtros, dinâmico) coerentes entre si.
func (sv *Service) snapshot() ([]models.Solicitacao, models.FilterState, *models.DynamicFilter) {
	dados := sv.store.Current()

	sv.mu.RLock()
	defer sv.mu.RUnlock()
	return dados, sv.filtros, sv.dynamic
}

// Filtered retorna o conjunto filtrado corrente, recalculado do zero como
// função pura do snapshot.
func (sv *Service) Filtered() []models.Solicitacao {
	dados, filtros, dyn := sv.snapshot()
	return Apply(dados, &filtros, dyn)
}

// Dashboard monta a resposta completa do painel para o filtro corrente:
// estatísticas, agregados de todos os gráficos e o bloco Linha Verde. Todas
// as visões derivam do mesmo conjunto filtrado.
func (sv *Service) Dashboard(geoView string) models.DashboardResponse {
	filtradas := sv.Filtered()

	linhaVerde := filtrarLinhaVerde(filtradas)

	return models.DashboardResponse{
		DatasetVersion:   sv.store.Version(),
		Stats:            ComputeStats(filtradas),
		PorStatus:        GroupCount(filtradas, "status"),
		PorSubsecretaria: GroupCount(filtradas, "subsecretaria"),
		TopAssuntos:      TopN(filtradas, "assunto", TopAssuntosPadrao),
		Geografia:        TopNWithOthers(filtradas, canonicalGeoView(geoView), TopGeografiaPadrao),
		Analistas:        AnalystProductivity(filtradas),
		LinhaVerde: models.LinhaVerdeResponse{
			Total:       len(linhaVerde),
			TopAssuntos: TopN(linhaVerde, "assunto", TopAssuntosPadrao),
		},
		DynamicFilter: sv.CurrentDynamic(),
	}
}

// Table retorna uma página da tabela detalhada: conjunto filtrado, ordenado
// e janelado. O total acompanha a resposta para quem chama recalcular os
// limites de página quando o conjunto muda.
func (sv *Service) Table(sortField string, direction models.SortDirection, pageSize, page int) models.TableResponse {
	filtradas := sv.Filtered()

	if sortField != "" {
		filtradas = SortBy(filtradas, canonicalField(sortField), direction)
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (len(filtradas) + pageSize - 1) / pageSize
	}

	return models.TableResponse{
		Solicitacoes: Paginate(filtradas, pageSize, page),
		Total:        len(filtradas),
		Page:         page,
		PerPage:      pageSize,
		TotalPages:   totalPages,
	}
}

// Export retorna o conjunto filtrado corrente para serialização externa.
func (sv *Service) Export() []models.Solicitacao {
	return sv.Filtered()
}

// FilterOptions monta as listas dos dropdowns: sentinela primeiro, depois os
// valores distintos na ordem de aparição no dataset completo (não filtrado,
// para o usuário poder trocar de filtro sem perder opções).
func (sv *Service) FilterOptions() models.FilterOptions {
	dados := sv.store.Current()

	return models.FilterOptions{
		Status:         distinctValues(dados, "status", constants.TodosOsStatus),
		Subsecretarias: distinctValues(dados, "subsecretaria", constants.TodasAsSubsecretarias),
	}
}

func distinctValues(solicitacoes []models.Solicitacao, field, sentinel string) []string {
	seen := make(map[string]bool)
	values := []string{sentinel}
	for i := range solicitacoes {
		v := solicitacoes[i].FieldValue(field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

func filtrarLinhaVerde(solicitacoes []models.Solicitacao) []models.Solicitacao {
	subset := make([]models.Solicitacao, 0)
	for i := range solicitacoes {
		if strings.Contains(strings.ToLower(solicitacoes[i].Descricao), constants.PalavraChaveLinhaVerde) {
			subset = append(subset, solicitacoes[i])
		}
	}
	return subset
}

// canonicalField tolera nomes de campo com acento ou capitalização vindos da
// camada de apresentação ("Descrição" -> "descricao").
func canonicalField(field string) string {
	return utils.RemoveAcentos(strings.TrimSpace(field))
}

// canonicalGeoView aceita "cidade" ou "bairro"; qualquer outra coisa cai no
// default "cidade".
func canonicalGeoView(view string) string {
	if canonicalField(view) == "bairro" {
		return "bairro"
	}
	return "cidade"
}
