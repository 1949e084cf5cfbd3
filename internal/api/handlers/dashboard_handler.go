package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/dashboard"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/report"
)

// DashboardHandler gerencia os endpoints de visualização do painel
type DashboardHandler struct {
	service *dashboard.Service
}

// NewDashboardHandler cria um novo handler do painel
func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Dashboard godoc
// @Summary Visão completa do painel
// @Description Retorna estatísticas, agregados de todos os gráficos e o bloco Linha Verde para o filtro corrente. Todas as visões derivam do mesmo conjunto filtrado.
// @Tags dashboard
// @Produce json
// @Param geo query string false "Visão do gráfico geográfico: cidade ou bairro" default(cidade)
// @Success 200 {object} models.DashboardResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Dashboard(c.Query("geo")))
}

// Relatorio godoc
// @Summary Relatório-resumo em HTML
// @Description Monta o resumo executivo do filtro corrente e o renderiza em HTML para impressão
// @Tags dashboard
// @Produce html
// @Param geo query string false "Visão do gráfico geográfico: cidade ou bairro" default(cidade)
// @Success 200 {string} string "HTML do relatório"
// @Router /api/v1/relatorio [get]
func (h *DashboardHandler) Relatorio(c *gin.Context) {
	md := report.BuildMarkdown(h.service.Dashboard(c.Query("geo")))
	c.Data(http.StatusOK, "text/html; charset=utf-8", report.RenderHTML(md))
}

// listQuery são os parâmetros da tabela detalhada.
type listQuery struct {
	Sort      string `form:"sort"`
	Direction string `form:"direction" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,min=1,max=500"`
}

// Solicitacoes godoc
// @Summary Tabela de solicitações detalhadas
// @Description Retorna o conjunto filtrado, ordenado e paginado. A página é 1-based; página além do fim retorna lista vazia, e quem consome deve voltar à página 1 quando o total muda.
// @Tags solicitacoes
// @Produce json
// @Param sort query string false "Campo de ordenação (protocolo, assunto, status, abertura, ...)"
// @Param direction query string false "Direção: asc ou desc" default(asc)
// @Param page query int false "Número da página (mínimo: 1)" default(1)
// @Param per_page query int false "Resultados por página (máximo: 500)" default(10)
// @Success 200 {object} models.TableResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/solicitacoes [get]
func (h *DashboardHandler) Solicitacoes(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.PerPage == 0 {
		q.PerPage = 10
	}
	direction := models.SortAsc
	if q.Direction == string(models.SortDesc) {
		direction = models.SortDesc
	}

	c.JSON(http.StatusOK, h.service.Table(q.Sort, direction, q.PerPage, q.Page))
}
