package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/dashboard"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

// FiltrosHandler gerencia o estado de filtros do painel
type FiltrosHandler struct {
	service   *dashboard.Service
	validator *validator.Validate
}

// NewFiltrosHandler cria um novo handler de filtros
func NewFiltrosHandler(service *dashboard.Service) *FiltrosHandler {
	v := validator.New()
	_ = v.RegisterValidation("data_iso", dataISO)

	return &FiltrosHandler{
		service:   service,
		validator: v,
	}
}

// dataISO valida datas no formato YYYY-MM-DD usado pelos filtros de período.
func dataISO(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// Set godoc
// @Summary Define o estado completo dos filtros
// @Description Substitui o FilterState inteiro. Campos vazios significam "sem restrição"; o filtro dinâmico de drill-down não é afetado.
// @Tags filtros
// @Accept json
// @Produce json
// @Param filtros body models.FilterState true "Estado dos filtros"
// @Success 200 {object} models.FilterState
// @Failure 400 {object} map[string]string
// @Router /api/v1/filtros [put]
func (h *FiltrosHandler) Set(c *gin.Context) {
	var f models.FilterState
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": err.Error()})
		return
	}

	if err := h.validator.Struct(f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou", "details": err.Error()})
		return
	}

	h.service.SetFilters(f)
	c.JSON(http.StatusOK, h.service.Filters())
}

// Get godoc
// @Summary Estado corrente dos filtros
// @Tags filtros
// @Produce json
// @Success 200 {object} models.FilterState
// @Router /api/v1/filtros [get]
func (h *FiltrosHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Filters())
}

// Clear godoc
// @Summary Limpa todos os filtros
// @Description Volta os filtros estáticos aos defaults e remove o filtro dinâmico de drill-down, num único reset.
// @Tags filtros
// @Produce json
// @Success 204 "Sem conteúdo"
// @Router /api/v1/filtros [delete]
func (h *FiltrosHandler) Clear(c *gin.Context) {
	h.service.ClearFilters()
	c.Status(http.StatusNoContent)
}

// DrillDown godoc
// @Summary Define o filtro de drill-down
// @Description Cria o filtro dinâmico a partir da seleção de uma categoria em um gráfico. A categoria sintética "Outros" é ignorada (não corresponde a um valor único). Um drill-down novo substitui o anterior.
// @Tags filtros
// @Accept json
// @Produce json
// @Param filtro body models.DynamicFilter true "Campo e valor selecionados"
// @Success 200 {object} models.DynamicFilter
// @Success 204 "Categoria Outros: nenhum filtro criado"
// @Failure 400 {object} map[string]string
// @Router /api/v1/filtros/drilldown [post]
func (h *FiltrosHandler) DrillDown(c *gin.Context) {
	var dyn models.DynamicFilter
	if err := c.ShouldBindJSON(&dyn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": err.Error()})
		return
	}

	if !h.service.DrillDown(dyn.Field, dyn.Value) {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, h.service.CurrentDynamic())
}

// ClearDrillDown godoc
// @Summary Remove o filtro de drill-down
// @Tags filtros
// @Success 204 "Sem conteúdo"
// @Router /api/v1/filtros/drilldown [delete]
func (h *FiltrosHandler) ClearDrillDown(c *gin.Context) {
	h.service.ClearDrillDown()
	c.Status(http.StatusNoContent)
}

// Opcoes godoc
// @Summary Opções dos dropdowns de filtro
// @Description Lista os valores distintos de status e subsecretaria do dataset completo, com o sentinela ("Todos os Status" / "Todas as Subsecretarias") primeiro.
// @Tags filtros
// @Produce json
// @Success 200 {object} models.FilterOptions
// @Router /api/v1/filtros/opcoes [get]
func (h *FiltrosHandler) Opcoes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.FilterOptions())
}
