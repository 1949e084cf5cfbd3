package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/dashboard"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	store *dashboard.Store
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(store *dashboard.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status         string `json:"status"`
	DatasetVersion string `json:"dataset_version"`
	DatasetSize    int    `json:"dataset_size"`
	Timestamp      int64  `json:"timestamp"`
}

// Health godoc
// @Summary Health check endpoint
// @Description Confirma que a aplicação está viva e informa a versão e o tamanho do dataset em memória. Não há dependências externas a checar: todo o estado é local ao processo.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		DatasetVersion: h.store.Version(),
		DatasetSize:    h.store.Len(),
		Timestamp:      time.Now().Unix(),
	})
}
