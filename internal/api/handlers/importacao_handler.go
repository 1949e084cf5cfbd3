package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/dashboard"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/ingest"
)

// ImportacaoHandler gerencia a importação e exportação de planilhas
type ImportacaoHandler struct {
	service  *dashboard.Service
	maxBytes int64
}

// NewImportacaoHandler cria um novo handler de importação
func NewImportacaoHandler(service *dashboard.Service, maxBytes int64) *ImportacaoHandler {
	return &ImportacaoHandler{service: service, maxBytes: maxBytes}
}

// Upload godoc
// @Summary Importa uma planilha de solicitações
// @Description Decodifica a planilha (.xlsx/.xls), normaliza as linhas para o esquema canônico e substitui o dataset inteiro de uma vez. Falha de decodificação não altera o dataset corrente: o anterior continua ativo e o usuário pode tentar de novo.
// @Tags importacao
// @Accept multipart/form-data
// @Produce json
// @Param arquivo formData file true "Planilha .xlsx"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/importacao [post]
func (h *ImportacaoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo não enviado", "details": err.Error()})
		return
	}
	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Arquivo grande demais",
			"details": fmt.Sprintf("tamanho máximo aceito: %d bytes", h.maxBytes),
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erro ao abrir arquivo", "details": err.Error()})
		return
	}
	defer f.Close()

	rows, err := ingest.ReadWorkbook(f)
	if err != nil {
		// O dataset anterior permanece ativo: nada foi substituído.
		log.Printf("Importação falhou para %q: %v", fileHeader.Filename, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Não foi possível ler a planilha",
			"details": err.Error(),
		})
		return
	}

	version := h.service.Import(ingest.MapRows(rows))
	log.Printf("Importadas %d solicitações de %q (dataset %s)", len(rows), fileHeader.Filename, version)

	c.JSON(http.StatusOK, gin.H{
		"dataset_version": version,
		"total":           len(rows),
	})
}

// Export godoc
// @Summary Exporta o conjunto filtrado corrente
// @Description Serializa as solicitações que passam pelo filtro corrente numa planilha .xlsx com nome fixo de relatório
// @Tags importacao
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /api/v1/solicitacoes/export [get]
func (h *ImportacaoHandler) Export(c *gin.Context) {
	// Serializa em memória primeiro: cabeçalhos de download e corpo só são
	// emitidos com a planilha inteira pronta, para que uma falha de
	// serialização ainda possa responder 500 com corpo JSON.
	var buf bytes.Buffer
	if err := ingest.WriteWorkbook(&buf, h.service.Export()); err != nil {
		log.Printf("Exportação falhou: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar planilha", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.NomeArquivoRelatorio))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
