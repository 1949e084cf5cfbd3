package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/utils"
)

// stringField resolve um campo e o converte para string, aplicando o default
// quando nenhuma chave candidata existe na linha.
func stringField(row RawRow, defaultValue string, keys ...string) string {
	v, ok := ResolveField(row, keys...)
	if !ok {
		return defaultValue
	}

	s := strings.TrimSpace(toString(v))
	if s == "" {
		return defaultValue
	}
	return s
}

// normalizedField resolve um campo de nome/endereço/assunto e aplica o
// Title Case parcial antes do default.
func normalizedField(row RawRow, defaultValue string, keys ...string) string {
	v, ok := ResolveField(row, keys...)
	if !ok {
		return defaultValue
	}

	s := utils.NormalizeTitleCase(toString(v))
	if s == "" {
		return defaultValue
	}
	return s
}

// dateField resolve um campo de data e o converte para ISO.
func dateField(row RawRow, keys ...string) string {
	v, ok := ResolveField(row, keys...)
	if !ok {
		return ""
	}
	return CoerceDate(v)
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Protocolos e CEPs numéricos não devem virar notação científica.
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// MapRow transforma uma linha bruta da planilha em uma Solicitacao canônica.
//
// O id recebe o índice da linha dentro do lote de importação; a unicidade
// depende de quem chama fornecer índices distintos e estáveis dentro de um
// mesmo lote (reimportar zera todos os ids). A função é pura: importar em
// massa é mapear cada linha de forma independente e adotar a coleção
// resultante como o novo dataset.
func MapRow(row RawRow, index int) models.Solicitacao {
	return models.Solicitacao{
		ID:            strconv.Itoa(index),
		Protocolo:     stringField(row, "", "protocolo", "Protocolo"),
		Nprocessopmbr: stringField(row, "", "nprocessopmbr", "Nprocessopmbr", "Processo"),
		Assunto:       normalizedField(row, constants.DefaultAssunto, "assunto", "Assunto"),
		Subsecretaria: stringField(row, constants.CategoriaNA, "subsecretaria", "Subsecretaria"),
		Prioridade:    stringField(row, constants.DefaultPrioridade, "prioridade", "Prioridade"),
		Status:        stringField(row, constants.DefaultStatus, "status", "Status"),
		Abertura:      dateField(row, "abertura", "Abertura"),
		Prazo:         dateField(row, "prazo", "Prazo"),
		Conclusao:     stringField(row, "", "conclusão", "conclusao", "Conclusão", "Conclusao"),
		Solicitante:   normalizedField(row, "", "solicitante", "Solicitante"),
		Analista:      normalizedField(row, constants.DefaultAnalista, "analista", "Analista"),
		Descricao:     stringField(row, "", "descrição", "descricao", "Descrição", "Descricao"),
		Logradouro:    normalizedField(row, "", "logradouro", "Logradouro"),
		Bairro:        normalizedField(row, "", "bairro", "Bairro"),
		Cidade:        normalizedField(row, "", "cidade", "Cidade"),
		UF:            stringField(row, "", "uf", "UF", "Uf"),
		CEP:           stringField(row, "", "cep", "CEP", "Cep"),
	}
}

// MapRows mapeia todas as linhas de um lote de importação.
func MapRows(rows []RawRow) []models.Solicitacao {
	solicitacoes := make([]models.Solicitacao, len(rows))
	for i, row := range rows {
		solicitacoes[i] = MapRow(row, i)
	}
	return solicitacoes
}
