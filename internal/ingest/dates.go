package ingest

import (
	"fmt"
	"math"
	"time"
)

// excelEpochOffsetDays é o deslocamento em dias entre a época de data serial
// do Excel e a época Unix (01/01/1970).
const excelEpochOffsetDays = 25569

// CoerceDate converte um valor de célula de data para string ISO YYYY-MM-DD.
//
// Valores numéricos são interpretados como serial de data do Excel: dias
// desde a época da planilha, convertidos para segundos Unix e truncados para
// a porção de data (hora do dia é descartada). Qualquer outro valor passa
// adiante como string, sem re-parse. Nulo ou vazio vira string vazia.
//
// A conversão é sabidamente aproximada: o erro do ano bissexto de 1900 do
// formato Excel não é corrigido.
func CoerceDate(value interface{}) string {
	if value == nil {
		return ""
	}

	var serial float64
	switch v := value.(type) {
	case float64:
		serial = v
	case float32:
		serial = float64(v)
	case int:
		serial = float64(v)
	case int64:
		serial = float64(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}

	seconds := math.Round((serial - excelEpochOffsetDays) * 86400)
	return time.Unix(int64(seconds), 0).UTC().Format("2006-01-02")
}
