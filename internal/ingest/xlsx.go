package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

// ReadWorkbook decodifica a primeira aba de uma planilha .xlsx em linhas
// brutas. A primeira linha vira o conjunto de chaves; as demais viram valores
// fracamente tipados. Células de data serial chegam como número, preservando
// o serial para o CoerceDate.
//
// Falha de decodificação retorna erro sem produzir linhas parciais: quem
// chama só substitui o dataset quando a leitura inteira dá certo.
func ReadWorkbook(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha não contém abas")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return []RawRow{}, nil
	}

	header := rows[0]
	rawRows := make([]RawRow, 0, len(rows)-1)
	for line, cells := range rows[1:] {
		row := make(RawRow, len(header))
		empty := true
		for i, key := range header {
			if key == "" || i >= len(cells) || cells[i] == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, line+2)
			if err != nil {
				return nil, err
			}
			row[key] = cellValue(f, sheets[0], cell, cells[i])
			empty = false
		}
		if !empty {
			rawRows = append(rawRows, row)
		}
	}

	return rawRows, nil
}

// cellValue promove células numéricas para float64, para que seriais de data
// sejam reconhecidos pelo CoerceDate. Células armazenadas como texto passam
// adiante como vieram, mesmo quando o conteúdo parece numérico: CEPs e
// protocolos com zero à esquerda não podem ser re-interpretados como número.
func cellValue(f *excelize.File, sheet, cell, raw string) interface{} {
	ct, err := f.GetCellType(sheet, cell)
	if err != nil || ct == excelize.CellTypeSharedString || ct == excelize.CellTypeInlineString {
		return raw
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

// WriteWorkbook serializa o conjunto de solicitações (já filtrado) numa
// planilha .xlsx de aba única, com o cabeçalho canônico.
func WriteWorkbook(w io.Writer, solicitacoes []models.Solicitacao) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, constants.NomePlanilha); err != nil {
		return fmt.Errorf("erro ao nomear aba: %w", err)
	}
	sheet = constants.NomePlanilha

	for col, campo := range models.CamposSolicitacao {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, campo); err != nil {
			return err
		}
	}

	for line, s := range solicitacoes {
		values := []string{
			s.ID, s.Protocolo, s.Nprocessopmbr, s.Assunto, s.Subsecretaria,
			s.Prioridade, s.Status, s.Abertura, s.Prazo, s.Conclusao,
			s.Solicitante, s.Analista, s.Descricao, s.Logradouro, s.Bairro,
			s.Cidade, s.UF, s.CEP,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, line+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}
	return nil
}
