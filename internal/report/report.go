// Package report monta o relatório-resumo do painel em markdown e o
// renderiza em HTML para impressão/distribuição.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

// BuildMarkdown monta o resumo executivo do filtro corrente: estatísticas,
// top assuntos, produtividade por analista e o bloco Linha Verde.
func BuildMarkdown(resp models.DashboardResponse) string {
	var b strings.Builder

	b.WriteString("# Relatório SIGAMI\n\n")
	fmt.Fprintf(&b, "Dataset: `%s`\n\n", resp.DatasetVersion)

	if resp.DynamicFilter != nil {
		fmt.Fprintf(&b, "> Recorte ativo: **%s** = %s\n\n", resp.DynamicFilter.Field, resp.DynamicFilter.Value)
	}

	b.WriteString("## Visão Geral\n\n")
	fmt.Fprintf(&b, "- Total de solicitações: **%d**\n", resp.Stats.Total)
	fmt.Fprintf(&b, "- Concluídas: **%d**\n", resp.Stats.Completed)
	fmt.Fprintf(&b, "- Em andamento: **%d**\n", resp.Stats.InProgress)
	fmt.Fprintf(&b, "- Não iniciadas: **%d**\n", resp.Stats.NotStarted)
	fmt.Fprintf(&b, "- Taxa de conclusão: **%s%%**\n\n", resp.Stats.CompletionRate)

	writeBuckets(&b, "Top Assuntos", resp.TopAssuntos)
	writeBuckets(&b, "Por Subsecretaria", resp.PorSubsecretaria)

	b.WriteString("## Produtividade por Analista\n\n")
	if len(resp.Analistas) == 0 {
		b.WriteString("Nenhum registro no recorte atual.\n\n")
	} else {
		b.WriteString("| Analista | Solicitações |\n|---|---|\n")
		for _, a := range resp.Analistas {
			fmt.Fprintf(&b, "| %s | %d |\n", a.Analista, a.Total)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Monitoramento Linha Verde\n\n")
	fmt.Fprintf(&b, "Solicitações via Linha Verde no recorte: **%d**\n\n", resp.LinhaVerde.Total)
	if len(resp.LinhaVerde.TopAssuntos) > 0 {
		writeBuckets(&b, "Top Assuntos (Linha Verde)", resp.LinhaVerde.TopAssuntos)
	}

	return b.String()
}

func writeBuckets(b *strings.Builder, titulo string, buckets []models.Bucket) {
	fmt.Fprintf(b, "## %s\n\n", titulo)
	if len(buckets) == 0 {
		b.WriteString("Nenhum registro no recorte atual.\n\n")
		return
	}
	for _, bucket := range buckets {
		fmt.Fprintf(b, "- %s: %d\n", bucket.Categoria, bucket.Total)
	}
	b.WriteString("\n")
}

// RenderHTML converte o relatório markdown em HTML.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
