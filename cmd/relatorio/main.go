// Gera o relatório SIGAMI a partir de uma planilha, sem subir o servidor:
// lê o .xlsx, aplica os filtros passados por flag e escreve a planilha
// filtrada e/ou o resumo em markdown ou HTML.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/constants"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/dashboard"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/ingest"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/report"
)

var (
	entrada       = flag.String("entrada", "", "Planilha .xlsx de solicitações (obrigatório)")
	saida         = flag.String("saida", constants.NomeArquivoRelatorio, "Planilha .xlsx filtrada de saída")
	formato       = flag.String("formato", "xlsx", "Formato de saída: xlsx, markdown ou html")
	busca         = flag.String("busca", "", "Texto de busca (protocolo, assunto, analista, bairro)")
	status        = flag.String("status", "", "Filtro exato de status")
	subsecretaria = flag.String("subsecretaria", "", "Filtro exato de subsecretaria")
	dataInicio    = flag.String("data-inicio", "", "Data inicial YYYY-MM-DD")
	dataFim       = flag.String("data-fim", "", "Data final YYYY-MM-DD")
	linhaVerde    = flag.Bool("linha-verde", false, "Apenas solicitações do programa Linha Verde")
	geo           = flag.String("geo", "cidade", "Visão geográfica do resumo: cidade ou bairro")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Uso: %s -entrada planilha.xlsx [opções]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Opções:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *entrada == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*entrada)
	if err != nil {
		log.Fatalf("Erro ao abrir %q: %v", *entrada, err)
	}
	defer f.Close()

	rows, err := ingest.ReadWorkbook(f)
	if err != nil {
		log.Fatalf("Erro ao ler planilha: %v", err)
	}

	service := dashboard.NewService(dashboard.NewStore())
	service.Import(ingest.MapRows(rows))
	service.SetFilters(models.FilterState{
		Search:         *busca,
		Status:         *status,
		Subsecretaria:  *subsecretaria,
		StartDate:      *dataInicio,
		EndDate:        *dataFim,
		OnlyLinhaVerde: *linhaVerde,
	})

	filtradas := service.Filtered()
	log.Printf("%d de %d solicitações passam pelo filtro", len(filtradas), len(rows))

	switch *formato {
	case "xlsx":
		out, err := os.Create(*saida)
		if err != nil {
			log.Fatalf("Erro ao criar %q: %v", *saida, err)
		}
		defer out.Close()
		if err := ingest.WriteWorkbook(out, filtradas); err != nil {
			log.Fatalf("Erro ao gravar planilha: %v", err)
		}
		log.Printf("Relatório gravado em %q", *saida)
	case "markdown":
		fmt.Print(report.BuildMarkdown(service.Dashboard(*geo)))
	case "html":
		os.Stdout.Write(report.RenderHTML(report.BuildMarkdown(service.Dashboard(*geo))))
	default:
		log.Fatalf("Formato desconhecido: %q (use xlsx, markdown ou html)", *formato)
	}
}
