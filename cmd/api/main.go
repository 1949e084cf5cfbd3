package main

import (
	"log"
	"os"

	_ "github.com/iamivanribeiro/Report-SIGAMI/docs"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/api/routes"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/config"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/dashboard"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/ingest"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/observability"
)

// @title           Report SIGAMI API
// @version         1.0
// @description     Painel analítico de solicitações de serviços ambientais (SIGAMI). Importa planilhas de solicitações, normaliza colunas heterogêneas e expõe filtros compostos, agregações e exportação sobre o dataset em memória.

// @contact.name   SEMAS Belford Roxo

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	store := dashboard.NewStore()
	if cfg.DatasetPath != "" {
		if err := carregarDatasetInicial(store, cfg.DatasetPath); err != nil {
			// Dataset inicial é conveniência: o serviço sobe vazio e o
			// usuário importa pela API.
			log.Printf("Erro ao carregar dataset inicial de %q: %v", cfg.DatasetPath, err)
		}
	}

	r := routes.SetupRouter(cfg, store)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}

func carregarDatasetInicial(store *dashboard.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := ingest.ReadWorkbook(f)
	if err != nil {
		return err
	}

	version := store.Load(ingest.MapRows(rows))
	log.Printf("Dataset inicial carregado: %d solicitações (dataset %s)", len(rows), version)
	return nil
}
