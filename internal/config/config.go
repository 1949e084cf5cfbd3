// Package config gerencia configurações da aplicação via variáveis de
// ambiente.
//
// # Variáveis de Ambiente
//
//   - SERVER_PORT: Porta do servidor HTTP (default: 8080)
//   - DATASET_PATH: Caminho de uma planilha .xlsx carregada na inicialização
//     como dataset inicial (opcional)
//   - IMPORT_MAX_BYTES: Tamanho máximo aceito no upload de planilha
//     (default: 10485760, 10 MiB)
//   - TRACING_ENABLED: Habilita tracing OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Dataset inicial opcional, carregado na subida do serviço
	DatasetPath string

	// Limite de tamanho do upload de importação
	ImportMaxBytes int64

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DatasetPath:    getEnv("DATASET_PATH", ""),
		ImportMaxBytes: getEnvInt64("IMPORT_MAX_BYTES", 10<<20),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
