// Package dashboard implementa o núcleo do painel SIGAMI: o dataset em
// memória, a composição de filtros e as agregações derivadas. Todas as
// operações de leitura são funções puras sobre um snapshot do dataset;
// correção vale mais que performance, já que o volume é de planilha
// (milhares de linhas, não milhões).
package dashboard

import (
	"sync"

	"github.com/google/uuid"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/models"
)

// Store guarda o dataset corrente de solicitações. O dataset só muda por
// substituição total: uma importação bem-sucedida troca a coleção inteira de
// uma vez, nunca há merge parcial. Registros não são alterados nem removidos
// individualmente depois de criados.
//
// Importações concorrentes são last-write-wins: a última a completar é a que
// fica visível, nunca uma mistura das duas.
type Store struct {
	mu      sync.RWMutex
	dados   []models.Solicitacao
	version string
}

// NewStore cria um store vazio.
func NewStore() *Store {
	return &Store{version: uuid.NewString()}
}

// Load substitui o dataset inteiro atomicamente e retorna o id da nova
// versão. Uma importação que falhou nunca deve chegar aqui: o dataset
// anterior permanece ativo até existir uma coleção completa para adotar.
func (s *Store) Load(solicitacoes []models.Solicitacao) string {
	dados := make([]models.Solicitacao, len(solicitacoes))
	copy(dados, solicitacoes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dados = dados
	s.version = uuid.NewString()
	return s.version
}

// Current retorna um snapshot do dataset corrente. O slice retornado é uma
// cópia rasa: quem chama pode reordenar e fatiar à vontade sem afetar o
// store.
func (s *Store) Current() []models.Solicitacao {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dados := make([]models.Solicitacao, len(s.dados))
	copy(dados, s.dados)
	return dados
}

// Version retorna o id da versão corrente do dataset.
func (s *Store) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Len retorna o tamanho do dataset corrente.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dados)
}
