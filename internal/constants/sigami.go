package constants

// Valores sentinela usados pelos dropdowns de filtro. Quando selecionados,
// o filtro correspondente é tratado como "sem restrição".
const (
	TodosOsStatus         = "Todos os Status"
	TodasAsSubsecretarias = "Todas as Subsecretarias"
)

// CategoriaOutros é o bucket sintético que agrupa as categorias de menor
// volume nas agregações top-N. Nunca vira filtro de drill-down, já que não
// corresponde a um valor único no dataset.
const CategoriaOutros = "Outros"

// CategoriaNA é a categoria atribuída a valores vazios nas agregações.
const CategoriaNA = "N/A"

// Valores padrão aplicados pelo mapeador quando a planilha não traz o campo.
const (
	DefaultAssunto    = "Outros"
	DefaultPrioridade = "Média"
	DefaultStatus     = "Não Iniciado"
	DefaultAnalista   = "Não Atribuído"
)

// PalavraChaveLinhaVerde identifica solicitações originadas do programa
// Linha Verde. A comparação é feita em minúsculas sobre a descrição.
const PalavraChaveLinhaVerde = "linha verde"

// Marcadores de status usados nas estatísticas derivadas. São substrings
// comparadas em minúsculas, então cobrem variações como "Concluído" e
// "Concluída". As classificações são independentes entre si.
const (
	MarcadorConcluido   = "conclu"
	MarcadorAndamento   = "andamento"
	MarcadorAtendimento = "atendimento"
	MarcadorNaoIniciado = "iniciado"
)

// NomeArquivoRelatorio é o nome fixo do arquivo exportado.
const NomeArquivoRelatorio = "relatorio_sigami.xlsx"

// NomePlanilha é o nome da aba usada na exportação.
const NomePlanilha = "Solicitações"
