package models

// Solicitacao representa uma solicitação de serviço ambiental já normalizada
// para o esquema canônico, independente da grafia das colunas da planilha de
// origem. Todos os campos textuais são não-nulos: campo ausente vira string
// vazia (ou o default documentado do mapeador).
type Solicitacao struct {
	ID            string `json:"id"`
	Protocolo     string `json:"protocolo"`
	Nprocessopmbr string `json:"nprocessopmbr"`
	Assunto       string `json:"assunto"`
	Subsecretaria string `json:"subsecretaria"`
	Prioridade    string `json:"prioridade"`
	Status        string `json:"status"`
	Abertura      string `json:"abertura"` // ISO YYYY-MM-DD ou vazio
	Prazo         string `json:"prazo"`    // ISO YYYY-MM-DD ou vazio
	Conclusao     string `json:"conclusao"`
	Solicitante   string `json:"solicitante"`
	Analista      string `json:"analista"`
	Descricao     string `json:"descricao"`
	Logradouro    string `json:"logradouro"`
	Bairro        string `json:"bairro"`
	Cidade        string `json:"cidade"`
	UF            string `json:"uf"`
	CEP           string `json:"cep"`
}

// CamposSolicitacao lista os nomes canônicos dos campos, na ordem das colunas
// da exportação.
var CamposSolicitacao = []string{
	"id", "protocolo", "nprocessopmbr", "assunto", "subsecretaria",
	"prioridade", "status", "abertura", "prazo", "conclusao",
	"solicitante", "analista", "descricao", "logradouro", "bairro",
	"cidade", "uf", "cep",
}

// FieldValue retorna o valor do campo pelo nome canônico (minúsculo, sem
// acento). Campo desconhecido retorna string vazia, nunca erro: ordenação e
// filtros dinâmicos tratam campos inválidos como comparações vazias.
func (s *Solicitacao) FieldValue(field string) string {
	switch field {
	case "id":
		return s.ID
	case "protocolo":
		return s.Protocolo
	case "nprocessopmbr":
		return s.Nprocessopmbr
	case "assunto":
		return s.Assunto
	case "subsecretaria":
		return s.Subsecretaria
	case "prioridade":
		return s.Prioridade
	case "status":
		return s.Status
	case "abertura":
		return s.Abertura
	case "prazo":
		return s.Prazo
	case "conclusao":
		return s.Conclusao
	case "solicitante":
		return s.Solicitante
	case "analista":
		return s.Analista
	case "descricao":
		return s.Descricao
	case "logradouro":
		return s.Logradouro
	case "bairro":
		return s.Bairro
	case "cidade":
		return s.Cidade
	case "uf":
		return s.UF
	case "cep":
		return s.CEP
	}
	return ""
}
