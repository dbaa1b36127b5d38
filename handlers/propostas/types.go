package propostas

// Constants for error messages
const (
	ErrPropostaNotFound  = "Proposta não encontrada"
	ErrEquipeNotResolved = "Sessão sem equipe selecionada"
	ErrStatusUnavailable = "Não foi possível obter o status do sistema"
	ErrArquivoInvalido   = "O arquivo da proposta deve ser um PDF"
	ErrSaveArquivo       = "Falha ao salvar o arquivo da proposta"
	ErrSaveProposta      = "Falha ao salvar a proposta"
)

// ValidacaoRequest binds the gestor's decision on a submitted proposal
type ValidacaoRequest struct {
	Acao   string `json:"acao" binding:"required"`
	Motivo string `json:"motivo"`
}
