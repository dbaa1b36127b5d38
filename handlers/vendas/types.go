package vendas

// Constants for error messages
const (
	ErrVendaNotFound     = "Venda não encontrada"
	ErrPropostaNotFound  = "Proposta não encontrada"
	ErrEquipeNotResolved = "Sessão sem equipe selecionada"
	ErrStatusUnavailable = "Não foi possível obter o status do sistema"
	ErrSaveVenda         = "Falha ao salvar a venda"
)

// ValidacaoRequest binds the gestor's decision on a pending sale
type ValidacaoRequest struct {
	Acao   string `json:"acao" binding:"required"`
	Motivo string `json:"motivo"`
}
