package banca

// Constants for error messages
const (
	ErrStatusUnavailable = "Não foi possível obter o status do sistema"
	ErrConfigUnavailable = "Configuração de pontuação indisponível"
	ErrRankingFailed     = "Falha ao calcular o ranking"
)

// ConfiguracaoRequest binds the scoring weights the banca may tune
type ConfiguracaoRequest struct {
	PontosPropostaValidada *int `json:"pontos_proposta_validada" binding:"required"`
	PontosPorProduto       *int `json:"pontos_por_produto" binding:"required"`
}
