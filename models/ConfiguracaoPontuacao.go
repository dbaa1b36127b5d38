package models

import "time"

// ConfiguracaoPontuacao holds the banca-configured scoring constants.
// Singleton row, read by every score computation.
type ConfiguracaoPontuacao struct {
	ID                     string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	PontosPropostaValidada int       `gorm:"not null;default:1;column:pontos_proposta_validada" json:"pontos_proposta_validada"`
	PontosPorProduto       int       `gorm:"not null;default:1;column:pontos_por_produto" json:"pontos_por_produto"`
	DataAtualizacao        time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`
	AtualizadoPorID        *string   `gorm:"type:uuid;column:atualizado_por_id" json:"atualizado_por_id"`
}
