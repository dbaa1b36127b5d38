package models

import "time"

// Sale validation statuses as stored on the wire
const (
	VendaPendente  = "pendente"
	VendaValidada  = "validada"
	VendaRejeitada = "rejeitada"
)

// Venda records a concretized sale against a validated Proposta.
// At most one non-rejected Venda may exist per Proposta.
type Venda struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	PropostaID string    `gorm:"type:uuid;not null;column:proposta_id" json:"proposta_id"`
	Proposta   *Proposta `gorm:"foreignKey:PropostaID" json:"proposta"`

	QuantidadeProdutosVendidos int     `gorm:"not null;default:0;column:quantidade_produtos_vendidos" json:"quantidade_produtos_vendidos"`
	ValorTotalVenda            float64 `gorm:"type:numeric(12,2);not null;column:valor_total_venda" json:"valor_total_venda"`
	ClienteVenda               string  `gorm:"type:varchar(255);column:cliente_venda" json:"cliente_venda"`
	Observacoes                string  `gorm:"type:text" json:"observacoes"`
	ArquivoPDF                 string  `gorm:"type:varchar(255);column:arquivo_pdf" json:"arquivo_pdf"`

	StatusValidacao string     `gorm:"type:varchar(20);not null;default:'pendente';column:status_validacao" json:"status_validacao"`
	MotivoRejeicao  string     `gorm:"type:text;column:motivo_rejeicao" json:"motivo_rejeicao"`
	PontosGerados   int        `gorm:"not null;default:0;column:pontos_gerados" json:"pontos_gerados"`
	DataVenda       time.Time  `gorm:"column:data_venda;autoCreateTime" json:"data_venda"`
	DataValidacao   *time.Time `gorm:"column:data_validacao" json:"data_validacao"`
	ValidadoPorID   *string    `gorm:"type:uuid;column:validado_por_id" json:"validado_por_id"`
}
