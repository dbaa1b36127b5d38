package models

import "time"

// Proposal statuses as stored on the wire
const (
	PropostaEnviada   = "enviada"
	PropostaValidada  = "validada"
	PropostaRejeitada = "rejeitada"
)

// Proposta represents a sales pitch submitted by a team during the workshop
type Proposta struct {
	ID       string  `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	EquipeID string  `gorm:"type:uuid;not null;column:equipe_id" json:"equipe_id"`
	Equipe   *Equipe `gorm:"foreignKey:EquipeID" json:"equipe"`

	Cliente            string  `gorm:"type:varchar(200);not null" json:"cliente"`
	Vendedor           string  `gorm:"type:varchar(100);not null" json:"vendedor"`
	ValorProposta      float64 `gorm:"type:numeric(12,2);not null;column:valor_proposta" json:"valor_proposta"`
	QuantidadeProdutos int     `gorm:"not null;default:0;column:quantidade_produtos" json:"quantidade_produtos"`
	Descricao          string  `gorm:"type:text" json:"descricao"`
	ArquivoPDF         string  `gorm:"type:varchar(255);column:arquivo_pdf" json:"arquivo_pdf"`

	BonusVinhosCasaPeriniMundo bool `gorm:"not null;default:false;column:bonus_vinhos_casa_perini_mundo" json:"bonus_vinhos_casa_perini_mundo"`
	BonusVinhosFracaoUnica     bool `gorm:"not null;default:false;column:bonus_vinhos_fracao_unica" json:"bonus_vinhos_fracao_unica"`
	BonusEspumantesVintage     bool `gorm:"not null;default:false;column:bonus_espumantes_vintage" json:"bonus_espumantes_vintage"`
	BonusEspumantesPremium     bool `gorm:"not null;default:false;column:bonus_espumantes_premium" json:"bonus_espumantes_premium"`
	BonusAceleracao            bool `gorm:"not null;default:false;column:bonus_aceleracao" json:"bonus_aceleracao"`

	Status         string     `gorm:"type:varchar(20);not null;default:'enviada'" json:"status"`
	MotivoRejeicao string     `gorm:"type:text;column:motivo_rejeicao" json:"motivo_rejeicao"`
	DataEnvio      time.Time  `gorm:"column:data_envio;autoCreateTime" json:"data_envio"`
	DataValidacao  *time.Time `gorm:"column:data_validacao" json:"data_validacao"`
	ValidadoPorID  *string    `gorm:"type:uuid;column:validado_por_id" json:"validado_por_id"`

	Pontos               int `gorm:"not null;default:0" json:"pontos"`
	PontosBonus          int `gorm:"not null;default:0;column:pontos_bonus" json:"pontos_bonus"`
	NumeroPropostaEquipe int `gorm:"not null;default:0;column:numero_proposta_equipe" json:"numero_proposta_equipe"`

	Venda *Venda `gorm:"foreignKey:PropostaID" json:"venda"`
}
